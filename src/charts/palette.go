package charts

import "fmt"

// Palette is the fixed series palette. Series pick colors by index and wrap
// around when there are more series than colors.
var Palette = []string{
	"#6366f1", // indigo
	"#ec4899", // pink
	"#10b981", // emerald
	"#f59e0b", // amber
	"#3b82f6", // blue
	"#ef4444", // red
	"#8b5cf6", // violet
	"#14b8a6", // teal
}

// ColorAt returns the palette color for a series index, cycling modulo the
// palette length.
func ColorAt(i int) string {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}

// RGB decodes a #rrggbb palette color into components for drawing surfaces
// that want integers. Malformed input decodes to black.
func RGB(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0
	}
	return r, g, b
}

// WithOpacity converts a #rrggbb palette color into an rgba() value, used for
// chart fills that reuse the series outline color. Malformed input is
// returned unchanged.
func WithOpacity(hex string, alpha float64) string {
	if len(hex) != 7 || hex[0] != '#' {
		return hex
	}
	var r, g, b int
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return hex
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", r, g, b, alpha)
}
