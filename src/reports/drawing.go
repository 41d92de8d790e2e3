package reports

import (
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/tubetale/tubetale/src/analytics"
	"github.com/tubetale/tubetale/src/charts"
	"github.com/tubetale/tubetale/src/stats"
)

const (
	chartWidth  = 180.0
	chartHeight = 60.0
)

// drawLineChart plots a multi-series line spec: axis frame, per-series
// polylines in palette colors, and a label row along the bottom.
func (g *Generator) drawLineChart(pdf *gofpdf.Fpdf, spec charts.Spec) {
	if len(spec.Labels) < 2 {
		return
	}
	x0 := pdf.GetX()
	y0 := pdf.GetY()

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.2)
	pdf.Rect(x0, y0, chartWidth, chartHeight, "D")

	step := chartWidth / float64(len(spec.Labels)-1)
	for si, ds := range spec.Datasets {
		maxVal := 1.0
		for _, v := range ds.Data {
			if v > maxVal {
				maxVal = v
			}
		}
		r, gc, b := charts.RGB(charts.ColorAt(si))
		pdf.SetDrawColor(r, gc, b)
		pdf.SetLineWidth(0.5)
		for i := 1; i < len(ds.Data); i++ {
			x1 := x0 + step*float64(i-1)
			y1 := y0 + chartHeight - ds.Data[i-1]/maxVal*chartHeight
			x2 := x0 + step*float64(i)
			y2 := y0 + chartHeight - ds.Data[i]/maxVal*chartHeight
			pdf.Line(x1, y1, x2, y2)
		}
	}

	pdf.SetY(y0 + chartHeight + 2)
	pdf.SetFont("Arial", "", 7)
	pdf.SetTextColor(100, 100, 100)
	cellW := chartWidth / float64(len(spec.Labels))
	for _, label := range spec.Labels {
		pdf.CellFormat(cellW, 5, label, "", 0, "C", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 8)
	for si, ds := range spec.Datasets {
		r, gc, b := charts.RGB(charts.ColorAt(si))
		pdf.SetTextColor(r, gc, b)
		pdf.CellFormat(40, 5, ds.Label, "", 0, "L", false, 0, "")
	}
	pdf.Ln(8)
	pdf.SetTextColor(0, 0, 0)
}

// drawProportionBars renders a normalized topic distribution as horizontal
// percentage bars, palette-colored by index.
func (g *Generator) drawProportionBars(pdf *gofpdf.Fpdf, topics []stats.TopicShare) {
	x0 := pdf.GetX()
	for i, t := range topics {
		y := pdf.GetY()
		r, gc, b := charts.RGB(charts.ColorAt(i))
		pdf.SetFillColor(r, gc, b)
		pdf.Rect(x0+50, y+1, t.Percentage, 4, "F")

		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(40, 40, 40)
		pdf.CellFormat(48, 6, sanitizeTextForPDF(t.Name), "", 0, "L", false, 0, "")
		pdf.SetX(x0 + 52 + t.Percentage)
		pdf.CellFormat(0, 6, fmt.Sprintf("%.1f%%", t.Percentage), "", 0, "L", false, 0, "")
		pdf.Ln(6)
	}
	pdf.Ln(4)
}

// drawComparisonBars renders each channel's five axes as a bar group; the
// winner's name is bolded.
func (g *Generator) drawComparisonBars(pdf *gofpdf.Fpdf, scores []analytics.ChannelScore, winner string) {
	x0 := pdf.GetX()
	for i, s := range scores {
		style := ""
		if s.ChannelName == winner {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(0, 7, sanitizeTextForPDF(s.ChannelName), "", 0, "L", false, 0, "")
		pdf.Ln(7)

		r, gc, b := charts.RGB(charts.ColorAt(i))
		pdf.SetFillColor(r, gc, b)
		values := []struct {
			label string
			value float64
		}{
			{"Quality", s.Quality},
			{"Consistency", s.Consistency},
			{"Trust", s.Trust},
			{"Variety", s.Variety},
			{"Overall", s.Overall},
		}
		for _, v := range values {
			y := pdf.GetY()
			pdf.SetFont("Arial", "", 8)
			pdf.SetTextColor(80, 80, 80)
			pdf.CellFormat(28, 5, v.label, "", 0, "L", false, 0, "")
			pdf.Rect(x0+30, y+1, v.value*0.8, 3, "F")
			pdf.SetX(x0 + 32 + v.value*0.8)
			pdf.CellFormat(0, 5, fmt.Sprintf("%.0f", v.value), "", 0, "L", false, 0, "")
			pdf.Ln(5)
		}
		pdf.Ln(4)
	}
}

// drawScoreBadge draws the truth score in its bucket color.
func (g *Generator) drawScoreBadge(pdf *gofpdf.Fpdf, score int) {
	var fill [3]int
	switch {
	case score >= 70:
		fill = [3]int{220, 255, 220}
	case score >= 40:
		fill = [3]int{255, 243, 205}
	default:
		fill = [3]int{255, 220, 220}
	}

	x := pdf.GetX()
	y := pdf.GetY()
	pdf.SetFillColor(fill[0], fill[1], fill[2])
	pdf.SetDrawColor(120, 120, 120)
	pdf.Rect(x, y, 40, 16, "FD")
	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(x, y+3)
	pdf.CellFormat(40, 10, fmt.Sprintf("%d / 100", score), "", 0, "C", false, 0, "")
	pdf.SetXY(x, y+20)
}

// drawClaim renders one claim with a colored status icon box, the statement
// and any evidence beside it.
func (g *Generator) drawClaim(pdf *gofpdf.Fpdf, claim analytics.Claim) {
	var fill, border [3]int
	var icon string
	switch claim.Status {
	case analytics.ClaimVerified:
		fill, border, icon = [3]int{220, 255, 220}, [3]int{0, 150, 0}, "OK"
	case analytics.ClaimFalse:
		fill, border, icon = [3]int{255, 220, 220}, [3]int{200, 0, 0}, "X"
	case analytics.ClaimMisleading:
		fill, border, icon = [3]int{255, 243, 205}, [3]int{200, 140, 0}, "!"
	default:
		fill, border, icon = [3]int{235, 235, 235}, [3]int{120, 120, 120}, "?"
	}

	x := pdf.GetX()
	y := pdf.GetY()
	pdf.SetFillColor(fill[0], fill[1], fill[2])
	pdf.SetDrawColor(border[0], border[1], border[2])
	pdf.Rect(x, y, 8, 8, "FD")
	pdf.SetFont("Arial", "B", 8)
	pdf.SetTextColor(border[0], border[1], border[2])
	pdf.SetXY(x, y+1.5)
	pdf.CellFormat(8, 5, icon, "", 0, "C", false, 0, "")

	pdf.SetXY(x+10, y)
	pdf.SetFont("Arial", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 5, string(claim.Status), "", 0, "L", false, 0, "")
	pdf.SetXY(x+10, y+5)
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(40, 40, 40)
	pdf.MultiCell(0, 5, sanitizeTextForPDF(claim.Statement), "", "", false)
	if claim.Evidence != "" {
		pdf.SetX(x + 10)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(90, 90, 90)
		pdf.MultiCell(0, 4, sanitizeTextForPDF(claim.Evidence), "", "", false)
	}
	pdf.Ln(4)
	pdf.SetX(x)
}
