package ui

import (
	"reflect"
	"testing"
)

func TestValidateSolo(t *testing.T) {
	if err := ValidateSolo("veritasium"); err != nil {
		t.Errorf("valid name rejected: %v", err)
	}
	for _, in := range []string{"", "   "} {
		if err := ValidateSolo(in); err != ErrChannelRequired {
			t.Errorf("ValidateSolo(%q) = %v, want %v", in, err, ErrChannelRequired)
		}
	}
}

func TestValidateBattle(t *testing.T) {
	got, err := ValidateBattle([]string{"A", "", "B", "  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("effective set = %v, want %v", got, want)
	}

	if _, err := ValidateBattle([]string{"A", " ", ""}); err != ErrTooFewChannels {
		t.Errorf("single effective name: got %v, want %v", err, ErrTooFewChannels)
	}
	if _, err := ValidateBattle([]string{"a", "b", "c", "d", "e", "f"}); err == nil {
		t.Error("six names accepted, want error")
	}
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
		ok   bool
	}{
		{"watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"shorts", "https://youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch with params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", true},
		{"not youtube", "https://vimeo.com/123456", "", false},
		{"no id", "https://www.youtube.com/feed/subscriptions", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractVideoID(tt.url)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ExtractVideoID(%q) = (%q, %v), want (%q, %v)", tt.url, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestValidateTruth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"valid", "https://youtu.be/dQw4w9WgXcQ", nil},
		{"empty", "", ErrVideoRequired},
		{"not a youtube url", "https://example.com/video", ErrNotYouTubeURL},
		{"youtube but no id", "https://www.youtube.com/account", ErrNoVideoID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateTruth(tt.in); err != tt.want {
				t.Errorf("ValidateTruth(%q) = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}
