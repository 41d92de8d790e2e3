package ui

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Validation failures surface inline and abort the submission before any
// network call is made.
var (
	ErrChannelRequired = errors.New("Channel name is required")
	ErrTooFewChannels  = errors.New("Please provide 2-5 channels")
	ErrVideoRequired   = errors.New("Video URL is required")
	ErrNotYouTubeURL   = errors.New("Please provide a valid YouTube URL (youtube.com or youtu.be link)")
	ErrNoVideoID       = errors.New("Could not extract video ID from URL. Please provide a valid YouTube link.")
)

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/v/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/shorts/([a-zA-Z0-9_-]{11})`),
}

// ValidateSolo checks the single-entity input.
func ValidateSolo(channelName string) error {
	if strings.TrimSpace(channelName) == "" {
		return ErrChannelRequired
	}
	return nil
}

// ValidateBattle filters blank names and checks the comparison bounds,
// returning the effective submitted set.
func ValidateBattle(names []string) ([]string, error) {
	cleaned := CleanNames(names)
	if len(cleaned) < MinInputs {
		return nil, ErrTooFewChannels
	}
	if len(cleaned) > MaxInputs {
		return nil, fmt.Errorf("%d channels is too many; a battle supports at most %d", len(cleaned), MaxInputs)
	}
	return cleaned, nil
}

// ValidateTruth checks the video locator: non-empty, a YouTube URL, and
// carrying an extractable video ID.
func ValidateTruth(videoInput string) error {
	v := strings.TrimSpace(videoInput)
	if v == "" {
		return ErrVideoRequired
	}
	lower := strings.ToLower(v)
	if !strings.Contains(lower, "youtube.com/") && !strings.Contains(lower, "youtu.be/") {
		return ErrNotYouTubeURL
	}
	if _, ok := ExtractVideoID(v); !ok {
		return ErrNoVideoID
	}
	return nil
}

// ExtractVideoID pulls the 11-character video ID out of the usual YouTube URL
// shapes (watch, youtu.be, embed, /v/, shorts).
func ExtractVideoID(url string) (string, bool) {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}
