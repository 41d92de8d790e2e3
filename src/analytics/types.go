package analytics

import "fmt"

// SoloReport is the result of a single-channel analysis.
type SoloReport struct {
	ChannelName    string         `json:"channelName"`
	Stats          ChannelStats   `json:"stats"`
	GrowthTimeline []GrowthPoint  `json:"growthTimeline"`
	TopicAnalysis  TopicAnalysis  `json:"topicAnalysis"`
	Biography      Biography      `json:"biography"`
	Recommendation Recommendation `json:"recommendation"`
	Sources        []Source       `json:"sources,omitempty"`
}

// ChannelStats carries headline figures as the upstream formats them
// ("2.4M", "1,203", ...), so they stay strings on the wire.
type ChannelStats struct {
	Country     string `json:"country"`
	Subscribers string `json:"subscribers"`
	TotalVideos string `json:"totalVideos"`
	ShortsCount string `json:"shortsCount"`
}

// GrowthPoint is one year of the growth timeline. The upstream emits the
// year as a string ("2020").
type GrowthPoint struct {
	Year        string  `json:"year"`
	Subscribers float64 `json:"subscribers"`
	Videos      float64 `json:"videos"`
}

type TopicAnalysis struct {
	TopicDistribution []TopicShare `json:"topicDistribution"`
	MostFrequentTheme string       `json:"mostFrequentTheme,omitempty"`
}

type TopicShare struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type Biography struct {
	Summary   string `json:"summary"`
	Origin    string `json:"origin"`
	Evolution string `json:"evolution"`
}

type Recommendation struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// Source is a grounding reference returned by the upstream.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// BattleReport is the result of a multi-channel comparison.
type BattleReport struct {
	Verdict Verdict        `json:"verdict"`
	Scores  []ChannelScore `json:"scores"`
}

type Verdict struct {
	Winner    string `json:"winner"`
	Reasoning string `json:"reasoning"`
	Narrative string `json:"narrative"`
}

// ChannelScore holds the per-channel battle axes, each on a 0-100 scale.
type ChannelScore struct {
	ChannelName string  `json:"channelName"`
	Quality     float64 `json:"quality"`
	Consistency float64 `json:"consistency"`
	Trust       float64 `json:"trust"`
	Variety     float64 `json:"variety"`
	Overall     float64 `json:"overall"`
}

// Validate checks the battle invariants: 2-5 scored channels and a verdict
// winner that names exactly one of them.
func (r *BattleReport) Validate() error {
	if len(r.Scores) < 2 || len(r.Scores) > 5 {
		return fmt.Errorf("battle report has %d scored channels, want 2-5", len(r.Scores))
	}
	matches := 0
	for _, s := range r.Scores {
		if s.ChannelName == r.Verdict.Winner {
			matches++
		}
	}
	if matches != 1 {
		return fmt.Errorf("verdict winner %q matches %d scored channels, want exactly 1", r.Verdict.Winner, matches)
	}
	return nil
}

// TruthReport is the result of fact-checking one video.
type TruthReport struct {
	VideoTitle     string   `json:"videoTitle"`
	CreatorName    string   `json:"creatorName"`
	TruthScore     int      `json:"truthScore"`
	SummaryVerdict string   `json:"summaryVerdict"`
	ToneAnalysis   string   `json:"toneAnalysis"`
	IsFakingFacts  bool     `json:"isFakingFacts"`
	Language       string   `json:"language"`
	Claims         []Claim  `json:"claims,omitempty"`
	References     []Source `json:"references,omitempty"`
}

type ClaimStatus string

const (
	ClaimVerified   ClaimStatus = "Verified"
	ClaimFalse      ClaimStatus = "False"
	ClaimMisleading ClaimStatus = "Misleading"
	ClaimUnverified ClaimStatus = "Unverified"
)

// Claim is one factual statement extracted from the video.
type Claim struct {
	Statement string      `json:"statement"`
	Status    ClaimStatus `json:"status"`
	Evidence  string      `json:"evidence"`
	SourceURL string      `json:"sourceUrl,omitempty"`
}
