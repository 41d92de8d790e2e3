package present

import (
	"testing"

	"github.com/tubetale/tubetale/src/analytics"
	"github.com/tubetale/tubetale/src/ui"
)

func testPresenter() *Presenter {
	return New(nil)
}

func findFragments(frags []Fragment, kind Kind) []Fragment {
	var out []Fragment
	for _, f := range frags {
		if f.Kind == kind {
			out = append(out, f)
		}
	}
	return out
}

func TestSoloViewShape(t *testing.T) {
	p := testPresenter()
	view := p.Solo(&analytics.SoloReport{
		ChannelName: "Kurzgesagt",
		Stats:       analytics.ChannelStats{Country: "Germany", Subscribers: "21M", TotalVideos: "190", ShortsCount: "12"},
		GrowthTimeline: []analytics.GrowthPoint{
			{Year: "2020", Subscribers: 11_000_000, Videos: 120},
			{Year: "2021", Subscribers: 14_000_000, Videos: 140},
			{Year: "2022", Subscribers: 17_500_000, Videos: 160},
		},
		TopicAnalysis: analytics.TopicAnalysis{
			TopicDistribution: []analytics.TopicShare{{Name: "Science", Value: 70}, {Name: "Philosophy", Value: 30}},
		},
		Recommendation: analytics.Recommendation{Status: "Follow", Reason: "Consistent and well sourced"},
	})

	if view.Kind != "solo" {
		t.Errorf("view kind = %q", view.Kind)
	}
	if got := len(findFragments(view.Fragments, KindStatCard)); got != 3 {
		t.Errorf("stat cards = %d, want 3", got)
	}
	if got := len(view.Charts); got != 2 {
		t.Fatalf("chart refs = %d, want 2 (growth + topics)", got)
	}
	if view.Charts[0].Region != ui.RegionGrowthChart || view.Charts[1].Region != ui.RegionTopicChart {
		t.Errorf("chart regions = %+v", view.Charts)
	}

	banners := findFragments(view.Fragments, KindBanner)
	if len(banners) != 1 || banners[0].Tone != TonePositive {
		t.Errorf("recommendation banner = %+v", banners)
	}

	// No sources in this report, so no sources list either.
	if lists := findFragments(view.Fragments, KindList); len(lists) != 0 {
		t.Errorf("unexpected list fragments: %+v", lists)
	}
}

func TestSoloSourcesOnlyWhenPresent(t *testing.T) {
	p := testPresenter()
	view := p.Solo(&analytics.SoloReport{
		ChannelName: "Tom Scott",
		Sources: []analytics.Source{
			{Title: "Wikipedia", URI: "https://en.wikipedia.org/wiki/Tom_Scott"},
		},
	})
	lists := findFragments(view.Fragments, KindList)
	if len(lists) != 1 {
		t.Fatalf("lists = %d, want 1", len(lists))
	}
	if len(lists[0].Children) != 1 || lists[0].Children[0].Link != "https://en.wikipedia.org/wiki/Tom_Scott" {
		t.Errorf("source items = %+v", lists[0].Children)
	}
}

func TestSoloSanitizesUpstreamProse(t *testing.T) {
	p := testPresenter()
	view := p.Solo(&analytics.SoloReport{
		ChannelName: `<script>alert("x")</script>LTT`,
		Biography:   analytics.Biography{Summary: `Tech reviews <img src=x onerror=steal()> since 2008`},
	})
	header := findFragments(view.Fragments, KindHeader)[0]
	if header.Title != "LTT" {
		t.Errorf("header title = %q, want scripts stripped", header.Title)
	}
	for _, f := range view.Fragments {
		if f.Kind == KindText && f.Title == "Biography" {
			if got := f.Children[0].Body; got != "Tech reviews  since 2008" {
				t.Errorf("summary = %q", got)
			}
		}
	}
}

func TestBattleHighlightsExactlyTheWinner(t *testing.T) {
	p := testPresenter()
	view := p.Battle(&analytics.BattleReport{
		Verdict: analytics.Verdict{Winner: "Marques Brownlee", Reasoning: "Stronger trust scores"},
		Scores: []analytics.ChannelScore{
			{ChannelName: "Linus Tech Tips", Quality: 80, Consistency: 85, Trust: 70, Variety: 90, Overall: 81},
			{ChannelName: "Marques Brownlee", Quality: 90, Consistency: 88, Trust: 95, Variety: 75, Overall: 87},
			{ChannelName: "Dave2D", Quality: 85, Consistency: 80, Trust: 88, Variety: 60, Overall: 78},
		},
	})

	if view.Kind != "battle" {
		t.Errorf("view kind = %q", view.Kind)
	}
	cards := findFragments(view.Fragments, KindScoreCard)
	if len(cards) != 3 {
		t.Fatalf("score cards = %d, want 3", len(cards))
	}
	for _, card := range cards {
		want := card.Title == "Marques Brownlee"
		if card.Highlight != want {
			t.Errorf("card %q highlight = %v, want %v", card.Title, card.Highlight, want)
		}
	}
	if len(view.Charts) != 1 || view.Charts[0].Region != ui.RegionComparisonChart {
		t.Errorf("chart refs = %+v", view.Charts)
	}
}

func TestScoreToneBuckets(t *testing.T) {
	tests := []struct {
		score int
		want  Tone
	}{
		{100, TonePositive},
		{70, TonePositive},
		{69, ToneCaution},
		{40, ToneCaution},
		{39, ToneNegative},
		{0, ToneNegative},
	}
	for _, tt := range tests {
		if got := ScoreTone(tt.score); got != tt.want {
			t.Errorf("ScoreTone(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestClaimToneMapping(t *testing.T) {
	tests := []struct {
		status analytics.ClaimStatus
		want   Tone
	}{
		{analytics.ClaimVerified, TonePositive},
		{analytics.ClaimFalse, ToneNegative},
		{analytics.ClaimMisleading, ToneCaution},
		{analytics.ClaimUnverified, ToneNeutral},
		{analytics.ClaimStatus("Garbage"), ToneNeutral},
	}
	for _, tt := range tests {
		if got := ClaimTone(tt.status); got != tt.want {
			t.Errorf("ClaimTone(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestTruthViewOmitsEmptyLists(t *testing.T) {
	p := testPresenter()
	view := p.Truth(&analytics.TruthReport{
		VideoTitle:     "Flat earth debunked",
		CreatorName:    "SciGuy",
		TruthScore:     82,
		SummaryVerdict: "Largely accurate",
		Language:       "English",
	})

	if view.Kind != "truth" {
		t.Errorf("view kind = %q", view.Kind)
	}
	badge := findFragments(view.Fragments, KindBadge)[0]
	if badge.Tone != TonePositive || badge.Body != "82" {
		t.Errorf("badge = %+v", badge)
	}
	if lists := findFragments(view.Fragments, KindList); len(lists) != 0 {
		t.Errorf("claims/references rendered for empty report: %+v", lists)
	}
}

func TestTruthClaimsCarryEvidenceAndSource(t *testing.T) {
	p := testPresenter()
	view := p.Truth(&analytics.TruthReport{
		TruthScore: 45,
		Claims: []analytics.Claim{
			{Statement: "The moon landing was filmed in 4K", Status: analytics.ClaimFalse, Evidence: "4K did not exist in 1969", SourceURL: "https://nasa.gov"},
			{Statement: "Water boils at 100C at sea level", Status: analytics.ClaimVerified},
		},
	})

	lists := findFragments(view.Fragments, KindList)
	if len(lists) != 1 {
		t.Fatalf("lists = %d, want 1", len(lists))
	}
	claims := lists[0].Children
	if len(claims) != 2 {
		t.Fatalf("claims = %d, want 2", len(claims))
	}
	if claims[0].Tone != ToneNegative || len(claims[0].Children) != 2 {
		t.Errorf("false claim = %+v", claims[0])
	}
	if claims[1].Tone != TonePositive || len(claims[1].Children) != 0 {
		t.Errorf("verified claim = %+v", claims[1])
	}
}

func TestRecommendationTone(t *testing.T) {
	tests := []struct {
		status string
		want   Tone
	}{
		{"Follow", TonePositive},
		{"Pass", ToneNegative},
		{"Neutral", ToneNeutral},
		{"", ToneNeutral},
	}
	for _, tt := range tests {
		if got := recommendationTone(tt.status); got != tt.want {
			t.Errorf("recommendationTone(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
