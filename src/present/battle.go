package present

import (
	"fmt"

	"github.com/tubetale/tubetale/src/analytics"
	"github.com/tubetale/tubetale/src/charts"
	"github.com/tubetale/tubetale/src/stats"
	"github.com/tubetale/tubetale/src/ui"
)

// Battle renders a comparison report: winner banner, the comparison chart,
// one score card per channel with the winner's card highlighted, and the
// narrative.
func (p *Presenter) Battle(r *analytics.BattleReport) View {
	view := View{Kind: "battle"}

	view.Fragments = append(view.Fragments, Fragment{
		Kind:  KindBanner,
		Title: p.clean(r.Verdict.Winner),
		Body:  p.clean(r.Verdict.Reasoning),
		Tone:  TonePositive,
	})

	view.Fragments = append(view.Fragments, Fragment{Kind: KindChartMount, Title: "Head to Head", Region: ui.RegionComparisonChart})
	if ref, ok := p.mount(ui.RegionComparisonChart, comparisonSpec(r.Scores)); ok {
		view.Charts = append(view.Charts, ref)
	}

	for _, s := range r.Scores {
		view.Fragments = append(view.Fragments, scoreCard(s, s.ChannelName == r.Verdict.Winner, p))
	}

	if bs := stats.ComputeBattle(r.Scores); bs != nil {
		view.Fragments = append(view.Fragments, Fragment{
			Kind:  KindMetaCard,
			Title: "Score Spread",
			Body:  battleStatsLine(bs),
		})
	}

	view.Fragments = append(view.Fragments, Fragment{
		Kind:  KindBanner,
		Title: "The Story",
		Body:  p.clean(r.Verdict.Narrative),
		Tone:  ToneNeutral,
	})

	return view
}

func comparisonSpec(scores []analytics.ChannelScore) charts.Spec {
	rows := make([]charts.ScoreRow, len(scores))
	for i, s := range scores {
		rows[i] = charts.ScoreRow{
			Name:   s.ChannelName,
			Values: [5]float64{s.Quality, s.Consistency, s.Trust, s.Variety, s.Overall},
		}
	}
	return charts.Comparison(rows)
}

func scoreCard(s analytics.ChannelScore, winner bool, p *Presenter) Fragment {
	return Fragment{
		Kind:      KindScoreCard,
		Title:     p.clean(s.ChannelName),
		Body:      fmt.Sprintf("%.0f", s.Overall),
		Highlight: winner,
		Children: []Fragment{
			{Kind: KindText, Title: "Quality", Body: fmt.Sprintf("%.0f", s.Quality)},
			{Kind: KindText, Title: "Consistency", Body: fmt.Sprintf("%.0f", s.Consistency)},
			{Kind: KindText, Title: "Trust", Body: fmt.Sprintf("%.0f", s.Trust)},
			{Kind: KindText, Title: "Variety", Body: fmt.Sprintf("%.0f", s.Variety)},
		},
	}
}

func battleStatsLine(bs *stats.BattleStats) string {
	verdict := "decided on the margins"
	if bs.DecisiveWinner {
		verdict = "a decisive win"
	} else if bs.CloseCompetition {
		verdict = "a close race"
	}
	return fmt.Sprintf("mean %.1f, spread %.1f, winning gap %.1f: %s", bs.MeanScore, bs.ScoreRange, bs.ScoreDifference, verdict)
}
