package present

import (
	"fmt"
	"strconv"

	"github.com/tubetale/tubetale/src/analytics"
	"github.com/tubetale/tubetale/src/charts"
	"github.com/tubetale/tubetale/src/stats"
	"github.com/tubetale/tubetale/src/ui"
)

// Solo renders a single-channel report: header, stat cards, the two chart
// mounts, biography, recommendation and (when present) sources.
func (p *Presenter) Solo(r *analytics.SoloReport) View {
	view := View{Kind: "solo"}

	view.Fragments = append(view.Fragments, Fragment{
		Kind:  KindHeader,
		Title: p.clean(r.ChannelName),
		Body:  p.clean(r.Stats.Country),
	})

	view.Fragments = append(view.Fragments,
		Fragment{Kind: KindStatCard, Title: "Subscribers", Body: p.clean(r.Stats.Subscribers)},
		Fragment{Kind: KindStatCard, Title: "Videos", Body: p.clean(r.Stats.TotalVideos)},
		Fragment{Kind: KindStatCard, Title: "Shorts", Body: p.clean(r.Stats.ShortsCount)},
	)

	points := stats.CleanGrowth(r.GrowthTimeline)
	view.Fragments = append(view.Fragments, Fragment{Kind: KindChartMount, Title: "Growth Timeline", Region: ui.RegionGrowthChart})
	if ref, ok := p.mount(ui.RegionGrowthChart, growthSpec(points)); ok {
		view.Charts = append(view.Charts, ref)
	}
	if g := stats.ComputeGrowth(points); g.Trend != stats.TrendInsufficientData {
		frag := Fragment{
			Kind:  KindMetaCard,
			Title: "Growth",
			Body:  fmt.Sprintf("%+.2f%% subscribers/yr, %+.2f%% videos/yr (%s)", g.AvgSubscriberGrowth, g.AvgVideoGrowth, g.Trend),
		}
		if t := stats.PredictTrend(points); t != nil {
			frag.Children = []Fragment{{
				Kind: KindText,
				Body: fmt.Sprintf("Projected next year: %d subscribers (%s fit)", t.PredictedNextYear, t.Strength),
			}}
		}
		view.Fragments = append(view.Fragments, frag)
	}

	view.Fragments = append(view.Fragments, Fragment{Kind: KindChartMount, Title: "Topics", Region: ui.RegionTopicChart})
	if ref, ok := p.mount(ui.RegionTopicChart, topicSpec(r.TopicAnalysis.TopicDistribution)); ok {
		view.Charts = append(view.Charts, ref)
	}

	view.Fragments = append(view.Fragments, Fragment{
		Kind:  KindText,
		Title: "Biography",
		Children: []Fragment{
			{Kind: KindText, Title: "Summary", Body: p.clean(r.Biography.Summary)},
			{Kind: KindText, Title: "Origin", Body: p.clean(r.Biography.Origin)},
			{Kind: KindText, Title: "Evolution", Body: p.clean(r.Biography.Evolution)},
		},
	})

	view.Fragments = append(view.Fragments, Fragment{
		Kind:  KindBanner,
		Title: p.clean(r.Recommendation.Status),
		Body:  p.clean(r.Recommendation.Reason),
		Tone:  recommendationTone(r.Recommendation.Status),
	})

	if len(r.Sources) > 0 {
		view.Fragments = append(view.Fragments, sourceList("Sources", r.Sources, p))
	}

	return view
}

func growthSpec(points []stats.Point) charts.Spec {
	series := make([]charts.GrowthPoint, len(points))
	for i, pt := range points {
		series[i] = charts.GrowthPoint{
			Label:       strconv.Itoa(pt.Year),
			Subscribers: pt.Subscribers,
			Videos:      pt.Videos,
		}
	}
	return charts.Growth(series)
}

// topicSpec keeps the upstream's ordering; only the stats strip re-sorts.
func topicSpec(distribution []analytics.TopicShare) charts.Spec {
	slices := make([]charts.Slice, len(distribution))
	for i, t := range distribution {
		slices[i] = charts.Slice{Name: t.Name, Value: t.Value}
	}
	return charts.Topics(slices)
}

func recommendationTone(status string) Tone {
	switch status {
	case "Follow":
		return TonePositive
	case "Pass":
		return ToneNegative
	}
	return ToneNeutral
}

func sourceList(title string, sources []analytics.Source, p *Presenter) Fragment {
	list := Fragment{Kind: KindList, Title: title}
	for _, s := range sources {
		list.Children = append(list.Children, Fragment{
			Kind:  KindListItem,
			Title: p.clean(s.Title),
			Link:  s.URI,
		})
	}
	return list
}
