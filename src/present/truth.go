package present

import (
	"fmt"
	"strconv"

	"github.com/tubetale/tubetale/src/analytics"
	"github.com/tubetale/tubetale/src/stats"
)

// Truth renders a fact-check report: header, bucketed score badge, verdict,
// meta cards, and the optional claims and references lists.
func (p *Presenter) Truth(r *analytics.TruthReport) View {
	view := View{Kind: "truth"}

	view.Fragments = append(view.Fragments, Fragment{
		Kind:  KindHeader,
		Title: p.clean(r.VideoTitle),
		Body:  p.clean(r.CreatorName),
	})

	ci := stats.Confidence(float64(r.TruthScore), 100, 0.95)
	view.Fragments = append(view.Fragments, Fragment{
		Kind:  KindBadge,
		Title: "Truth Score",
		Body:  strconv.Itoa(r.TruthScore),
		Tone:  ScoreTone(r.TruthScore),
		Children: []Fragment{{
			Kind: KindText,
			Body: fmt.Sprintf("95%% confidence: %.1f-%.1f", ci.LowerBound, ci.UpperBound),
		}},
	})

	view.Fragments = append(view.Fragments, Fragment{
		Kind:  KindBanner,
		Title: "Verdict",
		Body:  p.clean(r.SummaryVerdict),
		Tone:  ScoreTone(r.TruthScore),
	})

	fabrication := Fragment{Kind: KindMetaCard, Title: "Fabrication", Body: "No fabricated facts detected", Tone: TonePositive}
	if r.IsFakingFacts {
		fabrication.Body = "Fabricated facts detected"
		fabrication.Tone = ToneNegative
	}
	view.Fragments = append(view.Fragments,
		Fragment{Kind: KindMetaCard, Title: "Tone", Body: p.clean(r.ToneAnalysis)},
		fabrication,
		Fragment{Kind: KindMetaCard, Title: "Language", Body: p.clean(r.Language)},
	)

	if len(r.Claims) > 0 {
		list := Fragment{Kind: KindList, Title: "Claims"}
		for _, c := range r.Claims {
			list.Children = append(list.Children, claimFragment(c, p))
		}
		view.Fragments = append(view.Fragments, list)
	}

	if len(r.References) > 0 {
		view.Fragments = append(view.Fragments, sourceList("References", r.References, p))
	}

	return view
}

// ScoreTone buckets a 0-100 truth score: 70 and above is positive, 40-69 is
// caution, below 40 is negative.
func ScoreTone(score int) Tone {
	switch {
	case score >= 70:
		return TonePositive
	case score >= 40:
		return ToneCaution
	default:
		return ToneNegative
	}
}

// ClaimTone maps a verification status to its color bucket.
func ClaimTone(status analytics.ClaimStatus) Tone {
	switch status {
	case analytics.ClaimVerified:
		return TonePositive
	case analytics.ClaimFalse:
		return ToneNegative
	case analytics.ClaimMisleading:
		return ToneCaution
	}
	return ToneNeutral
}

func claimFragment(c analytics.Claim, p *Presenter) Fragment {
	frag := Fragment{
		Kind:  KindClaim,
		Title: string(c.Status),
		Body:  p.clean(c.Statement),
		Tone:  ClaimTone(c.Status),
	}
	if c.Evidence != "" {
		frag.Children = append(frag.Children, Fragment{Kind: KindText, Body: p.clean(c.Evidence)})
	}
	if c.SourceURL != "" {
		frag.Children = append(frag.Children, Fragment{Kind: KindListItem, Title: "Source", Link: c.SourceURL})
	}
	return frag
}
