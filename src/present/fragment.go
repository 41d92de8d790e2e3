package present

// Kind enumerates the fragment shapes a view is built from.
type Kind string

const (
	KindHeader     Kind = "header"
	KindStatCard   Kind = "stat-card"
	KindChartMount Kind = "chart-mount"
	KindText       Kind = "text"
	KindBanner     Kind = "banner"
	KindBadge      Kind = "badge"
	KindScoreCard  Kind = "score-card"
	KindMetaCard   Kind = "meta-card"
	KindList       Kind = "list"
	KindListItem   Kind = "list-item"
	KindClaim      Kind = "claim"
)

// Tone is the color bucket a fragment renders with.
type Tone string

const (
	ToneNeutral  Tone = "neutral"
	TonePositive Tone = "positive"
	ToneCaution  Tone = "caution"
	ToneNegative Tone = "negative"
)

// Fragment is one node of the rendered view tree.
type Fragment struct {
	Kind      Kind       `json:"kind"`
	Title     string     `json:"title,omitempty"`
	Body      string     `json:"body,omitempty"`
	Tone      Tone       `json:"tone,omitempty"`
	Highlight bool       `json:"highlight,omitempty"`
	Region    string     `json:"region,omitempty"`
	Link      string     `json:"link,omitempty"`
	Children  []Fragment `json:"children,omitempty"`
}

// View is the rendered output of one report: the fragment tree plus the chart
// handles mounted while building it.
type View struct {
	Kind      string     `json:"kind"`
	Fragments []Fragment `json:"fragments"`
	Charts    []ChartRef `json:"charts,omitempty"`
}

// ChartRef points a chart mount at its live instance.
type ChartRef struct {
	Region string `json:"region"`
	Handle string `json:"handle"`
}
