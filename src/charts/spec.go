package charts

// Kind selects the chart family a spec renders as.
type Kind string

const (
	KindLine     Kind = "line"
	KindDoughnut Kind = "doughnut"
	KindRadar    Kind = "radar"
)

const fillOpacity = 0.25

// Dataset is one drawable series.
type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor,omitempty"`
	BackgroundColor []string  `json:"backgroundColor,omitempty"`
	Fill            bool      `json:"fill,omitempty"`
	AxisID          string    `json:"yAxisID,omitempty"`
}

// Spec is a declarative chart: everything a drawing surface needs, with no
// aggregation left to do.
type Spec struct {
	Kind     Kind      `json:"kind"`
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
	Min      float64   `json:"min"`
	Max      float64   `json:"max,omitempty"`
}

// GrowthPoint is one ordinal step of the two-line growth series.
type GrowthPoint struct {
	Label       string
	Subscribers float64
	Videos      float64
}

// Growth builds the two-line time series: subscribers and videos over a
// shared year axis, each on its own value axis.
func Growth(series []GrowthPoint) Spec {
	labels := make([]string, len(series))
	subs := make([]float64, len(series))
	videos := make([]float64, len(series))
	for i, p := range series {
		labels[i] = p.Label
		subs[i] = p.Subscribers
		videos[i] = p.Videos
	}
	return Spec{
		Kind:   KindLine,
		Labels: labels,
		Datasets: []Dataset{
			{
				Label:           "Subscribers",
				Data:            subs,
				BorderColor:     ColorAt(0),
				BackgroundColor: []string{WithOpacity(ColorAt(0), fillOpacity)},
				Fill:            true,
				AxisID:          "subscribers",
			},
			{
				Label:           "Videos",
				Data:            videos,
				BorderColor:     ColorAt(1),
				BackgroundColor: []string{WithOpacity(ColorAt(1), fillOpacity)},
				Fill:            true,
				AxisID:          "videos",
			},
		},
	}
}

// Slice is one proportion-chart entry.
type Slice struct {
	Name  string
	Value float64
}

// Topics builds the proportion chart. Input order is preserved and the
// palette is cycled by index.
func Topics(distribution []Slice) Spec {
	labels := make([]string, len(distribution))
	values := make([]float64, len(distribution))
	colors := make([]string, len(distribution))
	for i, s := range distribution {
		labels[i] = s.Name
		values[i] = s.Value
		colors[i] = ColorAt(i)
	}
	return Spec{
		Kind:   KindDoughnut,
		Labels: labels,
		Datasets: []Dataset{
			{Label: "Topics", Data: values, BackgroundColor: colors},
		},
	}
}

// ComparisonAxes are the five fixed axes of the battle chart, in render order.
var ComparisonAxes = []string{"Quality", "Consistency", "Trust", "Variety", "Overall"}

// ScoreRow is one entity's values across the comparison axes, each 0-100.
type ScoreRow struct {
	Name   string
	Values [5]float64
}

// Comparison builds one radar overlay per entity. Each entity's palette color
// is assigned by input position and reused at reduced opacity for its fill.
func Comparison(rows []ScoreRow) Spec {
	datasets := make([]Dataset, len(rows))
	for i, row := range rows {
		color := ColorAt(i)
		datasets[i] = Dataset{
			Label:           row.Name,
			Data:            row.Values[:],
			BorderColor:     color,
			BackgroundColor: []string{WithOpacity(color, fillOpacity)},
			Fill:            true,
		}
	}
	return Spec{
		Kind:     KindRadar,
		Labels:   append([]string(nil), ComparisonAxes...),
		Datasets: datasets,
		Min:      0,
		Max:      100,
	}
}
