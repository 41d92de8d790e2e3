package stats

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/tubetale/tubetale/src/analytics"
)

// Point is one cleaned year of a growth timeline.
type Point struct {
	Year        int
	Subscribers float64
	Videos      float64
}

// Trend buckets for average year-over-year subscriber growth.
const (
	TrendRapidGrowth      = "rapid_growth"
	TrendSteadyGrowth     = "steady_growth"
	TrendStable           = "stable"
	TrendDeclining        = "declining"
	TrendInsufficientData = "insufficient_data"
)

// GrowthStats summarizes a cleaned growth timeline.
type GrowthStats struct {
	AvgSubscriberGrowth float64 `json:"avgSubscriberGrowth"`
	AvgVideoGrowth      float64 `json:"avgVideoGrowth"`
	Trend               string  `json:"growthTrend"`
	LatestSubscribers   int64   `json:"latestSubscribers"`
	LatestVideos        int64   `json:"latestVideos"`
}

// CleanGrowth coerces the wire timeline into numeric points, drops rows with
// unparseable or non-finite values, and sorts the rest by year.
func CleanGrowth(timeline []analytics.GrowthPoint) []Point {
	points := make([]Point, 0, len(timeline))
	for _, gp := range timeline {
		year, err := strconv.Atoi(strings.TrimSpace(gp.Year))
		if err != nil {
			continue
		}
		if !isFinite(gp.Subscribers) || !isFinite(gp.Videos) {
			continue
		}
		points = append(points, Point{Year: year, Subscribers: gp.Subscribers, Videos: gp.Videos})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Year < points[j].Year })
	return points
}

// ComputeGrowth returns average year-over-year growth rates and a trend
// bucket. Fewer than two points means there is nothing to compare.
func ComputeGrowth(points []Point) GrowthStats {
	if len(points) < 2 {
		return GrowthStats{Trend: TrendInsufficientData}
	}

	var subRates, videoRates []float64
	for i := 1; i < len(points); i++ {
		if prev := points[i-1].Subscribers; prev != 0 {
			subRates = append(subRates, (points[i].Subscribers-prev)/prev*100)
		}
		if prev := points[i-1].Videos; prev != 0 {
			videoRates = append(videoRates, (points[i].Videos-prev)/prev*100)
		}
	}

	avgSub := round2(mean(subRates))
	avgVideo := round2(mean(videoRates))

	trend := TrendDeclining
	switch {
	case avgSub > 10:
		trend = TrendRapidGrowth
	case avgSub > 0:
		trend = TrendSteadyGrowth
	case avgSub > -5:
		trend = TrendStable
	}

	last := points[len(points)-1]
	return GrowthStats{
		AvgSubscriberGrowth: avgSub,
		AvgVideoGrowth:      avgVideo,
		Trend:               trend,
		LatestSubscribers:   int64(last.Subscribers),
		LatestVideos:        int64(last.Videos),
	}
}

// Trend strength buckets for the linear fit.
const (
	StrengthStrong   = "strong"
	StrengthModerate = "moderate"
	StrengthWeak     = "weak"
)

// TrendPrediction is a least-squares fit over the subscriber series with a
// one-period-ahead projection.
type TrendPrediction struct {
	Slope             float64 `json:"slope"`
	RSquared          float64 `json:"rSquared"`
	Strength          string  `json:"trendStrength"`
	PredictedNextYear int64   `json:"predictedNextYear"`
}

// PredictTrend fits subscribers against the point index. It needs at least
// three points; otherwise it returns nil.
func PredictTrend(points []Point) *TrendPrediction {
	n := len(points)
	if n < 3 {
		return nil
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, p := range points {
		x := float64(i)
		sumX += x
		sumY += p.Subscribers
		sumXY += x * p.Subscribers
		sumXX += x * x
	}
	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		return nil
	}
	slope := (fn*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / fn

	yMean := sumY / fn
	var ssTot, ssRes float64
	for i, p := range points {
		fitted := slope*float64(i) + intercept
		ssTot += (p.Subscribers - yMean) * (p.Subscribers - yMean)
		ssRes += (p.Subscribers - fitted) * (p.Subscribers - fitted)
	}
	rSquared := 0.0
	if ssTot != 0 {
		rSquared = 1 - ssRes/ssTot
	}

	strength := StrengthWeak
	switch {
	case rSquared > 0.7:
		strength = StrengthStrong
	case rSquared > 0.4:
		strength = StrengthModerate
	}

	return &TrendPrediction{
		Slope:             slope,
		RSquared:          rSquared,
		Strength:          strength,
		PredictedNextYear: int64(slope*fn + intercept),
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
