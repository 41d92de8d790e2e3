package stats

import "math"

// Interval is a confidence interval around a 0-100 score.
type Interval struct {
	Score         float64 `json:"score"`
	LowerBound    float64 `json:"lowerBound"`
	UpperBound    float64 `json:"upperBound"`
	MarginOfError float64 `json:"marginOfError"`
}

// Confidence computes a normal-approximation interval for a 0-100 score. The
// level picks the z value (0.95 and 0.99 are exact, everything else falls back
// to 90%); bounds are clamped to the score range.
func Confidence(score float64, sampleSize int, level float64) Interval {
	if sampleSize <= 0 {
		sampleSize = 100
	}

	p := score / 100.0
	se := math.Sqrt(p * (1 - p) / float64(sampleSize))

	z := 1.645
	switch level {
	case 0.95:
		z = 1.96
	case 0.99:
		z = 2.576
	}

	margin := z * se * 100
	return Interval{
		Score:         round1(score),
		LowerBound:    round1(math.Max(0, score-margin)),
		UpperBound:    round1(math.Min(100, score+margin)),
		MarginOfError: round1(margin),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
