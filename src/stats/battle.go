package stats

import (
	"math"
	"sort"

	"github.com/tubetale/tubetale/src/analytics"
)

// BattleStats summarizes how close a battle was, based on the overall scores.
type BattleStats struct {
	MeanScore        float64 `json:"meanScore"`
	StdDev           float64 `json:"stdDev"`
	ScoreRange       float64 `json:"scoreRange"`
	ScoreDifference  float64 `json:"scoreDifference"`
	CloseCompetition bool    `json:"closeCompetition"`
	DecisiveWinner   bool    `json:"decisiveWinner"`
}

// ComputeBattle needs at least two scored channels; otherwise it returns nil.
// The battle is "close" when the sample standard deviation of overall scores
// is under 10, and the winner is "decisive" when the gap to the runner-up
// exceeds one standard deviation.
func ComputeBattle(scores []analytics.ChannelScore) *BattleStats {
	if len(scores) < 2 {
		return nil
	}

	overall := make([]float64, len(scores))
	for i, s := range scores {
		overall[i] = s.Overall
	}

	m := mean(overall)
	sd := sampleStdDev(overall, m)

	sorted := append([]float64(nil), overall...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	diff := sorted[0] - sorted[1]

	return &BattleStats{
		MeanScore:        m,
		StdDev:           sd,
		ScoreRange:       sorted[0] - sorted[len(sorted)-1],
		ScoreDifference:  diff,
		CloseCompetition: sd < 10,
		DecisiveWinner:   diff > sd,
	}
}

func sampleStdDev(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += (v - mean) * (v - mean)
	}
	return math.Sqrt(sum / float64(len(values)-1))
}
