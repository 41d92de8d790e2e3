package stats

import (
	"math"
	"testing"

	"github.com/tubetale/tubetale/src/analytics"
)

func TestComputeBattleNeedsTwoChannels(t *testing.T) {
	if bs := ComputeBattle([]analytics.ChannelScore{{Overall: 90}}); bs != nil {
		t.Errorf("one channel = %+v, want nil", bs)
	}
	if bs := ComputeBattle(nil); bs != nil {
		t.Errorf("no channels = %+v, want nil", bs)
	}
}

func TestComputeBattleCloseRace(t *testing.T) {
	bs := ComputeBattle([]analytics.ChannelScore{
		{Overall: 82},
		{Overall: 80},
		{Overall: 78},
	})
	if bs == nil {
		t.Fatal("nil stats")
	}
	if bs.MeanScore != 80 {
		t.Errorf("mean = %v", bs.MeanScore)
	}
	if math.Abs(bs.StdDev-2) > 1e-9 {
		t.Errorf("stddev = %v, want 2", bs.StdDev)
	}
	if bs.ScoreRange != 4 || bs.ScoreDifference != 2 {
		t.Errorf("range = %v diff = %v", bs.ScoreRange, bs.ScoreDifference)
	}
	if !bs.CloseCompetition {
		t.Error("spread of 2 not flagged close")
	}
	if bs.DecisiveWinner {
		t.Error("gap of 2 flagged decisive against stddev 2")
	}
}

func TestComputeBattleDecisiveWinner(t *testing.T) {
	bs := ComputeBattle([]analytics.ChannelScore{
		{Overall: 95},
		{Overall: 60},
		{Overall: 58},
		{Overall: 57},
	})
	if bs == nil {
		t.Fatal("nil stats")
	}
	if !bs.DecisiveWinner {
		t.Errorf("gap %v against stddev %v not flagged decisive", bs.ScoreDifference, bs.StdDev)
	}
	if bs.ScoreDifference != 35 {
		t.Errorf("diff = %v", bs.ScoreDifference)
	}
}

func TestComputeBattleUnorderedInput(t *testing.T) {
	// Range and winning gap come from the sorted scores, not input order.
	bs := ComputeBattle([]analytics.ChannelScore{
		{Overall: 40},
		{Overall: 90},
		{Overall: 70},
	})
	if bs.ScoreRange != 50 || bs.ScoreDifference != 20 {
		t.Errorf("range = %v diff = %v, want 50/20", bs.ScoreRange, bs.ScoreDifference)
	}
}
