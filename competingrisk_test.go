package splitstat

import (
	"math"
	"testing"
)

func TestCompetingRiskMatchesSurvivalSingleCause(t *testing.T) {
	nodes := []NodeData{
		survivalNode(
			[]Membership{Left, Right, Left, Right},
			[]float64{1, 2, 3, 4},
			[]float64{1, 0, 1, 1},
		),
		survivalNode(
			[]Membership{Left, Left, Right, Left, Right, Right, Left, Right, Left, Right},
			[]float64{1, 1, 2, 3, 3, 4, 5, 5, 6, 7},
			[]float64{1, 0, 1, 1, 0, 1, 0, 1, 1, 1},
		),
	}

	for ind, node := range nodes {
		survival := SurvivalLogRank(node)
		competing := CompetingRiskLogRank(node)
		if math.Abs(survival-competing) > 1e-12 {
			t.Errorf("node %d: single-cause competing risk %v differs from survival %v",
				ind, competing, survival)
		}
	}
}

func TestCompetingRiskTwoCauseHandExample(t *testing.T) {
	node := NodeData{
		Membership:    []Membership{Left, Left, Right, Right},
		Time:          []float64{1, 2, 3, 4},
		Event:         []float64{1, 2, 1, 0},
		EventTypeSize: 2,
		EventTime:     []float64{1, 2, 3},
	}

	// By hand: ordinary at risk [4 3 2], left [2 1 0]; cause-one events
	// [1 0 1] (left [1 0 0]), cause-two events [0 1 0] (left [0 1 0]).
	// Inclusive at risk credits the other cause's earlier events back, the
	// summed numerator is 2/3 and the summed variance 13/18.
	expected := (2.0 / 3.0) / math.Sqrt(13.0/18.0)
	delta := CompetingRiskLogRank(node)
	if math.Abs(delta-expected) > 1e-12 {
		t.Errorf("wrong two-cause statistic %v, expected %v", delta, expected)
	}
}
