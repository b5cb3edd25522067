package splitstat

import (
	"math"
	"testing"
)

func TestRegressionZeroWhenDaughtersMatchMean(t *testing.T) {
	node := NodeData{
		Membership: []Membership{Left, Right, Left, Right},
		Response:   []float64{2.5, 2.5, 2.5, 2.5},
		Mean:       2.5,
		Variance:   1.25,
	}

	if delta := MultivariateRegression(node); delta != 0 {
		t.Errorf("expected a zero statistic, got %v", delta)
	}
}

func TestRegressionHandExample(t *testing.T) {
	response := []float64{1, 2, 3, 4}
	node := NodeData{
		Membership: []Membership{Left, Left, Right, Right},
		Response:   response,
		Mean:       ResponseMean(response),
		Variance:   ResponseVariance(response),
	}

	// Deviation sums are -2 and 2; each daughter contributes 4/(2*5/3).
	expected := 2.0 * 4.0 / (2.0 * 5.0 / 3.0)
	if delta := MultivariateRegression(node); math.Abs(delta-expected) > 1e-12 {
		t.Errorf("wrong regression statistic %v, expected %v", delta, expected)
	}
}
