package splitstat

import (
	"math"
	"testing"
)

func TestClassificationPerfectSeparation(t *testing.T) {
	node := NodeData{
		Membership: []Membership{Left, Left, Right, Right},
		Response:   []float64{1, 1, 2, 2},
		MaxLevel:   2,
	}

	// Pure daughters push the statistic to its maximum, the node size.
	if delta := MultivariateClassification(node); delta != 4 {
		t.Errorf("expected the node size 4, got %v", delta)
	}
}

func TestClassificationMixedDaughters(t *testing.T) {
	node := NodeData{
		Membership: []Membership{Left, Left, Right, Right},
		Response:   []float64{1, 2, 2, 2},
		MaxLevel:   2,
	}

	// Left counts one of each class, right counts two of class two:
	// (1+1)/2 + 4/2.
	if delta := MultivariateClassification(node); math.Abs(delta-3.0) > 1e-12 {
		t.Errorf("wrong classification statistic %v, expected 3", delta)
	}
}
