package splitstat

import (
	"math"
	"testing"
)

func TestDefaultRegistrations(t *testing.T) {
	registered := []struct {
		family Family
		slot   int
	}{
		{Regression, 1},
		{Classification, 1},
		{Survival, 1},
		{CompetingRisk, 1},
		{Regression, 2},
	}
	for _, binding := range registered {
		if _, ok := Lookup(binding.family, binding.slot); !ok {
			t.Errorf("no statistic registered for family %d slot %d", binding.family, binding.slot)
		}
	}

	if _, ok := Lookup(Classification, 3); ok {
		t.Errorf("unexpected statistic in classification slot 3")
	}
}

func TestSumStatistics(t *testing.T) {
	first := NodeData{
		Membership: []Membership{Left, Left, Right, Right},
		Response:   []float64{1, 2, 3, 4},
		Mean:       2.5,
		Variance:   5.0 / 3.0,
	}
	second := NodeData{
		Membership: []Membership{Left, Left, Right, Right},
		Response:   []float64{4, 3, 2, 1},
		Mean:       2.5,
		Variance:   5.0 / 3.0,
	}

	total := SumStatistics(MultivariateRegression, []NodeData{first, second})
	expected := MultivariateRegression(first) + MultivariateRegression(second)
	if math.Abs(total-expected) > 1e-12 {
		t.Errorf("wrong multivariate sum %v, expected %v", total, expected)
	}
}
