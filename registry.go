package splitstat

import "log"

//Family selects the response family a statistic scores.
type Family int

const (
	Regression Family = iota
	Classification
	Survival
	CompetingRisk
)

//SplitStatistic scores one candidate split of a parent node and returns a
//single value; larger is better.  All statistics share this contract so the
//host can dispatch them uniformly.
type SplitStatistic func(NodeData) float64

type familySlot struct {
	family Family
	slot   int
}

var registry = map[familySlot]SplitStatistic{}

//Register binds a statistic to a family and a positive slot index.  In a
//multivariate scenario with mixed factor and real responses the
//classification and regression rules sharing a slot are invoked together,
//so their indices must line up.  Re-registering a pair replaces the
//previous binding.
func Register(family Family, slot int, fn SplitStatistic) {
	if slot < 1 {
		log.Panicf("statistic slot %d is not positive", slot)
	}
	registry[familySlot{family, slot}] = fn
}

//Lookup returns the statistic registered for the family and slot.
func Lookup(family Family, slot int) (SplitStatistic, bool) {
	fn, ok := registry[familySlot{family, slot}]
	return fn, ok
}

func init() {
	Register(Classification, 1, MultivariateClassification)
	Register(Regression, 1, MultivariateRegression)
	Register(Survival, 1, SurvivalLogRank)
	Register(CompetingRisk, 1, CompetingRiskLogRank)

	// The canonical correlation divergence rides in the second regression
	// slot.
	Register(Regression, 2, CanonicalCorrelation)
}

//SumStatistics scores a multivariate response by summing the statistic over
//the per-response nodes.
func SumStatistics(fn SplitStatistic, nodes []NodeData) float64 {
	total := 0.0
	for _, node := range nodes {
		total += fn(node)
	}
	return total
}
