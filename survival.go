package splitstat

import "math"

//SurvivalLogRank scores one candidate split of single-event survival data
//with a log-rank statistic: the absolute difference between observed and
//expected left-daughter events, summed over the distinct event times and
//divided by the square root of the hypergeometric variance.
func SurvivalLogRank(node NodeData) float64 {
	counts := tallyRiskCounts(node, nil)

	deltaNum, deltaDen := 0.0, 0.0
	for k := range node.EventTime {
		deltaNum += counts.leftEvent[k] - counts.leftAtRisk[k]*counts.parentEvent[k]/counts.parentAtRisk[k]

		// The denominator needs at least two at risk.
		if counts.parentAtRisk[k] >= 2 {
			leftShare := counts.leftAtRisk[k] / counts.parentAtRisk[k]
			deltaDen += leftShare * (1.0 - leftShare) *
				(counts.parentAtRisk[k] - counts.parentEvent[k]) / (counts.parentAtRisk[k] - 1.0) *
				counts.parentEvent[k]
		}
	}

	return guardedRatio(math.Abs(deltaNum), math.Sqrt(deltaDen))
}

//guardedRatio divides the absolute numerator by the denominator, collapsing
//the case where both are below 1e-9 to an exact zero so a degenerate node
//never turns into NaN.
func guardedRatio(num, den float64) float64 {
	if den <= 1.0e-9 && num <= 1.0e-9 {
		return 0.0
	}
	return num / den
}
