package splitstat

import (
	"gorgonia.org/tensor"
	"math"
)

//newCauseTable allocates a zeroed cause-by-time count table.
func newCauseTable(eventTypeSize, eventTimeSize int) *tensor.Dense {
	return tensor.New(tensor.WithShape(eventTypeSize, eventTimeSize), tensor.Of(tensor.Float64))
}

func tableAt(table *tensor.Dense, j, k int) float64 {
	value, err := table.At(j, k)
	HandleError(err)
	return value.(float64)
}

func tableAdd(table *tensor.Dense, j, k int, delta float64) {
	HandleError(table.SetAt(tableAt(table, j, k)+delta, j, k))
}

//CompetingRiskLogRank scores one candidate split of survival data with
//multiple mutually exclusive event causes.  Per cause it compares observed
//and expected left-daughter events against an event-inclusive risk set, then
//sums the per-cause numerators and variance terms before forming the same
//guarded ratio as the single-event statistic.  With a single cause it
//reduces exactly to SurvivalLogRank.
func CompetingRiskLogRank(node NodeData) float64 {
	eventTimeSize := len(node.EventTime)
	eventTypeSize := node.EventTypeSize

	parentEventCR := newCauseTable(eventTypeSize, eventTimeSize)
	leftEventCR := newCauseTable(eventTypeSize, eventTimeSize)
	parentInclusiveAtRisk := newCauseTable(eventTypeSize, eventTimeSize)
	leftInclusiveAtRisk := newCauseTable(eventTypeSize, eventTimeSize)

	counts := tallyRiskCounts(node, func(cause, timeIndex int, member Membership) {
		tableAdd(parentEventCR, cause-1, timeIndex, 1)
		if member == Left {
			tableAdd(leftEventCR, cause-1, timeIndex, 1)
		}
	})

	// Event-inclusive at-risk counts: an individual claimed at an earlier
	// time by a different cause is credited back into this cause's risk set.
	for k := 0; k < eventTimeSize; k++ {
		for j := 0; j < eventTypeSize; j++ {
			parentInclusive := counts.parentAtRisk[k]
			leftInclusive := counts.leftAtRisk[k]
			for s := 0; s < k; s++ {
				for r := 0; r < eventTypeSize; r++ {
					if j != r {
						parentInclusive += tableAt(parentEventCR, r, s)
						leftInclusive += tableAt(leftEventCR, r, s)
					}
				}
			}
			HandleError(parentInclusiveAtRisk.SetAt(parentInclusive, j, k))
			HandleError(leftInclusiveAtRisk.SetAt(leftInclusive, j, k))
		}
	}

	deltaNum, deltaDen := 0.0, 0.0
	for j := 0; j < eventTypeSize; j++ {
		deltaSubNum := 0.0
		for k := 0; k < eventTimeSize; k++ {
			deltaSubNum += tableAt(leftEventCR, j, k) -
				tableAt(parentEventCR, j, k)*tableAt(leftInclusiveAtRisk, j, k)/tableAt(parentInclusiveAtRisk, j, k)
		}
		deltaNum += deltaSubNum

		deltaSubDen := 0.0
		for k := 0; k < eventTimeSize; k++ {
			// The denominator needs at least two at risk in the ordinary sense.
			if counts.parentAtRisk[k] >= 2 {
				inclusiveShare := tableAt(leftInclusiveAtRisk, j, k) / tableAt(parentInclusiveAtRisk, j, k)
				deltaSubDen += tableAt(parentEventCR, j, k) * inclusiveShare *
					(1.0 - inclusiveShare) *
					(tableAt(parentInclusiveAtRisk, j, k) - tableAt(parentEventCR, j, k)) /
					(tableAt(parentInclusiveAtRisk, j, k) - 1.0)
			}
		}
		deltaDen += deltaSubDen
	}

	return guardedRatio(math.Abs(deltaNum), math.Sqrt(deltaDen))
}
