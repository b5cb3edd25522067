package splitstat

//riskCounts holds per-event-time at-risk and event counts for the parent
//node and its left daughter.  Right-daughter counts are parent minus left.
type riskCounts struct {
	parentAtRisk []float64
	leftAtRisk   []float64
	parentEvent  []float64
	leftEvent    []float64
}

//tallyRiskCounts sweeps the node once and fills the at-risk and event counts
//for every distinct event time.  The observations arrive sorted by time in
//increasing order and are parsed in decreasing order against the event-time
//grid.  When onEvent is non-nil it fires for every uncensored event with the
//cause label, the grid index and the daughter membership, which lets the
//competing-risk statistic fill its cause-indexed tables during the same
//sweep.
func tallyRiskCounts(node NodeData, onEvent func(cause, timeIndex int, member Membership)) riskCounts {
	n := node.validatedLength()
	eventTimeSize := len(node.EventTime)

	counts := riskCounts{
		parentAtRisk: make([]float64, eventTimeSize),
		leftAtRisk:   make([]float64, eventTimeSize),
		parentEvent:  make([]float64, eventTimeSize),
		leftEvent:    make([]float64, eventTimeSize),
	}

	i := n - 1
	k := eventTimeSize - 1
	for i >= 0 && k >= 0 {
		if node.EventTime[k] <= node.Time[i] {
			// The member is still at risk at this event time.
			counts.parentAtRisk[k]++
			if node.Membership[i] == Left {
				counts.leftAtRisk[k]++
			}

			// Did the member experience an event here?
			if node.EventTime[k] == node.Time[i] && node.Event[i] > 0 {
				counts.parentEvent[k]++
				if node.Membership[i] == Left {
					counts.leftEvent[k]++
				}
				if onEvent != nil {
					onEvent(int(node.Event[i]), k, node.Membership[i])
				}
			}

			i--
		} else {
			k--
		}
	}

	// Suffix sums turn the "at exactly this time" tallies into the at-risk
	// step function.
	for k = eventTimeSize - 1; k > 0; k-- {
		counts.parentAtRisk[k-1] += counts.parentAtRisk[k]
		counts.leftAtRisk[k-1] += counts.leftAtRisk[k]
	}

	return counts
}
