//Package splitstat computes scalar split-quality statistics for candidate
//binary partitions inside decision-tree induction.  The tree-growing caller
//tags every observation of a parent node LEFT or RIGHT, invokes one of the
//registered statistics and compares the returned values across candidate
//splits.
package splitstat

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"log"
	"sort"
)

//Membership marks which daughter an observation falls into under the
//candidate split.
type Membership int8

const (
	Left Membership = iota + 1
	Right
)

//NodeData carries everything a split statistic may need for one parent node.
//The caller fills only the fields its response family uses and leaves the
//remaining slices nil.  For the survival families the observations must
//arrive sorted by Time in increasing order, EventTime must be strictly
//increasing and every uncensored death time must appear in it.
type NodeData struct {
	Membership []Membership

	Time  []float64 // survival families only
	Event []float64 // cause labels, zero for censored

	EventTypeSize int // distinct causes, one for ordinary survival
	EventTime     []float64

	Response []float64 // regression and classification only
	Mean     float64
	Variance float64
	MaxLevel int

	Feature *mat.Dense // featureCount x n, observations in columns
}

//validatedLength checks every per-observation array against the membership
//vector and returns the node size.
func (node NodeData) validatedLength() int {
	n := len(node.Membership)
	if node.Time != nil && len(node.Time) != n {
		log.Panicf("the time length %d is not equal to the node size %d", len(node.Time), n)
	}
	if node.Event != nil && len(node.Event) != n {
		log.Panicf("the event length %d is not equal to the node size %d", len(node.Event), n)
	}
	if node.Response != nil && len(node.Response) != n {
		log.Panicf("the response length %d is not equal to the node size %d", len(node.Response), n)
	}
	if node.Feature != nil {
		if _, w := node.Feature.Dims(); w != n {
			log.Panicf("the feature width %d is not equal to the node size %d", w, n)
		}
	}
	return n
}

//daughterSizes counts the members of each daughter.
func (node NodeData) daughterSizes() (leftSize, rghtSize int) {
	for _, member := range node.Membership {
		if member == Left {
			leftSize++
		} else {
			rghtSize++
		}
	}
	return
}

//ResponseMean returns the convenience mean the regression statistic expects.
func ResponseMean(response []float64) float64 {
	return stat.Mean(response, nil)
}

//ResponseVariance returns the convenience variance the regression statistic
//expects.
func ResponseVariance(response []float64) float64 {
	return stat.Variance(response, nil)
}

//MaxClassLevel returns the largest factor label in a classification
//response.
func MaxClassLevel(response []float64) int {
	maxLevel := 0
	for _, value := range response {
		if int(value) > maxLevel {
			maxLevel = int(value)
		}
	}
	return maxLevel
}

//EventTypeCount returns the largest cause label among the uncensored
//observations.  Cause labels are expected to be contiguous from one, so the
//largest label is also the cause count.
func EventTypeCount(event []float64) int {
	maxCause := 0
	for _, cause := range event {
		if int(cause) > maxCause {
			maxCause = int(cause)
		}
	}
	return maxCause
}

//EventTimeGrid returns the sorted distinct times at which an uncensored
//event occurs.  Censored observations contribute no grid point.
func EventTimeGrid(time, event []float64) []float64 {
	grid := make([]float64, 0, len(time))
	for i, t := range time {
		if event[i] > 0 {
			grid = append(grid, t)
		}
	}
	sort.Float64s(grid)

	distinct := grid[:0]
	for _, t := range grid {
		if len(distinct) == 0 || distinct[len(distinct)-1] != t {
			distinct = append(distinct, t)
		}
	}
	return distinct
}
