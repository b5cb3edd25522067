package splitstat

//MultivariateRegression scores one candidate split of a regression response.
//Each daughter contributes the squared sum of its deviations from the node
//mean, normalized by the daughter size and the node variance.  In the
//multivariate case the caller invokes it once per response and sums; the
//variance normalization keeps one response from overwhelming another.
//
//Both daughters must be non-empty: an empty daughter divides by zero and
//the resulting NaN or Inf marks the split unusable for the caller.
func MultivariateRegression(node NodeData) float64 {
	n := node.validatedLength()

	sumLeft, sumRght := 0.0, 0.0
	leftSize, rghtSize := 0, 0

	for i := 0; i < n; i++ {
		if node.Membership[i] == Left {
			sumLeft += node.Response[i] - node.Mean
			leftSize++
		} else {
			sumRght += node.Response[i] - node.Mean
			rghtSize++
		}
	}

	sumLeftSqr := sumLeft * sumLeft / (float64(leftSize) * node.Variance)
	sumRghtSqr := sumRght * sumRght / (float64(rghtSize) * node.Variance)

	return sumLeftSqr + sumRghtSqr
}
