package splitstat

//MultivariateClassification scores one candidate split of a factor response
//with labels in [1, MaxLevel].  The score sums the squared class counts of
//each daughter divided by the daughter size, an unnormalized Gini-style
//impurity reduction: pure daughters maximize it at the node size.
//
//Every response value must be a positive integer not exceeding MaxLevel.
func MultivariateClassification(node NodeData) float64 {
	n := node.validatedLength()

	leftClassProp := make([]float64, node.MaxLevel+1)
	rghtClassProp := make([]float64, node.MaxLevel+1)
	leftSize, rghtSize := 0, 0

	for i := 0; i < n; i++ {
		if node.Membership[i] == Left {
			leftClassProp[int(node.Response[i])]++
			leftSize++
		} else {
			rghtClassProp[int(node.Response[i])]++
			rghtSize++
		}
	}

	sumLeft, sumRght := 0.0, 0.0
	for p := 1; p <= node.MaxLevel; p++ {
		sumLeft += leftClassProp[p] * leftClassProp[p]
		sumRght += rghtClassProp[p] * rghtClassProp[p]
	}

	return sumLeft/float64(leftSize) + sumRght/float64(rghtSize)
}
