package splitstat

import (
	"errors"
	"github.com/rfutils/splitstat/linalg"
	"math"
)

//CanonicalCorrelation scores one candidate split by how far apart the two
//daughters' leading canonical correlations sit.  The feature matrix carries
//two variable blocks: the last feature row encodes dimX, the width of the X
//block, and the remaining featureCount-dimX-1 rows form the Y block.  Each
//daughter's blocks are orthogonalized by QR and the leading singular value
//of Qx' * Qy is that daughter's first canonical correlation.  The returned
//value is sqrt(leftSize*rghtSize) times the absolute correlation difference.
//
//The statistic is zero whenever either block is empty or either daughter has
//no more observations than dimX+dimY, which leaves no degrees of freedom for
//the correlation.
func CanonicalCorrelation(node NodeData) float64 {
	node.validatedLength()
	if node.Feature == nil {
		return 0.0
	}
	featureCount, _ := node.Feature.Dims()

	dimX := int(node.Feature.At(featureCount-1, 0))
	dimY := featureCount - dimX - 1
	if dimX <= 0 || dimY <= 0 {
		return 0.0
	}

	leftSize, rghtSize := node.daughterSizes()
	if leftSize <= dimX+dimY || rghtSize <= dimX+dimY {
		return 0.0
	}

	corrLeft := daughterCanonicalCorrelation(node, Left, leftSize, dimX, dimY)
	corrRght := daughterCanonicalCorrelation(node, Right, rghtSize, dimX, dimY)

	return math.Sqrt(float64(leftSize)*float64(rghtSize)) * math.Abs(corrLeft-corrRght)
}

//daughterCanonicalCorrelation stages one daughter's X and Y blocks into
//backend buffers, orthogonalizes both and extracts the leading singular
//value of the cross-product.  When the singular value decomposition fails to
//converge, the largest best-effort value stands in for the correlation; it
//is a documented degraded estimate, not a convergence guarantee.
func daughterCanonicalCorrelation(node NodeData, member Membership, size, dimX, dimY int) float64 {
	blockX := linalg.NewDense(size, dimX)
	blockY := linalg.NewDense(size, dimY)

	// The feature matrix keeps observations in columns; the backend wants
	// them in rows.
	row := 0
	for i := range node.Membership {
		if node.Membership[i] != member {
			continue
		}
		for col := 0; col < dimX; col++ {
			blockX.Set(row, col, node.Feature.At(col, i))
		}
		for col := 0; col < dimY; col++ {
			blockY.Set(row, col, node.Feature.At(dimX+col, i))
		}
		row++
	}

	qx := blockX.FormOrthogonalFactor(blockX.QRFactorize())
	qy := blockY.FormOrthogonalFactor(blockY.QRFactorize())

	values, err := linalg.MulTransposed(qx, qy).SingularValues()
	corr := values[0]
	if errors.Is(err, linalg.ErrNotConverged) {
		for _, value := range values[1:] {
			if value > corr {
				corr = value
			}
		}
	}
	return corr
}
