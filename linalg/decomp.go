package linalg

import (
	"errors"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
	lapackgonum "gonum.org/v1/gonum/lapack/gonum"
)

//ErrNotConverged reports that an iterative decomposition did not fully
//converge.  Values returned alongside it are the backend's best effort and
//must be treated as degraded estimates.
var ErrNotConverged = errors.New("linalg: decomposition did not converge")

var impl = lapackgonum.Implementation{}

//workspace runs the mandatory size probe for a LAPACK routine and allocates
//the workspace it reports.  The probe repeats before every call: a size
//carried over from an earlier factorization is not valid for the next one.
func workspace(query func(work []float64, lwork int)) []float64 {
	probe := make([]float64, 1)
	query(probe, -1)
	return make([]float64, int(probe[0]))
}

//QRFactorize overwrites the buffer with its compact QR factorization and
//returns the scalar reflector factors, one per min(rows, cols).
func (d *Dense) QRFactorize() []float64 {
	k := d.Rows
	if d.Cols < k {
		k = d.Cols
	}
	tau := make([]float64, k)
	work := workspace(func(work []float64, lwork int) {
		impl.Dgeqrf(d.Rows, d.Cols, d.Data, d.Stride, tau, work, lwork)
	})
	impl.Dgeqrf(d.Rows, d.Cols, d.Data, d.Stride, tau, work, len(work))
	return tau
}

//FormOrthogonalFactor overwrites a factorized buffer with the explicit
//orthogonal factor and returns a view narrowed to its len(tau) leading
//columns.
func (d *Dense) FormOrthogonalFactor(tau []float64) *Dense {
	k := len(tau)
	work := workspace(func(work []float64, lwork int) {
		impl.Dorgqr(d.Rows, k, k, d.Data, d.Stride, tau, work, lwork)
	})
	impl.Dorgqr(d.Rows, k, k, d.Data, d.Stride, tau, work, len(work))
	return &Dense{Rows: d.Rows, Cols: k, Stride: d.Stride, Data: d.Data}
}

//MulTransposed returns a' * b for two buffers with the same row count.
func MulTransposed(a, b *Dense) *Dense {
	product := NewDense(a.Cols, b.Cols)
	blas64.Gemm(blas.Trans, blas.NoTrans, 1.0, a.general(), b.general(), 0.0, product.general())
	return product
}

//SingularValues computes the singular values of the buffer in decreasing
//order, destroying its contents.  A convergence failure surfaces as
//ErrNotConverged next to the best-effort values instead of aborting.
func (d *Dense) SingularValues() ([]float64, error) {
	minDim := d.Rows
	if d.Cols < minDim {
		minDim = d.Cols
	}
	s := make([]float64, minDim)
	work := workspace(func(work []float64, lwork int) {
		impl.Dgesvd(lapack.SVDNone, lapack.SVDNone, d.Rows, d.Cols, d.Data, d.Stride, s, nil, 1, nil, 1, work, lwork)
	})
	ok := impl.Dgesvd(lapack.SVDNone, lapack.SVDNone, d.Rows, d.Cols, d.Data, d.Stride, s, nil, 1, nil, 1, work, len(work))
	if !ok {
		return s, ErrNotConverged
	}
	return s, nil
}
