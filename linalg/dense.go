//Package linalg wraps the dense factorization routines behind the canonical
//correlation statistic: QR factorization, explicit orthogonal-factor
//reconstruction, transposed products and singular values.  It owns the
//backend storage layout so the statistic code never threads layout
//assumptions around.
package linalg

import "gonum.org/v1/gonum/blas/blas64"

//Dense is a row-major rows x cols buffer staged for the LAPACK-backed
//routines.  The application's feature matrices keep observations in columns;
//conversion into observation-major rows happens while a Dense is filled,
//never inside the decomposition calls.
type Dense struct {
	Rows, Cols int
	Stride     int
	Data       []float64
}

//NewDense allocates a zeroed rows x cols buffer.
func NewDense(rows, cols int) *Dense {
	return &Dense{Rows: rows, Cols: cols, Stride: cols, Data: make([]float64, rows*cols)}
}

//At returns the element in row i and column j.
func (d *Dense) At(i, j int) float64 {
	return d.Data[i*d.Stride+j]
}

//Set assigns the element in row i and column j.
func (d *Dense) Set(i, j int, value float64) {
	d.Data[i*d.Stride+j] = value
}

func (d *Dense) general() blas64.General {
	return blas64.General{Rows: d.Rows, Cols: d.Cols, Stride: d.Stride, Data: d.Data}
}
