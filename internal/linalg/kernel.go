package linalg

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

func vector(a []complex128) cblas128.Vector {
	return cblas128.Vector{N: len(a), Data: a, Inc: 1}
}

// Adjoint returns the conjugate transpose of m.
func Adjoint(m mat.CMatrix) *mat.CDense {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return &mat.CDense{}
	}
	h := mat.NewCDense(c, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			h.Set(j, i, cmplx.Conj(m.At(i, j)))
		}
	}
	return h
}

// InnerProduct returns <a|b> = conj(a)·b.
func InnerProduct(a, b []complex128) complex128 {
	return cblas128.Dotc(vector(a), vector(b))
}

// Norm returns sqrt(<a|a>).
func Norm(a []complex128) float64 {
	// The real part of <a|a> is a sum of squares and never negative, so no
	// clamping is needed. Its imaginary part is rounding noise at most.
	return math.Sqrt(real(InnerProduct(a, a)))
}

// IsClose reports whether |a-b| <= max(relTol*max(|a|, |b|), absTol).
func IsClose(a, b complex128, relTol, absTol float64) bool {
	return cmplx.Abs(a-b) <= math.Max(relTol*math.Max(cmplx.Abs(a), cmplx.Abs(b)), absTol)
}

func clone(m mat.CMatrix) *mat.CDense {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return &mat.CDense{}
	}
	d := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d.Set(i, j, m.At(i, j))
		}
	}
	return d
}

// Row returns a copy of row i of m.
func Row(m mat.CMatrix, i int) []complex128 {
	_, c := m.Dims()
	row := make([]complex128, c)
	for j := range row {
		row[j] = m.At(i, j)
	}
	return row
}

func rows(m mat.CMatrix) [][]complex128 {
	r, _ := m.Dims()
	out := make([][]complex128, r)
	for i := range out {
		out[i] = Row(m, i)
	}
	return out
}
