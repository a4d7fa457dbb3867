package linalg

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

// DefaultTolerance is the tolerance callers pass to IsUnitary when they have
// no problem-specific one.
const DefaultTolerance = 1e-10

// IsUnitary reports whether u†u equals the identity within tol. A tol that is
// not positive and finite, or whose reciprocal overflows, selects
// DefaultTolerance.
//
// The product is rounded to floor(log10(1/tol))-1 decimals before the
// elementwise comparison |p_ij - δ_ij| <= tol + tol*|δ_ij|; without the
// rounding, accumulated error in large products gives false negatives near the
// tolerance boundary. A non-square u is never unitary.
func IsUnitary(u mat.CMatrix, tol float64) bool {
	if !validTolerance(tol) {
		tol = DefaultTolerance
	}
	n, c := u.Dims()
	if n != c {
		return false
	}
	if n == 0 {
		return true
	}

	a := clone(u).RawCMatrix()
	p := mat.NewCDense(n, n, nil)
	cblas128.Gemm(blas.ConjTrans, blas.NoTrans, 1, a, a, 0, p.RawCMatrix())

	digits := roundingDigits(tol)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := complex(0, 0)
			if i == j {
				want = 1
			}
			got := roundComplex(p.At(i, j), digits)
			if cmplx.Abs(got-want) > tol+tol*cmplx.Abs(want) {
				return false
			}
		}
	}
	return true
}

func validTolerance(tol float64) bool {
	return tol > 0 && !math.IsInf(tol, 0) && !math.IsInf(1/tol, 0)
}

// roundingDigits returns floor(log10(1/tol)) - 1. Exact powers of ten map to
// their exponent even when Log10 is off in the last bit.
func roundingDigits(tol float64) int {
	l := math.Log10(1 / tol)
	if r := math.Round(l); math.Abs(l-r) < 1e-9 {
		l = r
	}
	return int(math.Floor(l)) - 1
}

// roundComplex rounds the real and imaginary parts half to even.
func roundComplex(z complex128, digits int) complex128 {
	return complex(roundTo(real(z), digits), roundTo(imag(z), digits))
}

func roundTo(x float64, digits int) float64 {
	scale := math.Pow10(digits)
	return math.RoundToEven(x*scale) / scale
}
