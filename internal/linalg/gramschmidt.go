package linalg

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

// GramSchmidt orthonormalizes the rows of vecs with the modified Gram-Schmidt
// procedure and returns them as the rows of a new matrix of the same shape.
//
// Row j is projected against the already orthonormalized rows 0..j-1, one at
// a time, and then normalized. The result depends on row order: earlier rows
// keep their direction. A row whose norm is exactly zero after projection
// yields a *LinearDependenceError carrying its index.
func GramSchmidt(vecs mat.CMatrix) (*mat.CDense, error) {
	result := clone(vecs)
	n, _ := vecs.Dims()
	if n == 0 {
		return result, nil
	}

	raw := result.RawCMatrix()
	row := func(i int) []complex128 {
		return raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
	}

	for j := 0; j < n; j++ {
		q := row(j)
		for i := 0; i < j; i++ {
			ri := row(i)
			rij := InnerProduct(ri, q)
			cblas128.Axpy(-rij, vector(ri), vector(q))
		}

		rjj := Norm(q)
		if rjj == 0 {
			return nil, &LinearDependenceError{Index: j}
		}
		scale := complex(rjj, 0)
		for k := range q {
			q[k] /= scale
		}
	}

	return result, nil
}

// IsOrthonormal reports whether every row of m has unit norm and every pair of
// rows is orthogonal, element by element within tol.
func IsOrthonormal(m mat.CMatrix, tol float64) bool {
	vs := rows(m)
	for i := range vs {
		for j := i; j < len(vs); j++ {
			want := complex(0, 0)
			if i == j {
				want = 1
			}
			if !IsClose(InnerProduct(vs[i], vs[j]), want, tol, tol) {
				return false
			}
		}
	}
	return true
}

// OrthonormalityLoss returns max |<r_i|r_j> - δ_ij| over the rows of m.
func OrthonormalityLoss(m mat.CMatrix) float64 {
	vs := rows(m)
	loss := 0.0
	for i := range vs {
		for j := range vs {
			g := InnerProduct(vs[i], vs[j])
			if i == j {
				g -= 1
			}
			loss = math.Max(loss, cmplx.Abs(g))
		}
	}
	return loss
}
