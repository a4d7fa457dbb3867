// Package linalg holds the dense complex linear-algebra primitives shared by
// Floquet computations.
//
// Matrices are gonum [mat.CMatrix] values and vectors are []complex128. All
// functions are pure: inputs are never modified and results are freshly
// allocated.
//
//   - [Adjoint]: conjugate transpose
//   - [InnerProduct], [Norm]: <a|b> = conj(a)·b, conjugate-linear in a
//   - [GramSchmidt]: modified Gram-Schmidt over the rows of a matrix
//   - [IsUnitary]: U†U == I after rounding to the tolerance
//   - [OrthonormalizeBatch]: GramSchmidt over independent sets in parallel
//
// # Conventions
//
// InnerProduct conjugates its FIRST argument. GramSchmidt projections rely on
// it: r_ij = <result_i|q>.
package linalg
