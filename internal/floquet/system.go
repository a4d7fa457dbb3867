package floquet

import "gonum.org/v1/gonum/mat"

// FixedSystem is one concrete Floquet problem: the Fourier components of the
// Hamiltonian, their derivatives with respect to each control and the
// parameters inferred from them.
//
// Hf has shape (nc, dim, dim) and Dhf has shape (np, nc, dim, dim). The
// components are consumed as given; Hermiticity and per-slice shapes are the
// caller's responsibility.
type FixedSystem struct {
	Hf     []mat.CMatrix
	Dhf    [][]mat.CMatrix
	Params *Params
}

// NewFixedSystem infers dim from the first Hamiltonian component, nc from
// len(hf) and np from len(dhf), then validates them together with nz, omega,
// t and decimals via New.
func NewFixedSystem(hf []mat.CMatrix, dhf [][]mat.CMatrix, nz int, omega, t float64, decimals int) (*FixedSystem, error) {
	if len(hf) == 0 || hf[0] == nil {
		return nil, invalid("hf", len(hf), "at least one Fourier component is needed to infer dim")
	}
	dim, _ := hf[0].Dims()

	params, err := New(dim, nz, len(hf), len(dhf), omega, t, decimals)
	if err != nil {
		return nil, err
	}

	return &FixedSystem{
		Hf:     hf,
		Dhf:    dhf,
		Params: params,
	}, nil
}
