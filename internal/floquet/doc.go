// Package floquet describes one instance of a periodically driven quantum
// problem and the sizes derived from it.
//
// The package defines:
//
//   - [Params]: validated sizing parameters (dim, nz, k_dim, zone range)
//   - [FixedSystem]: the Fourier components of a Hamiltonian, its control
//     derivatives and the [Params] inferred from their shapes
//   - [ConfigurationError]: rejection of an invalid parameter
//
// # Extended space
//
// Truncating the Fourier expansion to nz components (nz odd, symmetric around
// zero frequency) gives an extended space of dimension k_dim = dim * nz. The
// retained Fourier indices run from NzMin to NzMax:
//
//	p, err := floquet.New(10, 9, 3, 1, 1.0, 2*math.Pi, 10)
//	// p.KDim() == 90, p.NzMin() == -4, p.NzMax() == 4
//
// # Thread Safety
//
// Params values are owned by their creator and are NOT safe for concurrent
// mutation.
package floquet
