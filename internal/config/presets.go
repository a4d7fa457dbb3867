package config

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

var (
	sigmaX = []complex128{0, 1, 1, 0}
	sigmaY = []complex128{0, -1i, 1i, 0}
	sigmaZ = []complex128{1, 0, 0, -1}
	zero2  = []complex128{0, 0, 0, 0}

	spinX = []complex128{0, 1, 0, 1, 0, 1, 0, 1, 0}
	spinZ = []complex128{1, 0, 0, 0, 0, 0, 0, 0, -1}
	zero3 = []complex128{0, 0, 0, 0, 0, 0, 0, 0, 0}
)

func scaled(op []complex128, c complex128) Matrix {
	n := int(math.Sqrt(float64(len(op))))
	data := make([]complex128, len(op))
	for i, v := range op {
		data[i] = c * v
	}
	return FromDense(mat.NewCDense(n, n, data))
}

// Presets are small reference problems. Components are ordered by Fourier
// index -1, 0, +1.
var Presets = map[string]*Config{
	// H(t) = σz/2 + 0.5 cos(ωt) σx, control: drive amplitude.
	"rabi": {
		Name: "rabi", Nz: 11, Omega: 1.0, Duration: 2 * math.Pi, Decimals: 10, Tolerance: 1e-10,
		Hamiltonian: []Matrix{scaled(sigmaX, 0.25), scaled(sigmaZ, 0.5), scaled(sigmaX, 0.25)},
		Derivatives: [][]Matrix{
			{scaled(sigmaX, 0.5), scaled(zero2, 1), scaled(sigmaX, 0.5)},
		},
	},
	// H(t) = σz/2 + (u1 cos ωt + u2 sin ωt) σx with u1 = u2 = 0.5.
	"qubit_z": {
		Name: "qubit_z", Nz: 15, Omega: 2.0, Duration: math.Pi, Decimals: 10, Tolerance: 1e-10,
		Hamiltonian: []Matrix{scaled(sigmaX, 0.25+0.25i), scaled(sigmaZ, 0.5), scaled(sigmaX, 0.25-0.25i)},
		Derivatives: [][]Matrix{
			{scaled(sigmaX, 0.5), scaled(zero2, 1), scaled(sigmaX, 0.5)},
			{scaled(sigmaX, 0.5i), scaled(zero2, 1), scaled(sigmaX, -0.5i)},
		},
	},
	// Circularly driven qubit, H(t) = σz/2 + 0.2 (cos ωt σx + sin ωt σy).
	"circular": {
		Name: "circular", Nz: 9, Omega: 1.0, Duration: 2 * math.Pi, Decimals: 10, Tolerance: 1e-10,
		Hamiltonian: []Matrix{
			FromDense(mat.NewCDense(2, 2, []complex128{0, 0.2, 0, 0})),
			scaled(sigmaZ, 0.5),
			FromDense(mat.NewCDense(2, 2, []complex128{0, 0, 0.2, 0})),
		},
		Derivatives: [][]Matrix{
			{scaled(sigmaX, 0.5), scaled(zero2, 1), scaled(sigmaX, 0.5)},
			{scaled(sigmaY, 0.5i), scaled(zero2, 1), scaled(sigmaY, -0.5i)},
		},
	},
	// Spin one, H(t) = Sz + 0.3 cos(ωt) Sx.
	"spin_one": {
		Name: "spin_one", Nz: 7, Omega: 1.5, Duration: 2 * math.Pi / 1.5, Decimals: 10, Tolerance: 1e-10,
		Hamiltonian: []Matrix{scaled(spinX, 0.15/math.Sqrt2), scaled(spinZ, 1), scaled(spinX, 0.15/math.Sqrt2)},
		Derivatives: [][]Matrix{
			{scaled(spinX, 0.5/math.Sqrt2), scaled(zero3, 1), scaled(spinX, 0.5/math.Sqrt2)},
		},
	},
}

// GetPreset returns a deep copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	c.Hamiltonian = cloneMatrices(cfg.Hamiltonian)
	if cfg.Derivatives != nil {
		c.Derivatives = make([][]Matrix, len(cfg.Derivatives))
		for p, comps := range cfg.Derivatives {
			c.Derivatives[p] = cloneMatrices(comps)
		}
	}
	return &c
}

func cloneMatrices(ms []Matrix) []Matrix {
	if ms == nil {
		return nil
	}
	out := make([]Matrix, len(ms))
	for k, m := range ms {
		out[k] = make(Matrix, len(m))
		for i, row := range m {
			out[k][i] = append([]string(nil), row...)
		}
	}
	return out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
