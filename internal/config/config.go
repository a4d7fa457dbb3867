package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/floq/internal/floquet"
	"github.com/san-kum/floq/internal/linalg"
)

const (
	DefaultNz       = 11
	DefaultOmega    = 1.0
	DefaultDuration = 1.0
	DefaultDecimals = 10
)

var (
	ErrEmptyMatrix  = errors.New("config: matrix has no entries")
	ErrRaggedMatrix = errors.New("config: matrix rows differ in length")
)

// Matrix is a dense complex matrix written as rows of complex literals
// ("1", "0.5i", "1-2i", "(3+4i)").
type Matrix [][]string

// Config describes one Floquet problem. Hamiltonian holds the nc Fourier
// components ordered from the most negative index to the most positive one;
// Derivatives holds one such list per control parameter.
type Config struct {
	Name        string     `yaml:"name"`
	Nz          int        `yaml:"nz"`
	Omega       float64    `yaml:"omega"`
	Duration    float64    `yaml:"t"`
	Decimals    int        `yaml:"decimals"`
	Tolerance   float64    `yaml:"tolerance"`
	Hamiltonian []Matrix   `yaml:"hamiltonian"`
	Derivatives [][]Matrix `yaml:"derivatives"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:      "custom",
		Nz:        DefaultNz,
		Omega:     DefaultOmega,
		Duration:  DefaultDuration,
		Decimals:  DefaultDecimals,
		Tolerance: linalg.DefaultTolerance,
	}
}

// CheckTolerance is the tolerance for unitarity and orthonormality checks on
// this problem, falling back to linalg.DefaultTolerance when unset.
func (c *Config) CheckTolerance() float64 {
	if c.Tolerance > 0 {
		return c.Tolerance
	}
	return linalg.DefaultTolerance
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// System parses the Hamiltonian tensors and builds the FixedSystem they
// describe. Parameter validation errors from the floquet package are returned
// unchanged.
func (c *Config) System() (*floquet.FixedSystem, error) {
	hf := make([]mat.CMatrix, len(c.Hamiltonian))
	for k, m := range c.Hamiltonian {
		d, err := m.Dense()
		if err != nil {
			return nil, fmt.Errorf("hamiltonian[%d]: %w", k, err)
		}
		hf[k] = d
	}

	dhf := make([][]mat.CMatrix, len(c.Derivatives))
	for p, comps := range c.Derivatives {
		dhf[p] = make([]mat.CMatrix, len(comps))
		for k, m := range comps {
			d, err := m.Dense()
			if err != nil {
				return nil, fmt.Errorf("derivatives[%d][%d]: %w", p, k, err)
			}
			dhf[p][k] = d
		}
	}

	return floquet.NewFixedSystem(hf, dhf, c.Nz, c.Omega, c.Duration, c.Decimals)
}

// Dense parses m into a gonum matrix.
func (m Matrix) Dense() (*mat.CDense, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	rows, cols := len(m), len(m[0])
	d := mat.NewCDense(rows, cols, nil)
	for i, row := range m {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), cols, ErrRaggedMatrix)
		}
		for j, cell := range row {
			v, err := strconv.ParseComplex(strings.TrimSpace(cell), 128)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i, j, err)
			}
			d.Set(i, j, v)
		}
	}
	return d, nil
}

// FromDense formats a matrix as complex literals.
func FromDense(d mat.CMatrix) Matrix {
	rows, cols := d.Dims()
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]string, cols)
		for j := range m[i] {
			m[i][j] = formatComplex(d.At(i, j))
		}
	}
	return m
}

func formatComplex(v complex128) string {
	if imag(v) == 0 {
		return strconv.FormatFloat(real(v), 'g', -1, 64)
	}
	return strconv.FormatComplex(v, 'g', -1, 128)
}
