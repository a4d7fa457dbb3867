package floquet

import (
	"fmt"
	"math"
)

// Defaults used by NewPartial.
const (
	DefaultDim      = 0
	DefaultNz       = 1
	DefaultNc       = 0
	DefaultNp       = 0
	DefaultOmega    = 1.0
	DefaultDuration = 1.0
	DefaultDecimals = 10
)

// Params holds the sizing parameters of one Floquet problem.
//
// KDim always equals Dim*Nz and NzMin always equals -NzMax: SetDim and SetNz
// recompute every derived field before they return.
type Params struct {
	dim int
	nz  int

	nzMin int
	nzMax int
	kDim  int

	nc int
	np int

	omega    float64
	t        float64
	decimals int
}

// New validates the raw problem parameters and derives k_dim and the
// Fourier index range. An even nz is rejected with a *ConfigurationError.
func New(dim, nz, nc, np int, omega, t float64, decimals int) (*Params, error) {
	switch {
	case nc < 0:
		return nil, invalid("nc", nc, "number of Hamiltonian components cannot be negative")
	case np < 0:
		return nil, invalid("np", np, "number of control parameters cannot be negative")
	case !(omega > 0):
		return nil, invalid("omega", omega, "drive frequency must be positive")
	case !(t > 0):
		return nil, invalid("t", t, "control duration must be positive")
	case decimals < 0:
		return nil, invalid("decimals", decimals, "rounding precision cannot be negative")
	}

	p := &Params{
		nz:       DefaultNz,
		nc:       nc,
		np:       np,
		omega:    omega,
		t:        t,
		decimals: decimals,
	}
	if err := p.SetNz(nz); err != nil {
		return nil, err
	}
	if err := p.SetDim(dim); err != nil {
		return nil, err
	}
	return p, nil
}

type partialArgs struct {
	dim, nz, nc, np int
	omega, t        float64
	decimals        int
}

// Option overrides one default of NewPartial.
type Option func(*partialArgs)

func WithDim(dim int) Option           { return func(a *partialArgs) { a.dim = dim } }
func WithNz(nz int) Option             { return func(a *partialArgs) { a.nz = nz } }
func WithComponents(nc int) Option     { return func(a *partialArgs) { a.nc = nc } }
func WithControls(np int) Option       { return func(a *partialArgs) { a.np = np } }
func WithOmega(omega float64) Option   { return func(a *partialArgs) { a.omega = omega } }
func WithDuration(t float64) Option    { return func(a *partialArgs) { a.t = t } }
func WithDecimals(decimals int) Option { return func(a *partialArgs) { a.decimals = decimals } }

// NewPartial builds Params from defaults (dim=0, nz=1, nc=0, np=0, omega=1,
// t=1, decimals=10) overridden by opts. It exists for tests and exploratory
// tooling; problem drivers should call New or NewFixedSystem with every value
// spelled out.
func NewPartial(opts ...Option) (*Params, error) {
	a := partialArgs{
		dim:      DefaultDim,
		nz:       DefaultNz,
		nc:       DefaultNc,
		np:       DefaultNp,
		omega:    DefaultOmega,
		t:        DefaultDuration,
		decimals: DefaultDecimals,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return New(a.dim, a.nz, a.nc, a.np, a.omega, a.t, a.decimals)
}

// SetDim changes the Hilbert space dimension and recomputes k_dim with the
// current nz. On error the receiver is left unchanged.
func (p *Params) SetDim(dim int) error {
	if dim < 0 {
		return invalid("dim", dim, "Hilbert space dimension cannot be negative")
	}
	p.dim = dim
	p.kDim = p.dim * p.nz
	return nil
}

// SetNz changes the number of retained Fourier components and recomputes
// k_dim and the index range with the current dim. Even or non-positive values
// are rejected and leave the receiver unchanged.
//
// SetDim and SetNz are each atomic; a caller changing both observes two
// consistent states, one after each call.
func (p *Params) SetNz(nz int) error {
	if nz < 1 {
		return invalid("nz", nz, "number of Fourier components in the extended space must be positive")
	}
	if nz%2 == 0 {
		return invalid("nz", nz, "number of Fourier components in the extended space cannot be even")
	}
	p.nz = nz
	p.kDim = p.dim * nz
	p.nzMax = (nz - 1) / 2
	p.nzMin = -p.nzMax
	return nil
}

func (p *Params) Dim() int       { return p.dim }
func (p *Params) Nz() int        { return p.nz }
func (p *Params) NzMin() int     { return p.nzMin }
func (p *Params) NzMax() int     { return p.nzMax }
func (p *Params) KDim() int      { return p.kDim }
func (p *Params) Nc() int        { return p.nc }
func (p *Params) Np() int        { return p.np }
func (p *Params) Omega() float64 { return p.omega }
func (p *Params) T() float64     { return p.t }
func (p *Params) Decimals() int  { return p.decimals }

// Period is the drive period 2*pi/omega.
func (p *Params) Period() float64 { return 2 * math.Pi / p.omega }

// ZoneIndices returns the retained Fourier indices NzMin..NzMax in order.
func (p *Params) ZoneIndices() []int {
	idx := make([]int, 0, p.nz)
	for n := p.nzMin; n <= p.nzMax; n++ {
		idx = append(idx, n)
	}
	return idx
}

// ZoneOffset returns the first row of Fourier block n in the extended space.
// ok is false when n lies outside [NzMin, NzMax].
func (p *Params) ZoneOffset(n int) (offset int, ok bool) {
	if n < p.nzMin || n > p.nzMax {
		return 0, false
	}
	return (n - p.nzMin) * p.dim, true
}

func (p *Params) String() string {
	return fmt.Sprintf("dim=%d nz=%d [%d..%d] k_dim=%d nc=%d np=%d omega=%g t=%g decimals=%d",
		p.dim, p.nz, p.nzMin, p.nzMax, p.kDim, p.nc, p.np, p.omega, p.t, p.decimals)
}
