package linalg

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func randomMatrix(r, c int, seed uint64) *mat.CDense {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	m := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, complex(rng.NormFloat64(), rng.NormFloat64()))
		}
	}
	return m
}

func randomVector(n int, seed uint64) []complex128 {
	return Row(randomMatrix(1, n, seed), 0)
}

func TestAdjoint(t *testing.T) {
	m := mat.NewCDense(2, 3, []complex128{
		1 + 2i, 3, 4i,
		-1, 5 - 1i, 0,
	})
	h := Adjoint(m)

	r, c := h.Dims()
	if r != 3 || c != 2 {
		t.Fatalf("Adjoint dims = %dx%d, want 3x2", r, c)
	}
	want := mat.NewCDense(3, 2, []complex128{
		1 - 2i, -1,
		3, 5 + 1i,
		-4i, 0,
	})
	if !mat.CEqual(h, want) {
		t.Errorf("Adjoint = %v, want %v", h, want)
	}
	if m.At(0, 0) != 1+2i {
		t.Error("Adjoint modified its input")
	}
}

func TestAdjoint_RoundTrip(t *testing.T) {
	for n := 1; n <= 6; n++ {
		m := randomMatrix(n, n, uint64(n))
		if !mat.CEqual(Adjoint(Adjoint(m)), m) {
			t.Errorf("n=%d: Adjoint(Adjoint(M)) != M", n)
		}
	}
}

func TestInnerProduct_ConjugatesFirstArgument(t *testing.T) {
	tests := []struct {
		name string
		a, b []complex128
		want complex128
	}{
		{"imaginary left", []complex128{1i}, []complex128{1}, -1i},
		{"imaginary right", []complex128{1}, []complex128{1i}, 1i},
		{"mixed", []complex128{1 + 1i, 2}, []complex128{3, 1i}, 3 - 3i + 2i},
		{"orthogonal", []complex128{1, 0}, []complex128{0, 1}, 0},
		{"empty", []complex128{}, []complex128{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InnerProduct(tt.a, tt.b); got != tt.want {
				t.Errorf("InnerProduct(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestInnerProduct_SelfIsRealNonNegative(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		a := randomVector(7, seed)
		p := InnerProduct(a, a)
		if math.Abs(imag(p)) > 1e-12*real(p) {
			t.Errorf("seed %d: <a|a> has imaginary part %g", seed, imag(p))
		}
		if real(p) < 0 {
			t.Errorf("seed %d: <a|a> = %g is negative", seed, real(p))
		}
		if got, want := Norm(a), math.Sqrt(real(p)); got != want {
			t.Errorf("seed %d: Norm = %g, want %g", seed, got, want)
		}
	}
}

func TestNorm(t *testing.T) {
	tests := []struct {
		v    []complex128
		want float64
	}{
		{[]complex128{3, 4}, 5},
		{[]complex128{3i, 4}, 5},
		{[]complex128{1 + 1i, 1 - 1i}, 2},
		{[]complex128{0, 0}, 0},
	}

	for _, tt := range tests {
		if got := Norm(tt.v); math.Abs(got-tt.want) > 1e-14 {
			t.Errorf("Norm(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestIsClose(t *testing.T) {
	tests := []struct {
		name     string
		a, b     complex128
		rel, abs float64
		want     bool
	}{
		{"equal", 1 + 1i, 1 + 1i, 1e-9, 0, true},
		{"relative", 1e6, 1e6 + 1e-4, 1e-9, 0, true},
		{"relative miss", 1, 1 + 1e-6, 1e-9, 0, false},
		{"absolute near zero", 0, 1e-12, 1e-9, 1e-10, true},
		{"zero without absolute", 0, 1e-12, 1e-9, 0, false},
		{"imaginary offset", 1i, 1.1i, 1e-9, 0.2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsClose(tt.a, tt.b, tt.rel, tt.abs); got != tt.want {
				t.Errorf("IsClose(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRow(t *testing.T) {
	m := mat.NewCDense(2, 2, []complex128{1, 2i, 3, 4})
	row := Row(m, 1)
	if len(row) != 2 || row[0] != 3 || row[1] != 4 {
		t.Errorf("Row = %v, want [3 4]", row)
	}
	row[0] = 99
	if m.At(1, 0) != 3 {
		t.Error("Row did not return an independent copy")
	}
}

func approxEqual(a, b complex128) bool {
	return cmplx.Abs(a-b) < 1e-10
}
