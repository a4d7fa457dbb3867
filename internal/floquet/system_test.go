package floquet_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/floq/internal/floquet"
)

var _ = Describe("FixedSystem", func() {
	component := func(dim int) mat.CMatrix {
		return mat.NewCDense(dim, dim, nil)
	}

	It("infers dim, nc and np from the tensor shapes", func() {
		hf := []mat.CMatrix{component(3), component(3), component(3)}
		dhf := [][]mat.CMatrix{
			{component(3), component(3), component(3)},
			{component(3), component(3), component(3)},
		}

		sys, err := floquet.NewFixedSystem(hf, dhf, 5, 1.0, 2.0, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(sys.Params.Dim()).To(Equal(3))
		Expect(sys.Params.Nc()).To(Equal(3))
		Expect(sys.Params.Np()).To(Equal(2))
		Expect(sys.Params.KDim()).To(Equal(15))
		Expect(sys.Hf).To(HaveLen(3))
		Expect(sys.Dhf).To(HaveLen(2))
	})

	It("propagates an even nz", func() {
		_, err := floquet.NewFixedSystem([]mat.CMatrix{component(2)}, nil, 4, 1.0, 1.0, 10)
		Expect(err).To(MatchError(floquet.ErrConfiguration))
	})

	It("rejects an empty Hamiltonian", func() {
		_, err := floquet.NewFixedSystem(nil, nil, 3, 1.0, 1.0, 10)
		Expect(err).To(MatchError(floquet.ErrConfiguration))
	})
})
