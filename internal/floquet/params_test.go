package floquet_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/floq/internal/floquet"
)

func expectConsistent(p *floquet.Params) {
	GinkgoHelper()
	Expect(p.KDim()).To(Equal(p.Dim() * p.Nz()))
	Expect(p.NzMax()).To(Equal((p.Nz() - 1) / 2))
	Expect(p.NzMin()).To(Equal(-(p.Nz() - 1) / 2))
	Expect(p.NzMin()).To(Equal(-p.NzMax()))
}

var _ = Describe("Params", func() {
	Describe("New", func() {
		It("derives the extended space for dim=10, nz=9", func() {
			p, err := floquet.New(10, 9, 3, 2, 1.5, 4.0, 8)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.KDim()).To(Equal(90))
			Expect(p.NzMax()).To(Equal(4))
			Expect(p.NzMin()).To(Equal(-4))
			Expect(p.Nc()).To(Equal(3))
			Expect(p.Np()).To(Equal(2))
			Expect(p.Omega()).To(Equal(1.5))
			Expect(p.T()).To(Equal(4.0))
			Expect(p.Decimals()).To(Equal(8))
		})

		DescribeTable("keeps derived fields consistent for odd nz",
			func(dim, nz int) {
				p, err := floquet.New(dim, nz, 1, 1, 1, 1, 10)
				Expect(err).NotTo(HaveOccurred())
				Expect(p.Dim()).To(Equal(dim))
				Expect(p.Nz()).To(Equal(nz))
				expectConsistent(p)
			},
			Entry("single zone", 1, 1),
			Entry("qubit, three zones", 2, 3),
			Entry("spin one, five zones", 3, 5),
			Entry("large truncation", 7, 41),
		)

		DescribeTable("rejects even nz with a ConfigurationError",
			func(nz int) {
				p, err := floquet.New(4, nz, 1, 1, 1, 1, 10)
				Expect(p).To(BeNil())
				Expect(err).To(MatchError(floquet.ErrConfiguration))

				var cfgErr *floquet.ConfigurationError
				Expect(errors.As(err, &cfgErr)).To(BeTrue())
				Expect(cfgErr.Param).To(Equal("nz"))
				Expect(cfgErr.Value).To(Equal(nz))
			},
			Entry("nz=8", 8),
			Entry("nz=2", 2),
			Entry("nz=100", 100),
		)

		DescribeTable("rejects out-of-range scalars and names the parameter",
			func(dim, nz, nc, np int, omega, t float64, decimals int, param string) {
				_, err := floquet.New(dim, nz, nc, np, omega, t, decimals)
				var cfgErr *floquet.ConfigurationError
				Expect(errors.As(err, &cfgErr)).To(BeTrue())
				Expect(cfgErr.Param).To(Equal(param))
				Expect(err.Error()).To(ContainSubstring(param))
			},
			Entry("non-positive nz", 2, 0, 1, 1, 1.0, 1.0, 10, "nz"),
			Entry("negative nz", 2, -3, 1, 1, 1.0, 1.0, 10, "nz"),
			Entry("negative dim", -1, 3, 1, 1, 1.0, 1.0, 10, "dim"),
			Entry("negative nc", 2, 3, -1, 1, 1.0, 1.0, 10, "nc"),
			Entry("negative np", 2, 3, 1, -1, 1.0, 1.0, 10, "np"),
			Entry("zero omega", 2, 3, 1, 1, 0.0, 1.0, 10, "omega"),
			Entry("negative t", 2, 3, 1, 1, 1.0, -2.0, 10, "t"),
			Entry("negative decimals", 2, 3, 1, 1, 1.0, 1.0, -1, "decimals"),
		)
	})

	Describe("NewPartial", func() {
		It("uses the documented defaults", func() {
			p, err := floquet.NewPartial()
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Dim()).To(Equal(0))
			Expect(p.Nz()).To(Equal(1))
			Expect(p.Nc()).To(Equal(0))
			Expect(p.Np()).To(Equal(0))
			Expect(p.Omega()).To(Equal(1.0))
			Expect(p.T()).To(Equal(1.0))
			Expect(p.Decimals()).To(Equal(10))
			Expect(p.KDim()).To(Equal(0))
			Expect(p.NzMin()).To(Equal(0))
			Expect(p.NzMax()).To(Equal(0))
		})

		It("applies overrides", func() {
			p, err := floquet.NewPartial(floquet.WithDim(3), floquet.WithNz(7), floquet.WithOmega(2))
			Expect(err).NotTo(HaveOccurred())
			Expect(p.KDim()).To(Equal(21))
			Expect(p.Omega()).To(Equal(2.0))
			expectConsistent(p)
		})

		It("validates like New", func() {
			_, err := floquet.NewPartial(floquet.WithNz(8))
			Expect(err).To(MatchError(floquet.ErrConfiguration))
		})
	})

	Describe("mutation", func() {
		var p *floquet.Params

		BeforeEach(func() {
			var err error
			p, err = floquet.New(10, 9, 1, 1, 1, 1, 10)
			Expect(err).NotTo(HaveOccurred())
		})

		It("recomputes k_dim when dim changes", func() {
			Expect(p.SetDim(4)).To(Succeed())
			Expect(p.KDim()).To(Equal(36))
			Expect(p.NzMax()).To(Equal(4))
			expectConsistent(p)
		})

		It("recomputes k_dim and the zone range when nz changes", func() {
			Expect(p.SetNz(5)).To(Succeed())
			Expect(p.KDim()).To(Equal(50))
			Expect(p.NzMax()).To(Equal(2))
			Expect(p.NzMin()).To(Equal(-2))
			expectConsistent(p)
		})

		It("is consistent after each of two successive mutations", func() {
			Expect(p.SetDim(2)).To(Succeed())
			expectConsistent(p)
			Expect(p.SetNz(3)).To(Succeed())
			expectConsistent(p)
			Expect(p.KDim()).To(Equal(6))
		})

		It("leaves state untouched when nz is even", func() {
			err := p.SetNz(8)
			Expect(err).To(MatchError(floquet.ErrConfiguration))
			Expect(p.Nz()).To(Equal(9))
			Expect(p.KDim()).To(Equal(90))
			expectConsistent(p)
		})

		It("leaves state untouched when dim is negative", func() {
			Expect(p.SetDim(-2)).To(MatchError(floquet.ErrConfiguration))
			Expect(p.Dim()).To(Equal(10))
			Expect(p.KDim()).To(Equal(90))
		})
	})

	Describe("zones", func() {
		It("lists the symmetric Fourier indices", func() {
			p, err := floquet.NewPartial(floquet.WithDim(2), floquet.WithNz(5))
			Expect(err).NotTo(HaveOccurred())
			Expect(p.ZoneIndices()).To(Equal([]int{-2, -1, 0, 1, 2}))
		})

		It("maps Fourier indices to block offsets", func() {
			p, err := floquet.NewPartial(floquet.WithDim(2), floquet.WithNz(5))
			Expect(err).NotTo(HaveOccurred())

			off, ok := p.ZoneOffset(-2)
			Expect(ok).To(BeTrue())
			Expect(off).To(Equal(0))

			off, ok = p.ZoneOffset(2)
			Expect(ok).To(BeTrue())
			Expect(off).To(Equal(8))

			_, ok = p.ZoneOffset(3)
			Expect(ok).To(BeFalse())
		})
	})

	It("reports the drive period", func() {
		p, err := floquet.NewPartial(floquet.WithOmega(2))
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Period()).To(BeNumerically("~", 3.141592653589793, 1e-12))
	})
})
