package viz

import (
	"math"

	"github.com/guptarohit/asciigraph"
)

// lossFloor keeps log10 finite for exactly orthonormal results.
const lossFloor = 1e-18

// LossChart plots log10 of orthonormality losses, one point per problem size.
func LossChart(losses []float64, caption string) string {
	if len(losses) == 0 {
		return Subtle.Render("(no data)")
	}
	data := make([]float64, len(losses))
	for i, l := range losses {
		data[i] = math.Log10(math.Max(l, lossFloor))
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
	)
}
