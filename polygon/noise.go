package polygon

import (
	"github.com/katalvlaran/exobio/seed"
	"github.com/ojrac/opensimplex-go"
)

// Noise is a smooth coherent noise field. Symmetric samples it along a line
// (y fixed at 0), which makes it a 1D noise function with values in about [-1, 1].
type Noise interface {
	Eval2(x, y float64) float64
}

// NewNoise returns an OpenSimplex noise field seeded with s.
// Equal seeds give identical fields.
func NewNoise(s int64) Noise {
	return opensimplex.New(s)
}

func defaultNoise() Noise {
	return NewNoise(seed.DefaultSeed)
}
