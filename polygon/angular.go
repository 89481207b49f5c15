package polygon

import (
	"cmp"
	"math"
	"math/rand"
	"slices"

	"github.com/katalvlaran/exobio/seed"
)

// Angular samples PointCount(seedValue, opts) points at evenly spaced angles
// over a full turn around the origin. Each point's X radius and Y radius are
// scaled independently by a factor drawn from [JitterMin, JitterMax) times
// the half-width and half-height. The result is sorted by polar angle so the
// loop is simple whatever the jitter.
//
// Returns nil when width or height is not positive.
// A nil rng uses the default deterministic stream (seed.DefaultSeed).
func Angular(width, height float64, seedValue int, opts Options, rng *rand.Rand) Polygon {
	if !(width > 0) || !(height > 0) {
		return nil
	}
	opts = opts.resolve()
	if rng == nil {
		rng = seed.NewRand(0)
	}

	n := PointCount(seedValue, opts)
	hw, hh := width/2, height/2
	out := make(Polygon, n)

	var theta, rx, ry float64
	for i := 0; i < n; i++ {
		theta = float64(i) / float64(n) * 2 * math.Pi
		rx = hw * seed.Uniform(rng, opts.JitterMin, opts.JitterMax)
		ry = hh * seed.Uniform(rng, opts.JitterMin, opts.JitterMax)
		out[i] = Point{X: math.Cos(theta) * rx, Y: math.Sin(theta) * ry}
	}
	SortByAngle(out)

	return out
}

// SortByAngle orders p in place by atan2(Y, X) ascending, i.e. from just
// above -π round to π. Ties keep their input order.
func SortByAngle(p Polygon) {
	slices.SortStableFunc(p, func(a, b Point) int {
		return cmp.Compare(math.Atan2(a.Y, a.X), math.Atan2(b.Y, b.X))
	})
}
