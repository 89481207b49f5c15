package polygon

import "math"

// Symmetric builds a bilaterally symmetric outline.
//
// Algorithm:
//  1. m = PointCount(seedValue, opts).
//  2. For i = 1..m-1: y = i/m·height − height/2 and
//     x = width/WidthDivisor · (NoiseBase + noise(y·NoiseScale + seedValue, 0)·NoiseAmplitude),
//     with the noise value clamped to [-1, 1].
//  3. Stitch: top-center (0, −h/2), right side top-to-bottom, bottom-center
//     (0, h/2), mirrored left side bottom-to-top.
//
// The stitch order is what keeps the loop simple; do not reorder.
// The result has 2m points, exactly two of them on X = 0.
//
// Returns nil when width or height is not positive.
// A nil noise uses NewNoise(seed.DefaultSeed).
func Symmetric(width, height float64, seedValue int, opts Options, noise Noise) Polygon {
	if !(width > 0) || !(height > 0) {
		return nil
	}
	opts = opts.resolve()
	if noise == nil {
		noise = defaultNoise()
	}

	m := PointCount(seedValue, opts)
	half := width / opts.WidthDivisor
	offset := float64(seedValue)

	right := make([]Point, 0, m-1)
	var y, v float64
	for i := 1; i < m; i++ {
		y = float64(i)/float64(m)*height - height/2
		v = math.Max(-1, math.Min(1, noise.Eval2(y*opts.NoiseScale+offset, 0)))
		right = append(right, Point{X: half * (opts.NoiseBase + v*opts.NoiseAmplitude), Y: y})
	}

	out := make(Polygon, 0, 2*m)
	out = append(out, Point{X: 0, Y: -height / 2})
	out = append(out, right...)
	out = append(out, Point{X: 0, Y: height / 2})
	for i := len(right) - 1; i >= 0; i-- {
		out = append(out, Point{X: -right[i].X, Y: right[i].Y})
	}

	return out
}
