package polygon

import "math"

// Point is a 2D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polygon is an ordered, implicitly closed loop of points: the last point
// connects back to the first.
type Polygon []Point

// MinPoints is the smallest point count forming a valid polygon.
const MinPoints = 3

// Valid reports whether p has at least MinPoints points.
// Renderers skip invalid polygons instead of failing.
func (p Polygon) Valid() bool {
	return len(p) >= MinPoints
}

// Bounds returns the axis-aligned extent of p.
// An empty polygon returns all zeros.
func (p Polygon) Bounds() (minX, minY, maxX, maxY float64) {
	if len(p) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, pt := range p {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}

	return minX, minY, maxX, maxY
}

// Options configures both synthesis modes.
//
// Fields:
//   - BaseCount      — points before the seed-driven extra (≥ MinPoints).
//   - Complexity     — modulus for the extra: n = BaseCount + seed mod Complexity.
//   - JitterMin/Max  — Angular radius band as a fraction of the half extent.
//   - NoiseScale     — Symmetric noise frequency along the vertical axis.
//   - WidthDivisor   — Symmetric base half-width = width / WidthDivisor.
//   - NoiseBase      — Symmetric constant share of the base half-width.
//   - NoiseAmplitude — Symmetric noise share; must stay below NoiseBase so
//     every side point keeps X > 0.
//
// Fields left at zero or set to inconsistent values fall back to the
// matching DefaultOptions value.
type Options struct {
	BaseCount      int
	Complexity     int
	JitterMin      float64
	JitterMax      float64
	NoiseScale     float64
	WidthDivisor   float64
	NoiseBase      float64
	NoiseAmplitude float64
}

// DefaultOptions returns the outline settings used for creature skulls:
// 8..11 points, a 0.8–1.2 jitter band and gentle noise.
func DefaultOptions() Options {
	return Options{
		BaseCount:      8,
		Complexity:     4,
		JitterMin:      0.8,
		JitterMax:      1.2,
		NoiseScale:     0.75,
		WidthDivisor:   1.75,
		NoiseBase:      0.6,
		NoiseAmplitude: 0.3,
	}
}

// resolve replaces unusable fields with defaults.
func (o Options) resolve() Options {
	def := DefaultOptions()
	if o.BaseCount < MinPoints {
		o.BaseCount = def.BaseCount
	}
	if o.Complexity < 1 {
		o.Complexity = 1
	}
	if o.JitterMin <= 0 || o.JitterMax < o.JitterMin {
		o.JitterMin, o.JitterMax = def.JitterMin, def.JitterMax
	}
	if o.NoiseScale <= 0 {
		o.NoiseScale = def.NoiseScale
	}
	if o.WidthDivisor <= 0 {
		o.WidthDivisor = def.WidthDivisor
	}
	if o.NoiseBase <= 0 || o.NoiseAmplitude < 0 || o.NoiseAmplitude >= o.NoiseBase {
		o.NoiseBase, o.NoiseAmplitude = def.NoiseBase, def.NoiseAmplitude
	}

	return o
}

// PointCount returns BaseCount + (seed mod Complexity) after resolving opts.
// Negative seeds use the non-negative remainder.
func PointCount(seed int, opts Options) int {
	opts = opts.resolve()
	extra := seed % opts.Complexity
	if extra < 0 {
		extra += opts.Complexity
	}

	return opts.BaseCount + extra
}
