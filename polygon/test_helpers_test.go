package polygon_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/exobio/polygon"
)

// epsMirror is the float tolerance used when matching mirrored points.
const epsMirror = 1e-9

// constNoise is a flat noise field returning v everywhere.
type constNoise float64

func (c constNoise) Eval2(_, _ float64) float64 { return float64(c) }

// cross returns the z component of (b-a)×(c-a).
func cross(a, b, c polygon.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// segmentsCross reports a proper crossing of segments p1p2 and p3p4.
func segmentsCross(p1, p2, p3, p4 polygon.Point) bool {
	d1 := cross(p3, p4, p1)
	d2 := cross(p3, p4, p2)
	d3 := cross(p1, p2, p3)
	d4 := cross(p1, p2, p4)

	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// requireSimple fails t if any two non-adjacent edges of p cross.
func requireSimple(t *testing.T, p polygon.Polygon) {
	t.Helper()
	n := len(p)
	for i := 0; i < n; i++ {
		a1, a2 := p[i], p[(i+1)%n]
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // shares vertex 0
			}
			b1, b2 := p[j], p[(j+1)%n]
			if segmentsCross(a1, a2, b1, b2) {
				t.Fatalf("edges %d and %d cross: %v-%v / %v-%v", i, j, a1, a2, b1, b2)
			}
		}
	}
}

// hasPoint reports whether p contains q within epsMirror.
func hasPoint(p polygon.Polygon, q polygon.Point) bool {
	for _, pt := range p {
		if math.Abs(pt.X-q.X) <= epsMirror && math.Abs(pt.Y-q.Y) <= epsMirror {
			return true
		}
	}

	return false
}
