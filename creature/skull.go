package creature

import (
	"github.com/katalvlaran/exobio/features"
	"github.com/katalvlaran/exobio/polygon"
	"github.com/katalvlaran/exobio/seed"
)

// Skull proportions relative to the feature-derived dimensions.
const (
	eyeCount          = 2
	eyeSpacingRatio   = 0.3
	nostrilYRatio     = 0.1
	jawWidthRatio     = 0.7
	jawGap            = 2.0
	jawHingeRatio     = 0.25
	jawChinRatio      = 0.5
	jawChinDropFactor = 0.5
)

// buildSkull synthesizes both cranium views from independent streams of base
// and computes the jaw outlines directly from the dimensions.
func buildSkull(f features.Features, base int64, opts polygon.Options) Skull {
	cs := f.ComplexitySeed

	front := polygon.Symmetric(f.Width, f.Height, cs, opts,
		polygon.NewNoise(seed.Derive(base, seed.StreamCraniumFront)))
	side := polygon.Angular(f.Depth, f.Height, cs+1, opts,
		seed.NewRand(seed.Derive(base, seed.StreamCraniumSide)))

	jawWidth := f.Width * jawWidthRatio

	return Skull{
		Width:          f.Width,
		Height:         f.Height,
		Depth:          f.Depth,
		CraniumFront:   front,
		CraniumSide:    side,
		EyeCount:       eyeCount,
		EyeSize:        float64(6 + cs%5),
		EyeDepth:       float64(10 + cs%3),
		EyeSpacing:     f.Width * eyeSpacingRatio,
		NostrilSize:    float64(3 + cs%2),
		NostrilYOffset: f.Height * nostrilYRatio,
		JawWidth:       jawWidth,
		JawHeight:      f.JawHeight,
		JawFront:       jawFront(jawWidth, f.Height, f.JawHeight),
		JawSide:        jawSide(f.Depth, f.Height, f.JawHeight),
	}
}

// jawFront is a rectangle hanging jawGap below the cranium:
// top-left, top-right, bottom-right, bottom-left.
func jawFront(width, height, jawHeight float64) polygon.Polygon {
	top := height/2 + jawGap
	bottom := height/2 + jawHeight

	return polygon.Polygon{
		{X: -width / 2, Y: top},
		{X: width / 2, Y: top},
		{X: width / 2, Y: bottom},
		{X: -width / 2, Y: bottom},
	}
}

// jawSide is a wedge from the hinge behind the skull center to a chin that
// juts forward past the cranium: hinge, back-bottom, chin, front-top.
func jawSide(depth, height, jawHeight float64) polygon.Polygon {
	top := height/2 + jawGap
	bottom := height/2 + jawHeight
	hinge := -depth * jawHingeRatio
	front := depth * jawChinRatio

	return polygon.Polygon{
		{X: hinge, Y: top},
		{X: hinge, Y: bottom},
		{X: front + jawHeight*jawChinDropFactor, Y: bottom},
		{X: front, Y: top},
	}
}
