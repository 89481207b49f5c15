// SPDX-License-Identifier: MIT
// Package: exobio/lsystem
//
// parse.go — turtle walk from an expanded string to bones.

package lsystem

import (
	"math/rand"

	"github.com/katalvlaran/exobio/seed"
)

// Parse walks expanded left to right with a cumulative angle (starting at 0)
// and a tapering thickness (starting at cfg.SegmentThickness).
//
//   - 'F' / 'A' append a Bone{SegmentLength + U[0, LengthJitter), thickness, angle}
//     and multiply thickness by TaperFactor.
//   - '+' / '-' add / subtract cfg.AngleDelta.
//   - '[' / ']' are branch markers. The walk is a single chain: markers are
//     recognized and their nesting depth tracked, but they neither emit bones
//     nor save or restore the angle and thickness. A tree-shaped limb would
//     push and pop that state here.
//   - Any other symbol is skipped.
//
// A nil rng uses the default deterministic stream. Parse does not truncate;
// see Grow.
func Parse(expanded string, cfg Config, rng *rand.Rand) Limb {
	if rng == nil {
		rng = seed.NewRand(0)
	}

	var (
		bones     Limb
		angle     float64
		thickness = cfg.SegmentThickness
		depth     int
	)
	for _, r := range expanded {
		switch r {
		case SymbolDraw, SymbolDrawAlt:
			bones = append(bones, Bone{
				Length:    cfg.SegmentLength + seed.Uniform(rng, 0, LengthJitter),
				Thickness: thickness,
				Angle:     angle,
			})
			thickness *= TaperFactor
		case SymbolTurnRight:
			angle += cfg.AngleDelta
		case SymbolTurnLeft:
			angle -= cfg.AngleDelta
		case SymbolPush:
			depth++
		case SymbolPop:
			if depth > 0 {
				depth--
			}
		}
	}

	return bones
}

// Grow expands cfg, parses the result and keeps at most MaxSegments bones.
func Grow(cfg Config, rng *rand.Rand) Limb {
	bones := Parse(Expand(cfg), cfg, rng)
	if len(bones) > MaxSegments {
		bones = bones[:MaxSegments:MaxSegments]
	}

	return bones
}
