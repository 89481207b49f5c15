// SPDX-License-Identifier: MIT
// Package: exobio/lsystem
//
// types.go — bones, limbs, grammar configuration and growth limits.

package lsystem

// Growth limits and parsing constants.
const (
	// MaxIterations bounds rewriting depth; larger values are clamped.
	MaxIterations = 5

	// MaxSegments is the hard cap on bones per limb; the first bones are kept.
	MaxSegments = 5

	// TaperFactor multiplies the thickness after every drawn bone.
	TaperFactor = 0.8

	// LengthJitter is the upper bound of the positive length jitter per bone.
	LengthJitter = 5.0
)

// Grammar symbols.
const (
	SymbolDraw      = 'F'
	SymbolDrawAlt   = 'A'
	SymbolTurnRight = '+'
	SymbolTurnLeft  = '-'
	SymbolPush      = '['
	SymbolPop       = ']'
)

// Bone is one rigid limb segment.
// Angle is in degrees and already includes every turn before the bone in
// the chain; renderers rotate each bone by it relative to the previous one.
type Bone struct {
	Length    float64 `json:"length"`
	Thickness float64 `json:"thickness"`
	Angle     float64 `json:"angle"`
}

// Limb is an ordered chain of bones, proximal (shoulder/hip) to distal.
type Limb []Bone

// Empty reports a zero-length limb, which callers treat as "no limb".
func (l Limb) Empty() bool {
	return len(l) == 0
}

// Config is a complete L-system limb grammar.
//
// Fields:
//   - Axiom            — starting string; may be empty.
//   - Rules            — single-symbol replacements; unmapped symbols copy through.
//   - Iterations       — rewriting passes, clamped to [0, MaxIterations].
//   - AngleDelta       — degrees added or removed by '+' and '-'.
//   - SegmentLength    — base bone length before jitter.
//   - SegmentThickness — thickness of the first bone.
type Config struct {
	Axiom            string
	Rules            map[rune]string
	Iterations       int
	AngleDelta       float64
	SegmentLength    float64
	SegmentThickness float64
}
