// SPDX-License-Identifier: MIT
// Package: exobio/lsystem
//
// Package lsystem grows jointed limbs from small string-rewriting grammars.
//
// 🚀 Pipeline:
//
//	Config ──Expand──▶ "F+F--F-F+F--F" ──Parse──▶ []Bone ──truncate──▶ Limb (≤ MaxSegments)
//
// Symbols understood by Parse:
//
//	F, A   draw one bone, then taper the thickness
//	+      turn right by AngleDelta
//	-      turn left by AngleDelta
//	[ ]    branch markers: recognized, produce nothing (see Parse)
//
// Body styles:
//
//	Classify maps the first rune of the seed text onto a closed set of
//	styles (Wiry, Spiky, Standard); ConfigFor turns a style into a grammar
//	through a fixed lookup table.
//
// Determinism:
//
//	Expand is a pure function. Parse and ConfigFor draw jitter from the
//	*rand.Rand they are given; equal seeds ⇒ byte-identical limbs.
//
// Bounds:
//
//	Iterations are clamped to MaxIterations and limbs to MaxSegments so no
//	input can make growth unbounded.
package lsystem
