// Package polygon synthesizes closed 2D outlines around the origin from a
// small parameter set: width, height, a complexity seed and a random or
// noise source.
//
// 🚀 Two modes:
//
//	Angular   — n points at evenly spaced angles, each radius jittered
//	            independently in X and Y, then sorted by polar angle so the
//	            loop never crosses itself. Asymmetric; used for side views.
//	Symmetric — one side sampled top-to-bottom, its horizontal extent driven
//	            by smooth 1D noise, mirrored across the vertical axis and
//	            stitched top-center → right → bottom-center → left. Bilateral;
//	            used for front views.
//
// ⚙️ Usage:
//
//	opts := polygon.DefaultOptions()
//	side := polygon.Angular(80, 60, 101, opts, rng)
//	front := polygon.Symmetric(60, 60, 101, opts, polygon.NewNoise(7))
//
// Determinism:
//
//	Both modes are pure functions of their inputs and the supplied source.
//	A nil rng or nil noise falls back to a fixed default stream, never to
//	ambient randomness.
//
// Complexity: O(n log n) for Angular (the angle sort), O(n) for Symmetric,
// where n = BaseCount + (seed mod Complexity).
package polygon
