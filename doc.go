// Package exobio turns a sentence into the skeleton of an imaginary
// creature: skull outlines, a rib cage or shell, and L-system limbs.
//
// 🚀 What is exobio?
//
//	A deterministic, renderer-agnostic body-plan generator:
//		• Text features: limb count, rib count, skull proportions
//		• Polygons: jittered angular outlines and mirrored noise outlines
//		• L-systems: three limb grammars selected by the first letter
//		• Composer: one immutable Parameters value per sentence
//		• Seeds: random facts over HTTP, with a fixed fallback sentence
//
// ✨ Why exobio?
//
//   - Same text, same creature: all randomness is seeded from the text hash
//   - Pure generation: no I/O, no globals, safe for concurrent use
//   - Plain data out: JSON-tagged structs any 2D or 3D renderer can draw
//
// Packages:
//
//	seed/       — text hashing and independent random streams
//	features/   — text → counts and dimensions
//	polygon/    — Angular and Symmetric outline synthesis
//	lsystem/    — grammar expansion, limb parsing, body styles
//	creature/   — Generate / GenerateNew, the full body plan
//	seedfetch/  — seed sentence sources (HTTP, static, fallback)
//	cmd/exobio/ — CLI printing body plans as JSON
//
// Quick example:
//
//	p := creature.Generate("hello world")
//	fmt.Println(p.Name) // The hello-2 Creature
//
//	go install github.com/katalvlaran/exobio/cmd/exobio@latest
//	exobio --seed "hello world" --pretty
package exobio
