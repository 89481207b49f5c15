// Package creature composes a complete skeleton body plan from a seed
// sentence.
//
// 🚀 What is a body plan?
//
//	A set of numbers a renderer can draw without making any decisions of
//	its own: a skull (front and side cranium outlines, jaw outlines, eyes,
//	nostrils), a torso (rib count and proportions) and one limb template
//	mounted at two or four attachment points.
//
// ✨ Pipeline:
//
//	text ─▶ features.Extract ─┬─▶ polygon.Symmetric  (front cranium)
//	                          ├─▶ polygon.Angular    (side cranium)
//	                          ├─▶ jaw formulas       (front/side jaw)
//	                          └─▶ lsystem.Grow       (limb template)
//	                                      │
//	                                      ▼
//	                                 Parameters
//
// ⚙️ Usage:
//
//	p := creature.Generate("Hello world")
//	fmt.Println(p.Name) // The hello-2 Creature
//
//	// or fetch a sentence first; failures fall back to a fixed sentence
//	p = creature.GenerateNew(ctx, seedfetch.NewHTTPSource())
//
// Determinism:
//
//	Every random draw comes from streams derived from a hash of the
//	normalized text (or from WithSeed). Equal text and options ⇒ equal
//	Parameters. Generate performs no I/O, holds no shared state and is safe
//	to call from many goroutines at once.
//
// Errors:
//
//	Generate never fails and never panics on any input, including the empty
//	string. Parameters.Validate flags broken pieces for callers that care;
//	an empty limb template is not one of them, it means "no limb".
package creature
