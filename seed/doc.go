// Package seed turns seed text into deterministic random streams.
//
// Every stochastic choice made by the generator packages (polygon jitter,
// noise offsets, limb angle and length jitter) draws from a *rand.Rand built
// here, never from a time-based or global source.
//
// Goals:
//   - Determinism: same text ⇒ same base seed ⇒ identical streams on every platform.
//   - Independence: each consumer takes its own stream via Derive, so adding a
//     draw in one component never shifts the numbers another component sees.
//   - Safety: no panics, no logging, no package-level mutable state.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Build one stream per generation
//     call; never share a *rand.Rand across goroutines.
//
// Usage:
//
//	base := seed.FromText("hello world")
//	rng := seed.NewRand(seed.Derive(base, seed.StreamLimb))
package seed
