// Package features derives the small integers that drive creature generation
// from a seed sentence.
//
// What it extracts:
//
//	LimbCount       4 if the rune length is even, else 2
//	WordCount       number of whitespace-separated tokens
//	RibSegments     (WordCount mod 5) + 3, always in [3, 7]
//	ComplexitySeed  code point of the 6th rune, or 5 when there is none
//	Width/Height/Depth/JawHeight  bounded skull dimensions
//
// Extraction never fails: empty and one-character texts resolve to safe
// defaults instead of indexing out of range.
//
//	f := features.Extract("Hello world")
//	fmt.Println(f.LimbCount, f.RibSegments) // 4 5
package features
