package creature_test

import (
	"testing"

	"github.com/katalvlaran/exobio/creature"
)

// BenchmarkGenerate measures one full body plan for a typical fact.
func BenchmarkGenerate(b *testing.B) {
	const text = "a snail can sleep for three years"
	for i := 0; i < b.N; i++ {
		_ = creature.Generate(text)
	}
}
