package features_test

import (
	"fmt"

	"github.com/katalvlaran/exobio/features"
)

// ExampleExtract shows the values derived from the reference sentence.
func ExampleExtract() {
	f := features.Extract("hello world")
	fmt.Println(f.LimbCount, f.WordCount, f.RibSegments, f.FirstWord)
	// Output:
	// 2 2 5 hello
}
