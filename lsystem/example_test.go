package lsystem_test

import (
	"fmt"

	"github.com/katalvlaran/exobio/lsystem"
)

// ExampleExpand rewrites the wiry grammar once.
func ExampleExpand() {
	cfg := lsystem.Config{Axiom: "F-F", Rules: map[rune]string{'F': "F+F--F"}, Iterations: 1}
	fmt.Println(lsystem.Expand(cfg))
	// Output:
	// F+F--F-F+F--F
}

// ExampleGrow shows the segment cap and the taper on the standard grammar.
func ExampleGrow() {
	cfg := lsystem.Config{
		Axiom:            "FFF",
		Rules:            map[rune]string{'F': "F-F"},
		Iterations:       2,
		AngleDelta:       15,
		SegmentLength:    40,
		SegmentThickness: 12,
	}
	limb := lsystem.Grow(cfg, nil)
	fmt.Println(len(limb))
	for _, b := range limb {
		fmt.Printf("%.2f %.0f\n", b.Thickness, b.Angle)
	}
	// Output:
	// 5
	// 12.00 0
	// 9.60 -15
	// 7.68 -30
	// 6.14 -45
	// 4.92 -45
}
