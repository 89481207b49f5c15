package lsystem_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/exobio/lsystem"
	"github.com/katalvlaran/exobio/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Expand
//----------------------------------------------------------------------------//

// TestExpand_Rewriting checks simultaneous replacement on known grammars.
func TestExpand_Rewriting(t *testing.T) {
	cases := []struct {
		name string
		cfg  lsystem.Config
		want string
	}{
		{
			name: "WiryOnePass",
			cfg:  lsystem.Config{Axiom: "F-F", Rules: map[rune]string{'F': "F+F--F"}, Iterations: 1},
			want: "F+F--F-F+F--F",
		},
		{
			// pass 1: F-FF-FF-F
			name: "StandardTwoPasses",
			cfg:  lsystem.Config{Axiom: "FFF", Rules: map[rune]string{'F': "F-F"}, Iterations: 2},
			want: "F-F-F-FF-F-F-FF-F-F-F",
		},
		{
			name: "SpikyTwoPasses",
			cfg:  lsystem.Config{Axiom: "A", Rules: map[rune]string{'A': "A-F+F"}, Iterations: 2},
			want: "A-F+F-F+F",
		},
		{
			name: "Simultaneous",
			cfg:  lsystem.Config{Axiom: "AB", Rules: map[rune]string{'A': "B", 'B': "A"}, Iterations: 1},
			want: "BA",
		},
		{
			name: "ZeroIterations",
			cfg:  lsystem.Config{Axiom: "F-F", Rules: map[rune]string{'F': "FF"}, Iterations: 0},
			want: "F-F",
		},
		{
			name: "NegativeIterations",
			cfg:  lsystem.Config{Axiom: "F", Rules: map[rune]string{'F': "FF"}, Iterations: -3},
			want: "F",
		},
		{
			name: "EmptyAxiom",
			cfg:  lsystem.Config{Axiom: "", Rules: map[rune]string{'F': "FF"}, Iterations: 4},
			want: "",
		},
		{
			name: "NilRules",
			cfg:  lsystem.Config{Axiom: "F+[F]", Iterations: 3},
			want: "F+[F]",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, lsystem.Expand(tc.cfg))
		})
	}
}

// TestExpand_IterationClamp verifies Iterations above MaxIterations are clamped.
func TestExpand_IterationClamp(t *testing.T) {
	cfg := lsystem.Config{Axiom: "F", Rules: map[rune]string{'F': "FF"}, Iterations: 40}
	out := lsystem.Expand(cfg)
	assert.Len(t, out, 1<<lsystem.MaxIterations)
}

// TestExpand_Idempotent verifies repeated expansion is byte-identical.
func TestExpand_Idempotent(t *testing.T) {
	for _, st := range lsystem.Styles {
		cfg := lsystem.ConfigFor(st, seed.NewRand(1))
		assert.Equal(t, lsystem.Expand(cfg), lsystem.Expand(cfg), st.String())
	}
}

//----------------------------------------------------------------------------//
// Parse & Grow
//----------------------------------------------------------------------------//

// TestParse_Turtle checks angles, taper, jitter bounds and ignored symbols.
func TestParse_Turtle(t *testing.T) {
	cfg := lsystem.Config{AngleDelta: 30, SegmentLength: 10, SegmentThickness: 10}
	limb := lsystem.Parse("F+A-[F]G]", cfg, seed.NewRand(4))

	require.Len(t, limb, 3)
	wantAngles := []float64{0, 30, 0}
	wantThick := []float64{10, 8, 6.4}
	for i, b := range limb {
		assert.Equal(t, wantAngles[i], b.Angle, "bone %d angle", i)
		assert.InDelta(t, wantThick[i], b.Thickness, 1e-9, "bone %d thickness", i)
		assert.GreaterOrEqual(t, b.Length, 10.0)
		assert.Less(t, b.Length, 10+lsystem.LengthJitter)
	}
}

// TestParse_BranchesKeepChain verifies branch markers do not restore state.
func TestParse_BranchesKeepChain(t *testing.T) {
	cfg := lsystem.Config{AngleDelta: 10, SegmentLength: 1, SegmentThickness: 1}
	branched := lsystem.Parse("F[+F]F", cfg, seed.NewRand(2))
	linear := lsystem.Parse("F+FF", cfg, seed.NewRand(2))
	assert.Equal(t, linear, branched)
	assert.Equal(t, 10.0, branched[2].Angle, "the turn inside the branch persists")
}

// TestGrow_Cap verifies no grammar yields more than MaxSegments bones.
func TestGrow_Cap(t *testing.T) {
	for _, st := range lsystem.Styles {
		for s := int64(1); s <= 10; s++ {
			limb := lsystem.Grow(lsystem.ConfigFor(st, seed.NewRand(s)), seed.NewRand(s))
			require.False(t, limb.Empty(), st.String())
			require.LessOrEqual(t, len(limb), lsystem.MaxSegments, st.String())
		}
	}

	huge := lsystem.Config{
		Axiom:            strings.Repeat("F", 50),
		Rules:            map[rune]string{'F': "FFFF"},
		Iterations:       lsystem.MaxIterations,
		SegmentLength:    1,
		SegmentThickness: 1,
	}
	assert.Len(t, lsystem.Grow(huge, nil), lsystem.MaxSegments)
}

// TestGrow_FirstSegmentsKept verifies truncation keeps generation order.
func TestGrow_FirstSegmentsKept(t *testing.T) {
	cfg := lsystem.ConfigFor(lsystem.Spiky, seed.NewRand(3))
	full := lsystem.Parse(lsystem.Expand(cfg), cfg, seed.NewRand(9))
	grown := lsystem.Grow(cfg, seed.NewRand(9))

	require.Greater(t, len(full), lsystem.MaxSegments)
	assert.Equal(t, lsystem.Limb(full[:lsystem.MaxSegments]), grown)

	// Spiky alternates between straight and a left turn.
	for i, b := range grown {
		if i%2 == 0 {
			assert.Equal(t, 0.0, b.Angle)
		} else {
			assert.Equal(t, -cfg.AngleDelta, b.Angle)
		}
	}
}

// TestGrow_Degenerate covers empty axioms and zero iterations.
func TestGrow_Degenerate(t *testing.T) {
	assert.True(t, lsystem.Grow(lsystem.Config{}, nil).Empty())
	assert.True(t, lsystem.Grow(lsystem.Config{Axiom: "+-[]", Iterations: 2}, nil).Empty())

	one := lsystem.Grow(lsystem.Config{Axiom: "F", SegmentLength: 3, SegmentThickness: 2}, nil)
	require.Len(t, one, 1)
	assert.Equal(t, 2.0, one[0].Thickness)
}

// TestGrow_Deterministic verifies same seeds ⇒ identical limbs.
func TestGrow_Deterministic(t *testing.T) {
	for _, st := range lsystem.Styles {
		a := lsystem.Grow(lsystem.ConfigFor(st, seed.NewRand(5)), seed.NewRand(6))
		b := lsystem.Grow(lsystem.ConfigFor(st, seed.NewRand(5)), seed.NewRand(6))
		assert.Equal(t, a, b, st.String())
	}
}
