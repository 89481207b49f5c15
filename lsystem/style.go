// SPDX-License-Identifier: MIT
// Package: exobio/lsystem
//
// style.go — body-style classification and the style → grammar table.

package lsystem

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/exobio/seed"
)

// ErrUnknownStyle indicates a style name outside the closed Style set.
var ErrUnknownStyle = errors.New("lsystem: unknown body style")

// Style is the qualitative body style that selects a limb grammar.
type Style int

const (
	// Standard is the mammalian look: few long, thick, gently bent bones.
	Standard Style = iota
	// Wiry is the tentacle look: many short, thin, curling bones.
	Wiry
	// Spiky is the crab look: sharp alternating turns.
	Spiky
)

// Styles lists every style in declaration order.
var Styles = []Style{Standard, Wiry, Spiky}

// String returns the lowercase style name.
func (s Style) String() string {
	switch s {
	case Standard:
		return "standard"
	case Wiry:
		return "wiry"
	case Spiky:
		return "spiky"
	default:
		return fmt.Sprintf("style(%d)", int(s))
	}
}

// MarshalText encodes the style name.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a style name produced by MarshalText.
func (s *Style) UnmarshalText(b []byte) error {
	for _, st := range Styles {
		if st.String() == string(b) {
			*s = st
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownStyle, b)
}

// Classify maps the first rune of lowercase seed text onto a style:
// 'a'..'e' ⇒ Wiry, 'f'..'j' ⇒ Spiky, anything else (including 0) ⇒ Standard.
func Classify(first rune) Style {
	switch {
	case first >= 'a' && first <= 'e':
		return Wiry
	case first >= 'f' && first <= 'j':
		return Spiky
	default:
		return Standard
	}
}

// preset is one row of the style table. The angle delta is drawn per
// creature as angleBase + U[0, angleJitter).
type preset struct {
	axiom       string
	rules       map[rune]string
	iterations  int
	angleBase   float64
	angleJitter float64
	length      float64
	thickness   float64
}

var presets = map[Style]preset{
	Wiry: {
		axiom:       "F-F",
		rules:       map[rune]string{'F': "F+F--F"},
		iterations:  3,
		angleBase:   25,
		angleJitter: 10,
		length:      10,
		thickness:   5,
	},
	Spiky: {
		axiom:       "A",
		rules:       map[rune]string{'A': "A-F+F"},
		iterations:  4,
		angleBase:   70,
		angleJitter: 10,
		length:      20,
		thickness:   8,
	},
	Standard: {
		axiom:       "FFF",
		rules:       map[rune]string{'F': "F-F"},
		iterations:  2,
		angleBase:   15,
		angleJitter: 5,
		length:      40,
		thickness:   12,
	},
}

// ConfigFor returns the grammar for style with its angle delta drawn from rng.
// Unknown styles fall back to Standard. A nil rng uses the default stream.
// The returned Rules map is a fresh copy owned by the caller.
func ConfigFor(style Style, rng *rand.Rand) Config {
	p, ok := presets[style]
	if !ok {
		p = presets[Standard]
	}
	if rng == nil {
		rng = seed.NewRand(0)
	}

	rules := make(map[rune]string, len(p.rules))
	for k, v := range p.rules {
		rules[k] = v
	}

	return Config{
		Axiom:            p.axiom,
		Rules:            rules,
		Iterations:       p.iterations,
		AngleDelta:       seed.Uniform(rng, p.angleBase, p.angleBase+p.angleJitter),
		SegmentLength:    p.length,
		SegmentThickness: p.thickness,
	}
}
