package creature

import (
	"context"
	"fmt"

	"github.com/katalvlaran/exobio/features"
	"github.com/katalvlaran/exobio/lsystem"
	"github.com/katalvlaran/exobio/seed"
	"github.com/katalvlaran/exobio/seedfetch"
)

// Fixed torso proportions.
const (
	torsoHeight = 100.0
	torsoWidth  = 10.0
)

// mountTable lists attachment points in fill order: shoulders first, hips
// second. Count 2 uses the shoulders, Count 4 all four.
var mountTable = [...]Mount{
	{X: 0, Y: 0, Rotation: -100},
	{X: 0, Y: 0, Rotation: 100},
	{X: 0, Y: 70, Rotation: -80},
	{X: 0, Y: 70, Rotation: 80},
}

// Generate derives a complete body plan from text.
//
// Steps:
//  1. features.Extract normalizes text and derives counts and dimensions.
//  2. The base seed is seed.FromText(normalized text), unless WithSeed is set.
//  3. The front cranium comes from polygon.Symmetric, the side cranium from
//     polygon.Angular, each on its own derived stream; jaws are computed.
//  4. The body style is classified from the first rune (or forced by
//     WithStyle) and one limb template is grown on the limb stream.
//  5. The template is referenced by LimbCount mounts.
//
// Generate never panics and never returns an invalid limb count or rib count.
func Generate(text string, opts ...Option) Parameters {
	cfg := newConfig(opts...)
	f := features.Extract(text)

	base := seed.FromText(f.Text)
	if cfg.seeded {
		base = cfg.seed
	}

	style := lsystem.Classify(f.FirstRune)
	if cfg.styled {
		style = cfg.style
	}
	limbRng := seed.NewRand(seed.Derive(base, seed.StreamLimb))
	template := lsystem.Grow(lsystem.ConfigFor(style, limbRng), limbRng)

	mounts := make([]Mount, f.LimbCount)
	copy(mounts, mountTable[:])

	torso := Torso{
		Kind:        Ribs,
		Height:      torsoHeight,
		Width:       torsoWidth,
		RibSegments: f.RibSegments,
	}
	if style == lsystem.Spiky {
		torso.Kind = Shell
	}

	return Parameters{
		Name:     fmt.Sprintf("The %s-%d Creature", f.FirstWord, f.LimbCount),
		Sentence: f.Text,
		Colors:   cfg.colors,
		Skull:    buildSkull(f, base, cfg.polygons),
		Torso:    torso,
		Limbs: Limbs{
			Count:    f.LimbCount,
			Style:    style,
			Template: template,
			Mounts:   mounts,
		},
	}
}

// GenerateNew fetches a sentence from src and generates from it.
// Sources fall back on failure, so GenerateNew always returns a body plan;
// a nil src uses seedfetch.Fallback directly. The seed ID is kept in SeedID.
func GenerateNew(ctx context.Context, src seedfetch.Source, opts ...Option) Parameters {
	s := seedfetch.Fallback()
	if src != nil {
		s = src.Fetch(ctx)
	}

	p := Generate(s.Text, opts...)
	p.SeedID = s.ID

	return p
}
