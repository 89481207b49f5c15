package creature

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/exobio/lsystem"
)

// Rib segment bounds produced by Generate.
const (
	MinRibSegments = 3
	MaxRibSegments = 7
)

// Validate reports every invariant p violates, joined; nil means p is fully
// drawable. Generate never fails, so Validate exists for callers and
// renderers that want to know which parts to skip.
//
// An empty limb template is valid: it means "no limb", and renderers draw
// nothing at the mounts.
func (p Parameters) Validate() error {
	var errs []error

	outlines := []struct {
		name string
		ok   bool
	}{
		{"cranium front", p.Skull.CraniumFront.Valid()},
		{"cranium side", p.Skull.CraniumSide.Valid()},
		{"jaw front", p.Skull.JawFront.Valid()},
		{"jaw side", p.Skull.JawSide.Valid()},
	}
	for _, o := range outlines {
		if !o.ok {
			errs = append(errs, fmt.Errorf("%s: %w", o.name, ErrDegeneratePolygon))
		}
	}

	if p.Limbs.Count != 2 && p.Limbs.Count != 4 {
		errs = append(errs, fmt.Errorf("count %d: %w", p.Limbs.Count, ErrLimbCount))
	}
	if len(p.Limbs.Mounts) != p.Limbs.Count {
		errs = append(errs, fmt.Errorf("%d mounts for %d limbs: %w", len(p.Limbs.Mounts), p.Limbs.Count, ErrLimbCount))
	}
	if len(p.Limbs.Template) > lsystem.MaxSegments {
		errs = append(errs, fmt.Errorf("%d bones: %w", len(p.Limbs.Template), ErrLimbSegments))
	}
	if p.Torso.RibSegments < MinRibSegments || p.Torso.RibSegments > MaxRibSegments {
		errs = append(errs, fmt.Errorf("%d ribs: %w", p.Torso.RibSegments, ErrRibSegments))
	}

	return errors.Join(errs...)
}
