package creature

import "slices"

// Clone returns a deep copy of p that shares no slice storage with it.
func (p Parameters) Clone() Parameters {
	p.Skull.CraniumFront = slices.Clone(p.Skull.CraniumFront)
	p.Skull.CraniumSide = slices.Clone(p.Skull.CraniumSide)
	p.Skull.JawFront = slices.Clone(p.Skull.JawFront)
	p.Skull.JawSide = slices.Clone(p.Skull.JawSide)
	p.Limbs.Template = slices.Clone(p.Limbs.Template)
	p.Limbs.Mounts = slices.Clone(p.Limbs.Mounts)

	return p
}
