package creature

import "errors"

// Sentinel errors reported by Parameters.Validate and JSON decoding.
var (
	// ErrDegeneratePolygon indicates an outline with fewer than three points.
	ErrDegeneratePolygon = errors.New("creature: degenerate polygon")
	// ErrLimbCount indicates a limb count outside {2, 4} or a mount mismatch.
	ErrLimbCount = errors.New("creature: invalid limb count")
	// ErrLimbSegments indicates a limb template longer than lsystem.MaxSegments.
	ErrLimbSegments = errors.New("creature: invalid limb template")
	// ErrRibSegments indicates a rib count outside [3, 7].
	ErrRibSegments = errors.New("creature: rib segments out of range")
	// ErrTorsoKind indicates an unknown torso kind name.
	ErrTorsoKind = errors.New("creature: unknown torso kind")
)
