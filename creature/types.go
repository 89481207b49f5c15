package creature

import (
	"fmt"

	"github.com/katalvlaran/exobio/lsystem"
	"github.com/katalvlaran/exobio/polygon"
)

// ColorScheme holds the renderer colors as CSS hex strings.
type ColorScheme struct {
	Stroke string `json:"stroke"`
	Fill   string `json:"fill"`
	Hole   string `json:"hole"`
}

// DefaultColors is bone on a dark outline with near-black eye sockets.
var DefaultColors = ColorScheme{
	Stroke: "#3b2f2f",
	Fill:   "#ddcab3",
	Hole:   "#1a1a1a",
}

// Skull describes the head in two independent views of the same dimensions.
type Skull struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`

	CraniumFront polygon.Polygon `json:"craniumFront"`
	CraniumSide  polygon.Polygon `json:"craniumSide"`

	EyeCount       int     `json:"eyeCount"`
	EyeSize        float64 `json:"eyeSize"`
	EyeDepth       float64 `json:"eyeDepth"`
	EyeSpacing     float64 `json:"eyeSpacing"`
	NostrilSize    float64 `json:"nostrilSize"`
	NostrilYOffset float64 `json:"nostrilYOffset"`

	JawWidth  float64         `json:"jawWidth"`
	JawHeight float64         `json:"jawHeight"`
	JawFront  polygon.Polygon `json:"jawFront"`
	JawSide   polygon.Polygon `json:"jawSide"`
}

// TorsoKind selects how the torso is drawn.
type TorsoKind int

const (
	// Ribs is a spine with RibSegments rib pairs.
	Ribs TorsoKind = iota
	// Shell is a carapace split into RibSegments plates.
	Shell
)

// String returns the lowercase kind name.
func (k TorsoKind) String() string {
	switch k {
	case Ribs:
		return "ribs"
	case Shell:
		return "shell"
	default:
		return fmt.Sprintf("torso(%d)", int(k))
	}
}

// MarshalText encodes the kind name.
func (k TorsoKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name produced by MarshalText.
func (k *TorsoKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "ribs":
		*k = Ribs
	case "shell":
		*k = Shell
	default:
		return fmt.Errorf("%w: %q", ErrTorsoKind, b)
	}

	return nil
}

// Torso holds the torso proportions.
type Torso struct {
	Kind        TorsoKind `json:"kind"`
	Height      float64   `json:"height"`
	Width       float64   `json:"width"`
	RibSegments int       `json:"ribSegments"`
}

// Mount places the shared limb template on the torso: translate to (X, Y),
// then rotate by Rotation degrees before walking the bones.
type Mount struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
}

// Limbs is one limb template referenced by Count mounts.
// Template is shared by every mount and must be treated as read-only.
type Limbs struct {
	Count    int           `json:"count"`
	Style    lsystem.Style `json:"style"`
	Template lsystem.Limb  `json:"template"`
	Mounts   []Mount       `json:"mounts"`
}

// Parameters is the complete body plan for one creature.
type Parameters struct {
	Name     string      `json:"name"`
	Sentence string      `json:"sentence"`
	SeedID   string      `json:"seedId,omitempty"`
	Colors   ColorScheme `json:"colors"`
	Skull    Skull       `json:"skull"`
	Torso    Torso       `json:"torso"`
	Limbs    Limbs       `json:"limbs"`
}
