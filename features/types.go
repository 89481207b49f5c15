package features

// Fixed constants used when the text does not carry enough information.
const (
	// FallbackComplexitySeed is used when the text has fewer than six runes.
	FallbackComplexitySeed = 5

	// PlaceholderWord stands in for the first word of a text with no words.
	PlaceholderWord = "unnamed"

	// complexityIndex is the rune position read for ComplexitySeed.
	complexityIndex = 5
)

// Skull dimension bases and moduli. Every derived dimension stays within
// [base, base+mod), i.e. tens to low hundreds of units.
const (
	widthBase, widthMod         = 50, 50
	heightBase, heightMod       = 60, 60
	depthBase, depthMod         = 80, 100
	jawHeightBase, jawHeightMod = 10, 15

	ribBase, ribMod = 3, 5
)

// Features is the immutable result of Extract.
type Features struct {
	Text           string // normalized (lowercase) seed text
	Length         int    // rune count of Text
	WordCount      int    // whitespace-separated tokens
	FirstWord      string // first token or PlaceholderWord
	FirstRune      rune   // first rune of Text, 0 when empty
	LimbCount      int    // 2 or 4
	RibSegments    int    // 3..7
	ComplexitySeed int    // code point at index 5, or FallbackComplexitySeed

	Width     float64 // skull width (front view)
	Height    float64 // skull height (both views)
	Depth     float64 // skull depth (side view)
	JawHeight float64 // jaw drop below the cranium
}
