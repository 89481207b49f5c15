package features

import (
	"strings"
	"unicode/utf8"
)

// Normalize returns the canonical form of seed text: lowercase.
func Normalize(text string) string {
	return strings.ToLower(text)
}

// Extract normalizes text and derives every generation input from it.
// Lengths are counted in runes so multi-byte text behaves like ASCII text.
//
// Complexity: O(len(text)).
func Extract(text string) Features {
	text = Normalize(text)
	words := strings.Fields(text)
	n := utf8.RuneCountInString(text)

	f := Features{
		Text:           text,
		Length:         n,
		WordCount:      len(words),
		FirstWord:      PlaceholderWord,
		LimbCount:      LimbCount(n),
		RibSegments:    RibSegments(len(words)),
		ComplexitySeed: ComplexitySeed(text),
		Width:          float64(widthBase + n%widthMod),
		Height:         float64(heightBase + len(words)%heightMod),
		Depth:          float64(depthBase + len(words)%depthMod),
		JawHeight:      float64(jawHeightBase + n%jawHeightMod),
	}
	if len(words) > 0 {
		f.FirstWord = words[0]
	}
	if r, size := utf8.DecodeRuneInString(text); size > 0 {
		f.FirstRune = r
	}

	return f
}

// LimbCount maps a text length onto a limb count: even ⇒ 4, odd ⇒ 2.
func LimbCount(length int) int {
	if length%2 == 0 {
		return 4
	}

	return 2
}

// RibSegments maps a word count onto [3, 7].
func RibSegments(wordCount int) int {
	if wordCount < 0 {
		wordCount = -wordCount
	}

	return wordCount%ribMod + ribBase
}

// ComplexitySeed returns the code point of the sixth rune of text.
// Texts shorter than six runes, and a NUL sixth rune, yield FallbackComplexitySeed.
func ComplexitySeed(text string) int {
	i := 0
	for _, r := range text {
		if i == complexityIndex {
			if r == 0 {
				return FallbackComplexitySeed
			}

			return int(r)
		}
		i++
	}

	return FallbackComplexitySeed
}
