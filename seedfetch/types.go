package seedfetch

import (
	"context"
	"errors"
)

// Seed is one seed sentence and where it came from.
type Seed struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
}

// Fallback seed contents.
const (
	FallbackID   = "fallback"
	FallbackText = "api network failure, generation is now based on a default value"
)

// Fallback returns the seed every Source yields on failure.
func Fallback() Seed {
	return Seed{ID: FallbackID, Text: FallbackText}
}

// Source yields a seed. Implementations absorb their own failures and
// return Fallback instead.
type Source interface {
	Fetch(ctx context.Context) Seed
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) Seed

// Fetch calls f.
func (f SourceFunc) Fetch(ctx context.Context) Seed {
	return f(ctx)
}

// staticSource returns a fixed sentence.
type staticSource struct{ text string }

// StaticID is the ID reported by Static sources.
const StaticID = "static"

// Static returns a Source that always yields text.
func Static(text string) Source {
	return staticSource{text: text}
}

func (s staticSource) Fetch(context.Context) Seed {
	return Seed{ID: StaticID, Text: s.text, Source: StaticID}
}

// Failure classes logged by HTTPSource before it falls back.
var (
	// ErrStatus indicates a non-2xx response.
	ErrStatus = errors.New("seedfetch: unexpected status")
	// ErrMalformed indicates a body that is not a seed object or has no text.
	ErrMalformed = errors.New("seedfetch: malformed seed response")
)
