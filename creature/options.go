package creature

import (
	"slices"

	"github.com/katalvlaran/exobio/lsystem"
	"github.com/katalvlaran/exobio/polygon"
)

// Option customizes Generate. Option constructors panic on meaningless
// input; Generate itself never does.
type Option func(*config)

// config is resolved once per Generate call and never shared.
type config struct {
	seed     int64
	seeded   bool
	colors   ColorScheme
	style    lsystem.Style
	styled   bool
	polygons polygon.Options
}

func newConfig(opts ...Option) config {
	cfg := config{
		colors:   DefaultColors,
		polygons: polygon.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed replaces the text hash as the base of every random stream.
// Use it to explore variations of one sentence.
func WithSeed(s int64) Option {
	return func(c *config) {
		c.seed, c.seeded = s, true
	}
}

// WithColors sets the color scheme. Panics if any color is empty.
func WithColors(cs ColorScheme) Option {
	if cs.Stroke == "" || cs.Fill == "" || cs.Hole == "" {
		panic("creature: WithColors with an empty color")
	}
	return func(c *config) {
		c.colors = cs
	}
}

// WithStyle forces the limb body style instead of classifying the text.
// Panics on a style outside lsystem.Styles.
func WithStyle(s lsystem.Style) Option {
	if !slices.Contains(lsystem.Styles, s) {
		panic("creature: WithStyle(unknown style)")
	}
	return func(c *config) {
		c.style, c.styled = s, true
	}
}

// WithPolygonOptions overrides the cranium outline settings.
func WithPolygonOptions(o polygon.Options) Option {
	return func(c *config) {
		c.polygons = o
	}
}
