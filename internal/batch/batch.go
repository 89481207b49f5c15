// Package batch generates many creatures concurrently from one seed source.
//
// Seeds are fetched and composed in parallel under a concurrency limit.
// Generation is a pure function of the seed text, so repeated sentences are
// memoized for the lifetime of a Runner.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/exobio/creature"
	"github.com/katalvlaran/exobio/seedfetch"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds in-flight fetch+generate jobs.
const DefaultConcurrency = 4

// memo expiry; a Runner normally lives for one CLI invocation.
const (
	memoTTL     = 30 * time.Minute
	memoCleanup = time.Hour
)

// ErrCount indicates a non-positive batch size.
var ErrCount = errors.New("batch: count must be positive")

// Runner fetches seeds and composes body plans.
type Runner struct {
	src         seedfetch.Source
	concurrency int
	logger      *slog.Logger
	genOpts     []creature.Option
	memo        *cache.Cache
}

// Option configures a Runner.
type Option func(*Runner)

// WithConcurrency sets the job limit. Panics if n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("batch: WithConcurrency(%d) must be >= 1", n))
	}
	return func(r *Runner) {
		r.concurrency = n
	}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("batch: WithLogger(nil)")
	}
	return func(r *Runner) {
		r.logger = l
	}
}

// WithCreatureOptions passes opts to every creature.Generate call.
func WithCreatureOptions(opts ...creature.Option) Option {
	return func(r *Runner) {
		r.genOpts = append(r.genOpts, opts...)
	}
}

// New returns a Runner over src. A nil src yields seedfetch.Fallback seeds.
func New(src seedfetch.Source, opts ...Option) *Runner {
	if src == nil {
		src = seedfetch.SourceFunc(func(context.Context) seedfetch.Seed { return seedfetch.Fallback() })
	}
	r := &Runner{
		src:         src,
		concurrency: DefaultConcurrency,
		logger:      slog.Default(),
		memo:        cache.New(memoTTL, memoCleanup),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run produces count body plans, in job order. Plans share no storage with
// each other or with the memo. It fails only on a non-positive count or
// when ctx ends before every job started.
func (r *Runner) Run(ctx context.Context, count int) ([]creature.Parameters, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: %d", ErrCount, count)
	}

	start := time.Now()
	out := make([]creature.Parameters, count)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.concurrency)

	for i := 0; i < count; i++ {
		i := i
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			s := r.src.Fetch(egCtx)
			out[i] = r.generate(s)
			r.logger.Debug("creature generated", "job", i, "seed_id", s.ID, "name", out[i].Name)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}

	r.logger.Info("batch complete",
		"count", count,
		"unique", r.memo.ItemCount(),
		"elapsed", time.Since(start),
	)

	return out, nil
}

// Memoized reports how many distinct sentences the Runner has composed.
func (r *Runner) Memoized() int {
	return r.memo.ItemCount()
}

// generate composes s.Text, reusing an earlier result for the same text.
// Each job gets its own deep copy, so callers may modify their plans freely.
func (r *Runner) generate(s seedfetch.Seed) creature.Parameters {
	if v, ok := r.memo.Get(s.Text); ok {
		p := v.(creature.Parameters).Clone()
		p.SeedID = s.ID

		return p
	}

	p := creature.Generate(s.Text, r.genOpts...)
	r.memo.SetDefault(s.Text, p.Clone())
	p.SeedID = s.ID

	return p
}
