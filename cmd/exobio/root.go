package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/katalvlaran/exobio/creature"
	"github.com/katalvlaran/exobio/internal/batch"
	"github.com/katalvlaran/exobio/internal/config"
	"github.com/katalvlaran/exobio/lsystem"
	"github.com/katalvlaran/exobio/seedfetch"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

// flags holds the command-line values; zero values defer to config.
type flags struct {
	seed        string
	count       int
	concurrency int
	timeout     time.Duration
	url         string
	style       string
	pretty      bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f flags
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:          "exobio",
		Short:        "Generate procedural creature body plans from text",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
			return run(cmd.Context(), stdout, logger, cfg, f)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	fs.StringVarP(&f.seed, "seed", "s", "", "seed sentence; skips fetching")
	fs.IntVarP(&f.count, "count", "n", 1, "number of creatures")
	fs.IntVarP(&f.concurrency, "concurrency", "c", cfg.Concurrency, "parallel jobs")
	fs.DurationVar(&f.timeout, "timeout", cfg.HTTPTimeout, "HTTP timeout per fetch")
	fs.StringVar(&f.url, "url", cfg.SeedURL, "seed fact endpoint")
	fs.StringVar(&f.style, "style", "", "force a body style: standard, wiry or spiky")
	fs.BoolVarP(&f.pretty, "pretty", "p", false, "indent JSON output")

	return cmd
}

// run wires the seed source and batch runner, then writes the result:
// one JSON object for a single creature, an array otherwise.
func run(ctx context.Context, w io.Writer, logger *slog.Logger, cfg *config.Config, f flags) error {
	if f.count < 1 {
		return fmt.Errorf("--count must be >= 1, got %d", f.count)
	}
	if f.concurrency < 1 {
		return fmt.Errorf("--concurrency must be >= 1, got %d", f.concurrency)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var genOpts []creature.Option
	if f.style != "" {
		var s lsystem.Style
		if err := s.UnmarshalText([]byte(f.style)); err != nil {
			return fmt.Errorf("--style: %w", err)
		}
		genOpts = append(genOpts, creature.WithStyle(s))
	}

	var src seedfetch.Source
	if f.seed != "" {
		src = seedfetch.Static(f.seed)
	} else {
		var limiter *rate.Limiter
		if cfg.RateInterval > 0 {
			limiter = rate.NewLimiter(rate.Every(cfg.RateInterval), cfg.RateBurst)
		}
		src = seedfetch.NewHTTPSource(
			seedfetch.WithURL(f.url),
			seedfetch.WithHTTPClient(&http.Client{Timeout: f.timeout}),
			seedfetch.WithLimiter(limiter),
			seedfetch.WithLogger(logger),
		)
	}

	runner := batch.New(src,
		batch.WithConcurrency(f.concurrency),
		batch.WithLogger(logger),
		batch.WithCreatureOptions(genOpts...),
	)
	plans, err := runner.Run(ctx, f.count)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	if f.pretty {
		enc.SetIndent("", "  ")
	}
	if len(plans) == 1 {
		return enc.Encode(plans[0])
	}

	return enc.Encode(plans)
}
