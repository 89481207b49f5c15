package seedfetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Defaults for HTTPSource.
const (
	DefaultURL     = "https://uselessfacts.jsph.pl/random.json"
	DefaultTimeout = 10 * time.Second

	// maxBodyBytes caps how much of a response body is read.
	maxBodyBytes = 64 << 10
)

// HTTPSource fetches seed sentences from a JSON endpoint.
// It is safe for concurrent use.
type HTTPSource struct {
	url     string
	client  *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// Option configures an HTTPSource.
type Option func(*HTTPSource)

// WithURL sets the endpoint. Panics on an empty url.
func WithURL(url string) Option {
	if url == "" {
		panic("seedfetch: WithURL(\"\")")
	}
	return func(s *HTTPSource) {
		s.url = url
	}
}

// WithHTTPClient sets the HTTP client. Panics on nil.
func WithHTTPClient(c *http.Client) Option {
	if c == nil {
		panic("seedfetch: WithHTTPClient(nil)")
	}
	return func(s *HTTPSource) {
		s.client = c
	}
}

// WithLimiter throttles requests; Fetch waits for a token before calling out.
// A nil limiter disables throttling.
func WithLimiter(l *rate.Limiter) Option {
	return func(s *HTTPSource) {
		s.limiter = l
	}
}

// WithLogger sets the logger used to report fallbacks. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("seedfetch: WithLogger(nil)")
	}
	return func(s *HTTPSource) {
		s.logger = l
	}
}

// NewHTTPSource returns a source for DefaultURL with a DefaultTimeout client,
// no throttling and slog.Default, then applies opts in order.
func NewHTTPSource(opts ...Option) *HTTPSource {
	s := &HTTPSource{
		url:    DefaultURL,
		client: &http.Client{Timeout: DefaultTimeout},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Fetch returns a fresh seed, or Fallback on any failure.
func (s *HTTPSource) Fetch(ctx context.Context) Seed {
	seed, err := s.fetch(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "seed fetch failed, using fallback",
			slog.String("url", s.url),
			slog.Any("error", err))
		return Fallback()
	}

	s.logger.DebugContext(ctx, "seed fetched", slog.String("id", seed.ID))
	return seed
}

// factResponse is the subset of the random-fact payload that is read.
type factResponse struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Source string `json:"source"`
}

func (s *HTTPSource) fetch(ctx context.Context) (Seed, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return Seed{}, fmt.Errorf("rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return Seed{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return Seed{}, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Seed{}, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Seed{}, fmt.Errorf("read body: %w", err)
	}

	var fr factResponse
	if err := json.Unmarshal(body, &fr); err != nil {
		return Seed{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if fr.Text == "" {
		return Seed{}, fmt.Errorf("%w: empty text", ErrMalformed)
	}

	return Seed{ID: fr.ID, Text: fr.Text, Source: fr.Source}, nil
}
