package pagerank

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-pagerank/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-pagerank/internal/entity"
)

const (
	DefaultDamping       = 0.85
	DefaultSamples       = 10000
	DefaultThreshold     = 0.001
	DefaultMaxIterations = 10000
)

type Option func(estimator *Estimator)

// Estimator computes PageRank with a fixed damping factor, sample count and
// convergence threshold.
type Estimator struct {
	logger *slog.Logger
	rng    *rand.Rand

	damping       float64
	samples       int
	threshold     float64
	maxIterations int
}

func WithDamping(damping float64) Option {
	return func(e *Estimator) {
		e.damping = damping
	}
}

func WithSamples(samples int) Option {
	return func(e *Estimator) {
		e.samples = samples
	}
}

func WithThreshold(threshold float64) Option {
	return func(e *Estimator) {
		e.threshold = threshold
	}
}

func WithMaxIterations(maxIterations int) Option {
	return func(e *Estimator) {
		if maxIterations > 0 {
			e.maxIterations = maxIterations
		}
	}
}

// WithSeed makes sampling reproducible. Without it the walk is seeded from
// the clock.
func WithSeed(seed uint64) Option {
	return func(e *Estimator) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Estimator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

func New(options ...Option) (*Estimator, error) {
	e := &Estimator{ // Default values
		logger:        slog.Default(),
		damping:       DefaultDamping,
		samples:       DefaultSamples,
		threshold:     DefaultThreshold,
		maxIterations: DefaultMaxIterations,
	}
	for _, option := range options {
		option(e)
	}

	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	if err := validateDamping(e.damping); err != nil {
		return nil, err
	}

	if e.samples <= 0 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidSampleCount, e.samples)
	}

	if e.threshold <= 0 {
		return nil, fmt.Errorf("%w: %v", apperror.ErrInvalidThreshold, e.threshold)
	}

	e.logger = e.logger.With("component", "pagerank")

	return e, nil
}

func (that *Estimator) Damping() float64 {
	return that.damping
}

func (that *Estimator) Samples() int {
	return that.samples
}

// Sample - estimates PageRank by a random walk of the configured length.
func (that *Estimator) Sample(corpus entity.Corpus) (entity.Distribution, error) {
	log := that.logger.With("method", "Sample")

	ranks, err := SamplePageRank(corpus, that.damping, that.samples, that.rng)
	if err != nil {
		return nil, fmt.Errorf("failed to sample pagerank: %w", err)
	}

	log.Debug("pagerank sampled", "pages", len(corpus), "samples", that.samples)

	return ranks, nil
}

// Iterate - computes PageRank by iterating the formula until convergence.
func (that *Estimator) Iterate(corpus entity.Corpus) (entity.Distribution, error) {
	log := that.logger.With("method", "Iterate")

	ranks, iterations, err := IteratePageRank(corpus, that.damping, that.threshold, that.maxIterations)
	if err != nil {
		return nil, fmt.Errorf("failed to iterate pagerank: %w", err)
	}

	log.Debug("pagerank converged", "pages", len(corpus), "iterations", iterations)

	return ranks, nil
}
