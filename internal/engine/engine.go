package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"primecount/internal/domain"
	"primecount/internal/primality"
)

// checkEvery is how many elements a worker counts between context checks.
const checkEvery = 4096

var (
	// ErrInterrupted is returned when the caller's context is cancelled while
	// workers are still running.
	ErrInterrupted = errors.New("prime count interrupted")
)

// PartialFunc counts primes in numbers[chunk.From:chunk.To]. It is the unit
// of work run by each parallel worker.
type PartialFunc func(ctx context.Context, numbers domain.NumberList, chunk domain.Chunk) (int64, error)

// CountChunk is the default PartialFunc. It only fails when ctx is done.
func CountChunk(ctx context.Context, numbers domain.NumberList, chunk domain.Chunk) (int64, error) {
	var local int64
	for i := chunk.From; i < chunk.To; i++ {
		if (i-chunk.From)%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		if primality.IsPrime(numbers[i]) {
			local++
		}
	}
	return local, nil
}

// Engine runs sequential and parallel prime counts.
type Engine struct {
	partial PartialFunc
	log     logrus.FieldLogger
}

// Option configures an Engine.
type Option func(*Engine)

// WithPartial replaces the per-chunk counting function.
func WithPartial(fn PartialFunc) Option {
	return func(e *Engine) {
		if fn != nil {
			e.partial = fn
		}
	}
}

// WithLogger sets the logger used for per-run debug output.
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// New returns an Engine counting with CountChunk unless overridden.
func New(opts ...Option) *Engine {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	e := &Engine{partial: CountChunk, log: discard}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Sequential counts primes in numbers in order on the calling goroutine.
func (e *Engine) Sequential(numbers domain.NumberList) int64 {
	var count int64
	for _, n := range numbers {
		if primality.IsPrime(n) {
			count++
		}
	}
	return count
}

// Parallel counts primes in numbers using up to workers goroutines.
//
// An empty list returns 0 without launching any worker. If a worker fails,
// Parallel waits for the rest to exit and returns the first failure wrapped
// with the chunk it was counting; no partial total is returned.
func (e *Engine) Parallel(ctx context.Context, numbers domain.NumberList, workers int) (int64, error) {
	chunks := Partition(len(numbers), workers)
	if len(chunks) == 0 {
		return 0, nil
	}
	e.log.WithFields(logrus.Fields{
		"numbers": len(numbers),
		"workers": len(chunks),
		"chunk":   chunks[0].Len(),
	}).Debug("starting parallel count")

	partials := make([]int64, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			n, err := e.partial(gctx, numbers, chunk)
			if err != nil {
				return fmt.Errorf("chunk [%d,%d): %w", chunk.From, chunk.To, err)
			}
			partials[i] = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return 0, fmt.Errorf("%w: %w", ErrInterrupted, context.Cause(ctx))
		}
		return 0, err
	}

	var total int64
	for _, n := range partials {
		total += n
	}
	return total, nil
}

var defaultEngine = New()

// Sequential counts primes with the default Engine.
func Sequential(numbers domain.NumberList) int64 { return defaultEngine.Sequential(numbers) }

// Parallel counts primes with the default Engine.
func Parallel(ctx context.Context, numbers domain.NumberList, workers int) (int64, error) {
	return defaultEngine.Parallel(ctx, numbers, workers)
}
