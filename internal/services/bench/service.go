package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"primecount/internal/domain"
	"primecount/internal/engine"
	"primecount/internal/input"
)

var (
	// ErrNoNumbers is returned when the input holds no parseable integers.
	ErrNoNumbers = errors.New("no numbers found")
	// ErrReadInput wraps failures to open or read the input file.
	ErrReadInput = errors.New("failed to read file")
	// ErrParallel wraps a failed parallel pass.
	ErrParallel = errors.New("parallel count failed")
)

// Observer receives stage results as they complete.
type Observer interface {
	InputLoaded(path string, numbers int)
	RunFinished(run domain.RunResult)
}

// Request names the input and the requested worker count.
type Request struct {
	Path    string
	Threads int
}

// Service compares the two counting modes on a single input.
type Service struct {
	source  domain.NumberSource
	counter domain.Counter
	host    domain.HostProbe
	log     logrus.FieldLogger
	now     func() time.Time
}

// New constructs a Service. A nil logger discards output.
func New(
	source domain.NumberSource,
	counter domain.Counter,
	host domain.HostProbe,
	log logrus.FieldLogger,
) *Service {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Service{
		source:  source,
		counter: counter,
		host:    host,
		log:     log,
		now:     time.Now,
	}
}

// Compare loads req.Path and counts its primes sequentially and then in
// parallel.
//
// On error the returned Comparison holds every stage that finished before
// the failure. An empty input returns ErrNoNumbers before any counting or
// timing takes place.
func (s *Service) Compare(ctx context.Context, req Request, obs Observer) (domain.Comparison, error) {
	if obs == nil {
		obs = nopObserver{}
	}
	cmp := domain.Comparison{
		Input:     req.Path,
		Threads:   req.Threads,
		StartedAt: s.now().UTC(),
	}
	if s.host != nil {
		cmp.Host = s.host.Info()
	}

	numbers, err := s.source.ReadNumbers(req.Path)
	if err != nil {
		return cmp, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	if len(numbers) == 0 {
		return cmp, fmt.Errorf("%w in file: %s", ErrNoNumbers, req.Path)
	}
	cmp.Numbers = len(numbers)
	cmp.Digest = input.Digest(numbers)
	obs.InputLoaded(req.Path, cmp.Numbers)

	start := s.now()
	count := s.counter.Sequential(numbers)
	cmp.Sequential = domain.RunResult{
		Mode:    domain.ModeSequential,
		Workers: 1,
		Count:   count,
		Elapsed: s.now().Sub(start),
	}
	obs.RunFinished(cmp.Sequential)

	workers := engine.EffectiveWorkers(req.Threads, len(numbers))
	start = s.now()
	count, err = s.counter.Parallel(ctx, numbers, workers)
	if err != nil {
		if errors.Is(err, engine.ErrInterrupted) {
			return cmp, err
		}
		return cmp, fmt.Errorf("%w: %w", ErrParallel, err)
	}
	cmp.Parallel = domain.RunResult{
		Mode:    domain.ModeParallel,
		Workers: workers,
		Count:   count,
		Elapsed: s.now().Sub(start),
	}
	cmp.Match = cmp.Sequential.Count == cmp.Parallel.Count
	obs.RunFinished(cmp.Parallel)

	entry := s.log.WithFields(logrus.Fields{
		"input":      req.Path,
		"digest":     cmp.Digest,
		"sequential": cmp.Sequential.Count,
		"parallel":   cmp.Parallel.Count,
		"workers":    workers,
	})
	if !cmp.Match {
		entry.Error("sequential and parallel counts differ")
	} else {
		entry.Debug("comparison finished")
	}
	return cmp, nil
}

type nopObserver struct{}

func (nopObserver) InputLoaded(string, int)      {}
func (nopObserver) RunFinished(domain.RunResult) {}
