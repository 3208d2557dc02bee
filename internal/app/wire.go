package app

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"primecount/internal/domain"
	"primecount/internal/engine"
	"primecount/internal/host"
	"primecount/internal/input"
	"primecount/internal/relay"
	"primecount/internal/services/bench"
	"primecount/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Source    domain.NumberSource
	Engine    *engine.Engine
	Host      *host.Probe
	Bench     *bench.Service
	History   domain.HistoryStore // nil when history is disabled
	Publisher domain.Publisher    // nil when publishing is disabled
	Log       *logrus.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, log *logrus.Logger) (*Wire, error) {
	src := input.NewFileSource(log)
	eng := engine.New(engine.WithLogger(log))
	probe := host.New()

	w := &Wire{
		Source: src,
		Engine: eng,
		Host:   probe,
		Bench:  bench.New(src, eng, probe, log),
		Log:    log,
	}

	if cfg.History.Path != "" {
		hs, err := store.Open(cfg.History.Driver, cfg.History.Path)
		if err != nil {
			return nil, err
		}
		w.History = hs
	}

	if cfg.Publish.URL != "" {
		client := &http.Client{Timeout: cfg.Publish.Timeout}
		w.Publisher = relay.NewHTTP(cfg.Publish.URL, client)
	}
	return w, nil
}

// Close releases resources held by the wire.
func (w *Wire) Close() error {
	if w.History != nil {
		return w.History.Close()
	}
	return nil
}
