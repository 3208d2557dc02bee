package interfaces

import domaintypes "primecount/internal/domain/types"

// HistoryStore persists completed comparisons.
type HistoryStore interface {
	SaveRun(run domaintypes.Comparison) error
	ListRuns() ([]domaintypes.Comparison, error)
	Close() error
}
