package interfaces

import (
	"context"

	domaintypes "primecount/internal/domain/types"
)

// Publisher sends a finished comparison to a results collector.
type Publisher interface {
	PublishRun(ctx context.Context, run domaintypes.Comparison) error
	FetchRuns(ctx context.Context) ([]domaintypes.Comparison, error)
}
