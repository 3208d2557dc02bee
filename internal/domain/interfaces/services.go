package interfaces

import (
	"context"

	domaintypes "primecount/internal/domain/types"
)

// NumberSource loads a NumberList from a named input.
type NumberSource interface {
	ReadNumbers(path string) (domaintypes.NumberList, error)
}

// Counter counts primes over a NumberList in one of the two modes.
type Counter interface {
	Sequential(numbers domaintypes.NumberList) int64
	Parallel(ctx context.Context, numbers domaintypes.NumberList, workers int) (int64, error)
}

// HostProbe reports the processor the process is running on.
type HostProbe interface {
	Info() domaintypes.HostInfo
	DefaultThreads() int
}
