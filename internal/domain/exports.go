package domain

import (
	interfaces "primecount/internal/domain/interfaces"
	types "primecount/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Mode       = types.Mode
	Digest     = types.Digest
	NumberList = types.NumberList
	Chunk      = types.Chunk
	RunResult  = types.RunResult
	HostInfo   = types.HostInfo
	Comparison = types.Comparison
)

// Mode values.
const (
	ModeSequential = types.ModeSequential
	ModeParallel   = types.ModeParallel
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	NumberSource = interfaces.NumberSource
	Counter      = interfaces.Counter
	HostProbe    = interfaces.HostProbe
	HistoryStore = interfaces.HistoryStore
	Publisher    = interfaces.Publisher
)
