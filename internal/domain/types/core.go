package types

// Mode names a counting strategy.
type Mode string

const (
	// ModeSequential counts primes in a single pass on the calling goroutine.
	ModeSequential Mode = "sequential"
	// ModeParallel counts primes by chunk on a fixed pool of goroutines.
	ModeParallel Mode = "parallel"
)

// String returns the string form of the mode.
func (m Mode) String() string { return string(m) }

// Digest is a short hex content hash of a parsed number list.
type Digest string

// String returns the string form of the digest.
func (d Digest) String() string { return string(d) }
