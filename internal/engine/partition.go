package engine

import "primecount/internal/domain"

// EffectiveWorkers clamps requested to at least 1 and at most n. It returns 0
// for an empty list so that no worker is launched.
func EffectiveWorkers(requested, n int) int {
	if n <= 0 {
		return 0
	}
	if requested < 1 {
		requested = 1
	}
	if requested > n {
		return n
	}
	return requested
}

// Partition splits [0, n) into consecutive chunks of ceil(n/workers)
// elements. The last chunk may be shorter, and fewer than workers chunks are
// returned when the rounding leaves nothing for the tail.
func Partition(n, workers int) []domain.Chunk {
	workers = EffectiveWorkers(workers, n)
	if workers == 0 {
		return nil
	}
	size := (n + workers - 1) / workers
	chunks := make([]domain.Chunk, 0, workers)
	for from := 0; from < n; from += size {
		to := from + size
		if to > n {
			to = n
		}
		chunks = append(chunks, domain.Chunk{From: from, To: to})
	}
	return chunks
}
