// Package engine counts primes over a NumberList, either sequentially or by
// splitting the list into contiguous chunks counted concurrently.
//
// # Parallel model
//
// Parallel launches EffectiveWorkers goroutines, one per Chunk returned by
// Partition. Each worker counts into a local variable and stores the result
// in its own slot of a partials slice, so no counter is shared on the hot
// path. The join uses an errgroup: Wait returns only after every worker has
// exited, the first worker error cancels the others, and partial counts are
// summed only when every worker succeeded.
//
// Workers poll the context every checkEvery elements. A cancelled parent
// context surfaces as ErrInterrupted.
package engine
