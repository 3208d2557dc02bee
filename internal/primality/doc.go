// Package primality decides whether a single integer is prime.
//
// IsPrime uses trial division by 2, 3 and then by candidates of the form
// 6k±1. Both counting modes call the same predicate, so their results are
// directly comparable.
package primality
