// Package host reports the processor the benchmark runs on and picks the
// default worker count.
package host
