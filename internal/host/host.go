package host

import (
	"runtime"
	"strconv"

	"github.com/klauspost/cpuid/v2"

	"primecount/internal/domain"
)

// Probe reads CPU identity through cpuid and the schedulable CPU count from
// the Go runtime.
type Probe struct{}

// New returns a Probe.
func New() *Probe { return &Probe{} }

// Info returns the detected processor description.
func (Probe) Info() domain.HostInfo {
	brand := cpuid.CPU.BrandName
	if brand == "" {
		brand = "unknown"
	}
	return domain.HostInfo{
		CPUBrand:      brand,
		LogicalCores:  cpuid.CPU.LogicalCores,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		NumCPU:        runtime.NumCPU(),
	}
}

// DefaultThreads is the number of processing units available to this
// process. runtime.NumCPU honours the affinity mask, which cpuid does not.
func (Probe) DefaultThreads() int {
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}

// ResolveThreads turns the optional thread-count argument into a worker
// count. An integer below 1 is clamped to 1; text that is not an integer, or
// no text at all, yields fallback.
func ResolveThreads(text string, fallback int) int {
	if text == "" {
		return fallback
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return fallback
	}
	if n < 1 {
		return 1
	}
	return n
}
