package types

import "time"

// RunResult is the prime count and wall-clock duration of one counting pass.
type RunResult struct {
	Mode    Mode          `json:"mode" yaml:"mode"`
	Workers int           `json:"workers" yaml:"workers"`
	Count   int64         `json:"count" yaml:"count"`
	Elapsed time.Duration `json:"elapsed_ns" yaml:"elapsed"`
}

// Milliseconds returns Elapsed as fractional milliseconds.
func (r RunResult) Milliseconds() float64 {
	return float64(r.Elapsed.Nanoseconds()) / 1_000_000.0
}

// HostInfo describes the processor the benchmark ran on.
type HostInfo struct {
	CPUBrand      string `json:"cpu_brand" yaml:"cpu_brand"`
	LogicalCores  int    `json:"logical_cores" yaml:"logical_cores"`
	PhysicalCores int    `json:"physical_cores" yaml:"physical_cores"`
	NumCPU        int    `json:"num_cpu" yaml:"num_cpu"`
}

// Comparison is the outcome of one invocation: the same input counted
// sequentially and in parallel.
type Comparison struct {
	Input      string    `json:"input" yaml:"input"`
	Numbers    int       `json:"numbers" yaml:"numbers"`
	Digest     Digest    `json:"digest" yaml:"digest"`
	Host       HostInfo  `json:"host" yaml:"host"`
	Threads    int       `json:"threads" yaml:"threads"`
	Sequential RunResult `json:"sequential" yaml:"sequential"`
	Parallel   RunResult `json:"parallel" yaml:"parallel"`
	Match      bool      `json:"match" yaml:"match"`
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
}

// Speedup returns the sequential time divided by the parallel time, or 0 when
// the parallel pass took no measurable time.
func (c Comparison) Speedup() float64 {
	if c.Parallel.Elapsed <= 0 {
		return 0
	}
	return float64(c.Sequential.Elapsed) / float64(c.Parallel.Elapsed)
}
