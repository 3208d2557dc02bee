package host_test

import (
	"runtime"
	"testing"

	"primecount/internal/host"
)

func TestResolveThreads(t *testing.T) {
	const fallback = 6
	cases := map[string]int{
		"":      fallback,
		"abc":   fallback,
		"2.5":   fallback,
		"0":     1,
		"-5":    1,
		"1":     1,
		"12":    12,
		" 3":    fallback,
		"99999": 99999,
	}
	for text, want := range cases {
		if got := host.ResolveThreads(text, fallback); got != want {
			t.Errorf("ResolveThreads(%q) = %d, want %d", text, got, want)
		}
	}
}

func TestProbe(t *testing.T) {
	p := host.New()
	if got := p.DefaultThreads(); got != runtime.NumCPU() {
		t.Fatalf("DefaultThreads = %d, want %d", got, runtime.NumCPU())
	}
	info := p.Info()
	if info.NumCPU != runtime.NumCPU() {
		t.Fatalf("Info.NumCPU = %d, want %d", info.NumCPU, runtime.NumCPU())
	}
	if info.CPUBrand == "" {
		t.Fatal("Info.CPUBrand is empty")
	}
}
