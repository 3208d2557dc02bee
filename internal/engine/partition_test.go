package engine_test

import (
	"testing"

	"primecount/internal/engine"
)

func TestEffectiveWorkers(t *testing.T) {
	cases := []struct {
		requested, n, want int
	}{
		{4, 0, 0},
		{0, 10, 1},
		{-5, 10, 1},
		{1, 10, 1},
		{4, 10, 4},
		{16, 10, 10},
		{10, 10, 10},
	}
	for _, tc := range cases {
		if got := engine.EffectiveWorkers(tc.requested, tc.n); got != tc.want {
			t.Errorf("EffectiveWorkers(%d, %d) = %d, want %d", tc.requested, tc.n, got, tc.want)
		}
	}
}

func TestPartition_CoversRangeExactly(t *testing.T) {
	for n := 0; n <= 64; n++ {
		for w := 1; w <= 20; w++ {
			chunks := engine.Partition(n, w)
			if n == 0 {
				if len(chunks) != 0 {
					t.Fatalf("Partition(0, %d) returned %d chunks", w, len(chunks))
				}
				continue
			}
			if len(chunks) > w || len(chunks) > n {
				t.Fatalf("Partition(%d, %d) returned %d chunks", n, w, len(chunks))
			}
			next := 0
			for i, c := range chunks {
				if c.From != next {
					t.Fatalf("Partition(%d, %d) chunk %d starts at %d, want %d", n, w, i, c.From, next)
				}
				if c.Len() <= 0 {
					t.Fatalf("Partition(%d, %d) chunk %d is empty: %+v", n, w, i, c)
				}
				next = c.To
			}
			if next != n {
				t.Fatalf("Partition(%d, %d) ends at %d, want %d", n, w, next, n)
			}
		}
	}
}

func TestPartition_ChunkSizeIsCeil(t *testing.T) {
	chunks := engine.Partition(10, 4)
	want := []struct{ from, to int }{{0, 3}, {3, 6}, {6, 9}, {9, 10}}
	if len(chunks) != len(want) {
		t.Fatalf("got %d chunks, want %d", len(chunks), len(want))
	}
	for i, c := range chunks {
		if c.From != want[i].from || c.To != want[i].to {
			t.Fatalf("chunk %d = [%d,%d), want [%d,%d)", i, c.From, c.To, want[i].from, want[i].to)
		}
	}
}

func TestPartition_FewerChunksThanWorkersAfterRounding(t *testing.T) {
	// ceil(10/6) = 2, so five chunks cover the list.
	if got := len(engine.Partition(10, 6)); got != 5 {
		t.Fatalf("got %d chunks, want 5", got)
	}
}
