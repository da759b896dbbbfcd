package parallel

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 1000

	err := For(n, func(_ int) error {
		atomic.AddInt64(&counter, 1)
		return nil
	}, cfg)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor_DisjointWrites(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 3, MinItems: 1}

	results := make([]int, 17)
	err := For(len(results), func(i int) error {
		results[i] = i * i
		return nil
	}, cfg)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range results {
		if v != i*i {
			t.Errorf("results[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var order []int
	err := For(5, func(i int) error {
		order = append(order, i)
		return nil
	}, cfg)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("sequential order broken: %v", order)
		}
	}
}

func TestFor_SequentialStopsAtError(t *testing.T) {
	cfg := Config{Enabled: false}
	boom := errors.New("boom")

	var calls int
	err := For(10, func(i int) error {
		calls++
		if i == 2 {
			return boom
		}
		return nil
	}, cfg)

	if !errors.Is(err, boom) {
		t.Fatalf("Expected boom, got %v", err)
	}
	if calls != 3 {
		t.Errorf("Expected 3 calls, got %d", calls)
	}
}

func TestFor_ParallelError(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinItems: 1}
	boom := errors.New("boom")

	err := For(8, func(i int) error {
		if i == 5 {
			return boom
		}
		return nil
	}, cfg)

	if !errors.Is(err, boom) {
		t.Fatalf("Expected boom, got %v", err)
	}
}

func TestFor_SmallInput(t *testing.T) {
	// Small inputs fall back to sequential.
	cfg := DefaultConfig()

	var counter int64
	n := cfg.MinItems - 1

	err := For(n, func(_ int) error {
		atomic.AddInt64(&counter, 1)
		return nil
	}, cfg)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}
