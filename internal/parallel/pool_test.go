package parallel

import (
	"sync/atomic"
	"testing"
)

func TestWorkerPool_Create(t *testing.T) {
	p := NewWorkerPool(4)
	defer p.Close()

	if p.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", p.Workers())
	}
}

func TestWorkerPool_DefaultWorkers(t *testing.T) {
	p := NewWorkerPool(0)
	defer p.Close()

	if p.Workers() < 1 {
		t.Errorf("Workers() = %d, want >= 1", p.Workers())
	}
}

func TestWorkerPool_ExecuteAll(t *testing.T) {
	p := NewWorkerPool(4)
	defer p.Close()

	var counter atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	p.ExecuteAll(work)

	if got := counter.Load(); got != 100 {
		t.Errorf("executed %d work items, want 100", got)
	}
}

func TestWorkerPool_ExecuteAllEmpty(t *testing.T) {
	p := NewWorkerPool(2)
	defer p.Close()

	// Must not panic or hang.
	p.ExecuteAll(nil)
	p.ExecuteAll([]func(){})
}

func TestWorkerPool_ExecuteAllAfterClose(t *testing.T) {
	p := NewWorkerPool(2)
	p.Close()

	var counter atomic.Int64
	p.ExecuteAll([]func(){func() { counter.Add(1) }})

	if counter.Load() != 0 {
		t.Error("closed pool executed work")
	}
}

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	p := NewWorkerPool(2)
	p.Close()
	p.Close() // must not panic
}

func TestWorkerPool_ManyMoreItemsThanWorkers(t *testing.T) {
	p := NewWorkerPool(2)
	defer p.Close()

	var counter atomic.Int64
	work := make([]func(), 1000)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	p.ExecuteAll(work)

	if got := counter.Load(); got != 1000 {
		t.Errorf("executed %d work items, want 1000", got)
	}
}

func TestRows_CoversRangeExactlyOnce(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		height  int
	}{
		{"sequential", 1, 37},
		{"parallel", 4, 37},
		{"more workers than rows", 16, 5},
		{"single row", 8, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := make([]atomic.Int32, tt.height)

			Rows(tt.workers, tt.height, func(y0, y1 int) {
				if y0 < 0 || y1 > tt.height || y0 >= y1 {
					t.Errorf("bad band [%d, %d)", y0, y1)
					return
				}
				for y := y0; y < y1; y++ {
					hits[y].Add(1)
				}
			})

			for y := range hits {
				if got := hits[y].Load(); got != 1 {
					t.Errorf("row %d visited %d times, want 1", y, got)
				}
			}
		})
	}
}

func TestRows_ZeroHeight(t *testing.T) {
	called := false
	Rows(4, 0, func(y0, y1 int) { called = true })
	if called {
		t.Error("Rows called fn for a zero-height range")
	}
}
