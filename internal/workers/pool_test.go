package workers

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew_DefaultSize(t *testing.T) {
	for _, n := range []int{0, -3} {
		p := New(n)
		if got, want := p.Size(), runtime.GOMAXPROCS(0); got != want {
			t.Errorf("New(%d).Size() = %d, want %d", n, got, want)
		}
		p.Close()
	}
}

func TestPool_RunAll(t *testing.T) {
	p := New(4)
	defer p.Close()

	var count atomic.Int64
	jobs := make([]Job, 100)
	for i := range jobs {
		jobs[i] = func(context.Context) { count.Add(1) }
	}
	if err := p.Run(context.Background(), jobs); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if count.Load() != 100 {
		t.Errorf("ran %d jobs, want 100", count.Load())
	}
}

func TestPool_RunResultsBySlot(t *testing.T) {
	p := New(3)
	defer p.Close()

	out := make([]int, 20)
	jobs := make([]Job, len(out))
	for i := range jobs {
		jobs[i] = func(context.Context) { out[i] = i * i }
	}
	if err := p.Run(context.Background(), jobs); err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, v := range out {
		if v != i*i {
			t.Errorf("out[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestPool_RunMoreJobsThanQueueDepth(t *testing.T) {
	p := New(1)
	defer p.Close()

	var count atomic.Int64
	jobs := make([]Job, 50)
	for i := range jobs {
		jobs[i] = func(context.Context) { count.Add(1) }
	}
	if err := p.Run(context.Background(), jobs); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if count.Load() != 50 {
		t.Errorf("ran %d jobs, want 50", count.Load())
	}
}

func TestPool_RunCanceled(t *testing.T) {
	p := New(2)
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var count atomic.Int64
	jobs := []Job{
		func(context.Context) { count.Add(1) },
		func(context.Context) { count.Add(1) },
	}
	if err := p.Run(ctx, jobs); err != context.Canceled {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
	if count.Load() != 0 {
		t.Errorf("ran %d jobs after cancel, want 0", count.Load())
	}
}

func TestPool_RunPassesContext(t *testing.T) {
	p := New(2)
	defer p.Close()

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")
	var got any
	err := p.Run(ctx, []Job{func(ctx context.Context) { got = ctx.Value(key{}) }})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != "v" {
		t.Errorf("job saw %v, want v", got)
	}
}

func TestPool_Close(t *testing.T) {
	p := New(2)
	p.Close()
	p.Close()

	if err := p.Run(context.Background(), []Job{func(context.Context) {}}); err != ErrClosed {
		t.Errorf("Run after Close = %v, want ErrClosed", err)
	}
}

func TestPool_ConcurrentRun(t *testing.T) {
	p := New(4)
	defer p.Close()

	var count atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			jobs := make([]Job, 10)
			for i := range jobs {
				jobs[i] = func(context.Context) { count.Add(1) }
			}
			if err := p.Run(context.Background(), jobs); err != nil {
				t.Errorf("Run: %v", err)
			}
		}()
	}
	wg.Wait()
	if count.Load() != 80 {
		t.Errorf("ran %d jobs, want 80", count.Load())
	}
}
