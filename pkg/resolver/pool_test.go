package resolver

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func newTestPool(t *testing.T, ctx context.Context, src Source, concurrency int) *Pool {
	t.Helper()
	return NewPool(ctx, Config{
		Source:      src,
		Prober:      notFoundProber(t),
		Concurrency: concurrency,
	})
}

func TestPoolResolvesAll(t *testing.T) {
	src := &fakeSource{
		md:      Metadata{License: "MIT"},
		repoErr: errors.New("registry down"),
	}
	p := newTestPool(t, context.Background(), src, 2)

	jobs := []Job{{Name: "alpha"}, {Name: "beta"}, {Name: "gamma"}}
	if got := p.Enqueue(context.Background(), jobs...); got != 3 {
		t.Fatalf("Enqueue() = %d, want 3", got)
	}

	results := p.Wait()
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	for _, rec := range results {
		if rec.License != "MIT" {
			t.Errorf("%s: license = %q", rec.Name, rec.License)
		}
		if !rec.Resolved() {
			t.Errorf("%s: not resolved", rec.Name)
		}
	}
}

func TestPoolDeduplicates(t *testing.T) {
	src := &fakeSource{
		md:      Metadata{License: "MIT"},
		repoErr: errors.New("registry down"),
	}
	p := newTestPool(t, context.Background(), src, 1)

	if got := p.Enqueue(context.Background(), Job{Name: "alpha"}, Job{Name: "alpha"}); got != 1 {
		t.Errorf("Enqueue() = %d, want 1", got)
	}
	// Later batches see the same dedup set.
	if got := p.Enqueue(context.Background(), Job{Name: "alpha"}, Job{Name: "beta"}); got != 1 {
		t.Errorf("second Enqueue() = %d, want 1", got)
	}

	results := p.Wait()
	if len(results) != 2 {
		t.Errorf("len(results) = %d, want 2", len(results))
	}
}

func TestPoolEmptyWait(t *testing.T) {
	src := &fakeSource{mdErr: ErrNoManifest}
	p := newTestPool(t, context.Background(), src, 2)

	results := p.Wait()
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

func TestPoolOnResult(t *testing.T) {
	src := &fakeSource{
		md:      Metadata{License: "ISC"},
		repoErr: errors.New("registry down"),
	}
	p := newTestPool(t, context.Background(), src, 2)

	var mu sync.Mutex
	var seen []string
	p.SetOnResult(func(rec *Record) {
		mu.Lock()
		seen = append(seen, rec.Name)
		mu.Unlock()
	})

	p.Enqueue(context.Background(), Job{Name: "alpha"}, Job{Name: "beta"})
	p.Wait()

	if len(seen) != 2 {
		t.Errorf("callback fired %d times, want 2", len(seen))
	}
}

func TestPoolCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &fakeSource{md: Metadata{License: "MIT"}}
	p := newTestPool(t, ctx, src, 2)

	p.Enqueue(ctx, Job{Name: "alpha"}, Job{Name: "beta"})
	results := p.Wait()

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2, cancellation must not lose records", len(results))
	}
	for _, rec := range results {
		if rec.Missing != ReasonNoWebMatch {
			t.Errorf("%s: missing = %q", rec.Name, rec.Missing)
		}
	}
}
