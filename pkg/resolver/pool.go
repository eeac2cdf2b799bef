package resolver

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/licensescout/pkg/integrations/github"
	"github.com/matzehuels/licensescout/pkg/probe"
)

// DefaultConcurrency is the number of resolver goroutines run in parallel.
// It bounds outbound request pressure on registries and hosting APIs.
const DefaultConcurrency = 4

// Job names one dependency to resolve.
type Job struct {
	// Name is the package identifier.
	Name string
	// InstallLocation is the on-disk install directory, "" for
	// registry-only ecosystems.
	InstallLocation string
}

// Config collects everything a resolution run needs. All run state lives
// here or in the pool; nothing is process-global.
type Config struct {
	// Source adapts the chosen ecosystem.
	Source Source

	// Prober checks candidate license URLs. Required.
	Prober *probe.Prober

	// GitHub enables license-API lookups for github.com repositories.
	// Nil disables them.
	GitHub *github.Client

	// Concurrency is the worker count; zero means DefaultConcurrency.
	Concurrency int

	// Refresh bypasses cached HTTP responses.
	Refresh bool

	// Logger receives per-record progress. Nil means log.Default().
	Logger *log.Logger

	// OnResult, when set, is called from a worker goroutine each time a
	// record reaches a terminal state. Used for progress display.
	OnResult func(*Record)
}

// Pool fans resolution out over a bounded worker set.
//
// Jobs may be enqueued incrementally while workers are already draining the
// queue, but all Enqueue calls must happen before Wait. Enqueuing is
// de-duplicated by name: the first occurrence wins.
type Pool struct {
	cfg      Config
	resolver *Resolver
	logger   *log.Logger

	jobs    chan *Record
	workers sync.WaitGroup
	pending sync.WaitGroup

	mu      sync.Mutex
	seen    map[string]bool
	results []*Record

	closing int32
}

// NewPool builds a pool and starts its workers. Callers must eventually call
// Wait to reap them.
func NewPool(ctx context.Context, cfg Config) *Pool {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	p := &Pool{
		cfg:      cfg,
		resolver: NewResolver(cfg.Source, cfg.Prober, cfg.GitHub, logger, cfg.Refresh),
		logger:   logger,
		jobs:     make(chan *Record, cfg.Concurrency*2),
		seen:     make(map[string]bool),
	}
	for i := 0; i < cfg.Concurrency; i++ {
		p.workers.Add(1)
		go p.worker(ctx)
	}
	return p
}

// SetOnResult registers the terminal-state callback. It must be called
// before the first Enqueue.
func (p *Pool) SetOnResult(fn func(*Record)) {
	p.cfg.OnResult = fn
}

// Enqueue accepts jobs for resolution, skipping names already seen this run.
// It returns the number of jobs actually accepted.
func (p *Pool) Enqueue(ctx context.Context, jobs ...Job) int {
	if atomic.LoadInt32(&p.closing) == 1 {
		return 0
	}
	accepted := 0
	for _, j := range jobs {
		p.mu.Lock()
		if p.seen[j.Name] {
			p.mu.Unlock()
			continue
		}
		p.seen[j.Name] = true
		p.mu.Unlock()

		accepted++
		p.pending.Add(1)
		rec := &Record{Name: j.Name, InstallLocation: j.InstallLocation}

		// Send from a goroutine so callers never block on a full queue.
		go func() {
			select {
			case p.jobs <- rec:
			case <-ctx.Done():
				rec.Missing = ReasonNoWebMatch
				p.finish(rec)
			}
		}()
	}
	return accepted
}

// Wait blocks until every accepted job is terminal, then shuts the workers
// down and returns the collected records in completion order. A pool with no
// accepted jobs returns an empty slice immediately.
func (p *Pool) Wait() []*Record {
	p.pending.Wait()
	atomic.StoreInt32(&p.closing, 1)
	close(p.jobs)
	p.workers.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.results
}

// worker drains the job queue, running the state machine per record.
func (p *Pool) worker(ctx context.Context) {
	defer p.workers.Done()
	for rec := range p.jobs {
		if ctx.Err() == nil {
			p.resolver.Resolve(ctx, rec)
			p.logger.Debug("resolved", "package", rec.Name,
				"license", rec.License, "missing", string(rec.Missing))
		} else {
			rec.Missing = ReasonNoWebMatch
		}
		if p.cfg.OnResult != nil {
			p.cfg.OnResult(rec)
		}
		p.finish(rec)
	}
}

// finish records a terminal result and marks its job complete.
func (p *Pool) finish(rec *Record) {
	p.mu.Lock()
	p.results = append(p.results, rec)
	p.mu.Unlock()
	p.pending.Done()
}
