// Package sched precomputes cartogram layouts for every period not yet in
// the cache, on a small pool of background workers. Workers share a single
// atomic cursor over the job list; each failure is logged and counted so the
// fill always runs to completion, and cancellation discards any result that
// arrives late.
package sched

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/san-kum/votemap/internal/dataset"
	"github.com/san-kum/votemap/internal/layout"
)

// ErrZeroScale marks a period whose aggregate vote count is zero; the layout
// is undefined and no cache entry is written.
var ErrZeroScale = errors.New("sched: period has zero aggregate votes")

// backgroundStrength is the cartogram spring used for precomputed frames.
// The interactive path uses layout.CartogramStrength (0.85); the two are
// intentionally distinct, see DESIGN.md.
const backgroundStrength = 0.45

// Pool size bounds around hardware concurrency.
const (
	minWorkers = 2
	maxWorkers = 6
)

// Job describes one period to precompute.
type Job struct {
	Period     int
	Attributes map[string]dataset.Record
}

// Progress is a monotonic completion counter over one fill.
type Progress struct {
	Completed int
	Total     int
}

// fill is the state of one background run. Each Start creates a fresh fill
// with its own cursor and counters, so a cancelled predecessor can keep
// draining without touching its successor.
type fill struct {
	cancel context.CancelFunc
	done   chan struct{}

	// running is guarded by Pool.mu. Cleared by Cancel and again when the
	// collector drains, whichever comes first.
	running bool

	cursor    atomic.Int64
	completed atomic.Int64
	total     atomic.Int64
}

// Pool runs background cartogram fills. A Pool is tied to one layout engine
// and one cache; Start may be called again immediately after Cancel, even
// while the cancelled fill's workers are still draining.
type Pool struct {
	engine *layout.Engine
	cache  *layout.Cache
	logger *log.Logger
	size   int

	// onComplete fires on each successful job with the cached positions.
	// The engine uses it to publish the currently displayed period as soon
	// as it lands.
	onComplete func(period int, positions map[string]layout.Position)

	mu sync.Mutex
	// cur is the latest fill. Kept after it drains so Progress and Wait
	// keep reporting the most recent run.
	cur *fill
}

// PoolSize clamps hardware concurrency minus one into [2, 6], keeping one
// core free for the foreground.
func PoolSize() int {
	n := runtime.NumCPU() - 1
	if n < minWorkers {
		return minWorkers
	}
	if n > maxWorkers {
		return maxWorkers
	}
	return n
}

// New builds a Pool. size <= 0 selects PoolSize(). onComplete may be nil.
func New(engine *layout.Engine, cache *layout.Cache, logger *log.Logger, size int,
	onComplete func(int, map[string]layout.Position)) *Pool {
	if size <= 0 {
		size = PoolSize()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Pool{
		engine:     engine,
		cache:      cache,
		logger:     logger,
		size:       size,
		onComplete: onComplete,
	}
}

// Start launches workers over jobs. A fill still running is left alone; a
// cancelled or finished one is replaced, without waiting for its workers to
// drain.
func (p *Pool) Start(jobs []Job) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cur != nil && p.cur.running {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	f := &fill{
		cancel:  cancel,
		done:    make(chan struct{}),
		running: true,
	}
	f.total.Store(int64(len(jobs)))
	p.cur = f

	type result struct {
		period    int
		positions map[string]layout.Position
		err       error
	}
	results := make(chan result, p.size)

	var wg sync.WaitGroup
	for w := 0; w < p.size; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				idx := int(f.cursor.Add(1) - 1)
				if idx >= len(jobs) || ctx.Err() != nil {
					return
				}
				job := jobs[idx]
				positions := p.engine.CartogramWithStrength(job.Attributes, backgroundStrength)
				res := result{period: job.Period, positions: positions}
				if positions == nil {
					res.err = ErrZeroScale
				}
				select {
				case results <- res:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(f.done)
		defer p.retire(f)
		defer cancel()
		for res := range results {
			// A result racing a cancellation is discarded, never
			// applied.
			if ctx.Err() != nil {
				continue
			}
			if res.err != nil {
				// Counted complete without caching; the period
				// stays uncomputed this session, no retry.
				p.logger.Error("background layout failed",
					"period", res.period, "err", res.err)
				f.completed.Add(1)
				continue
			}
			canonical := p.cache.Put(layout.ModeCartogram, res.period, res.positions)
			f.completed.Add(1)
			p.logger.Debug("background layout cached", "period", res.period)
			if p.onComplete != nil {
				p.onComplete(res.period, canonical)
			}
		}
	}()
}

// Cancel stops the current fill. Idempotent; safe with no fill running. The
// fill is marked not-running right away, so a following Start begins a fresh
// run while the old workers exit at their next cursor pull or result send.
func (p *Pool) Cancel() {
	p.mu.Lock()
	f := p.cur
	if f != nil {
		f.running = false
	}
	p.mu.Unlock()
	if f != nil {
		f.cancel()
	}
}

func (p *Pool) retire(f *fill) {
	p.mu.Lock()
	f.running = false
	p.mu.Unlock()
}

// Wait blocks until the latest fill drains (complete or cancelled). Returns
// immediately when no fill was ever started.
func (p *Pool) Wait() {
	p.mu.Lock()
	f := p.cur
	p.mu.Unlock()
	if f != nil {
		<-f.done
	}
}

// Progress reports the monotonic completion counter for the latest fill.
func (p *Pool) Progress() Progress {
	p.mu.Lock()
	f := p.cur
	p.mu.Unlock()
	if f == nil {
		return Progress{}
	}
	return Progress{
		Completed: int(f.completed.Load()),
		Total:     int(f.total.Load()),
	}
}

// MissingJobs lists the periods of ds that mode has no cache entry for, in
// ascending year order.
func MissingJobs(ds *dataset.Dataset, cache *layout.Cache, mode layout.Mode) []Job {
	var jobs []Job
	for _, year := range ds.Years() {
		if cache.Has(mode, year) {
			continue
		}
		jobs = append(jobs, Job{Period: year, Attributes: ds.Period(year)})
	}
	return jobs
}
