// Package engine is the facade the rendering layer talks to: synchronous
// cache-backed layout computation, background precomputation with progress,
// and per-unit color lookup at arbitrary points in time.
//
// All failures are absorbed here per the degradation policy: a layout that
// cannot be computed comes back nil and the caller falls back to boundary
// paths or a previously shown frame; nothing surfaces as a hard fault.
package engine

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/votemap/internal/colors"
	"github.com/san-kum/votemap/internal/dataset"
	"github.com/san-kum/votemap/internal/geo"
	"github.com/san-kum/votemap/internal/layout"
	"github.com/san-kum/votemap/internal/sched"
)

// PublishFunc receives a freshly precomputed layout for the period the view
// is currently showing.
type PublishFunc func(period int, positions map[string]layout.Position)

type Engine struct {
	units   []geo.Unit
	ds      *dataset.Dataset
	layouts *layout.Engine
	cache   *layout.Cache
	pool    *sched.Pool
	palette colors.Palette
	logger  *log.Logger

	mu        sync.Mutex
	mode      layout.Mode
	displayed int
	publish   PublishFunc
}

// Options configures optional engine behavior.
type Options struct {
	// Workers overrides the background pool size; 0 picks the hardware
	// default.
	Workers int
	// Publish is called when a background job finishes for the period
	// currently displayed while the cartogram mode is active.
	Publish PublishFunc
	Logger  *log.Logger
}

func New(units []geo.Unit, ds *dataset.Dataset, canvas layout.Canvas, palette colors.Palette, opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	e := &Engine{
		units:   units,
		ds:      ds,
		layouts: layout.NewEngine(units, canvas),
		cache:   layout.NewCache(),
		palette: palette,
		logger:  logger,
		mode:    layout.ModeGeographic,
		publish: opts.Publish,
	}
	e.pool = sched.New(e.layouts, e.cache, logger, opts.Workers, e.onBackgroundComplete)
	if b := geo.BoundsOf(units); b.MaxX > canvas.Width || b.MaxY > canvas.Height {
		// Geometry is expected preprojected into canvas units; circles
		// for anything outside will be clipped by the renderer.
		logger.Warn("geometry extends beyond the canvas",
			"geometry", fmt.Sprintf("%.0fx%.0f", b.Width(), b.Height()),
			"canvas", fmt.Sprintf("%.0fx%.0f", canvas.Width, canvas.Height))
	}
	return e
}

func (e *Engine) Units() []geo.Unit         { return e.units }
func (e *Engine) Dataset() *dataset.Dataset { return e.ds }
func (e *Engine) Palette() colors.Palette   { return e.palette }
func (e *Engine) Canvas() layout.Canvas     { return e.layouts.Canvas() }

// ComputeLayout returns positions for (mode, period), computing and caching
// on a miss. Geographic mode needs no layout and returns nil; so do missing
// geometry and zero-vote periods.
func (e *Engine) ComputeLayout(mode layout.Mode, period int) map[string]layout.Position {
	if mode == layout.ModeGeographic || len(e.units) == 0 {
		return nil
	}
	if cached, ok := e.cache.Get(mode, period); ok {
		return cached
	}
	attrs := e.ds.Period(period)
	if attrs == nil {
		return nil
	}
	positions := e.layouts.Compute(mode, attrs)
	if positions == nil {
		// Zero aggregate votes: skipped, not cached, not fatal.
		e.logger.Warn("layout undefined for period", "mode", mode, "period", period)
		return nil
	}
	return e.cache.Put(mode, period, positions)
}

// SetMode records the active arrangement. Leaving the cartogram cancels any
// background fill; its precomputed frames stay cached.
func (e *Engine) SetMode(mode layout.Mode) {
	e.mu.Lock()
	prev := e.mode
	e.mode = mode
	e.mu.Unlock()
	if prev == layout.ModeCartogram && mode != layout.ModeCartogram {
		e.pool.Cancel()
	}
}

func (e *Engine) Mode() layout.Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// SetPublish installs the publish callback after construction, for callers
// like the TUI whose message loop exists only once the engine does.
func (e *Engine) SetPublish(fn PublishFunc) {
	e.mu.Lock()
	e.publish = fn
	e.mu.Unlock()
}

// SetDisplayed records which sampled period the view is showing, so freshly
// precomputed frames for it can be published immediately.
func (e *Engine) SetDisplayed(period int) {
	e.mu.Lock()
	e.displayed = period
	e.mu.Unlock()
}

// StartBackgroundFill precomputes every missing cartogram period. Only the
// cartogram has a background pathway; other modes are cheap enough to
// compute on demand.
func (e *Engine) StartBackgroundFill() {
	jobs := sched.MissingJobs(e.ds, e.cache, layout.ModeCartogram)
	if len(jobs) == 0 {
		return
	}
	e.pool.Start(jobs)
}

// CancelBackgroundFill stops the pool; idempotent. Called on mode changes
// away from the cartogram, on dataset swaps, and on view teardown.
func (e *Engine) CancelBackgroundFill() { e.pool.Cancel() }

// WaitBackgroundFill blocks until the current fill drains. Intended for the
// CLI precompute command and tests.
func (e *Engine) WaitBackgroundFill() { e.pool.Wait() }

// Progress reports background fill completion.
func (e *Engine) Progress() sched.Progress { return e.pool.Progress() }

// Close releases the engine's background resources.
func (e *Engine) Close() { e.pool.Cancel() }

func (e *Engine) onBackgroundComplete(period int, positions map[string]layout.Position) {
	e.mu.Lock()
	publish := e.publish
	hit := e.mode == layout.ModeCartogram && e.displayed == period
	e.mu.Unlock()
	if hit && publish != nil {
		publish(period, positions)
	}
}

// ColorFor blends the display color for one unit at continuous time t.
// Units without data at t get the no-data color.
func (e *Engine) ColorFor(id string, t float64, policy colors.Policy) colorful.Color {
	rec, ok := e.ds.At(id, t)
	if !ok || rec.Total <= 0 {
		return e.palette.NoData
	}
	dem, rep, other := rec.Shares()
	return e.palette.Blend(policy, dem, rep, other)
}
