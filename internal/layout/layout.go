// Package layout turns units plus one period of vote attributes into circle
// positions, one algorithm per arrangement mode.
package layout

import (
	"math"
	"strings"

	"github.com/san-kum/votemap/internal/dataset"
	"github.com/san-kum/votemap/internal/geo"
)

// Mode selects one of the four spatial arrangements.
type Mode int

const (
	// ModeGeographic draws units on their boundary paths; it needs no
	// computed layout and no cache entry.
	ModeGeographic Mode = iota
	// ModeCartogram sizes circles by total votes, anchored at centroids.
	ModeCartogram
	// ModeGrid packs circles by descending total into a 4:3 block.
	ModeGrid
	// ModeScatter spreads circles by two-party share horizontally and
	// magnitude vertically.
	ModeScatter
)

func (m Mode) String() string {
	switch m {
	case ModeGeographic:
		return "geographic"
	case ModeCartogram:
		return "cartogram"
	case ModeGrid:
		return "grid"
	case ModeScatter:
		return "scatter"
	default:
		return "unknown"
	}
}

// ParseMode maps a mode name to its Mode. Unknown names report false.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(s) {
	case "geographic", "geo", "map":
		return ModeGeographic, true
	case "cartogram", "bubble":
		return ModeCartogram, true
	case "grid", "sorted":
		return ModeGrid, true
	case "scatter", "spectrum":
		return ModeScatter, true
	default:
		return ModeGeographic, false
	}
}

// Position is the computed placement for one unit in one (mode, period).
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	R float64 `json:"r"`
}

// Canvas describes the target drawing area in projected units.
type Canvas struct {
	Width    float64
	Height   float64
	PaddingX float64
	// MaxSpread bounds how far scatter circles sit from the vertical
	// center line.
	MaxSpread float64
}

// Area floor so zero-vote units still get a visible dot instead of
// disappearing or producing a degenerate radius.
const minCircleArea = 0.1

// Foreground cartogram tuning. The background precomputation path uses a
// softer spring (see sched); the two are intentionally kept as separate
// constants.
const (
	CartogramStrength       = 0.85
	cartogramCollisionIters = 3
	cartogramTicks          = 150
)

// Engine computes layouts against a fixed unit list and canvas.
type Engine struct {
	units  []geo.Unit
	canvas Canvas
}

func NewEngine(units []geo.Unit, canvas Canvas) *Engine {
	return &Engine{units: units, canvas: canvas}
}

func (e *Engine) Units() []geo.Unit { return e.units }
func (e *Engine) Canvas() Canvas    { return e.canvas }

// Compute dispatches to the per-mode algorithm. Geographic mode and periods
// with zero aggregate votes return nil: the caller falls back to boundary
// paths or a prior layout.
func (e *Engine) Compute(mode Mode, period map[string]dataset.Record) map[string]Position {
	switch mode {
	case ModeCartogram:
		return e.Cartogram(period)
	case ModeGrid:
		return e.Grid(period)
	case ModeScatter:
		return e.Scatter(period)
	default:
		return nil
	}
}

// scaleFactor computes S = Σ(projectedArea)/Σ(total) so that circle areas
// collectively conserve the projected map area. Zero aggregate votes make
// the layout undefined and S reports false.
func (e *Engine) scaleFactor(period map[string]dataset.Record) (float64, bool) {
	var totalVotes float64
	for _, u := range e.units {
		totalVotes += period[u.ID].Total
	}
	if totalVotes == 0 {
		return 0, false
	}
	return geo.TotalArea(e.units) / totalVotes, true
}

// radiusFor sizes one unit's circle: area proportional to total votes,
// floored at minCircleArea.
func radiusFor(total, scale float64) float64 {
	return math.Sqrt(math.Max(minCircleArea, total*scale) / math.Pi)
}
