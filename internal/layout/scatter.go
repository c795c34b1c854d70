package layout

import (
	"math"

	"github.com/san-kum/votemap/internal/dataset"
	"github.com/san-kum/votemap/internal/relax"
)

// Scatter tuning: x encodes the two-party share and must be preserved, so
// its spring is much stiffer than y. Fewer ticks than the cartogram; this
// mode favors responsiveness over settled packing.
const (
	scatterXStrength      = 2.0
	scatterYStrength      = 0.5
	scatterCollisionIters = 2
	scatterTicks          = 40
)

// Scatter computes the bivariate layout: horizontal position from the
// Rep/(Dem+Rep) share, vertical offset from the square root of relative
// magnitude, alternating above/below the center line by unit index so the
// relaxation has something to spread.
func (e *Engine) Scatter(period map[string]dataset.Record) map[string]Position {
	scale, ok := e.scaleFactor(period)
	if !ok {
		return nil
	}

	maxTotal := 0.0
	for _, u := range e.units {
		if t := period[u.ID].Total; t > maxTotal {
			maxTotal = t
		}
	}

	span := e.canvas.Width - 2*e.canvas.PaddingX
	centerY := e.canvas.Height / 2

	nodes := make([]relax.Node, len(e.units))
	for i, u := range e.units {
		rec := period[u.ID]
		tx := e.canvas.PaddingX + rec.TwoPartyShare()*span

		side := 1.0
		if i%2 == 1 {
			side = -1.0
		}
		ty := centerY + side*math.Sqrt(rec.Total/maxTotal)*e.canvas.MaxSpread

		nodes[i] = relax.Node{
			ID:      u.ID,
			X:       tx,
			Y:       ty,
			TargetX: tx,
			TargetY: ty,
			Radius:  radiusFor(rec.Total, scale),
		}
	}

	relax.Relax(nodes, relax.Options{
		XStrength:           scatterXStrength,
		YStrength:           scatterYStrength,
		CollisionIterations: scatterCollisionIters,
		Ticks:               scatterTicks,
	})

	out := make(map[string]Position, len(nodes))
	for _, n := range nodes {
		out[n.ID] = Position{X: n.X, Y: n.Y, R: n.Radius}
	}
	return out
}
