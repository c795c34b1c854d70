package layout

import (
	"github.com/san-kum/votemap/internal/dataset"
	"github.com/san-kum/votemap/internal/relax"
)

// Cartogram computes the size-proportional layout with the interactive
// tuning. Circles start at, and are pulled back toward, their geographic
// centroids while collisions push them apart.
func (e *Engine) Cartogram(period map[string]dataset.Record) map[string]Position {
	return e.CartogramWithStrength(period, CartogramStrength)
}

// CartogramWithStrength is the same algorithm with a caller-chosen spring
// strength. The background precomputation path passes a softer spring than
// the interactive one.
func (e *Engine) CartogramWithStrength(period map[string]dataset.Record, strength float64) map[string]Position {
	scale, ok := e.scaleFactor(period)
	if !ok {
		return nil
	}

	nodes := make([]relax.Node, len(e.units))
	for i, u := range e.units {
		nodes[i] = relax.Node{
			ID:      u.ID,
			X:       u.Centroid.X,
			Y:       u.Centroid.Y,
			TargetX: u.Centroid.X,
			TargetY: u.Centroid.Y,
			Radius:  radiusFor(period[u.ID].Total, scale),
		}
	}

	relax.Relax(nodes, relax.Options{
		XStrength:           strength,
		YStrength:           strength,
		CollisionIterations: cartogramCollisionIters,
		Ticks:               cartogramTicks,
	})

	out := make(map[string]Position, len(nodes))
	for _, n := range nodes {
		out[n.ID] = Position{X: n.X, Y: n.Y, R: n.Radius}
	}
	return out
}
