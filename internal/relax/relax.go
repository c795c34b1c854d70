// Package relax implements the fixed-step spring/collision solver shared by
// the circle layouts. Each tick pulls every node toward its per-axis target
// and then runs a bounded number of pairwise overlap-resolution sweeps. The
// solver always runs the configured number of ticks: cost is deterministic,
// equilibrium is not guaranteed.
package relax

import "math"

// collidePadding extends every node's collision radius so settled circles
// keep a visible gap.
const collidePadding = 0.5

// Node is the transient state for one circle during a relaxation run. A Node
// slice is owned exclusively by the run that created it.
type Node struct {
	ID      string
	X, Y    float64
	TargetX float64
	TargetY float64
	Radius  float64
}

// Options tunes one relaxation run. Call sites deliberately use different
// tuples; there is no shared default.
type Options struct {
	XStrength           float64
	YStrength           float64
	CollisionIterations int
	Ticks               int
}

// Relax advances nodes for exactly opts.Ticks iterations and returns the
// same slice. No convergence check, no early exit.
func Relax(nodes []Node, opts Options) []Node {
	for tick := 0; tick < opts.Ticks; tick++ {
		for i := range nodes {
			n := &nodes[i]
			n.X += opts.XStrength * (n.TargetX - n.X)
			n.Y += opts.YStrength * (n.TargetY - n.Y)
		}
		for iter := 0; iter < opts.CollisionIterations; iter++ {
			resolveOverlaps(nodes)
		}
	}
	return nodes
}

// resolveOverlaps runs one sweep over all pairs, pushing overlapping circles
// apart along their center line, half the overlap each.
func resolveOverlaps(nodes []Node) {
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			a, b := &nodes[i], &nodes[j]
			minDist := a.Radius + b.Radius + 2*collidePadding

			dx := b.X - a.X
			dy := b.Y - a.Y
			dist2 := dx*dx + dy*dy
			if dist2 >= minDist*minDist {
				continue
			}

			if dist2 == 0 {
				// Coincident centers: separate along x, lower index
				// to the left, so the outcome stays deterministic.
				dx, dist2 = 1e-6, 1e-12
			}
			dist := math.Sqrt(dist2)
			overlap := minDist - dist
			ux := dx / dist
			uy := dy / dist

			a.X -= ux * overlap / 2
			a.Y -= uy * overlap / 2
			b.X += ux * overlap / 2
			b.Y += uy * overlap / 2
		}
	}
}
