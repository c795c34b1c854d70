package layout

import (
	"math"
	"sort"

	"github.com/san-kum/votemap/internal/dataset"
)

// Sorted-grid packing constants: circles never tile a rectangle perfectly,
// so the target block is oversized by a fixed slack, at a 4:3 aspect ratio.
const (
	gridPackingSlack = 1.35
	gridAspectX      = 4.0
	gridAspectY      = 3.0
)

// Grid arranges circles by descending total into a rectangular block and
// centers the block on the canvas. Single greedy row-filling pass; no
// backtracking.
func (e *Engine) Grid(period map[string]dataset.Record) map[string]Position {
	scale, ok := e.scaleFactor(period)
	if !ok {
		return nil
	}

	type circle struct {
		id    string
		total float64
		r     float64
	}
	circles := make([]circle, len(e.units))
	occupied := 0.0
	for i, u := range e.units {
		total := period[u.ID].Total
		r := radiusFor(total, scale)
		circles[i] = circle{id: u.ID, total: total, r: r}
		occupied += math.Pi * r * r
	}
	sort.SliceStable(circles, func(i, j int) bool {
		return circles[i].total > circles[j].total
	})

	estArea := gridPackingSlack * occupied
	rectWidth := math.Sqrt(estArea * gridAspectX / gridAspectY)

	out := make(map[string]Position, len(circles))
	var x, y, rowHeight, maxRight float64
	for i, c := range circles {
		d := 2 * c.r
		if i > 0 && x+d > rectWidth {
			x = 0
			y += rowHeight
			rowHeight = d
		} else if rowHeight < d {
			rowHeight = d
		}
		out[c.id] = Position{X: x + c.r, Y: y + rowHeight/2, R: c.r}
		x += d
		if x > maxRight {
			maxRight = x
		}
	}

	// Translate the block so its bounding box centers on the canvas.
	blockHeight := y + rowHeight
	dx := (e.canvas.Width - maxRight) / 2
	dy := (e.canvas.Height - blockHeight) / 2
	for id, p := range out {
		p.X += dx
		p.Y += dy
		out[id] = p
	}
	return out
}
