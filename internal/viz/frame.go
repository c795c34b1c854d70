package viz

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/votemap/internal/geo"
	"github.com/san-kum/votemap/internal/layout"
)

// FillFunc resolves the color for one unit id.
type FillFunc func(id string) colorful.Color

// Frame rasterizes one layout onto a fresh canvas of cols x rows character
// cells, scaling from the layout canvas. Without positions (geographic mode)
// units are drawn as dots at their centroids, area-scaled.
func Frame(cols, rows int, canvas layout.Canvas, units []geo.Unit, positions map[string]layout.Position, fill FillFunc) *Canvas {
	c := NewCanvas(cols, rows)
	sx := float64(cols*2) / canvas.Width
	sy := float64(rows*4) / canvas.Height
	scale := min(sx, sy)

	for _, u := range units {
		hex := fill(u.ID).Hex()
		if positions == nil {
			r := math.Sqrt(u.ProjectedArea/math.Pi) * scale
			c.FillCircle(u.Centroid.X*scale, u.Centroid.Y*scale, r, hex)
			continue
		}
		p, ok := positions[u.ID]
		if !ok {
			continue
		}
		c.FillCircle(p.X*scale, p.Y*scale, p.R*scale, hex)
	}
	return c
}
