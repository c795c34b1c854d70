// Package export writes one computed frame (positions plus colors) to SVG
// or JSON for use outside the terminal.
package export

import (
	"fmt"
	"io"
	"sort"

	svg "github.com/ajstarks/svgo"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/votemap/internal/geo"
	"github.com/san-kum/votemap/internal/layout"
)

// FillFunc resolves the fill color for a unit id.
type FillFunc func(id string) colorful.Color

// SVG renders a frame. With positions it draws circles; without (the
// geographic mode) it draws each unit's boundary path instead. Units are
// emitted in id order so output is diffable.
func SVG(w io.Writer, canvas layout.Canvas, units []geo.Unit, positions map[string]layout.Position, fill FillFunc) {
	c := svg.New(w)
	c.Start(int(canvas.Width), int(canvas.Height))
	c.Rect(0, 0, int(canvas.Width), int(canvas.Height), "fill:white")

	ordered := make([]geo.Unit, len(units))
	copy(ordered, units)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	for _, u := range ordered {
		style := fmt.Sprintf("fill:%s;stroke:#333;stroke-width:0.4", fill(u.ID).Hex())
		if positions == nil {
			if u.Path != "" {
				c.Path(u.Path, style)
			}
			continue
		}
		p, ok := positions[u.ID]
		if !ok {
			continue
		}
		c.Circle(int(p.X), int(p.Y), int(p.R+0.5), style)
	}
	c.End()
}
