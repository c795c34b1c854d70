package geo

import (
	"fmt"
	"math"
	"math/rand"
)

// DemoGrid builds a deterministic synthetic geometry of n units laid out on
// a jittered grid inside a width x height canvas. Useful for trying the
// layouts without a real projected dataset, and for tests.
func DemoGrid(n int, width, height float64) []Unit {
	rng := rand.New(rand.NewSource(int64(n)))
	cols := int(math.Ceil(math.Sqrt(float64(n) * width / height)))
	if cols < 1 {
		cols = 1
	}
	rows := (n + cols - 1) / cols

	cellW := width / float64(cols+1)
	cellH := height / float64(rows+1)

	units := make([]Unit, 0, n)
	for i := 0; i < n; i++ {
		col := i % cols
		row := i / cols
		cx := cellW * (float64(col) + 1 + 0.3*(rng.Float64()-0.5))
		cy := cellH * (float64(row) + 1 + 0.3*(rng.Float64()-0.5))
		// Area spread over roughly two orders of magnitude, like real
		// county projections.
		area := cellW * cellH * (0.1 + 0.9*rng.Float64())
		units = append(units, Unit{
			ID:            fmt.Sprintf("%05d", i+1),
			Name:          fmt.Sprintf("Unit %d", i+1),
			Centroid:      Point{X: cx, Y: cy},
			ProjectedArea: area,
		})
	}
	return units
}
