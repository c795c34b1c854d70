package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/votemap/internal/dataset"
)

// Trend plots the two-party split over the sampled years, either for one
// unit or aggregated over all units when id is empty. Values are the
// Democratic share of the two-party vote in percent.
func Trend(ds *dataset.Dataset, id string, width, height int) string {
	years := ds.Years()
	if len(years) == 0 {
		return "no data"
	}

	series := make([]float64, 0, len(years))
	for _, year := range years {
		var dem, rep float64
		if id == "" {
			for _, rec := range ds.Period(year) {
				dem += rec.Dem
				rep += rec.Rep
			}
		} else {
			rec, ok := ds.Record(year, id)
			if !ok {
				series = append(series, 50)
				continue
			}
			dem, rep = rec.Dem, rec.Rep
		}
		if dem+rep == 0 {
			series = append(series, 50)
			continue
		}
		series = append(series, 100*dem/(dem+rep))
	}

	caption := fmt.Sprintf("dem share of two-party vote, %d-%d", years[0], years[len(years)-1])
	if id != "" {
		caption = fmt.Sprintf("unit %s: %s", id, caption)
	}

	plot := asciigraph.Plot(series,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	)
	return strings.TrimRight(plot, "\n")
}
