package dataset

import (
	"math"
	"math/rand"

	"github.com/san-kum/votemap/internal/geo"
)

// Demo synthesizes deterministic attribute data for the given units over the
// given years: a per-unit partisan lean that drifts over time, turnout
// proportional to projected area, and an occasional named third-party run.
func Demo(units []geo.Unit, years []int) *Dataset {
	rng := rand.New(rand.NewSource(int64(len(units))*1000 + int64(len(years))))

	lean := make(map[string]float64, len(units))
	for _, u := range units {
		lean[u.ID] = 0.30 + 0.40*rng.Float64()
	}

	data := make(map[int]map[string]Record, len(years))
	for yi, year := range years {
		swing := 0.06 * math.Sin(float64(yi))
		period := make(map[string]Record, len(units))
		for _, u := range units {
			turnout := 200 + u.ProjectedArea*(0.8+0.4*rng.Float64())
			demShare := clamp01(lean[u.ID] + swing + 0.03*(rng.Float64()-0.5))
			otherShare := 0.02 + 0.06*rng.Float64()

			rec := Record{Total: turnout}
			rec.Other = turnout * otherShare
			rec.Dem = (turnout - rec.Other) * demShare
			rec.Rep = turnout - rec.Other - rec.Dem
			if yi%2 == 0 {
				rec.MinorA = &MinorEntry{Candidate: "WRITE-IN", Votes: rec.Other * 0.7}
			}
			period[u.ID] = rec
		}
		data[year] = period
	}
	return New(data)
}

func clamp01(v float64) float64 {
	if v < 0.05 {
		return 0.05
	}
	if v > 0.95 {
		return 0.95
	}
	return v
}
