// Package dataset holds per-period vote attributes and derives attributes at
// arbitrary points in time between the sampled election years.
package dataset

import (
	"errors"
	"fmt"
	"sort"
)

// Domain errors for dataset access.
var (
	// ErrNoPeriods indicates a dataset with no sampled years.
	ErrNoPeriods = errors.New("dataset: no sampled periods")

	// ErrUnknownPeriod indicates a year with no attribute data.
	ErrUnknownPeriod = errors.New("dataset: unknown period")
)

// MinorEntry names one candidate inside the residual category.
type MinorEntry struct {
	Candidate string
	Votes     float64
}

// Record is the attribute tuple for one unit in one period. Dem and Rep are
// the two major categories, Other the residual; MinorA/MinorB optionally name
// the two largest candidates inside the residual.
type Record struct {
	Dem   float64
	Rep   float64
	Other float64
	Total float64

	MinorA *MinorEntry
	MinorB *MinorEntry
}

// Shares returns the three-way normalized shares (dem, rep, other).
// A zero Total yields all zeros.
func (r Record) Shares() (float64, float64, float64) {
	if r.Total <= 0 {
		return 0, 0, 0
	}
	return r.Dem / r.Total, r.Rep / r.Total, r.Other / r.Total
}

// TwoPartyShare returns rep/(dem+rep), the quantity the scatter layout
// encodes on its x axis. Units with no major-party votes report 0.5.
func (r Record) TwoPartyShare() float64 {
	major := r.Dem + r.Rep
	if major <= 0 {
		return 0.5
	}
	return r.Rep / major
}

// Dataset maps sampled years to per-unit records. Immutable once built.
type Dataset struct {
	years []int
	data  map[int]map[string]Record
}

// New builds a Dataset. The year list is derived from the map keys and kept
// sorted ascending.
func New(data map[int]map[string]Record) *Dataset {
	years := make([]int, 0, len(data))
	for y := range data {
		years = append(years, y)
	}
	sort.Ints(years)
	return &Dataset{years: years, data: data}
}

// Years returns the sampled years in ascending order. Callers must not
// modify the returned slice.
func (d *Dataset) Years() []int { return d.years }

// Period returns all unit records for one sampled year, or nil.
func (d *Dataset) Period(year int) map[string]Record { return d.data[year] }

// Record returns the stored record for a unit in a sampled year.
func (d *Dataset) Record(year int, id string) (Record, bool) {
	rec, ok := d.data[year][id]
	return rec, ok
}

// ResolveYear validates a requested year against the sampled periods. Zero
// selects the latest year. A year with no data reports ErrUnknownPeriod,
// naming the nearest sampled year.
func (d *Dataset) ResolveYear(year int) (int, error) {
	if len(d.years) == 0 {
		return 0, ErrNoPeriods
	}
	if year == 0 {
		return d.years[len(d.years)-1], nil
	}
	if _, ok := d.data[year]; ok {
		return year, nil
	}
	nearest, _ := d.NearestYear(float64(year))
	return 0, fmt.Errorf("%w: %d (nearest sampled year is %d)", ErrUnknownPeriod, year, nearest)
}

// NearestYear returns the sampled year closest to t, preferring the earlier
// year on an exact midpoint. Returns false when the dataset is empty.
func (d *Dataset) NearestYear(t float64) (int, bool) {
	if len(d.years) == 0 {
		return 0, false
	}
	best := d.years[0]
	bestDist := abs(t - float64(best))
	for _, y := range d.years[1:] {
		if dist := abs(t - float64(y)); dist < bestDist {
			best, bestDist = y, dist
		}
	}
	return best, true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
