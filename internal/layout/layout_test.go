package layout

import (
	"math"
	"testing"

	"github.com/san-kum/votemap/internal/dataset"
	"github.com/san-kum/votemap/internal/geo"
)

func testUnits() []geo.Unit {
	return []geo.Unit{
		{ID: "a", Centroid: geo.Point{X: 100, Y: 100}, ProjectedArea: 400},
		{ID: "b", Centroid: geo.Point{X: 300, Y: 150}, ProjectedArea: 900},
		{ID: "c", Centroid: geo.Point{X: 500, Y: 300}, ProjectedArea: 250},
	}
}

func testCanvas() Canvas {
	return Canvas{Width: 960, Height: 600, PaddingX: 40, MaxSpread: 210}
}

func TestCartogramAreaConservation(t *testing.T) {
	units := testUnits()
	e := NewEngine(units, testCanvas())
	period := map[string]dataset.Record{
		"a": {Dem: 600, Rep: 300, Other: 100, Total: 1000},
		"b": {Dem: 100, Rep: 350, Other: 50, Total: 500},
		"c": {Dem: 200, Rep: 200, Other: 0, Total: 400},
	}

	positions := e.Cartogram(period)
	if positions == nil {
		t.Fatal("expected a layout")
	}

	var circleArea float64
	for _, p := range positions {
		circleArea += math.Pi * p.R * p.R
	}
	want := geo.TotalArea(units)
	if math.Abs(circleArea-want)/want > 1e-9 {
		t.Errorf("circle area %f should conserve projected area %f", circleArea, want)
	}
}

func TestZeroTotalsUndefined(t *testing.T) {
	e := NewEngine(testUnits(), testCanvas())
	period := map[string]dataset.Record{
		"a": {}, "b": {}, "c": {},
	}
	for _, mode := range []Mode{ModeCartogram, ModeGrid, ModeScatter} {
		if got := e.Compute(mode, period); got != nil {
			t.Errorf("%s: zero-vote period should have no layout", mode)
		}
	}
}

func TestZeroTotalUnitGetsFloorRadius(t *testing.T) {
	// A unit with zero votes still appears, at the minimum-area radius,
	// rather than being dropped.
	e := NewEngine(testUnits(), testCanvas())
	period := map[string]dataset.Record{
		"a": {Dem: 100, Rep: 50, Total: 150},
		"b": {Dem: 10, Rep: 10, Total: 20},
		"c": {Total: 0},
	}

	positions := e.Cartogram(period)
	if positions == nil {
		t.Fatal("expected a layout")
	}
	p, ok := positions["c"]
	if !ok {
		t.Fatal("zero-vote unit missing from layout")
	}
	wantR := math.Sqrt(0.1 / math.Pi)
	if math.Abs(p.R-wantR) > 1e-12 {
		t.Errorf("floor radius: got %f, want %f", p.R, wantR)
	}
}

func TestCartogramStartsFromCentroids(t *testing.T) {
	// With no overlaps the springs hold every circle at its centroid.
	units := []geo.Unit{
		{ID: "a", Centroid: geo.Point{X: 100, Y: 100}, ProjectedArea: 10},
		{ID: "b", Centroid: geo.Point{X: 700, Y: 500}, ProjectedArea: 10},
	}
	e := NewEngine(units, testCanvas())
	period := map[string]dataset.Record{
		"a": {Total: 100, Dem: 100},
		"b": {Total: 100, Rep: 100},
	}

	positions := e.Cartogram(period)
	for _, u := range units {
		p := positions[u.ID]
		if math.Abs(p.X-u.Centroid.X) > 1e-6 || math.Abs(p.Y-u.Centroid.Y) > 1e-6 {
			t.Errorf("unit %s drifted from centroid: (%f, %f)", u.ID, p.X, p.Y)
		}
	}
}

func TestBackgroundStrengthDiffersFromForeground(t *testing.T) {
	// The two pathways use different springs on purpose; with crowding
	// they settle on visually similar but not identical layouts.
	units := testUnits()
	e := NewEngine(units, testCanvas())
	period := map[string]dataset.Record{
		"a": {Total: 1000}, "b": {Total: 500}, "c": {Total: 400},
	}
	fg := e.Cartogram(period)
	bg := e.CartogramWithStrength(period, 0.45)
	if fg == nil || bg == nil {
		t.Fatal("expected layouts from both pathways")
	}
	for id := range fg {
		if fg[id].R != bg[id].R {
			t.Errorf("radii must not depend on spring strength: %s", id)
		}
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"geographic": ModeGeographic,
		"cartogram":  ModeCartogram,
		"grid":       ModeGrid,
		"scatter":    ModeScatter,
	}
	for name, want := range cases {
		got, ok := ParseMode(name)
		if !ok || got != want {
			t.Errorf("ParseMode(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := ParseMode("hexbin"); ok {
		t.Error("unknown mode should not parse")
	}
}
