package geo

import (
	"path/filepath"
	"testing"
)

func TestBoundsOf(t *testing.T) {
	units := []Unit{
		{ID: "a", Centroid: Point{X: 10, Y: 20}},
		{ID: "b", Centroid: Point{X: -5, Y: 40}},
		{ID: "c", Centroid: Point{X: 30, Y: 5}},
	}
	b := BoundsOf(units)
	if b.MinX != -5 || b.MaxX != 30 || b.MinY != 5 || b.MaxY != 40 {
		t.Errorf("bounds: %+v", b)
	}
	if b.Width() != 35 || b.Height() != 35 {
		t.Errorf("extent: %f x %f", b.Width(), b.Height())
	}
	c := b.Center()
	if c.X != 12.5 || c.Y != 22.5 {
		t.Errorf("center: %+v", c)
	}
}

func TestBoundsOfEmpty(t *testing.T) {
	if b := BoundsOf(nil); b != (Bounds{}) {
		t.Errorf("empty bounds: %+v", b)
	}
}

func TestDemoGridDeterministic(t *testing.T) {
	a := DemoGrid(50, 960, 600)
	b := DemoGrid(50, 960, 600)
	if len(a) != 50 {
		t.Fatalf("expected 50 units, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("demo geometry must be deterministic: unit %d differs", i)
		}
	}
	for _, u := range a {
		if u.Centroid.X < 0 || u.Centroid.X > 960 || u.Centroid.Y < 0 || u.Centroid.Y > 600 {
			t.Errorf("unit %s outside canvas: %+v", u.ID, u.Centroid)
		}
		if u.ProjectedArea <= 0 {
			t.Errorf("unit %s has no area", u.ID)
		}
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geom.json")
	units := []Unit{
		{ID: "01001", Name: "Autauga", State: "AL", Centroid: Point{X: 1, Y: 2}, ProjectedArea: 3, Path: "M0 0L1 1Z"},
		{ID: "01003", Centroid: Point{X: 4, Y: 5}, ProjectedArea: 6},
	}
	if err := Save(path, units); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != units[0] || got[1] != units[1] {
		t.Errorf("roundtrip mismatch: %+v", got)
	}
}

func TestLoadRejectsMissingID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geom.json")
	if err := Save(path, []Unit{{Centroid: Point{X: 1}}}); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("unit without id should fail to load")
	}
}
