package geo

import "math"

// Point is a projected map coordinate in canvas units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Unit is one spatial entity (a county). Geometry is fixed for the whole
// session; attribute data varies by period but the unit identity does not.
type Unit struct {
	ID            string  `json:"id"`
	Name          string  `json:"name,omitempty"`
	State         string  `json:"state,omitempty"`
	Centroid      Point   `json:"centroid"`
	ProjectedArea float64 `json:"area"`

	// Path is the pre-projected boundary outline in SVG path syntax.
	// This package never interprets it; the renderer draws it as-is for
	// the unscaled geographic mode.
	Path string `json:"path,omitempty"`
}

// Bounds is an axis-aligned box around a set of centroids.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

func (b Bounds) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// BoundsOf computes the centroid bounding box of units.
// The zero Bounds is returned for an empty slice.
func BoundsOf(units []Unit) Bounds {
	if len(units) == 0 {
		return Bounds{}
	}
	b := Bounds{
		MinX: units[0].Centroid.X, MaxX: units[0].Centroid.X,
		MinY: units[0].Centroid.Y, MaxY: units[0].Centroid.Y,
	}
	for _, u := range units[1:] {
		b.MinX = math.Min(b.MinX, u.Centroid.X)
		b.MaxX = math.Max(b.MaxX, u.Centroid.X)
		b.MinY = math.Min(b.MinY, u.Centroid.Y)
		b.MaxY = math.Max(b.MaxY, u.Centroid.Y)
	}
	return b
}

// TotalArea sums the projected areas of units.
func TotalArea(units []Unit) float64 {
	sum := 0.0
	for _, u := range units {
		sum += u.ProjectedArea
	}
	return sum
}
