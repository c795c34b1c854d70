// Package colors blends the three vote shares of a unit into a display
// color, either winner-take-all or as a ternary gradient.
package colors

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Policy selects how shares map to a color.
type Policy int

const (
	// PolicyWinner paints the whole circle in the leading category color.
	PolicyWinner Policy = iota
	// PolicyGradient mixes all three category colors by share, pulled
	// toward a neutral color for near-even splits.
	PolicyGradient
)

func (p Policy) String() string {
	if p == PolicyGradient {
		return "gradient"
	}
	return "winner"
}

// ParsePolicy maps a policy name to its Policy. Unknown names report false.
func ParsePolicy(s string) (Policy, bool) {
	switch strings.ToLower(s) {
	case "winner", "solid":
		return PolicyWinner, true
	case "gradient", "blend":
		return PolicyGradient, true
	default:
		return PolicyWinner, false
	}
}

// Palette holds the category colors plus the neutral target for even splits
// and a fallback for units with no data.
type Palette struct {
	Dem     colorful.Color
	Rep     colorful.Color
	Other   colorful.Color
	Neutral colorful.Color
	NoData  colorful.Color
}

// DefaultPalette is the standard election palette: blue/red majors, ochre
// residual, purple for contested three-way splits.
func DefaultPalette() Palette {
	return Palette{
		Dem:     mustHex("#2166ac"),
		Rep:     mustHex("#b2182b"),
		Other:   mustHex("#c2a34f"),
		Neutral: mustHex("#9970ab"),
		NoData:  mustHex("#8a8a8a"),
	}
}

// Winner returns the color of the strictly greatest share. When no share is
// strictly greatest the choice falls back to comparing the two major shares
// only; the residual color is never picked on an exact tie. This reproduces
// the historical behavior and is deliberate, see DESIGN.md.
func (p Palette) Winner(dem, rep, other float64) colorful.Color {
	switch {
	case dem > rep && dem > other:
		return p.Dem
	case rep > dem && rep > other:
		return p.Rep
	case other > dem && other > rep:
		return p.Other
	case dem > rep:
		return p.Dem
	default:
		return p.Rep
	}
}

// Gradient mixes the three category colors weighted by share, then pulls the
// result toward Neutral by how close the split is to a perfectly even
// three-way. Pure single-category shares return the category color exactly;
// the exact center returns Neutral exactly.
func (p Palette) Gradient(dem, rep, other float64) colorful.Color {
	mixed := colorful.Color{
		R: dem*p.Dem.R + rep*p.Rep.R + other*p.Other.R,
		G: dem*p.Dem.G + rep*p.Rep.G + other*p.Other.G,
		B: dem*p.Dem.B + rep*p.Rep.B + other*p.Other.B,
	}

	centerDistance := abs(dem-1.0/3) + abs(rep-1.0/3) + abs(other-1.0/3)
	centerWeight := 1 - 1.5*centerDistance
	if centerWeight <= 0 {
		return mixed
	}

	return colorful.Color{
		R: mixed.R*(1-centerWeight) + p.Neutral.R*centerWeight,
		G: mixed.G*(1-centerWeight) + p.Neutral.G*centerWeight,
		B: mixed.B*(1-centerWeight) + p.Neutral.B*centerWeight,
	}
}

// Blend applies the chosen policy to normalized shares.
func (p Palette) Blend(policy Policy, dem, rep, other float64) colorful.Color {
	if policy == PolicyGradient {
		return p.Gradient(dem, rep, other)
	}
	return p.Winner(dem, rep, other)
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("colors: bad hex constant " + s)
	}
	return c
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
