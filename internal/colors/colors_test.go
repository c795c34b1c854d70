package colors

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func almostEqual(a, b colorful.Color) bool {
	return math.Abs(a.R-b.R) < 1e-12 &&
		math.Abs(a.G-b.G) < 1e-12 &&
		math.Abs(a.B-b.B) < 1e-12
}

func TestGradientPureCorners(t *testing.T) {
	p := DefaultPalette()
	cases := []struct {
		dem, rep, other float64
		want            colorful.Color
	}{
		{1, 0, 0, p.Dem},
		{0, 1, 0, p.Rep},
		{0, 0, 1, p.Other},
	}
	for _, c := range cases {
		got := p.Gradient(c.dem, c.rep, c.other)
		if !almostEqual(got, c.want) {
			t.Errorf("corner (%v,%v,%v): got %v, want %v", c.dem, c.rep, c.other, got, c.want)
		}
	}
}

func TestGradientExactCenterIsNeutral(t *testing.T) {
	p := DefaultPalette()
	got := p.Gradient(1.0/3, 1.0/3, 1.0/3)
	if !almostEqual(got, p.Neutral) {
		t.Errorf("center split should be exactly neutral: got %v", got)
	}
}

func TestGradientBlendsTowardNeutral(t *testing.T) {
	p := DefaultPalette()
	// A mild dem lean: somewhere between the pure mix and neutral.
	got := p.Gradient(0.4, 0.35, 0.25)
	if almostEqual(got, p.Neutral) || almostEqual(got, p.Dem) {
		t.Error("near-even split should be a partial blend")
	}
}

func TestWinnerStrictMaximum(t *testing.T) {
	p := DefaultPalette()
	if got := p.Winner(0.5, 0.3, 0.2); got != p.Dem {
		t.Error("dem plurality should pick dem")
	}
	if got := p.Winner(0.2, 0.5, 0.3); got != p.Rep {
		t.Error("rep plurality should pick rep")
	}
	if got := p.Winner(0.3, 0.3, 0.4); got != p.Other {
		t.Error("strict residual maximum should pick the residual color")
	}
}

func TestWinnerTieNeverPicksResidual(t *testing.T) {
	p := DefaultPalette()
	// Three-way exact tie falls through to the binary comparison; the
	// residual color must not win even though it ties the maximum.
	if got := p.Winner(1.0/3, 1.0/3, 1.0/3); got == p.Other {
		t.Error("residual must not win a three-way tie")
	}
	// Major-party exact tie: the binary fallback compares dem vs rep
	// only, resolving to rep on equality.
	if got := p.Winner(0.4, 0.4, 0.2); got != p.Rep {
		t.Error("major tie resolves through the binary comparison")
	}
}

func TestParsePolicy(t *testing.T) {
	if pol, ok := ParsePolicy("gradient"); !ok || pol != PolicyGradient {
		t.Error("gradient should parse")
	}
	if pol, ok := ParsePolicy("winner"); !ok || pol != PolicyWinner {
		t.Error("winner should parse")
	}
	if _, ok := ParsePolicy("plaid"); ok {
		t.Error("unknown policy should not parse")
	}
}
