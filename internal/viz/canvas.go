package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots per character cell.
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille drawing surface with one foreground color per
// character cell. Sub-pixel resolution is (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]string // hex per cell, "" for default
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]string, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]string, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set lights the sub-pixel at (x, y) and assigns hex to its cell. The last
// writer of a cell wins its color.
func (c *Canvas) Set(x, y int, hex string) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][col] = hex
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
			c.Colors[i][j] = ""
		}
	}
}

// FillCircle rasterizes a filled disc in sub-pixel coordinates.
func (c *Canvas) FillCircle(cx, cy, r float64, hex string) {
	if r < 1 {
		c.Set(int(cx), int(cy), hex)
		return
	}
	x0, x1 := int(cx-r), int(cx+r)
	y0, y1 := int(cy-r), int(cy+r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r*r {
				c.Set(x, y, hex)
			}
		}
	}
}

// String renders the canvas with per-cell lipgloss foreground colors.
func (c *Canvas) String() string {
	var b strings.Builder
	for row := range c.Grid {
		var hex string
		var run []rune
		flush := func() {
			if len(run) == 0 {
				return
			}
			s := string(run)
			if hex != "" {
				s = lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(s)
			}
			b.WriteString(s)
			run = run[:0]
		}
		for col := range c.Grid[row] {
			if c.Colors[row][col] != hex {
				flush()
				hex = c.Colors[row][col]
			}
			run = append(run, c.Grid[row][col])
		}
		flush()
		b.WriteByte('\n')
	}
	return b.String()
}
