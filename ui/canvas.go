package ui

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"slider/ui/layout"
)

// halfBlock draws the top pixel in the foreground and the bottom pixel in
// the background, giving two square pixels per cell.
const halfBlock = '▀'

// Cell is one terminal cell. Nil colours are the terminal defaults.
type Cell struct {
	Rune rune
	Fg   color.Color
	Bg   color.Color
	Bold bool
	// picture marks cells painted by Picture so Text can shade under itself.
	picture bool
}

// Canvas is a fixed grid of cells. Everything outside the grid is clipped.
type Canvas struct {
	width, height int
	cells         []Cell
}

// NewCanvas returns a canvas of blank cells.
func NewCanvas(width, height int) *Canvas {
	width, height = max(0, width), max(0, height)
	c := &Canvas{width: width, height: height, cells: make([]Cell, width*height)}
	for i := range c.cells {
		c.cells[i].Rune = ' '
	}
	return c
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// At returns the cell at (x, y); out-of-range reads return a blank cell.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return Cell{Rune: ' '}
	}
	return c.cells[y*c.width+x]
}

func (c *Canvas) set(x, y int, cell Cell) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = cell
}

// Picture paints img into r with half blocks. img should be r.W x 2*r.H
// pixels; anything else is sampled from its top-left corner.
func (c *Canvas) Picture(r layout.Rect, img image.Image, brightness float64) {
	b := img.Bounds()
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			top := shade(img.At(b.Min.X+x, b.Min.Y+2*y), brightness)
			bottom := shade(img.At(b.Min.X+x, b.Min.Y+2*y+1), brightness)
			c.set(r.X+x, r.Y+y, Cell{Rune: halfBlock, Fg: top, Bg: bottom, picture: true})
		}
	}
}

// Text writes s starting at (x, y), clipped to maxWidth cells. Over a
// picture the cell background becomes a darkened blend of the two pixels so
// the text stays legible. It returns the number of cells written.
func (c *Canvas) Text(x, y, maxWidth int, s string, fg color.Color, bold bool) int {
	written := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if written+w > maxWidth {
			break
		}
		under := c.At(x+written, y)
		bg := under.Bg
		if under.picture {
			bg = shade(blend(under.Fg, under.Bg), OverlayBrightness)
		}
		c.set(x+written, y, Cell{Rune: r, Fg: fg, Bg: bg, Bold: bold})
		for i := 1; i < w; i++ {
			// Wide runes occupy the next cell too.
			c.set(x+written+i, y, Cell{Rune: 0, Fg: fg, Bg: bg})
		}
		written += w
	}
	return written
}

// CenterText writes s centered within r's first row.
func (c *Canvas) CenterText(r layout.Rect, y int, s string, fg color.Color, bold bool) {
	w := min(runewidth.StringWidth(s), r.W)
	c.Text(r.X+(r.W-w)/2, y, r.W, s, fg, bold)
}

// Fill sets every cell in r to a blank with background bg.
func (c *Canvas) Fill(r layout.Rect, bg color.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c.set(x, y, Cell{Rune: ' ', Bg: bg})
		}
	}
}

// Box draws border around the edge of r, keeping whatever is inside.
func (c *Canvas) Box(r layout.Rect, border lipgloss.Border, fg color.Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	edge := func(x, y int, s string) {
		under := c.At(x, y)
		bg := under.Bg
		if under.picture {
			bg = nil
		}
		c.set(x, y, Cell{Rune: firstRune(s), Fg: fg, Bg: bg})
	}

	right, bottom := r.Right()-1, r.Bottom()-1
	edge(r.X, r.Y, border.TopLeft)
	edge(right, r.Y, border.TopRight)
	edge(r.X, bottom, border.BottomLeft)
	edge(right, bottom, border.BottomRight)
	for x := r.X + 1; x < right; x++ {
		edge(x, r.Y, border.Top)
		edge(x, bottom, border.Bottom)
	}
	for y := r.Y + 1; y < bottom; y++ {
		edge(r.X, y, border.Left)
		edge(right, y, border.Right)
	}
}

// Render serializes the canvas for the given colour profile. Runs of cells
// sharing a style are emitted together. Under the Ascii profile pictures are
// left blank since half blocks without colour are noise.
func (c *Canvas) Render(p termenv.Profile) string {
	var sb strings.Builder
	var run strings.Builder

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		var cur Cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			sb.WriteString(styleRun(p, cur, run.String()))
			run.Reset()
		}
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			if cell.Rune == 0 {
				continue
			}
			if p == termenv.Ascii && cell.picture {
				cell = Cell{Rune: ' '}
			}
			if x > 0 && !sameStyle(cur, cell) {
				flush()
			}
			cur = cell
			run.WriteRune(cell.Rune)
		}
		flush()
	}
	return sb.String()
}

// String renders the canvas without colour.
func (c *Canvas) String() string {
	return c.Render(termenv.Ascii)
}

func styleRun(p termenv.Profile, cell Cell, s string) string {
	if p == termenv.Ascii {
		return s
	}
	st := p.String(s)
	if cell.Fg != nil {
		st = st.Foreground(p.FromColor(cell.Fg))
	}
	if cell.Bg != nil {
		st = st.Background(p.FromColor(cell.Bg))
	}
	if cell.Bold {
		st = st.Bold()
	}
	return st.String()
}

func sameStyle(a, b Cell) bool {
	return sameColor(a.Fg, b.Fg) && sameColor(a.Bg, b.Bg) && a.Bold == b.Bold && a.picture == b.picture
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

// shade scales a colour's channels by f.
func shade(c color.Color, f float64) color.Color {
	if c == nil {
		return nil
	}
	r, g, b, _ := c.RGBA()
	scale := func(v uint32) uint8 {
		return uint8(min(255, float64(v>>8)*f))
	}
	return color.RGBA{R: scale(r), G: scale(g), B: scale(b), A: 0xFF}
}

// blend averages two colours.
func blend(a, b color.Color) color.Color {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	return color.RGBA{
		R: uint8((ar + br) >> 9),
		G: uint8((ag + bg) >> 9),
		B: uint8((ab + bb) >> 9),
		A: 0xFF,
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}
