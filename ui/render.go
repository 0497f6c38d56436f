package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"slider/log"
	"slider/slider"
	"slider/ui/layout"
)

const (
	DefaultTitle       = "Slider.Go.Dev"
	DefaultDescription = "This responsive terminal slider features keyboard navigation, mouse hover and tap controls. " +
		"The dynamic background changes with each selection, while thumbnail previews provide intuitive browsing."

	searchGlyph = "⌕"
	prevGlyph   = "←"
	nextGlyph   = "→"
	navLabelGap = 4
)

// NavLabels are the static links shown in the desktop nav bar. They do
// nothing when clicked.
var NavLabels = []string{"Home", "About", "Contact", "Services"}

// Renderer paints slider frames onto a canvas.
type Renderer struct {
	pictures    *Pictures
	title       string
	description string
}

// NewRenderer creates a renderer. Empty title or description use the
// defaults.
func NewRenderer(pictures *Pictures, title, description string) *Renderer {
	if pictures == nil {
		pictures = NewPictures()
	}
	if title == "" {
		title = DefaultTitle
	}
	if description == "" {
		description = DefaultDescription
	}
	return &Renderer{pictures: pictures, title: title, description: description}
}

// Paint draws every component of f into a canvas sized by c.
func (r *Renderer) Paint(f slider.Frame, c layout.Constraints) *Canvas {
	cv := NewCanvas(c.TerminalWidth, c.CanvasHeight)
	d := layout.ComputeDegradation(c)

	r.Background(cv, f, c)
	r.NavBar(cv, f, c, d)
	r.InfoBox(cv, f, c, d)
	r.Strip(cv, f, c, d)
	return cv
}

// Render paints f and serializes it for the colour profile.
func (r *Renderer) Render(f slider.Frame, c layout.Constraints, p termenv.Profile) string {
	defer log.GetProfiler().StartRender("slider")()
	return r.Paint(f, c).Render(p)
}

// Background fills the canvas with the selected image.
func (r *Renderer) Background(cv *Canvas, f slider.Frame, c layout.Constraints) {
	defer log.GetProfiler().StartRender("background")()
	w, h := cv.Size()
	if w == 0 || h == 0 {
		return
	}
	img := r.pictures.Get(f.Background, w, h)
	cv.Picture(layout.Rect{W: w, H: h}, img, 1)
}

// NavBar draws the title, the desktop-only labels and the search glyph.
func (r *Renderer) NavBar(cv *Canvas, f slider.Frame, c layout.Constraints, d layout.Degradation) {
	defer log.GetProfiler().StartRender("navbar")()
	w, _ := cv.Size()
	y := c.NavRow
	glyphX := w - c.Padding - runewidth.StringWidth(searchGlyph)
	titleEnd := c.Padding + cv.Text(c.Padding, y, max(0, glyphX-c.Padding-1), r.title, TextPrimary, true)

	if f.ShowNavLabels && d.ShowNavLabels() {
		labels := strings.Join(NavLabels, strings.Repeat(" ", navLabelGap))
		lw := runewidth.StringWidth(labels)
		x := glyphX - navLabelGap - lw
		if x >= titleEnd+navLabelGap {
			cv.Text(x, y, lw, labels, TextSecondary, false)
		}
	}
	if glyphX > titleEnd {
		cv.Text(glyphX, y, 1, searchGlyph, TextMuted, false)
	}
}

// InfoBox draws the heading, the detail line, the wrapped description and
// the two arrow buttons.
func (r *Renderer) InfoBox(cv *Canvas, f slider.Frame, c layout.Constraints, d layout.Degradation) {
	defer log.GetProfiler().StartRender("infobox")()

	h := c.Heading
	cv.Text(h.X, h.Y, h.W, "Slider "+f.Caption, TextPrimary, true)
	if f.Detail != "" {
		cv.Text(h.X, h.Y+1, h.W, f.Detail, TextMuted, false)
	}

	if !d.HideDescription {
		desc := c.Description
		lines := strings.Split(wordwrap.String(r.description, desc.W), "\n")
		for i, line := range lines {
			if i >= desc.H {
				break
			}
			// Words longer than the box stay unbroken; the canvas clips them.
			cv.Text(desc.X, desc.Y+i, desc.W, line, TextSecondary, false)
		}
	}

	for i, rect := range []layout.Rect{c.Prev, c.Next} {
		glyph := prevGlyph
		if f.Controls[i] == slider.Next {
			glyph = nextGlyph
		}
		button(cv, rect, glyph, d.CompactButtons)
	}
}

func button(cv *Canvas, r layout.Rect, glyph string, compact bool) {
	border := lipgloss.RoundedBorder()
	if compact {
		border = lipgloss.NormalBorder()
	}
	cv.Box(r, border, BorderActive)
	cv.CenterText(r.Inset(1), r.Y+r.H/2, glyph, TextPrimary, true)
}

// Strip draws one tile per catalog entry. The active tile is larger and
// bright; the rest are dimmed.
func (r *Renderer) Strip(cv *Canvas, f slider.Frame, c layout.Constraints, d layout.Degradation) {
	defer log.GetProfiler().StartRender("strip")()

	rects := c.TileRects(f.Index)
	for i, t := range f.Tiles {
		if i >= len(rects) {
			break
		}
		rect := rects[i]
		inner := rect.Inset(1)

		brightness, border, fg := InactiveBrightness, lipgloss.NormalBorder(), BorderInactive
		if t.Active {
			brightness, border, fg = 1, lipgloss.ThickBorder(), BorderActive
		}
		if !inner.Empty() {
			cv.Picture(inner, r.pictures.Get(t.Reference, inner.W, inner.H), brightness)
		}
		cv.Box(rect, border, fg)

		if !d.HideTileCaptions && !inner.Empty() {
			caption := runewidth.Truncate(t.Name, inner.W, "…")
			cv.CenterText(inner, inner.Bottom()-1, caption, TextPrimary, t.Active)
		}
	}
	log.RenderTrace("strip", "tiles=%d active=%d overflow=%v", len(f.Tiles), f.Index, d.StripOverflow)
}
