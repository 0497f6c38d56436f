// Package slider owns the carousel's view state: which image is selected and
// whether the viewport is desktop or mobile. Everything else is derived from
// these two fields and the catalog.
package slider

import (
	"errors"
	"fmt"

	"slider/catalog"
	"slider/ui/layout"
)

// ErrIndexOutOfRange is returned by SelectDirect for an index outside the catalog.
var ErrIndexOutOfRange = errors.New("selection index out of range")

// Direction is the way Advance moves through the catalog.
type Direction int

const (
	Previous Direction = iota
	Next
)

func (d Direction) String() string {
	switch d {
	case Previous:
		return "previous"
	case Next:
		return "next"
	default:
		return "unknown"
	}
}

// Slider is the carousel state. It is not safe for concurrent use; the
// Bubble Tea loop is its only writer.
type Slider struct {
	catalog *catalog.Catalog
	index   int
	mode    layout.ViewportMode
	widthPx int
}

// New creates a slider at index 0 for a viewport widthPx logical pixels wide.
func New(c *catalog.Catalog, widthPx int) (*Slider, error) {
	if c == nil || c.Len() == 0 {
		return nil, catalog.ErrEmptyCatalog
	}
	s := &Slider{catalog: c}
	s.Resize(widthPx)
	return s, nil
}

// Catalog returns the slider's catalog.
func (s *Slider) Catalog() *catalog.Catalog {
	return s.catalog
}

// Index returns the current selection index.
func (s *Slider) Index() int {
	return s.index
}

// Mode returns the current viewport mode.
func (s *Slider) Mode() layout.ViewportMode {
	return s.mode
}

// Width returns the last viewport width passed to Resize.
func (s *Slider) Width() int {
	return s.widthPx
}

// Current returns the selected entry.
func (s *Slider) Current() catalog.ImageEntry {
	e, _ := s.catalog.At(s.index)
	return e
}

// Advance moves the selection one step, wrapping at both ends, and returns
// the new index.
func (s *Slider) Advance(dir Direction) int {
	n := s.catalog.Len()
	switch dir {
	case Previous:
		s.index = (s.index - 1 + n) % n
	case Next:
		s.index = (s.index + 1) % n
	}
	return s.index
}

// SelectDirect sets the selection to k. An out-of-range k is rejected and
// leaves the selection unchanged.
func (s *Slider) SelectDirect(k int) error {
	if k < 0 || k >= s.catalog.Len() {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, k, s.catalog.Len())
	}
	s.index = k
	return nil
}

// Resize recomputes the viewport mode for a new width and reports whether
// the mode changed.
func (s *Slider) Resize(widthPx int) bool {
	s.widthPx = widthPx
	mode := layout.DetermineViewport(widthPx)
	flipped := mode != s.mode
	s.mode = mode
	return flipped
}
