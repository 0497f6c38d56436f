package slider

import "slider/ui/layout"

// PointerEvent is a pointer interaction with a thumbnail tile.
type PointerEvent int

const (
	// PointerEnter is the pointer moving onto a tile.
	PointerEnter PointerEvent = iota
	// PointerPress is a click or tap on a tile.
	PointerPress
)

func (e PointerEvent) String() string {
	switch e {
	case PointerEnter:
		return "enter"
	case PointerPress:
		return "press"
	default:
		return "unknown"
	}
}

// Selector adapts pointer events to direct selection. Exactly one selector is
// active per viewport mode.
type Selector interface {
	Accepts(ev PointerEvent) bool
}

// hoverSelector selects on pointer-enter. Desktop only.
type hoverSelector struct{}

func (hoverSelector) Accepts(ev PointerEvent) bool { return ev == PointerEnter }

// pressSelector selects on press; hover has no meaning on touch screens.
type pressSelector struct{}

func (pressSelector) Accepts(ev PointerEvent) bool { return ev == PointerPress }

// SelectorFor returns the selector active in mode.
func SelectorFor(mode layout.ViewportMode) Selector {
	if mode == layout.ViewportMobile {
		return pressSelector{}
	}
	return hoverSelector{}
}

// Pointer routes a pointer event on tile k through the active selector. It
// reports whether the selection was set.
func (s *Slider) Pointer(ev PointerEvent, k int) bool {
	if !SelectorFor(s.mode).Accepts(ev) {
		return false
	}
	return s.SelectDirect(k) == nil
}
