package ui

import (
	"fmt"

	"slider/ui/layout"
)

// HitKind says what a cell belongs to.
type HitKind int

const (
	HitNone HitKind = iota
	HitTile
	HitPrev
	HitNext
)

func (k HitKind) String() string {
	switch k {
	case HitNone:
		return "none"
	case HitTile:
		return "tile"
	case HitPrev:
		return "prev"
	case HitNext:
		return "next"
	default:
		return "unknown"
	}
}

// Hit is the result of a hit test. Index is set for HitTile only.
type Hit struct {
	Kind  HitKind
	Index int
}

func (h Hit) String() string {
	if h.Kind == HitTile {
		return fmt.Sprintf("tile(%d)", h.Index)
	}
	return h.Kind.String()
}

// HitMap maps cells to the interactive regions of one rendered frame. It is
// built from the same constraints the renderer draws with.
type HitMap struct {
	tiles      []layout.Rect
	prev, next layout.Rect
	height     int
}

// NewHitMap builds the hit map for constraints c with active tile selected.
func NewHitMap(c layout.Constraints, active int) HitMap {
	return HitMap{
		tiles:  c.TileRects(active),
		prev:   c.Prev,
		next:   c.Next,
		height: c.CanvasHeight,
	}
}

// Test returns what the cell (x, y) hits. Cells below the canvas, such as
// the footer line, hit nothing.
func (m HitMap) Test(x, y int) Hit {
	if y >= m.height {
		return Hit{Kind: HitNone}
	}
	switch {
	case m.prev.Contains(x, y):
		return Hit{Kind: HitPrev}
	case m.next.Contains(x, y):
		return Hit{Kind: HitNext}
	}
	for i, r := range m.tiles {
		if r.Contains(x, y) {
			return Hit{Kind: HitTile, Index: i}
		}
	}
	return Hit{Kind: HitNone}
}

// Tiles returns the tile rectangles in catalog order.
func (m HitMap) Tiles() []layout.Rect {
	out := make([]layout.Rect, len(m.tiles))
	copy(out, m.tiles)
	return out
}
