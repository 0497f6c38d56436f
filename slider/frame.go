package slider

import "slider/ui/layout"

// Tile is one thumbnail in a Frame.
type Tile struct {
	Index     int
	Reference string
	Name      string
	Active    bool
}

// Frame is everything the renderer needs for one draw.
type Frame struct {
	Index      int
	Mode       layout.ViewportMode
	Background string
	Caption    string
	Detail     string
	Tiles      []Tile
	// Controls are the two arrow buttons, left to right.
	Controls      [2]Direction
	ShowNavLabels bool
}

// ActiveTiles counts tiles marked active. Always one for a Frame built by
// Slider.Frame.
func (f Frame) ActiveTiles() int {
	n := 0
	for _, t := range f.Tiles {
		if t.Active {
			n++
		}
	}
	return n
}

// Frame projects the current state. It does not modify the slider.
func (s *Slider) Frame() Frame {
	cur := s.Current()
	entries := s.catalog.Entries()

	f := Frame{
		Index:         s.index,
		Mode:          s.mode,
		Background:    cur.Reference,
		Caption:       cur.Name,
		Detail:        cur.Detail,
		Tiles:         make([]Tile, len(entries)),
		Controls:      [2]Direction{Previous, Next},
		ShowNavLabels: s.mode == layout.ViewportDesktop,
	}
	for i, e := range entries {
		f.Tiles[i] = Tile{
			Index:     i,
			Reference: e.Reference,
			Name:      e.Name,
			Active:    i == s.index,
		}
	}
	return f
}
