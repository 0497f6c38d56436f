package layout

// Constraints holds the computed cell geometry for one frame.
type Constraints struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Computed mode
	Mode ViewportMode

	// CanvasHeight is the terminal height minus the footer line.
	CanvasHeight int
	Padding      int
	NavHeight    int
	// NavRow is the row the nav text sits on.
	NavRow int

	// Thumbnail strip
	TileCount        int
	TileWidth        int
	TileHeight       int
	ActiveTileWidth  int
	ActiveTileHeight int
	TileGap          int
	ActiveGap        int
	StripTop         int
	StripHeight      int

	// Info box
	Heading     Rect
	Description Rect
	Prev        Rect
	Next        Rect

	// Layout flags
	StripOverflow  bool // Tiles are wider than the terminal; the row scrolls to keep the active tile visible
	ShowMinWarning bool // Terminal is too small for the layout
}

type modeParams struct {
	padding, navHeight, navRow int
	tileWidth, tileHeight      int
	widthGrow, heightGrow      int
	tileGap, activeGap         int
	buttonWidth, buttonGap     int
}

func paramsFor(mode ViewportMode) modeParams {
	if mode == ViewportMobile {
		return modeParams{
			padding: MobilePadding, navHeight: MobileNavHeight, navRow: 0,
			tileWidth: MobileTileWidth, tileHeight: MobileTileHeight,
			widthGrow: MobileWidthGrow, heightGrow: MobileHeightGrow,
			tileGap: MobileTileGap, activeGap: MobileActiveGap,
			buttonWidth: MobileButtonWidth, buttonGap: MobileButtonGap,
		}
	}
	return modeParams{
		padding: DesktopPadding, navHeight: DesktopNavHeight, navRow: 1,
		tileWidth: DesktopTileWidth, tileHeight: DesktopTileHeight,
		widthGrow: DesktopWidthGrow, heightGrow: DesktopHeightGrow,
		tileGap: DesktopTileGap, activeGap: DesktopActiveGap,
		buttonWidth: DesktopButtonWidth, buttonGap: DesktopButtonGap,
	}
}

// ComputeConstraints calculates the geometry for a terminal of width x height
// cells showing tiles thumbnails in the given mode.
func ComputeConstraints(width, height int, mode ViewportMode, tiles int) Constraints {
	if tiles < 1 {
		tiles = 1
	}
	p := paramsFor(mode)

	c := Constraints{
		TerminalWidth:  width,
		TerminalHeight: height,
		Mode:           mode,
		CanvasHeight:   max(0, height-FooterHeight),
		Padding:        p.padding,
		NavHeight:      p.navHeight,
		NavRow:         p.navRow,
		TileCount:      tiles,
		TileGap:        p.tileGap,
		ActiveGap:      p.activeGap,
	}

	// 1. Tile width: shrink until all tiles fit on one row.
	available := width - 2*p.padding
	fixed := (tiles-1)*p.tileGap + p.widthGrow + 2*p.activeGap
	c.TileWidth = min((available-fixed)/tiles, p.tileWidth)
	if c.TileWidth < MinTileWidth {
		c.TileWidth = MinTileWidth
	}
	c.ActiveTileWidth = c.TileWidth + p.widthGrow
	c.StripOverflow = c.stripWidth() > width

	// 2. Tile height: shrink until the info box keeps its minimum rows.
	c.TileHeight = p.tileHeight
	for c.TileHeight > MinTileHeight && c.requiredHeight(p.heightGrow) > c.CanvasHeight {
		c.TileHeight--
	}
	c.ActiveTileHeight = c.TileHeight + p.heightGrow
	if c.requiredHeight(p.heightGrow) > c.CanvasHeight || available < MinTileWidth {
		c.ShowMinWarning = true
	}

	c.StripHeight = c.ActiveTileHeight
	c.StripTop = max(c.NavHeight, c.CanvasHeight-StripBottomPad-c.StripHeight)

	// 3. Info box: heading, description and the two arrow buttons.
	buttonsWidth := 2*p.buttonWidth + p.buttonGap
	headingY := c.NavHeight + 1
	descY := headingY + 2

	var bx, by, textWidth int
	if mode == ViewportMobile {
		textWidth = available
		bx = (width - buttonsWidth) / 2
		by = c.StripTop - 1 - ButtonHeight
		c.Description = Rect{X: p.padding, Y: descY, W: textWidth, H: max(0, by-1-descY)}
	} else {
		bx = width - p.padding - buttonsWidth
		by = c.NavHeight + (c.StripTop-c.NavHeight-ButtonHeight)/2
		textWidth = min(max(DesktopTextMinWidth, available*2/5), bx-2-p.padding)
		textWidth = max(0, textWidth)
		c.Description = Rect{X: p.padding, Y: descY, W: textWidth, H: max(0, c.StripTop-1-descY)}
	}
	c.Heading = Rect{X: p.padding, Y: headingY, W: max(0, textWidth), H: 1}
	c.Prev = Rect{X: bx, Y: by, W: p.buttonWidth, H: ButtonHeight}
	c.Next = Rect{X: bx + p.buttonWidth + p.buttonGap, Y: by, W: p.buttonWidth, H: ButtonHeight}

	return c
}

// requiredHeight is nav, heading, spacer, buttons, a spacer and the strip.
func (c Constraints) requiredHeight(heightGrow int) int {
	return c.NavHeight + 1 + minInfoRows + 1 + c.TileHeight + heightGrow + StripBottomPad
}

// stripWidth is the width of the tile row with one active tile.
func (c Constraints) stripWidth() int {
	return c.TileCount*c.TileWidth + (c.TileCount-1)*c.TileGap +
		(c.ActiveTileWidth - c.TileWidth) + 2*c.ActiveGap
}

// TileRects returns one rectangle per tile, in catalog order, for the given
// active index. The active tile is wider, taller and surrounded by an extra
// gap; every tile is bottom-aligned in the strip and the row is centered.
// A row wider than the terminal is scrolled by StripOffset, so rects may
// start left of 0 or end past the right edge, but the active one never does.
func (c Constraints) TileRects(active int) []Rect {
	rects := make([]Rect, c.TileCount)
	x := max(0, (c.TerminalWidth-c.stripWidth())/2) - c.StripOffset(active)
	for i := range rects {
		if i > 0 {
			x += c.TileGap
		}
		if i == active {
			x += c.ActiveGap
			rects[i] = Rect{X: x, Y: c.StripTop, W: c.ActiveTileWidth, H: c.ActiveTileHeight}
			x += c.ActiveTileWidth + c.ActiveGap
			continue
		}
		rects[i] = Rect{
			X: x,
			Y: c.StripTop + c.ActiveTileHeight - c.TileHeight,
			W: c.TileWidth,
			H: c.TileHeight,
		}
		x += c.TileWidth
	}
	return rects
}

// StripOffset is how many columns an overflowing row is scrolled left so the
// active tile and its gap end inside the terminal. It is 0 when the row fits,
// and never more than the overflow.
func (c Constraints) StripOffset(active int) int {
	overflow := c.stripWidth() - c.TerminalWidth
	if overflow <= 0 {
		return 0
	}
	active = min(max(active, 0), c.TileCount-1)
	// Right edge of the active tile's trailing gap with no scrolling.
	right := active*(c.TileWidth+c.TileGap) + 2*c.ActiveGap + c.ActiveTileWidth
	return min(max(0, right-c.TerminalWidth), overflow)
}
