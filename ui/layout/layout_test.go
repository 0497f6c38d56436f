package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineViewport(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  ViewportMode
	}{
		{name: "wide desktop", width: 1024, want: ViewportDesktop},
		{name: "exactly on breakpoint", width: MobileBreakpoint, want: ViewportDesktop},
		{name: "one below breakpoint", width: MobileBreakpoint - 1, want: ViewportMobile},
		{name: "phone", width: 500, want: ViewportMobile},
		{name: "zero", width: 0, want: ViewportMobile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineViewport(tt.width))
		})
	}
}

func TestDetermineViewportFlipsOnceAcrossBreakpoint(t *testing.T) {
	flips := 0
	prev := DetermineViewport(1024)
	for w := 1024; w >= 500; w-- {
		m := DetermineViewport(w)
		if m != prev {
			flips++
			assert.Equal(t, MobileBreakpoint-1, w, "flip happens just below the breakpoint")
		}
		prev = m
	}
	assert.Equal(t, 1, flips)

	flips = 0
	for w := 500; w <= 1024; w++ {
		m := DetermineViewport(w)
		if m != prev {
			flips++
			assert.Equal(t, MobileBreakpoint, w)
		}
		prev = m
	}
	assert.Equal(t, 1, flips)
}

func TestViewportModeString(t *testing.T) {
	assert.Equal(t, "desktop", ViewportDesktop.String())
	assert.Equal(t, "mobile", ViewportMobile.String())
	assert.Equal(t, "unknown", ViewportMode(42).String())
}

func TestPixelWidth(t *testing.T) {
	assert.Equal(t, 1024, PixelWidth(128, 8))
	assert.Equal(t, 768, PixelWidth(96, 0), "zero cell width uses the default")
	assert.Equal(t, 300, PixelWidth(30, 10))
	assert.Equal(t, MobileBreakpoint, PixelWidth(96, DefaultCellWidth))
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	assert.True(t, r.Contains(2, 3))
	assert.True(t, r.Contains(5, 4))
	assert.False(t, r.Contains(6, 4), "right edge is exclusive")
	assert.False(t, r.Contains(2, 5), "bottom edge is exclusive")
	assert.False(t, r.Contains(1, 3))
	assert.Equal(t, Rect{X: 3, Y: 4, W: 2, H: 0}, r.Inset(1))
	assert.True(t, r.Inset(1).Empty())
}

func TestComputeConstraintsDesktop(t *testing.T) {
	c := ComputeConstraints(128, 40, ViewportDesktop, 5)

	assert.False(t, c.ShowMinWarning)
	assert.False(t, c.StripOverflow)
	assert.Equal(t, 39, c.CanvasHeight)
	assert.Equal(t, DesktopNavHeight, c.NavHeight)
	assert.Equal(t, DesktopTileHeight, c.TileHeight, "enough rows for full height tiles")
	assert.Equal(t, c.TileWidth+DesktopWidthGrow, c.ActiveTileWidth)
	assert.Equal(t, c.TileHeight+DesktopHeightGrow, c.ActiveTileHeight)
	assert.LessOrEqual(t, c.TileWidth, DesktopTileWidth)
	assert.Equal(t, c.CanvasHeight-StripBottomPad, c.StripTop+c.StripHeight)

	// Buttons sit right of the text column and above the strip.
	assert.Greater(t, c.Prev.X, c.Heading.Right())
	assert.Equal(t, c.Prev.Right()+DesktopButtonGap, c.Next.X)
	assert.LessOrEqual(t, c.Next.Right(), c.TerminalWidth-c.Padding)
	assert.Less(t, c.Prev.Bottom(), c.StripTop+1)
	assert.Positive(t, c.Description.H)
}

func TestComputeConstraintsMobile(t *testing.T) {
	c := ComputeConstraints(62, 30, ViewportMobile, 5)

	assert.False(t, c.ShowMinWarning)
	assert.Equal(t, MobileNavHeight, c.NavHeight)
	assert.Equal(t, 0, c.NavRow)
	assert.Equal(t, MobileButtonWidth, c.Prev.W)

	// Buttons are centered under the description.
	left := c.Prev.X
	right := c.TerminalWidth - c.Next.Right()
	assert.InDelta(t, left, right, 1)
	assert.Equal(t, c.StripTop-1, c.Prev.Bottom())
	assert.LessOrEqual(t, c.Description.Bottom(), c.Prev.Y)
}

func TestComputeConstraintsShrinksTilesToFit(t *testing.T) {
	wide := ComputeConstraints(200, 40, ViewportDesktop, 5)
	narrow := ComputeConstraints(100, 40, ViewportDesktop, 5)
	assert.Equal(t, DesktopTileWidth, wide.TileWidth)
	assert.Less(t, narrow.TileWidth, DesktopTileWidth)

	for _, c := range []Constraints{wide, narrow} {
		rects := c.TileRects(0)
		last := rects[len(rects)-1]
		assert.LessOrEqual(t, last.Right(), c.TerminalWidth)
	}
}

func TestComputeConstraintsShortTerminal(t *testing.T) {
	c := ComputeConstraints(128, 22, ViewportDesktop, 5)
	assert.Less(t, c.TileHeight, DesktopTileHeight)
	assert.GreaterOrEqual(t, c.TileHeight, MinTileHeight)

	tiny := ComputeConstraints(40, 8, ViewportMobile, 5)
	assert.True(t, tiny.ShowMinWarning)
}

func TestComputeConstraintsManyTilesOverflow(t *testing.T) {
	c := ComputeConstraints(40, 30, ViewportMobile, 20)
	assert.Equal(t, MinTileWidth, c.TileWidth)
	assert.True(t, c.StripOverflow)
}

func TestTileRectsScrollActiveIntoView(t *testing.T) {
	tests := []struct {
		name  string
		width int
		mode  ViewportMode
		tiles int
	}{
		{name: "phone with 20 images", width: 62, mode: ViewportMobile, tiles: 20},
		{name: "narrow phone", width: 40, mode: ViewportMobile, tiles: 20},
		{name: "desktop with 40 images", width: 128, mode: ViewportDesktop, tiles: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ComputeConstraints(tt.width, 40, tt.mode, tt.tiles)
			require.True(t, c.StripOverflow)

			for active := 0; active < tt.tiles; active++ {
				rects := c.TileRects(active)
				require.Len(t, rects, tt.tiles)

				r := rects[active]
				assert.GreaterOrEqual(t, r.X, 0, "active %d starts on screen", active)
				assert.LessOrEqual(t, r.Right(), c.TerminalWidth, "active %d ends on screen", active)

				// The row is never pulled away from either edge.
				assert.LessOrEqual(t, rects[0].X, c.ActiveGap)
				assert.GreaterOrEqual(t, rects[tt.tiles-1].Right(), c.TerminalWidth-c.ActiveGap)
			}
			assert.Equal(t, 0, c.StripOffset(0))
			assert.Equal(t, c.stripWidth()-c.TerminalWidth, c.StripOffset(tt.tiles-1))
		})
	}
}

func TestStripOffsetZeroWhenRowFits(t *testing.T) {
	c := ComputeConstraints(128, 40, ViewportDesktop, 5)
	for active := 0; active < 5; active++ {
		assert.Equal(t, 0, c.StripOffset(active))
	}
}

func TestTileRects(t *testing.T) {
	c := ComputeConstraints(128, 40, ViewportDesktop, 5)

	for active := 0; active < 5; active++ {
		rects := c.TileRects(active)
		require.Len(t, rects, 5)

		for i, r := range rects {
			if i == active {
				assert.Equal(t, c.ActiveTileWidth, r.W)
				assert.Equal(t, c.ActiveTileHeight, r.H)
				assert.Equal(t, c.StripTop, r.Y)
			} else {
				assert.Equal(t, c.TileWidth, r.W)
				assert.Equal(t, c.TileHeight, r.H)
			}
			// Bottom aligned.
			assert.Equal(t, c.StripTop+c.StripHeight, r.Bottom())
			if i > 0 {
				assert.Greater(t, r.X, rects[i-1].Right(), "tiles never overlap")
			}
		}
	}
}

func TestTileRectsActiveSpacing(t *testing.T) {
	c := ComputeConstraints(128, 40, ViewportDesktop, 3)
	rects := c.TileRects(1)

	assert.Equal(t, c.TileGap+c.ActiveGap, rects[1].X-rects[0].Right())
	assert.Equal(t, c.TileGap+c.ActiveGap, rects[2].X-rects[1].Right())
}

func TestComputeDegradation(t *testing.T) {
	desktop := ComputeDegradation(ComputeConstraints(128, 40, ViewportDesktop, 5))
	assert.True(t, desktop.ShowNavLabels())
	assert.False(t, desktop.CompactButtons)
	assert.False(t, desktop.HideTileCaptions)

	mobile := ComputeDegradation(ComputeConstraints(62, 30, ViewportMobile, 5))
	assert.False(t, mobile.ShowNavLabels())
	assert.True(t, mobile.CompactButtons)

	crowded := ComputeDegradation(ComputeConstraints(40, 30, ViewportMobile, 20))
	assert.True(t, crowded.HideTileCaptions)
	assert.True(t, crowded.StripOverflow)
}
