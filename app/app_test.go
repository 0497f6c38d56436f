package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slider/catalog"
	"slider/config"
	"slider/testing/harness"
	"slider/testing/snapshot"
	"slider/ui"
	"slider/ui/layout"
)

const (
	desktopCols = 128 // 1024px
	mobileCols  = 62  // 496px
	rows        = 40
)

func newTestHome(t *testing.T, ctx context.Context) *home {
	t.Helper()
	h, err := newHome(ctx, catalog.Default(), config.DefaultConfig())
	require.NoError(t, err)
	h.copyToClipboard = func(string) error { return nil }
	return h
}

func newHarness(t *testing.T, cols int) (*harness.Harness, *home) {
	t.Helper()
	h := newTestHome(t, context.Background())
	return harness.New(t, h, cols, rows), h
}

// tileCenter is a cell inside tile k for the current selection.
func tileCenter(h *home, k int) (int, int) {
	r := ui.NewHitMap(h.constraints, h.slider.Index()).Tiles()[k]
	return r.X + r.W/2, r.Y + r.H/2
}

func TestNewHomeRejectsEmptyCatalog(t *testing.T) {
	_, err := newHome(context.Background(), nil, nil)
	assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)
}

func TestHoverSelectsOnDesktop(t *testing.T) {
	hs, h := newHarness(t, desktopCols)
	require.Equal(t, layout.ViewportDesktop, h.slider.Mode())

	x, y := tileCenter(h, 3)
	hs.Hover(x, y)

	assert.Equal(t, 3, h.slider.Index())
	assert.Equal(t, "builtin:img4", h.slider.Frame().Background)
	assert.Contains(t, snapshot.StripANSI(hs.View()), "Slider Design - 4")
}

func TestDesktopIgnoresTilePress(t *testing.T) {
	hs, h := newHarness(t, desktopCols)

	x, y := tileCenter(h, 2)
	hs.Click(x, y)
	assert.Equal(t, 0, h.slider.Index())
}

func TestMobileTapSelects(t *testing.T) {
	hs, h := newHarness(t, mobileCols)
	require.Equal(t, layout.ViewportMobile, h.slider.Mode())

	x, y := tileCenter(h, 3)
	hs.Hover(x, y)
	assert.Equal(t, 0, h.slider.Index(), "hover has no effect on mobile")

	hs.Click(x, y)
	assert.Equal(t, 3, h.slider.Index())
	assert.Equal(t, "builtin:img4", h.slider.Frame().Background)
}

func TestStripScrollsToLastTile(t *testing.T) {
	entries := make([]catalog.ImageEntry, 20)
	for i := range entries {
		entries[i] = catalog.ImageEntry{
			Reference: fmt.Sprintf("%simg%d", catalog.BuiltinPrefix, i+1),
			Name:      fmt.Sprintf("Design - %d", i+1),
		}
	}
	cat, err := catalog.New(entries...)
	require.NoError(t, err)
	h, err := newHome(context.Background(), cat, config.DefaultConfig())
	require.NoError(t, err)
	hs := harness.New(t, h, mobileCols, rows)
	require.True(t, h.constraints.StripOverflow)

	for i := 0; i < 19; i++ {
		hs.SendSpecialKey(tea.KeyRight)
	}
	require.Equal(t, 19, h.slider.Index())

	r := ui.NewHitMap(h.constraints, 19).Tiles()[19]
	assert.GreaterOrEqual(t, r.X, 0)
	assert.LessOrEqual(t, r.Right(), mobileCols)
	assert.Contains(t, snapshot.Row(hs.View(), r.Y), "┏", "active border is drawn")

	strip := h.snapshot().Components.Find("Strip", "")
	require.NotNil(t, strip)
	assert.Positive(t, strip.State["offset"])

	x, y := tileCenter(h, 19)
	hs.Click(x, y)
	assert.Equal(t, 19, h.slider.Index())

	// A tile scrolled into view by the move is tappable where it is drawn.
	x, y = tileCenter(h, 15)
	require.GreaterOrEqual(t, x, 0)
	hs.Click(x, y)
	assert.Equal(t, 15, h.slider.Index())
	assert.Equal(t, "builtin:img16", h.slider.Frame().Background)
}

func TestResizeAcrossBreakpoint(t *testing.T) {
	hs, h := newHarness(t, desktopCols)
	snap := snapshot.New(t)
	before := hs.View()
	for _, label := range ui.NavLabels {
		snap.AssertContains(before, label)
	}

	hs.Resize(mobileCols, rows)
	assert.Equal(t, layout.ViewportMobile, h.slider.Mode())
	after := hs.View()
	for _, label := range ui.NavLabels {
		snap.AssertNotContains(after, label)
	}
	snap.AssertContains(after, ui.DefaultTitle)

	hs.Resize(desktopCols, rows)
	assert.Equal(t, layout.ViewportDesktop, h.slider.Mode())
}

func TestKeyNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want int
	}{
		{name: "previous wraps to last", keys: []string{"left"}, want: 4},
		{name: "next five times wraps", keys: []string{"right", "right", "right", "right", "right"}, want: 0},
		{name: "vim keys", keys: []string{"l", "l", "h"}, want: 1},
		{name: "unbound keys ignored", keys: []string{"x", "j", "right"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hs, h := newHarness(t, desktopCols)
			harness.NewKeySequence(tt.keys...).Play(hs)
			assert.Equal(t, tt.want, h.slider.Index())
		})
	}
}

func TestKeysReachHandlerAfterSelection(t *testing.T) {
	hs, h := newHarness(t, desktopCols)

	x, y := tileCenter(h, 3)
	hs.Hover(x, y)
	hs.SendSpecialKey(tea.KeyRight)
	assert.Equal(t, 4, h.slider.Index())

	hs.SendSpecialKey(tea.KeyRight)
	assert.Equal(t, 0, h.slider.Index())
}

func TestArrowButtons(t *testing.T) {
	for _, cols := range []int{desktopCols, mobileCols} {
		hs, h := newHarness(t, cols)

		prev := h.constraints.Prev
		hs.Click(prev.X+1, prev.Y+1)
		assert.Equal(t, 4, h.slider.Index())

		next := h.constraints.Next
		hs.Click(next.X+1, next.Y+1)
		hs.Click(next.X+1, next.Y+1)
		assert.Equal(t, 1, h.slider.Index())
	}
}

func TestWheel(t *testing.T) {
	hs, h := newHarness(t, desktopCols)

	hs.Wheel(10, 10, false)
	hs.Wheel(10, 10, false)
	assert.Equal(t, 2, h.slider.Index())

	hs.Wheel(10, 10, true)
	assert.Equal(t, 1, h.slider.Index())
}

func TestYank(t *testing.T) {
	hs, h := newHarness(t, desktopCols)
	var copied string
	h.copyToClipboard = func(s string) error {
		copied = s
		return nil
	}

	hs.SendSpecialKey(tea.KeyRight)
	cmd := hs.SendKey("y")
	assert.Nil(t, cmd)
	assert.Equal(t, "builtin:img2", copied)
}

func TestYankErrorIsShownThenCleared(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h := newTestHome(t, ctx)
	h.copyToClipboard = func(string) error { return errors.New("no clipboard") }
	hs := harness.New(t, h, desktopCols, rows)

	cmd := hs.SendKey("y")
	require.NotNil(t, cmd)
	assert.Contains(t, snapshot.StripANSI(hs.View()), "no clipboard")

	// The context is already done, so the command returns immediately.
	hs.SendMsg(cmd())
	assert.False(t, h.errBox.HasError())
	assert.NotContains(t, snapshot.StripANSI(hs.View()), "no clipboard")
}

func TestHelpToggle(t *testing.T) {
	hs, h := newHarness(t, desktopCols)

	hs.SendKey("?")
	assert.Equal(t, stateHelp, h.state)
	assert.Contains(t, snapshot.StripANSI(hs.View()), "copy path")

	hs.SendKey("?")
	assert.Equal(t, stateDefault, h.state)

	hs.SendKey("?")
	hs.SendSpecialKey(tea.KeyEsc)
	assert.Equal(t, stateDefault, h.state)
}

func TestHelpDoesNotBlockNavigation(t *testing.T) {
	hs, h := newHarness(t, desktopCols)
	hs.SendKey("?")
	hs.SendSpecialKey(tea.KeyRight)
	assert.Equal(t, 1, h.slider.Index())
}

func TestQuit(t *testing.T) {
	hs, _ := newHarness(t, desktopCols)
	cmd := hs.SendKey("q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestViewFillsTerminal(t *testing.T) {
	harness.RunWithCommonSizes(t, func(t *testing.T, size harness.TerminalSize) {
		hs, h := newHarness(t, size.Width)
		hs.Resize(size.Width, size.Height)

		view := hs.View()
		assert.Equal(t, size.Height, snapshot.Lines(view))
		assert.LessOrEqual(t, snapshot.Width(view), size.Width)
		assert.Equal(t, 1, h.slider.Frame().ActiveTiles())
	})
}

func TestMinSizeWarning(t *testing.T) {
	hs, h := newHarness(t, desktopCols)
	hs.Resize(desktopCols, 16)

	require.True(t, h.constraints.ShowMinWarning)
	last := snapshot.Row(hs.View(), 15)
	assert.Contains(t, last, "terminal too small")
}

func TestViewBeforeFirstResize(t *testing.T) {
	h := newTestHome(t, context.Background())
	assert.Equal(t, "", h.View())
	assert.Nil(t, h.handleMouse(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionMotion}))
	assert.Equal(t, 0, h.slider.Index())
}

func TestSnapshotReflectsSelection(t *testing.T) {
	hs, h := newHarness(t, mobileCols)
	hs.SendSpecialKey(tea.KeyLeft)

	s := h.snapshot()
	assert.Equal(t, 4, s.AppState.SelectedIndex)
	assert.Equal(t, "Design - 5", s.AppState.Caption)
	assert.Equal(t, "mobile", s.Layout.Mode)
	assert.Equal(t, layout.PixelWidth(mobileCols, 0), s.Terminal.WidthPx)

	strip := s.Components.Find("Strip", "")
	require.NotNil(t, strip)
	require.Len(t, strip.Children, 5)
	active := 0
	for _, tile := range strip.Children {
		if tile.State["active"] == true {
			active++
			assert.Equal(t, "4", tile.ID)
		}
	}
	assert.Equal(t, 1, active)
	assert.True(t, strings.HasPrefix(s.ToText(), "=== UI Snapshot ==="))
}
