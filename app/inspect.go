package app

import (
	"fmt"
	"image/color"

	"github.com/mattn/go-runewidth"

	"slider/inspect"
	"slider/log"
	"slider/ui"
	"slider/ui/layout"
)

var _ inspect.Introspectable = (*home)(nil)

// snapshot captures the current UI state.
func (m *home) snapshot() *inspect.Snapshot {
	cur := m.slider.Current()
	return inspect.NewSnapshot().
		WithTerminal(m.width, m.height, m.slider.Width()).
		WithAppState(inspect.AppStateInfo{
			SelectedIndex: m.slider.Index(),
			Caption:       cur.Name,
			Reference:     cur.Reference,
			ImageCount:    m.slider.Catalog().Len(),
			HelpVisible:   m.state == stateHelp,
			ErrorMessage:  m.errBox.Message(),
		}).
		WithLayout(m.constraints, layout.ComputeDegradation(m.constraints)).
		WithComponents(m.InspectNode())
}

// writeSnapshot writes the inspection file when SLIDER_INSPECT=1.
func (m *home) writeSnapshot() {
	if !inspect.IsEnabled() {
		return
	}
	if err := inspect.WriteSnapshot(m.snapshot()); err != nil {
		log.WarningLog.Printf("inspect: %v", err)
	}
}

// InspectNode builds the component tree for the current frame.
func (m *home) InspectNode() *inspect.Node {
	c := m.constraints
	d := layout.ComputeDegradation(c)
	f := m.slider.Frame()

	root := inspect.NewNode("Slider").
		WithRect(layout.Rect{W: c.TerminalWidth, H: c.TerminalHeight}).
		WithState("mode", f.Mode.String()).
		WithState("index", f.Index)

	root.AddChild(inspect.NewNode("Background").
		WithRect(layout.Rect{W: c.TerminalWidth, H: c.CanvasHeight}).
		WithContent(f.Background))

	root.AddChild(inspect.NewNode("NavBar").
		WithRect(layout.Rect{Y: c.NavRow, W: c.TerminalWidth, H: 1}).
		WithState("labels", d.ShowNavLabels()))

	info := inspect.NewNode("InfoBox").
		AddChild(inspect.NewNode("Heading").WithRect(c.Heading).WithContent("Slider " + f.Caption)).
		AddChild(inspect.NewNode("Description").WithRect(c.Description).WithState("hidden", d.HideDescription)).
		AddChild(inspect.NewNode("Button").WithID("prev").WithRect(c.Prev)).
		AddChild(inspect.NewNode("Button").WithID("next").WithRect(c.Next))
	root.AddChild(info)

	strip := inspect.NewNode("Strip").
		WithRect(layout.Rect{Y: c.StripTop, W: c.TerminalWidth, H: c.StripHeight}).
		WithState("overflow", d.StripOverflow).
		WithState("offset", c.StripOffset(f.Index))
	for i, r := range c.TileRects(f.Index) {
		t := f.Tiles[i]
		brightness := ui.InactiveBrightness
		border := "normal"
		if t.Active {
			brightness, border = 1, "thick"
		}
		tile := inspect.NewNode("Tile").
			WithID(fmt.Sprintf("%d", i)).
			WithRect(r).
			WithContent(t.Name).
			WithState("active", t.Active).
			WithState("reference", t.Reference).
			WithStyles(&inspect.StyleInfo{
				Foreground:  inspect.ColorHex(ui.TextPrimary),
				Border:      border,
				BorderColor: inspect.ColorHex(borderColor(t.Active)),
				Brightness:  brightness,
			})
		inner := r.Inset(1).W
		if w := runewidth.StringWidth(t.Name); !d.HideTileCaptions && w > inner {
			tile.WithTruncation(w, inner, true)
		}
		strip.AddChild(tile)
	}
	root.AddChild(strip)

	return root
}

func borderColor(active bool) color.Color {
	if active {
		return ui.BorderActive
	}
	return ui.BorderInactive
}
