package app

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"slider/catalog"
	"slider/config"
	"slider/keys"
	"slider/log"
	"slider/slider"
	"slider/ui"
	"slider/ui/layout"
	"slider/ui/overlay"
	"slider/ui/theme"
)

// Run is the main entrypoint into the application. The terminal theme is
// held for exactly as long as the program runs.
func Run(ctx context.Context, cat *catalog.Catalog, cfg *config.Config) error {
	h, err := newHome(ctx, cat, cfg)
	if err != nil {
		return err
	}

	lease := theme.NewLease(theme.NewTermSurface(termenv.DefaultOutput()), theme.Dark)
	lease.Acquire()
	defer lease.Release()

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.Mouse {
		// All-motion reporting is needed for hover selection.
		opts = append(opts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(h, opts...)
	_, err = p.Run()
	return err
}

type state int

const (
	stateDefault state = iota
	// stateHelp is the state when the key help overlay is displayed.
	stateHelp
)

type home struct {
	ctx context.Context

	// -- Configuration --

	appConfig *config.Config

	// -- State --

	state state
	// slider is the only source of truth for the selection and the viewport
	// mode. Handlers read it when they run.
	slider *slider.Slider

	width, height int
	constraints   layout.Constraints

	// -- UI Components --

	renderer    *ui.Renderer
	profile     termenv.Profile
	help        help.Model
	helpOverlay *overlay.HelpOverlay
	// errBox displays error messages
	errBox *ui.ErrBox

	// copyToClipboard writes text to the system clipboard.
	copyToClipboard func(string) error
}

func newHome(ctx context.Context, cat *catalog.Catalog, cfg *config.Config) (*home, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s, err := slider.New(cat, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to create slider: %w", err)
	}

	h := &home{
		ctx:             ctx,
		appConfig:       cfg,
		state:           stateDefault,
		slider:          s,
		renderer:        ui.NewRenderer(ui.NewPictures(), cfg.Title, cfg.Description),
		profile:         lipgloss.ColorProfile(),
		help:            help.New(),
		helpOverlay:     overlay.NewHelpOverlay("Keys", keys.KeyMap{}),
		errBox:          ui.NewErrBox(),
		copyToClipboard: clipboard.WriteAll,
	}
	h.help.Styles.ShortKey = ui.FooterStyle.Bold(true)
	h.help.Styles.ShortDesc = ui.FooterStyle
	return h, nil
}

// updateHandleWindowSizeEvent recomputes the viewport mode and the layout.
// Every resize is applied; nothing is debounced.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height

	widthPx := layout.PixelWidth(msg.Width, m.appConfig.CellWidth)
	if m.slider.Resize(widthPx) {
		log.LayoutTrace("viewport mode -> %s at %dpx", m.slider.Mode(), widthPx)
	}
	m.constraints = layout.ComputeConstraints(msg.Width, msg.Height, m.slider.Mode(), m.slider.Catalog().Len())
	m.errBox.SetSize(msg.Width)
	m.help.Width = msg.Width
	log.LayoutTrace("resize %dx%d tile=%dx%d strip_top=%d warn=%v",
		msg.Width, msg.Height, m.constraints.TileWidth, m.constraints.TileHeight,
		m.constraints.StripTop, m.constraints.ShowMinWarning)
}

func (m *home) Init() tea.Cmd {
	return nil
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	m.writeSnapshot()
	return model, cmd
}

func (m *home) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hideErrMsg:
		m.errBox.Clear()
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case error:
		return m, m.handleError(msg)
	}
	return m, nil
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == stateHelp && msg.Type == tea.KeyEsc {
		m.state = stateDefault
		return m, nil
	}

	name, ok := keys.Lookup(msg.String())
	if !ok {
		return m, nil
	}
	log.InputTrace("key %q -> %s", msg.String(), name)

	switch name {
	case keys.KeyPrev:
		m.slider.Advance(slider.Previous)
	case keys.KeyNext:
		m.slider.Advance(slider.Next)
	case keys.KeyYank:
		return m, m.yank()
	case keys.KeyHelp:
		if m.state == stateHelp {
			m.state = stateDefault
		} else {
			m.state = stateHelp
		}
	case keys.KeyQuit:
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse maps pointer events onto the region under the pointer. The hit
// map is rebuilt from the current selection each time, since the active tile
// is wider than the others.
func (m *home) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.width == 0 {
		return nil
	}
	hit := ui.NewHitMap(m.constraints, m.slider.Index()).Test(msg.X, msg.Y)

	switch {
	case msg.Action == tea.MouseActionMotion:
		if hit.Kind == ui.HitTile && m.slider.Pointer(slider.PointerEnter, hit.Index) {
			log.InputTrace("hover %s at %d,%d", hit, msg.X, msg.Y)
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		log.InputTrace("press %s at %d,%d", hit, msg.X, msg.Y)
		switch hit.Kind {
		case ui.HitPrev:
			m.slider.Advance(slider.Previous)
		case ui.HitNext:
			m.slider.Advance(slider.Next)
		case ui.HitTile:
			m.slider.Pointer(slider.PointerPress, hit.Index)
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelUp:
		m.slider.Advance(slider.Previous)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelDown:
		m.slider.Advance(slider.Next)
	}
	return nil
}

// yank copies the current image reference to the clipboard.
func (m *home) yank() tea.Cmd {
	ref := m.slider.Current().Reference
	if err := m.copyToClipboard(ref); err != nil {
		return m.handleError(fmt.Errorf("failed to copy %s: %w", ref, err))
	}
	log.InfoLog.Printf("copied %s to clipboard", ref)
	return nil
}

// hideErrMsg implements tea.Msg and clears the error text from the screen.
type hideErrMsg struct{}

// handleError handles all errors which get bubbled up to the app. sets the error message. We return a callback tea.Cmd that returns a hideErrMsg message
// which clears the error message after 3 seconds.
func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.errBox.SetError(err)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(3 * time.Second):
		}

		return hideErrMsg{}
	}
}

func (m *home) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	start := time.Now()
	defer func() { log.GetProfiler().RecordFrame(time.Since(start)) }()

	mainView := m.renderer.Render(m.slider.Frame(), m.constraints, m.profile)
	if m.state == stateHelp {
		mainView = overlay.PlaceOverlay(m.helpOverlay.Render(), mainView)
	}

	return lipgloss.JoinVertical(lipgloss.Left, mainView, m.footer())
}

// footer is one line: the error if any, else the size warning, else the
// short key help.
func (m *home) footer() string {
	switch {
	case m.errBox.HasError():
		return m.errBox.String()
	case m.constraints.ShowMinWarning:
		return ui.WarningStyle.Render(fmt.Sprintf("terminal too small (%dx%d)", m.width, m.height))
	default:
		return m.help.View(keys.KeyMap{})
	}
}
