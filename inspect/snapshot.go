package inspect

import (
	"fmt"
	"strings"
	"time"

	"slider/ui/layout"
)

// Snapshot represents a complete UI state at a point in time.
type Snapshot struct {
	// Timestamp when the snapshot was taken.
	Timestamp time.Time `json:"timestamp"`

	// Version of the snapshot format.
	Version string `json:"version"`

	// Terminal contains terminal dimensions.
	Terminal TerminalInfo `json:"terminal"`

	// AppState contains application state information.
	AppState AppStateInfo `json:"app_state"`

	// Layout contains layout configuration.
	Layout LayoutInfo `json:"layout"`

	// Components is the root of the component tree.
	Components *Node `json:"components"`

	// Breakpoints contains information about responsive breakpoints.
	Breakpoints []BreakpointInfo `json:"breakpoints"`
}

// TerminalInfo contains terminal dimensions.
type TerminalInfo struct {
	Width   int `json:"width"`
	Height  int `json:"height"`
	WidthPx int `json:"width_px"`
}

// AppStateInfo contains application-level state.
type AppStateInfo struct {
	// SelectedIndex is the index of the image shown in the background.
	SelectedIndex int `json:"selected_index"`

	// Caption is the name of the selected image.
	Caption string `json:"caption"`

	// Reference is the selected image's file path or builtin key.
	Reference string `json:"reference"`

	// ImageCount is the number of catalog entries.
	ImageCount int `json:"image_count"`

	// HelpVisible indicates if the full key help is displayed.
	HelpVisible bool `json:"help_visible"`

	// ErrorMessage is the current error message if any.
	ErrorMessage string `json:"error_message,omitempty"`
}

// LayoutInfo contains layout configuration.
type LayoutInfo struct {
	// Mode is the current viewport mode.
	Mode string `json:"mode"`

	CanvasHeight     int `json:"canvas_height"`
	TileWidth        int `json:"tile_width"`
	TileHeight       int `json:"tile_height"`
	ActiveTileWidth  int `json:"active_tile_width"`
	ActiveTileHeight int `json:"active_tile_height"`
	StripTop         int `json:"strip_top"`

	// Degradation contains active degradation flags.
	Degradation DegradationInfo `json:"degradation"`
}

// DegradationInfo contains active UI degradation flags.
type DegradationInfo struct {
	HideNavLabels    bool `json:"hide_nav_labels"`
	HideDescription  bool `json:"hide_description"`
	HideTileCaptions bool `json:"hide_tile_captions"`
	CompactButtons   bool `json:"compact_buttons"`
	StripOverflow    bool `json:"strip_overflow"`
	ShowMinWarning   bool `json:"show_min_warning"`
}

// BreakpointInfo contains information about a responsive breakpoint.
type BreakpointInfo struct {
	// Name is the breakpoint name.
	Name string `json:"name"`

	// Threshold is the dimension threshold.
	Threshold int `json:"threshold"`

	// Active indicates if this breakpoint is currently triggered.
	Active bool `json:"active"`

	// Dimension is "width_px", "width" or "height".
	Dimension string `json:"dimension"`
}

// NewSnapshot creates a new snapshot with current timestamp.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Timestamp: time.Now(),
		Version:   "1.0.0",
	}
}

// WithTerminal sets terminal info and returns the snapshot for chaining.
func (s *Snapshot) WithTerminal(width, height, widthPx int) *Snapshot {
	s.Terminal = TerminalInfo{Width: width, Height: height, WidthPx: widthPx}
	return s
}

// WithAppState sets the application state and returns the snapshot for chaining.
func (s *Snapshot) WithAppState(state AppStateInfo) *Snapshot {
	s.AppState = state
	return s
}

// WithLayout sets layout info from constraints and degradation.
func (s *Snapshot) WithLayout(c layout.Constraints, d layout.Degradation) *Snapshot {
	s.Layout = LayoutInfo{
		Mode:             c.Mode.String(),
		CanvasHeight:     c.CanvasHeight,
		TileWidth:        c.TileWidth,
		TileHeight:       c.TileHeight,
		ActiveTileWidth:  c.ActiveTileWidth,
		ActiveTileHeight: c.ActiveTileHeight,
		StripTop:         c.StripTop,
		Degradation: DegradationInfo{
			HideNavLabels:    d.HideNavLabels,
			HideDescription:  d.HideDescription,
			HideTileCaptions: d.HideTileCaptions,
			CompactButtons:   d.CompactButtons,
			StripOverflow:    d.StripOverflow,
			ShowMinWarning:   d.ShowMinWarning,
		},
	}

	s.Breakpoints = []BreakpointInfo{
		{Name: "mobile", Threshold: layout.MobileBreakpoint, Active: c.Mode == layout.ViewportMobile, Dimension: "width_px"},
		{Name: "hide_tile_captions", Threshold: layout.CaptionMinTileWidth, Active: d.HideTileCaptions, Dimension: "width"},
	}

	return s
}

// WithComponents sets the component tree root.
func (s *Snapshot) WithComponents(root *Node) *Snapshot {
	s.Components = root
	return s
}

// ToText returns a human-readable text representation.
func (s *Snapshot) ToText() string {
	var b strings.Builder

	b.WriteString("=== UI Snapshot ===\n")
	b.WriteString(fmt.Sprintf("Time: %s\n", s.Timestamp.Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("Terminal: %dx%d (%dpx)\n", s.Terminal.Width, s.Terminal.Height, s.Terminal.WidthPx))
	b.WriteString(fmt.Sprintf("Selected: %d/%d %s\n", s.AppState.SelectedIndex, s.AppState.ImageCount, s.AppState.Caption))
	if s.AppState.ErrorMessage != "" {
		b.WriteString(fmt.Sprintf("Error: %s\n", s.AppState.ErrorMessage))
	}

	b.WriteString("\n--- Layout ---\n")
	b.WriteString(fmt.Sprintf("Mode: %s\n", s.Layout.Mode))
	b.WriteString(fmt.Sprintf("Tile: %dx%d (active %dx%d)\n",
		s.Layout.TileWidth, s.Layout.TileHeight, s.Layout.ActiveTileWidth, s.Layout.ActiveTileHeight))
	b.WriteString(fmt.Sprintf("Strip top: %d\n", s.Layout.StripTop))

	b.WriteString("\n--- Active Breakpoints ---\n")
	for _, bp := range s.Breakpoints {
		status := "[ ]"
		if bp.Active {
			status = "[X]"
		}
		b.WriteString(fmt.Sprintf("  %s %s (threshold: %d %s)\n", status, bp.Name, bp.Threshold, bp.Dimension))
	}

	if s.Components != nil {
		b.WriteString("\n--- Components ---\n")
		writeNodeText(&b, s.Components, 0)
	}

	return b.String()
}

func writeNodeText(b *strings.Builder, node *Node, indent int) {
	prefix := strings.Repeat("  ", indent)

	b.WriteString(fmt.Sprintf("%s%s", prefix, node.Type))
	if node.ID != "" {
		b.WriteString(fmt.Sprintf(" [%s]", node.ID))
	}
	b.WriteString(fmt.Sprintf(" (%dx%d)", node.Bounds.Width, node.Bounds.Height))

	if active, ok := node.State["active"].(bool); ok && active {
		b.WriteString(" ACTIVE")
	}
	if node.Truncated != nil {
		b.WriteString(fmt.Sprintf(" TRUNCATED(%d->%d)",
			node.Truncated.OriginalLength,
			node.Truncated.DisplayLength))
	}

	b.WriteString("\n")

	for _, child := range node.Children {
		writeNodeText(b, child, indent+1)
	}
}
