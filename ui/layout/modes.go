// Package layout provides the viewport classification and the cell geometry
// shared by the renderer and mouse hit testing.
package layout

// ViewportMode is the desktop/mobile classification derived from width.
type ViewportMode int

const (
	// ViewportDesktop shows the nav labels and selects thumbnails on hover.
	ViewportDesktop ViewportMode = iota

	// ViewportMobile hides the nav labels and selects thumbnails on press.
	ViewportMobile
)

// String returns the string representation of the viewport mode.
func (m ViewportMode) String() string {
	switch m {
	case ViewportDesktop:
		return "desktop"
	case ViewportMobile:
		return "mobile"
	default:
		return "unknown"
	}
}

// DetermineViewport classifies a width in logical pixels. There is no
// hysteresis: the same width always yields the same mode.
func DetermineViewport(widthPx int) ViewportMode {
	if widthPx < MobileBreakpoint {
		return ViewportMobile
	}
	return ViewportDesktop
}

// PixelWidth converts terminal columns to logical pixels. A non-positive
// cellWidth falls back to DefaultCellWidth.
func PixelWidth(cols, cellWidth int) int {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	return cols * cellWidth
}
