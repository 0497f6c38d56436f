package ui

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

// Canvas colours. The theme makes the terminal background black and the
// default text white, so chrome only needs accents.
var (
	// TextPrimary is heading and caption text.
	TextPrimary = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	// TextSecondary is the description paragraph and nav labels.
	TextSecondary = color.RGBA{R: 0xE5, G: 0xE7, B: 0xEB, A: 0xFF}

	// TextMuted is for EXIF detail and the search glyph.
	TextMuted = color.RGBA{R: 0x9C, G: 0xA3, B: 0xAF, A: 0xFF}

	// BorderActive frames the active tile and the arrow buttons.
	BorderActive = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	// BorderInactive frames dimmed tiles.
	BorderInactive = color.RGBA{R: 0x6B, G: 0x72, B: 0x80, A: 0xFF}

	// Backdrop is painted under text that sits on an image.
	Backdrop = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

// Brightness factors for tiles and the overlay behind text.
const (
	InactiveBrightness = 0.7
	OverlayBrightness  = 0.5
)

// Footer styles.
var (
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
	FooterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
)
