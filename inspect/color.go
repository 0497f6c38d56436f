package inspect

import (
	"fmt"
	"image/color"
)

// StyleInfo contains styling information for a component.
type StyleInfo struct {
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`
	Bold       bool   `json:"bold,omitempty"`

	// Border is the border family, e.g. "thick" or "rounded".
	Border      string `json:"border,omitempty"`
	BorderColor string `json:"border_color,omitempty"`

	// Brightness is the factor image pixels are scaled by.
	Brightness float64 `json:"brightness,omitempty"`
}

// ColorHex formats c as "#RRGGBB". Nil is the terminal default and formats
// as "".
func ColorHex(c color.Color) string {
	if c == nil {
		return ""
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8)
}
