package layout

// Degradation holds flags indicating which chrome is hidden or simplified.
type Degradation struct {
	HideNavLabels    bool // Static nav label row is desktop-only
	HideDescription  bool // No rows left between heading and strip
	HideTileCaptions bool // Tiles too narrow for a caption
	CompactButtons   bool // Narrow arrow buttons on mobile

	StripOverflow  bool
	ShowMinWarning bool
}

// ComputeDegradation calculates which UI features should be degraded.
func ComputeDegradation(c Constraints) Degradation {
	return Degradation{
		HideNavLabels:    c.Mode == ViewportMobile,
		HideDescription:  c.Description.Empty(),
		HideTileCaptions: c.TileWidth < CaptionMinTileWidth,
		CompactButtons:   c.Mode == ViewportMobile,
		StripOverflow:    c.StripOverflow,
		ShowMinWarning:   c.ShowMinWarning,
	}
}

// ShowNavLabels returns true if the static nav label row should be drawn.
func (d Degradation) ShowNavLabels() bool {
	return !d.HideNavLabels
}
