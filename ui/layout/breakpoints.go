package layout

// Viewport breakpoint. Widths are logical pixels, see PixelWidth.
const (
	// MobileBreakpoint is the width below which the viewport is mobile.
	MobileBreakpoint = 768

	// DefaultCellWidth is the logical pixel width of one terminal column.
	// 96 columns sit exactly on the breakpoint.
	DefaultCellWidth = 8
)

// Page padding and chrome.
const (
	DesktopPadding = 4
	MobilePadding  = 2

	// DesktopNavHeight includes one row of padding above and below the nav row.
	DesktopNavHeight = 3
	MobileNavHeight  = 1

	// FooterHeight is the help/error line under the canvas.
	FooterHeight = 1

	// StripBottomPad is the gap between the thumbnail strip and the footer.
	StripBottomPad = 1
)

// Thumbnail tile sizes. Active tiles add the *Grow values and are surrounded
// by an extra margin on both sides.
const (
	DesktopTileWidth  = 24
	DesktopTileHeight = 10
	DesktopWidthGrow  = 4
	DesktopHeightGrow = 2
	DesktopTileGap    = 3
	DesktopActiveGap  = 2

	MobileTileWidth  = 14
	MobileTileHeight = 7
	MobileWidthGrow  = 2
	MobileHeightGrow = 1
	MobileTileGap    = 1
	MobileActiveGap  = 1

	// MinTileWidth leaves room for a border and four cells of picture.
	MinTileWidth = 6
	// MinTileHeight leaves room for a border and two rows of picture.
	MinTileHeight = 4
)

// Arrow buttons.
const (
	DesktopButtonWidth = 7
	MobileButtonWidth  = 5
	ButtonHeight       = 3
	DesktopButtonGap   = 4
	MobileButtonGap    = 2
)

// Info text.
const (
	// DesktopTextMinWidth keeps the description readable on narrow desktops.
	DesktopTextMinWidth = 30

	// minInfoRows is heading, spacer and one row of buttons.
	minInfoRows = 2 + ButtonHeight

	// CaptionMinTileWidth is the narrowest tile that still shows its caption.
	CaptionMinTileWidth = 8
)
