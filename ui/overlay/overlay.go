package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
)

// PlaceOverlay draws fg centered on top of bg. Both may carry ANSI styling;
// the background keeps its styling on either side of the overlay.
func PlaceOverlay(fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")

	fgWidth := lipgloss.Width(fg)
	bgWidth := lipgloss.Width(bg)
	if fgWidth >= bgWidth && len(fgLines) >= len(bgLines) {
		return fg
	}

	x := max(0, (bgWidth-fgWidth)/2)
	y := max(0, (len(bgLines)-len(fgLines))/2)

	for i, line := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		b := bgLines[row]

		left := truncate.String(b, uint(x))
		if w := ansi.PrintableRuneWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		lineWidth := ansi.PrintableRuneWidth(line)
		if lineWidth < fgWidth {
			line += strings.Repeat(" ", fgWidth-lineWidth)
		}
		bgLines[row] = left + line + cutLeft(b, x+fgWidth)
	}

	return strings.Join(bgLines, "\n")
}

// cutLeft drops the first n printable cells of s. The last escape sequence
// seen before the cut is replayed so the remainder keeps its style.
func cutLeft(s string, n int) string {
	var (
		width   int
		inSeq   bool
		seq     strings.Builder
		lastSeq string
	)
	for i, r := range s {
		if width >= n && !inSeq && r != ansi.Marker {
			return lastSeq + s[i:]
		}
		switch {
		case r == ansi.Marker:
			inSeq = true
			seq.Reset()
			seq.WriteRune(r)
		case inSeq:
			seq.WriteRune(r)
			if ansi.IsTerminator(r) {
				inSeq = false
				lastSeq = seq.String()
			}
		default:
			width += runewidth.RuneWidth(r)
		}
	}
	return ""
}
