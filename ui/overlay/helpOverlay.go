package overlay

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// HelpOverlay shows every key binding in a bordered box.
type HelpOverlay struct {
	title  string
	keyMap help.KeyMap
	help   help.Model
}

// NewHelpOverlay creates a help overlay for keyMap.
func NewHelpOverlay(title string, keyMap help.KeyMap) *HelpOverlay {
	h := help.New()
	h.ShowAll = true
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	return &HelpOverlay{title: title, keyMap: keyMap, help: h}
}

// Render renders the help overlay
func (o *HelpOverlay) Render() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#000000")).
		Padding(1, 2)

	content := titleStyle.Render(o.title) + "\n\n" + o.help.View(o.keyMap)
	return boxStyle.Render(content)
}
