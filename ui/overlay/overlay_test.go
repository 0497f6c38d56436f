package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
)

func TestPlaceOverlayCenters(t *testing.T) {
	bg := strings.Join([]string{
		"..........",
		"..........",
		"..........",
		"..........",
	}, "\n")

	got := PlaceOverlay("ab\ncd", bg)
	assert.Equal(t, strings.Join([]string{
		"..........",
		"....ab....",
		"....cd....",
		"..........",
	}, "\n"), got)
}

func TestPlaceOverlayKeepsBackgroundStyle(t *testing.T) {
	bg := "\x1b[31mrrrrrrrr\x1b[0m"
	got := PlaceOverlay("X", bg)

	assert.Equal(t, "\x1b[31mrrr\x1b[0mX\x1b[31mrrrr\x1b[0m", got)
}

func TestPlaceOverlayLargerThanBackground(t *testing.T) {
	assert.Equal(t, "wide box", PlaceOverlay("wide box", "bg"))
}

func TestCutLeft(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "plain", in: "abcdef", n: 2, want: "cdef"},
		{name: "zero", in: "abc", n: 0, want: "abc"},
		{name: "past end", in: "abc", n: 5, want: ""},
		{name: "replays style", in: "\x1b[1mabc\x1b[0m", n: 1, want: "\x1b[1mbc\x1b[0m"},
		{name: "after reset", in: "\x1b[1ma\x1b[0mbc", n: 1, want: "\x1b[0mbc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cutLeft(tt.in, tt.n))
		})
	}
}

type testKeyMap struct{}

func (testKeyMap) ShortHelp() []key.Binding { return nil }
func (testKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))}}
}

func TestHelpOverlayRender(t *testing.T) {
	out := NewHelpOverlay("Keys", testKeyMap{}).Render()

	assert.Contains(t, out, "Keys")
	assert.Contains(t, out, "quit")
	assert.Contains(t, out, "╭")
}
