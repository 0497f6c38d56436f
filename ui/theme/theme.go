// Package theme applies the slider's dark theme to the whole terminal for as
// long as the UI is mounted, and puts the previous colours back afterwards.
package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette is a default background/foreground pair in hex.
type Palette struct {
	Background string
	Foreground string
}

// Dark is black background with white text.
var Dark = Palette{Background: "#000000", Foreground: "#FFFFFF"}

// Surface is something a palette can be applied to. The returned func undoes
// exactly that application.
type Surface interface {
	Apply(p Palette) (restore func())
}

// OSC 110/111 reset the default foreground/background colours.
const (
	resetForegroundSeq = termenv.OSC + "110\a"
	resetBackgroundSeq = termenv.OSC + "111\a"
)

// TermSurface sets the terminal's default colours with OSC 10/11 and flips
// lipgloss into dark-background mode.
type TermSurface struct {
	out *termenv.Output
}

// NewTermSurface returns a surface writing to out.
func NewTermSurface(out *termenv.Output) *TermSurface {
	return &TermSurface{out: out}
}

// Apply sets p as the terminal default colours.
func (s *TermSurface) Apply(p Palette) func() {
	prevDark := lipgloss.HasDarkBackground()
	lipgloss.SetHasDarkBackground(true)

	if s.out.Profile == termenv.Ascii {
		return func() { lipgloss.SetHasDarkBackground(prevDark) }
	}

	prevBg := s.out.BackgroundColor()
	prevFg := s.out.ForegroundColor()
	s.out.SetBackgroundColor(s.out.Color(p.Background))
	s.out.SetForegroundColor(s.out.Color(p.Foreground))

	return func() {
		if rgb, ok := prevBg.(termenv.RGBColor); ok {
			s.out.SetBackgroundColor(rgb)
		} else {
			_, _ = s.out.WriteString(resetBackgroundSeq)
		}
		if rgb, ok := prevFg.(termenv.RGBColor); ok {
			s.out.SetForegroundColor(rgb)
		} else {
			_, _ = s.out.WriteString(resetForegroundSeq)
		}
		lipgloss.SetHasDarkBackground(prevDark)
	}
}

// Lease ties a palette to a surface for a bounded lifetime: Acquire on mount,
// Release on every unmount path. Both are idempotent.
type Lease struct {
	mu      sync.Mutex
	surface Surface
	palette Palette
	restore func()
}

// NewLease creates an unacquired lease.
func NewLease(s Surface, p Palette) *Lease {
	return &Lease{surface: s, palette: p}
}

// Acquire applies the palette unless it is already applied.
func (l *Lease) Acquire() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.restore != nil {
		return
	}
	l.restore = l.surface.Apply(l.palette)
	if l.restore == nil {
		l.restore = func() {}
	}
}

// Release restores the surface if the palette is applied.
func (l *Lease) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.restore == nil {
		return
	}
	l.restore()
	l.restore = nil
}

// Held reports whether the palette is currently applied.
func (l *Lease) Held() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.restore != nil
}
