// Package tcellgrid implements surface.Surface on a tcell terminal screen.
package tcellgrid

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/goliatone/go-qmltui/pkg/surface"
	"github.com/goliatone/go-qmltui/pkg/theme"
)

// Screen adapts a tcell.Screen to the grid-surface capability. Callers own
// the Init/Fini lifecycle; every other method assumes an initialized screen.
type Screen struct {
	mu     sync.Mutex
	screen tcell.Screen
	style  tcell.Style
}

var _ surface.Surface = (*Screen)(nil)

// Option configures a Screen during construction.
type Option func(*Screen)

// WithTheme applies colors from a theme document.
func WithTheme(t theme.Theme) Option {
	return func(s *Screen) {
		s.style = styleFromTheme(t)
	}
}

// WithScreen injects a pre-built tcell screen. Tests use this with
// tcell.NewSimulationScreen.
func WithScreen(inner tcell.Screen) Option {
	return func(s *Screen) {
		if inner != nil {
			s.screen = inner
		}
	}
}

// New constructs a terminal surface. The screen is not usable until Init.
func New(options ...Option) (*Screen, error) {
	s := &Screen{style: tcell.StyleDefault}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.screen == nil {
		inner, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("tcellgrid: create screen: %w", err)
		}
		s.screen = inner
	}
	return s, nil
}

// Init takes over the terminal.
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("tcellgrid: init: %w", err)
	}
	s.screen.SetStyle(s.style)
	return nil
}

// Fini restores the terminal.
func (s *Screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Fini()
}

func (s *Screen) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Clear()
}

func (s *Screen) DrawText(row, col int, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	x := col
	for _, r := range text {
		s.screen.SetContent(x, row, r, nil, s.style)
		x += runewidth.RuneWidth(r)
	}
}

func (s *Screen) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Show()
}

func (s *Screen) Rows() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, rows := s.screen.Size()
	return rows
}

func (s *Screen) Cols() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cols, _ := s.screen.Size()
	return cols
}

// WaitKey blocks until a key press or a screen teardown event arrives.
func (s *Screen) WaitKey() {
	for {
		switch s.screen.PollEvent().(type) {
		case *tcell.EventKey, *tcell.EventError, nil:
			return
		}
	}
}

func styleFromTheme(t theme.Theme) tcell.Style {
	style := tcell.StyleDefault
	if t.Foreground != "" {
		style = style.Foreground(tcell.GetColor(t.Foreground))
	}
	if t.Background != "" {
		style = style.Background(tcell.GetColor(t.Background))
	}
	return style.Bold(t.Bold)
}
