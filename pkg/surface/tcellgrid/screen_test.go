package tcellgrid

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/goliatone/go-qmltui/pkg/theme"
)

func newTestScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()

	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := New(WithScreen(sim))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(screen.Fini)
	return screen, sim
}

func TestScreenReportsSize(t *testing.T) {
	screen, sim := newTestScreen(t)

	sim.SetSize(40, 20)
	if got := screen.Cols(); got != 40 {
		t.Fatalf("cols = %d", got)
	}
	if got := screen.Rows(); got != 20 {
		t.Fatalf("rows = %d", got)
	}
}

func TestScreenDrawTextPlacesRunes(t *testing.T) {
	screen, sim := newTestScreen(t)
	sim.SetSize(20, 5)

	screen.Clear()
	screen.DrawText(1, 3, "Hi")
	screen.Refresh()

	cells, width, _ := sim.GetContents()
	at := func(row, col int) rune {
		cell := cells[row*width+col]
		if len(cell.Runes) == 0 {
			return 0
		}
		return cell.Runes[0]
	}

	if got := at(1, 3); got != 'H' {
		t.Fatalf("cell(1,3) = %q", got)
	}
	if got := at(1, 4); got != 'i' {
		t.Fatalf("cell(1,4) = %q", got)
	}
}

func TestScreenAppliesThemeStyle(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := New(
		WithScreen(sim),
		WithTheme(theme.Theme{Foreground: "red", Bold: true}),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()
	sim.SetSize(10, 3)

	screen.DrawText(0, 0, "x")
	screen.Refresh()

	cells, _, _ := sim.GetContents()
	fg, _, attrs := cells[0].Style.Decompose()
	if fg != tcell.GetColor("red") {
		t.Fatalf("foreground = %v", fg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Fatalf("expected bold attribute")
	}
}
