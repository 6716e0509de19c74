// Package surface defines the character-grid capability frontends draw on,
// plus an in-memory Recorder used by tests and the CLI dump mode.
package surface

// Surface is a fixed-size character grid. Implementations are assumed
// synchronous and always available; DrawText may clip text that runs past
// the grid edge, that is the implementation's concern.
type Surface interface {
	Clear()
	DrawText(row, col int, text string)
	Refresh()
	Rows() int
	Cols() int
}
