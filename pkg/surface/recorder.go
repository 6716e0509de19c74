package surface

// DrawOp records one DrawText call in the order it was issued.
type DrawOp struct {
	Row  int
	Col  int
	Text string
}

// Recorder is a Surface that keeps the operation log instead of drawing.
// Clear resets the log, mirroring a real screen erase.
type Recorder struct {
	rows int
	cols int

	Cleared   bool
	Refreshed bool
	Ops       []DrawOp
}

var _ Surface = (*Recorder)(nil)

// NewRecorder creates a Recorder reporting the given dimensions.
func NewRecorder(rows, cols int) *Recorder {
	return &Recorder{rows: rows, cols: cols}
}

func (r *Recorder) Clear() {
	r.Cleared = true
	r.Ops = nil
}

func (r *Recorder) DrawText(row, col int, text string) {
	r.Ops = append(r.Ops, DrawOp{Row: row, Col: col, Text: text})
}

func (r *Recorder) Refresh() {
	r.Refreshed = true
}

func (r *Recorder) Rows() int { return r.rows }

func (r *Recorder) Cols() int { return r.cols }
