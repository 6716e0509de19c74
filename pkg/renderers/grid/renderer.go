// Package grid renders a parsed document as a vertical stack of centered
// lines on a fixed-size character grid.
package grid

import (
	"context"
	"errors"
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/goliatone/go-qmltui/pkg/qml"
	"github.com/goliatone/go-qmltui/pkg/render"
	"github.com/goliatone/go-qmltui/pkg/surface"
)

// Renderer issues a strictly ordered sequence of surface operations
// (clear, zero or more draws, refresh) per render. It holds no state, so a
// single instance can serve any number of documents and surfaces.
type Renderer struct{}

var _ render.Frontend = (*Renderer)(nil)

// New constructs the grid frontend.
func New() *Renderer {
	return &Renderer{}
}

// Name reports the frontend identifier.
func (r *Renderer) Name() string {
	return "grid"
}

// Render lays the document out on opts.Surface. Missing expected structure
// (no window root, no column) is not an error: the surface is cleared and
// refreshed, and the call returns nil. Content past the last row is dropped.
func (r *Renderer) Render(ctx context.Context, doc *qml.Document, opts render.Options) error {
	if doc == nil {
		return errors.New("grid: document is required")
	}
	if opts.Surface == nil {
		return errors.New("grid: surface is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s := opts.Surface
	s.Clear()

	window := doc.FirstRootOfType(render.TypeWindow)
	if window == nil {
		s.Refresh()
		return nil
	}

	row := 0
	if title := render.Resolve(opts.Resolver, window.Property("title", "")); title != "" {
		drawCentered(s, row, title, 0)
		row += 2
	}

	column := window.FindChildByType(render.TypeColumn)
	if column == nil {
		s.Refresh()
		return nil
	}

	spacing := parseIntOr(column.Property("spacing", "1"), 1)
	lines := displayLines(column, opts.Resolver)

	paddedWidth := 0
	for _, line := range lines {
		if width := runewidth.StringWidth(line); width > paddedWidth {
			paddedWidth = width
		}
	}

	for _, line := range lines {
		if row >= s.Rows() {
			break
		}
		drawCentered(s, row, line, paddedWidth)
		row += 1 + spacing
	}

	s.Refresh()
	return nil
}

// displayLines computes one line per renderable direct child of the column.
// An empty line still occupies a row slot; it just never reaches the
// surface. Types without rendering meaning contribute nothing.
func displayLines(column *qml.Node, resolver render.BindingResolver) []string {
	lines := make([]string, 0, len(column.Children))
	for _, child := range column.Children {
		switch child.Type {
		case render.TypeText, render.TypeLabel:
			lines = append(lines, render.Resolve(resolver, child.Property("text", "")))
		case render.TypeTextField:
			content := render.Resolve(resolver, child.Property("text", ""))
			if content == "" {
				content = render.Resolve(resolver, child.Property("placeholderText", ""))
			}
			if content == "" {
				content = " "
			}
			lines = append(lines, "[ "+content+" ]")
		case render.TypeButton:
			label := render.Resolve(resolver, child.Property("text", "Button"))
			lines = append(lines, "[ "+label+" ]")
		}
	}
	return lines
}

// drawCentered draws text centered within a field of paddedWidth cells,
// itself centered on the surface. A paddedWidth of zero or less means the
// text's own width is the field. Empty text draws nothing.
func drawCentered(s surface.Surface, row int, text string, paddedWidth int) {
	if text == "" {
		return
	}
	length := runewidth.StringWidth(text)
	width := length
	if paddedWidth > 0 {
		width = paddedWidth
	}
	leftPadding := max(0, (s.Cols()-width)/2)
	offset := max(0, (width-length)/2)
	s.DrawText(row, leftPadding+offset, text)
}

func parseIntOr(text string, fallback int) int {
	value, err := strconv.Atoi(text)
	if err != nil {
		return fallback
	}
	return value
}
