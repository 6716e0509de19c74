// Package render defines the frontend abstraction shared by the terminal
// presentations: the Frontend interface, a thread-safe Registry, and the
// binding-resolution capability.
package render

import (
	"context"

	"github.com/goliatone/go-qmltui/pkg/qml"
	"github.com/goliatone/go-qmltui/pkg/surface"
)

// Frontend presents a parsed document on some medium. Implementations never
// mutate the document.
type Frontend interface {
	Name() string
	Render(ctx context.Context, doc *qml.Document, opts Options) error
}

// Options carries the per-render collaborators. Surface is required by
// grid-style frontends and ignored by interactive ones; Resolver may be nil.
type Options struct {
	Surface  surface.Surface
	Resolver BindingResolver
}

// Canonical element type names. These are the only types with rendering
// meaning; any other type parses fine and stays reachable through lookups
// but is invisible to the frontends.
const (
	TypeWindow    = "ApplicationWindow"
	TypeColumn    = "Column"
	TypeText      = "Text"
	TypeLabel     = "Label"
	TypeTextField = "TextField"
	TypeButton    = "Button"
)
