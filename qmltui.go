// Package qmltui parses a restricted QML subset and presents the parsed
// document on terminal frontends. The root package re-exports the pieces
// most callers need; the full surface lives under pkg/.
package qmltui

import (
	"context"

	"github.com/goliatone/go-qmltui/pkg/orchestrator"
	"github.com/goliatone/go-qmltui/pkg/qml"
	"github.com/goliatone/go-qmltui/pkg/render"
	"github.com/goliatone/go-qmltui/pkg/renderers/grid"
	"github.com/goliatone/go-qmltui/pkg/surface"
)

// Document aliases the parsed document tree.
type Document = qml.Document

// Node aliases one parsed element.
type Node = qml.Node

// BindingResolver aliases the binding-resolution capability.
type BindingResolver = render.BindingResolver

// Surface aliases the character-grid capability frontends draw on.
type Surface = surface.Surface

// ParseString parses a document held in memory. It never fails.
func ParseString(source string) *Document {
	return qml.ParseString(source)
}

// ParseFile reads and parses the document at path. The only failure mode is
// an unreadable file.
func ParseFile(path string) (*Document, error) {
	return qml.ParseFile(path)
}

// New exposes the orchestrator constructor from the top-level module.
func New(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Render lays doc out on s through the grid frontend. It is the simplest
// entry point for callers that already hold a parsed document and a
// surface.
func Render(ctx context.Context, doc *Document, s Surface, resolver BindingResolver) error {
	return grid.New().Render(ctx, doc, render.Options{Surface: s, Resolver: resolver})
}
