// Package orchestrator coordinates the pipeline from document source to
// rendered output: load, parse, pick a frontend, render. It applies
// sensible defaults (built-in frontends, grid by default) while remaining
// open to dependency injection.
package orchestrator

import (
	"context"
	"errors"
	"io/fs"

	"github.com/goliatone/go-qmltui/pkg/qml"
	"github.com/goliatone/go-qmltui/pkg/render"
	"github.com/goliatone/go-qmltui/pkg/renderers/grid"
	"github.com/goliatone/go-qmltui/pkg/renderers/prompt"
	"github.com/goliatone/go-qmltui/pkg/surface"
)

const defaultFrontendName = "grid"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a frontend registry. Built-in frontends are not
// added to an injected registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithFrontends registers additional frontends during construction.
func WithFrontends(frontends ...render.Frontend) Option {
	return func(o *Orchestrator) {
		o.extra = append(o.extra, frontends...)
	}
}

// WithDefaultFrontend overrides the frontend used when a request omits an
// explicit Frontend field.
func WithDefaultFrontend(name string) Option {
	return func(o *Orchestrator) {
		if name != "" {
			o.defaultFrontend = name
		}
	}
}

// WithResolver supplies the binding resolver used when a request carries
// none.
func WithResolver(resolver render.BindingResolver) Option {
	return func(o *Orchestrator) {
		o.resolver = resolver
	}
}

// WithFS supplies the filesystem consulted for fs-kind sources.
func WithFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.fsys = fsys
	}
}

// Orchestrator wires the parser and the frontend registry together.
type Orchestrator struct {
	registry        *render.Registry
	extra           []render.Frontend
	defaultFrontend string
	resolver        render.BindingResolver
	fsys            fs.FS
	initErr         error
}

// Request describes one render: where the document comes from, which
// frontend presents it, and the per-render collaborators.
type Request struct {
	Source   qml.Source
	Frontend string
	Surface  surface.Surface
	Resolver render.BindingResolver
}

// New constructs an orchestrator. Without WithRegistry the built-in grid
// and prompt frontends are registered.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{defaultFrontend: defaultFrontendName}
	for _, opt := range options {
		if opt != nil {
			opt(o)
		}
	}

	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(grid.New())
		o.registry.MustRegister(prompt.New())
	}
	for _, frontend := range o.extra {
		if err := o.registry.Register(frontend); err != nil {
			o.initErr = err
			break
		}
	}
	o.extra = nil

	return o
}

// Run loads and parses the requested source, then renders it through the
// requested frontend. The only failures are an unreadable source, an
// unknown frontend name, and frontend precondition errors; document content
// itself never fails.
func (o *Orchestrator) Run(ctx context.Context, req Request) error {
	if o.initErr != nil {
		return o.initErr
	}
	if req.Source == nil {
		return errors.New("orchestrator: source is required")
	}

	doc, err := qml.Load(req.Source, o.fsys)
	if err != nil {
		return err
	}

	name := req.Frontend
	if name == "" {
		name = o.defaultFrontend
	}
	frontend, err := o.registry.Get(name)
	if err != nil {
		return err
	}

	resolver := req.Resolver
	if resolver == nil {
		resolver = o.resolver
	}
	return frontend.Render(ctx, doc, render.Options{Surface: req.Surface, Resolver: resolver})
}

// Frontends lists the registered frontend names.
func (o *Orchestrator) Frontends() []string {
	return o.registry.List()
}
