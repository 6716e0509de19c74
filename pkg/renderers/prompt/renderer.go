// Package prompt presents a parsed document as an interactive terminal
// session: text lines are echoed, text fields prompt for input, buttons ask
// for confirmation.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/goliatone/go-qmltui/pkg/qml"
	"github.com/goliatone/go-qmltui/pkg/render"
)

// Renderer walks the same window/column structure as the grid frontend but
// drives a prompt session instead of issuing draw calls.
type Renderer struct {
	driver PromptDriver
}

var _ render.Frontend = (*Renderer)(nil)

// Option configures the prompt frontend.
type Option func(*Renderer)

// WithDriver overrides the prompt driver. Tests inject stubs here.
func WithDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// New constructs a prompt frontend backed by survey.
func New(options ...Option) *Renderer {
	r := &Renderer{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Name reports the frontend identifier.
func (r *Renderer) Name() string {
	return "prompt"
}

// Render runs a session and discards the collected values. Callers that
// need them use Run directly.
func (r *Renderer) Render(ctx context.Context, doc *qml.Document, opts render.Options) error {
	_, err := r.Run(ctx, doc, opts.Resolver)
	return err
}

// Run executes the interactive session and returns the collected values
// keyed by node id (anonymous nodes are keyed field1, field2, ...). Text
// fields collect the entered string, buttons collect "true"/"false".
// Missing expected structure ends the session with no values and no error.
func (r *Renderer) Run(ctx context.Context, doc *qml.Document, resolver render.BindingResolver) (map[string]string, error) {
	if doc == nil {
		return nil, errors.New("prompt: document is required")
	}
	if r.driver == nil {
		return nil, errors.New("prompt: driver is required")
	}

	window := doc.FirstRootOfType(render.TypeWindow)
	if window == nil {
		return nil, nil
	}

	if title := render.Resolve(resolver, window.Property("title", "")); title != "" {
		if err := r.driver.Echo(ctx, title); err != nil {
			return nil, err
		}
	}

	column := window.FindChildByType(render.TypeColumn)
	if column == nil {
		return nil, nil
	}

	values := make(map[string]string)
	anonymous := 0
	for _, child := range column.Children {
		if err := ctx.Err(); err != nil {
			return values, err
		}

		switch child.Type {
		case render.TypeText, render.TypeLabel:
			line := render.Resolve(resolver, child.Property("text", ""))
			if line == "" {
				continue
			}
			if err := r.driver.Echo(ctx, line); err != nil {
				return values, err
			}
		case render.TypeTextField:
			message := render.Resolve(resolver, child.Property("placeholderText", ""))
			if message == "" {
				message = "Input"
			}
			entered, err := r.driver.Input(ctx, InputConfig{
				Message: message,
				Default: render.Resolve(resolver, child.Property("text", "")),
			})
			if err != nil {
				return values, err
			}
			values[valueKey(child, &anonymous)] = entered
		case render.TypeButton:
			label := render.Resolve(resolver, child.Property("text", "Button"))
			confirmed, err := r.driver.Confirm(ctx, label)
			if err != nil {
				return values, err
			}
			values[valueKey(child, &anonymous)] = strconv.FormatBool(confirmed)
		}
	}

	return values, nil
}

func valueKey(node *qml.Node, anonymous *int) string {
	if node.ID != "" {
		return node.ID
	}
	*anonymous++
	return fmt.Sprintf("field%d", *anonymous)
}
