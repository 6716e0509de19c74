// Package greet provides the demo business object the sample documents bind
// against, plus its binding resolver.
package greet

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-qmltui/pkg/render"
)

const (
	constantMessage  = "Hello from Go"
	fallbackGreeting = "Hello, terminal!"
)

// Greeter produces greeting strings for the sample UI.
type Greeter struct{}

// New constructs a Greeter.
func New() *Greeter {
	return &Greeter{}
}

// Message returns the constant message exposed as the greeter.message
// binding.
func (g *Greeter) Message() string {
	return constantMessage
}

// Greet formats a greeting for name. Blank input (empty or all whitespace)
// yields a fixed fallback phrase instead of an empty greeting.
func (g *Greeter) Greet(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fallbackGreeting
	}
	return fmt.Sprintf("Hello, %s!", trimmed)
}

// Resolver exposes g as a binding resolver covering the bindings the sample
// documents use. Unknown bindings resolve to themselves so literal property
// values pass through untouched.
func Resolver(g *Greeter) render.BindingResolver {
	return func(binding string) string {
		switch binding {
		case "greeter.message":
			return g.Message()
		case "greeter.greet", "greeter.greet()":
			return g.Greet("")
		}
		return binding
	}
}
