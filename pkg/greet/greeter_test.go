package greet

import "testing"

func TestMessageIsConstant(t *testing.T) {
	t.Parallel()

	g := New()
	if got := g.Message(); got != "Hello from Go" {
		t.Fatalf("message = %q", got)
	}
}

func TestGreetFormatsName(t *testing.T) {
	t.Parallel()

	g := New()
	if got := g.Greet("Go Dev"); got != "Hello, Go Dev!" {
		t.Fatalf("greet = %q", got)
	}
	if got := g.Greet("  Sam  "); got != "Hello, Sam!" {
		t.Fatalf("greet = %q", got)
	}
}

func TestGreetHandlesBlankInput(t *testing.T) {
	t.Parallel()

	g := New()
	if got := g.Greet(""); got != "Hello, terminal!" {
		t.Fatalf("greet = %q", got)
	}
	if got := g.Greet("   "); got != "Hello, terminal!" {
		t.Fatalf("greet = %q", got)
	}
}

func TestResolverBindings(t *testing.T) {
	t.Parallel()

	resolver := Resolver(New())

	if got := resolver("greeter.message"); got != "Hello from Go" {
		t.Fatalf("greeter.message = %q", got)
	}
	if got := resolver("greeter.greet"); got != "Hello, terminal!" {
		t.Fatalf("greeter.greet = %q", got)
	}
	if got := resolver("greeter.greet()"); got != "Hello, terminal!" {
		t.Fatalf("greeter.greet() = %q", got)
	}
	// Unknown bindings resolve to themselves so literals pass through.
	if got := resolver("Say hello"); got != "Say hello" {
		t.Fatalf("literal = %q", got)
	}
}
