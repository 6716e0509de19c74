package qml

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestParseStringNestedItems(t *testing.T) {
	t.Parallel()

	const source = `
ApplicationWindow {
    id: root
    width: 320
    height: 200

    Column {
        spacing: 2
        Text {
            id: message
            text: "Hello"
        }
        Button {
            id: okButton
            text: "OK"
        }
    }
}
`

	doc := ParseString(source)

	if got := len(doc.Roots); got != 1 {
		t.Fatalf("expected 1 root, got %d", got)
	}
	root := doc.Roots[0]
	if root.Type != "ApplicationWindow" {
		t.Fatalf("root type = %q", root.Type)
	}
	if root.ID != "root" {
		t.Fatalf("root id = %q", root.ID)
	}
	if got := root.Property("width", ""); got != "320" {
		t.Fatalf("width = %q", got)
	}
	if got := root.Property("height", ""); got != "200" {
		t.Fatalf("height = %q", got)
	}

	column := root.FindChildByType("Column")
	if column == nil {
		t.Fatalf("Column not found")
	}
	if got := column.Property("spacing", ""); got != "2" {
		t.Fatalf("spacing = %q", got)
	}

	message := column.FindChildByID("message")
	if message == nil {
		t.Fatalf("message not found")
	}
	if got := message.Property("text", ""); got != "Hello" {
		t.Fatalf("message text = %q", got)
	}

	okButton := column.FindChildByID("okButton")
	if okButton == nil {
		t.Fatalf("okButton not found")
	}
	if got := okButton.Property("text", ""); got != "OK" {
		t.Fatalf("okButton text = %q", got)
	}
}

func TestParseStringInlineChildren(t *testing.T) {
	t.Parallel()

	const source = `
ApplicationWindow {
    Column {
        Text { id: inlineText; text: "Inline" }
        Label { text: "Secondary" }
        Button { text: "Run" }
    }
}
`

	doc := ParseString(source)

	column := doc.FirstRootOfType("Column")
	if column == nil {
		t.Fatalf("Column not found")
	}
	if got := len(column.Children); got != 3 {
		t.Fatalf("expected 3 children, got %d", got)
	}

	wantTypes := []string{"Text", "Label", "Button"}
	for i, child := range column.Children {
		if child.Type != wantTypes[i] {
			t.Fatalf("child %d type = %q, want %q", i, child.Type, wantTypes[i])
		}
	}

	inlineText := column.FindChildByID("inlineText")
	if inlineText == nil {
		t.Fatalf("inlineText not found")
	}
	if got := inlineText.Property("text", ""); got != "Inline" {
		t.Fatalf("inlineText text = %q", got)
	}

	runButton := column.FindChildByType("Button")
	if runButton == nil {
		t.Fatalf("Button not found")
	}
	if got := runButton.Property("text", ""); got != "Run" {
		t.Fatalf("Button text = %q", got)
	}
}

func TestParseStringEquivalentNestingStyles(t *testing.T) {
	t.Parallel()

	const block = `
ApplicationWindow {
    Column {
        Text {
            id: first
            text: "One"
        }
        Text {
            id: second
            text: "Two"
        }
    }
}
`
	const inline = `
ApplicationWindow {
    Column {
        Text { id: first; text: "One" }
        Text { id: second; text: "Two" }
    }
}
`

	for _, source := range []string{block, inline} {
		doc := ParseString(source)
		for _, id := range []string{"first", "second"} {
			node := doc.FindByID(id)
			if node == nil {
				t.Fatalf("node %q not found", id)
			}
			if node.ID != id {
				t.Fatalf("node id = %q, want %q", node.ID, id)
			}
		}
	}
}

func TestParseStringPermissive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		check  func(t *testing.T, doc *Document)
	}{
		{
			name: "malformed property lines are skipped",
			source: `
Item {
    this line has no colon
    text: "kept"
}
`,
			check: func(t *testing.T, doc *Document) {
				item := doc.Roots[0]
				if got := len(item.Properties); got != 1 {
					t.Fatalf("expected 1 property, got %d", got)
				}
				if got := item.Property("text", ""); got != "kept" {
					t.Fatalf("text = %q", got)
				}
			},
		},
		{
			name:   "excess closing braces pop nothing",
			source: "Item { }\n}\n}\nOther { }\n",
			check: func(t *testing.T, doc *Document) {
				if got := len(doc.Roots); got != 2 {
					t.Fatalf("expected 2 roots, got %d", got)
				}
				if doc.Roots[1].Type != "Other" {
					t.Fatalf("second root = %q", doc.Roots[1].Type)
				}
			},
		},
		{
			name:   "properties outside any node are dropped",
			source: "orphan: value\nItem { }\n",
			check: func(t *testing.T, doc *Document) {
				if got := len(doc.Roots); got != 1 {
					t.Fatalf("expected 1 root, got %d", got)
				}
				if got := len(doc.Roots[0].Properties); got != 0 {
					t.Fatalf("expected no properties, got %d", got)
				}
			},
		},
		{
			name:   "comments and blank lines are ignored",
			source: "// heading\n\nItem {\n    // note\n    text: yes\n}\n",
			check: func(t *testing.T, doc *Document) {
				if got := doc.Roots[0].Property("text", ""); got != "yes" {
					t.Fatalf("text = %q", got)
				}
			},
		},
		{
			name:   "last assignment wins",
			source: "Item {\n    text: first\n    text: second\n}\n",
			check: func(t *testing.T, doc *Document) {
				if got := doc.Roots[0].Property("text", ""); got != "second" {
					t.Fatalf("text = %q", got)
				}
			},
		},
		{
			name:   "quotes are stripped only as a wrapping pair",
			source: "Item {\n    a: \"quoted\"\n    b: un\"quoted\n}\n",
			check: func(t *testing.T, doc *Document) {
				if got := doc.Roots[0].Property("a", ""); got != "quoted" {
					t.Fatalf("a = %q", got)
				}
				if got := doc.Roots[0].Property("b", ""); got != "un\"quoted" {
					t.Fatalf("b = %q", got)
				}
			},
		},
		{
			name:   "property line ending in brace closes the node",
			source: "Item {\n    text: \"bye\" }\nOther { }\n",
			check: func(t *testing.T, doc *Document) {
				if got := len(doc.Roots); got != 2 {
					t.Fatalf("expected 2 roots, got %d", got)
				}
				if got := doc.Roots[0].Property("text", ""); got != "bye" {
					t.Fatalf("text = %q", got)
				}
			},
		},
		{
			name:   "empty type before brace is skipped",
			source: "{\n    text: lost\n}\nItem { }\n",
			check: func(t *testing.T, doc *Document) {
				if got := len(doc.Roots); got != 1 {
					t.Fatalf("expected 1 root, got %d", got)
				}
				if doc.Roots[0].Type != "Item" {
					t.Fatalf("root type = %q", doc.Roots[0].Type)
				}
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tc.check(t, ParseString(tc.source))
		})
	}
}

func TestParseStringIDMirrorsIntoNode(t *testing.T) {
	t.Parallel()

	doc := ParseString("Item { id: inline }\nOther {\n    id: standalone\n}\n")

	if got := doc.Roots[0].ID; got != "inline" {
		t.Fatalf("inline id = %q", got)
	}
	if got := doc.Roots[0].Property("id", ""); got != "inline" {
		t.Fatalf("inline id property = %q", got)
	}
	if got := doc.Roots[1].ID; got != "standalone" {
		t.Fatalf("standalone id = %q", got)
	}
}

func TestParseStringIdempotent(t *testing.T) {
	t.Parallel()

	const source = `
ApplicationWindow {
    title: "Demo"
    Column {
        spacing: 1
        Text { id: message; text: "Hello" }
        Button { text: "Do it" }
    }
}
`

	first := ParseString(source)
	second := ParseString(source)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("parses differ (-first +second):\n%s", diff)
	}
}

func TestParseFileMissingPath(t *testing.T) {
	t.Parallel()

	if _, err := ParseFile("testdata/does-not-exist.qml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseFileSample(t *testing.T) {
	t.Parallel()

	doc, err := ParseFile("testdata/sample.qml")
	if err != nil {
		t.Fatalf("parse file: %v", err)
	}
	if doc.FirstRootOfType("ApplicationWindow") == nil {
		t.Fatalf("ApplicationWindow not found")
	}
}

func TestParseFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"ui/main.qml": &fstest.MapFile{Data: []byte("Item { text: \"fs\" }\n")},
	}

	doc, err := ParseFS(fsys, "ui/main.qml")
	if err != nil {
		t.Fatalf("parse fs: %v", err)
	}
	if got := doc.Roots[0].Property("text", ""); got != "fs" {
		t.Fatalf("text = %q", got)
	}

	if _, err := ParseFS(fsys, "ui/missing.qml"); err == nil {
		t.Fatalf("expected error for missing fs entry")
	}
}
