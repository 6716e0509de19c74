package qml

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ParseString parses a document held in memory. It never fails: lines that
// do not match any recognized shape are skipped, and excess closing braces
// pop nothing.
func ParseString(source string) *Document {
	doc := &Document{}
	var stack []*Node

	push := func(nodeType string) *Node {
		node := &Node{Type: nodeType, Properties: make(map[string]string)}
		if len(stack) == 0 {
			doc.Roots = append(doc.Roots, node)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
		}
		stack = append(stack, node)
		return node
	}
	pop := func() {
		if len(stack) > 0 {
			stack = stack[:len(stack)-1]
		}
	}

	scanner := bufio.NewScanner(strings.NewReader(source))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		// Opening brace, possibly with inline properties and an inline close.
		if brace := strings.Index(line, "{"); brace >= 0 {
			nodeType := strings.TrimSpace(line[:brace])
			if nodeType == "" {
				continue
			}
			node := push(nodeType)

			remainder := strings.TrimSpace(line[brace+1:])
			closesInline := false
			if strings.HasSuffix(remainder, "}") {
				closesInline = true
				remainder = strings.TrimSpace(strings.TrimSuffix(remainder, "}"))
			}
			if remainder != "" {
				parseInlineProperties(remainder, node)
			}
			if closesInline {
				pop()
			}
			continue
		}

		if line == "}" {
			pop()
			continue
		}

		colon := strings.Index(line, ":")
		if colon < 0 || len(stack) == 0 {
			continue
		}
		key := strings.TrimSpace(line[:colon])
		rawValue := strings.TrimSpace(line[colon+1:])
		closesScope := false
		if strings.HasSuffix(rawValue, "}") {
			closesScope = true
			rawValue = strings.TrimSpace(strings.TrimSuffix(rawValue, "}"))
		}
		stack[len(stack)-1].setProperty(key, stripQuotes(rawValue))
		if closesScope {
			pop()
		}
	}

	return doc
}

// ParseFile reads and parses the document at path. The only failure mode is
// an unreadable file; the content itself cannot fail to parse.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("qml: open %s: %w", path, err)
	}
	return ParseString(string(data)), nil
}

// ParseFS reads and parses the named document from fsys.
func ParseFS(fsys fs.FS, name string) (*Document, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("qml: open %s: %w", name, err)
	}
	return ParseString(string(data)), nil
}

// parseInlineProperties splits a semicolon-separated property list found on
// a node-opening line and records each well-formed assignment.
func parseInlineProperties(propertiesText string, node *Node) {
	for _, segment := range strings.Split(propertiesText, ";") {
		trimmed := strings.TrimSpace(segment)
		if trimmed == "" {
			continue
		}
		colon := strings.Index(trimmed, ":")
		if colon < 0 {
			continue
		}
		key := strings.TrimSpace(trimmed[:colon])
		value := stripQuotes(strings.TrimSpace(trimmed[colon+1:]))
		node.setProperty(key, value)
	}
}

// stripQuotes removes one pair of wrapping double quotes. No other escaping
// is interpreted.
func stripQuotes(value string) string {
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		return value[1 : len(value)-1]
	}
	return value
}
