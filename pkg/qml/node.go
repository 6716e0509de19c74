package qml

// Node is one parsed element instance: a free-form type identifier, an
// optional document-unique id, named properties, and ordered children.
// Child order is rendering order.
type Node struct {
	Type       string
	ID         string
	Properties map[string]string
	Children   []*Node
}

// Property returns the value stored under key, or fallback when absent.
func (n *Node) Property(key, fallback string) string {
	if value, ok := n.Properties[key]; ok {
		return value
	}
	return fallback
}

// setProperty records a property assignment. Later assignments win. The id
// property mirrors into Node.ID in the same step so the two never diverge.
func (n *Node) setProperty(key, value string) {
	if n.Properties == nil {
		n.Properties = make(map[string]string)
	}
	n.Properties[key] = value
	if key == "id" {
		n.ID = value
	}
}

// FindChildByType returns the first descendant with the wanted type,
// depth-first and earliest-declared-first. The receiver itself is never a
// match. Returns nil when no descendant matches.
func (n *Node) FindChildByType(wantedType string) *Node {
	for _, child := range n.Children {
		if child.Type == wantedType {
			return child
		}
		if nested := child.FindChildByType(wantedType); nested != nil {
			return nested
		}
	}
	return nil
}

// FindChildByID returns the first descendant carrying the wanted id, in the
// same depth-first order as FindChildByType.
func (n *Node) FindChildByID(wantedID string) *Node {
	for _, child := range n.Children {
		if child.ID == wantedID {
			return child
		}
		if nested := child.FindChildByID(wantedID); nested != nil {
			return nested
		}
	}
	return nil
}

// Document is the ordered collection of root nodes produced by one parse.
// Typically there is exactly one root, but zero or many are legal. A
// Document is fully populated when returned and treated as read-only by
// every consumer.
type Document struct {
	Roots []*Node
}

// FirstRootOfType scans roots in order; a root that does not match is
// searched for a matching descendant before the next root is considered.
func (d *Document) FirstRootOfType(wantedType string) *Node {
	for _, root := range d.Roots {
		if root.Type == wantedType {
			return root
		}
		if nested := root.FindChildByType(wantedType); nested != nil {
			return nested
		}
	}
	return nil
}

// FindByID locates a node by id anywhere in the document, roots first, then
// their descendants in declaration order.
func (d *Document) FindByID(wantedID string) *Node {
	for _, root := range d.Roots {
		if root.ID == wantedID {
			return root
		}
		if nested := root.FindChildByID(wantedID); nested != nil {
			return nested
		}
	}
	return nil
}
