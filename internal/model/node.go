// Package model defines the document entities edited by the builder engine:
// nodes, pages, projects, theme tokens, and history snapshots.
package model

// NodeType enumerates the layout node kinds the builder understands.
type NodeType string

const (
	NodeSection   NodeType = "section"
	NodeText      NodeType = "text"
	NodeButton    NodeType = "button"
	NodeImage     NodeType = "image"
	NodeContainer NodeType = "container"
)

// NodeTypes lists every valid node type, in display order.
func NodeTypes() []NodeType {
	return []NodeType{NodeSection, NodeText, NodeButton, NodeImage, NodeContainer}
}

// Valid reports whether t is a known node type.
func (t NodeType) Valid() bool {
	switch t {
	case NodeSection, NodeText, NodeButton, NodeImage, NodeContainer:
		return true
	}
	return false
}

// Node is one element of a page's layout tree. Trees are persistent: once a
// node is handed to the mutation engine it must be treated as immutable, and
// every edit produces fresh copies along the mutated path only.
//
// The id is unique across the entire tree, and no node may appear in its own
// descendant chain. Both invariants are enforced at every insertion boundary.
type Node struct {
	ID       string            `json:"id" yaml:"id" validate:"required"`
	Type     NodeType          `json:"type" yaml:"type" validate:"required,node_type"`
	Name     string            `json:"name" yaml:"name"`
	Props    map[string]string `json:"props,omitempty" yaml:"props,omitempty"`
	Children []*Node           `json:"children,omitempty" yaml:"children,omitempty" validate:"omitempty,dive"`
}

// CloneShallow copies the node header while sharing props and children.
// The mutation engine replaces whichever of the two it is about to change.
func (n *Node) CloneShallow() *Node {
	if n == nil {
		return nil
	}
	dup := *n
	return &dup
}

// CloneProps returns a fresh copy of the node's property map.
func (n *Node) CloneProps() map[string]string {
	props := make(map[string]string, len(n.Props))
	for k, v := range n.Props {
		props[k] = v
	}
	return props
}

// Prop returns the value for key and whether it is set.
func (n *Node) Prop(key string) (string, bool) {
	if n == nil || n.Props == nil {
		return "", false
	}
	v, ok := n.Props[key]
	return v, ok
}

// IsContainer reports whether the node accepts interactively inserted
// children. Prefab templates may nest under other types, but drop targets
// are containers only.
func (n *Node) IsContainer() bool {
	return n != nil && n.Type == NodeContainer
}
