// Package tree implements the pure mutation engine over page node trees.
//
// Every operation takes the current root list and returns a new one. Nodes are
// copied only along the path to the mutated node; untouched subtrees keep
// their identity so callers can detect change by pointer comparison. All
// user-driven edits treat a missing subject as a silent no-op: ids arriving
// from optimistic UI gestures may be stale, and stale must never be fatal.
package tree

import (
	"github.com/magus-warrior/80-s-webbuilder/internal/model"
)

// Find returns the node with the given id anywhere in the tree, depth-first,
// or nil if absent.
func Find(roots []*model.Node, id string) *model.Node {
	for _, n := range roots {
		if n == nil {
			continue
		}
		if n.ID == id {
			return n
		}
		if found := Find(n.Children, id); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits every node depth-first, parents before children.
func Walk(roots []*model.Node, visit func(*model.Node)) {
	for _, n := range roots {
		if n == nil {
			continue
		}
		visit(n)
		Walk(n.Children, visit)
	}
}

// Validate checks the two structural invariants of a node tree: tree-wide id
// uniqueness and acyclicity. Collaborator-built trees (templates, persisted
// documents) pass through here before they are accepted.
func Validate(roots []*model.Node) error {
	return validateSubtree(roots, make(map[string]struct{}), make(map[*model.Node]struct{}))
}

// collectIDs gathers every id in the tree into dst.
func collectIDs(roots []*model.Node, dst map[string]struct{}) {
	Walk(roots, func(n *model.Node) {
		dst[n.ID] = struct{}{}
	})
}

// Count returns the number of nodes in the tree.
func Count(roots []*model.Node) int {
	total := 0
	Walk(roots, func(*model.Node) { total++ })
	return total
}
