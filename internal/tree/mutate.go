package tree

import (
	"github.com/magus-warrior/80-s-webbuilder/internal/model"
	builderrors "github.com/magus-warrior/80-s-webbuilder/pkg/errors"
)

// UpdateProps shallow-merges patch into the target node's property map. An
// empty-string value overrides rather than deletes. Returns the input list
// unchanged (reference-identical) when the id is absent or the patch is empty.
func UpdateProps(roots []*model.Node, id string, patch map[string]string) []*model.Node {
	if len(patch) == 0 {
		return roots
	}
	return replace(roots, id, func(n *model.Node) *model.Node {
		dup := n.CloneShallow()
		props := n.CloneProps()
		for k, v := range patch {
			props[k] = v
		}
		dup.Props = props
		return dup
	})
}

// Rename replaces the target node's display name only.
func Rename(roots []*model.Node, id, name string) []*model.Node {
	return replace(roots, id, func(n *model.Node) *model.Node {
		dup := n.CloneShallow()
		dup.Name = name
		return dup
	})
}

// InsertAtRoot appends node to the root list. The combined tree must keep the
// uniqueness and acyclicity invariants; a violation is a collaborator bug and
// surfaces as an error rather than a no-op.
func InsertAtRoot(roots []*model.Node, node *model.Node) ([]*model.Node, error) {
	if node == nil {
		return roots, nil
	}
	if err := checkInsertion(roots, nil, node); err != nil {
		return roots, err
	}
	out := make([]*model.Node, len(roots)+1)
	copy(out, roots)
	out[len(roots)] = node
	return out, nil
}

// InsertIntoContainer appends node to the children of the container with the
// given id, searching the whole tree depth-first. If the id does not resolve
// to an existing container node, the insertion is a silent no-op.
func InsertIntoContainer(roots []*model.Node, containerID string, node *model.Node) ([]*model.Node, error) {
	if node == nil {
		return roots, nil
	}
	container := Find(roots, containerID)
	if container == nil || !container.IsContainer() {
		return roots, nil
	}
	if err := checkInsertion(roots, container, node); err != nil {
		return roots, err
	}
	return replace(roots, containerID, func(n *model.Node) *model.Node {
		dup := n.CloneShallow()
		children := make([]*model.Node, len(n.Children)+1)
		copy(children, n.Children)
		children[len(n.Children)] = node
		dup.Children = children
		return dup
	}), nil
}

// Remove deletes the node and its entire subtree wherever it is found.
func Remove(roots []*model.Node, id string) []*model.Node {
	out, changed := removeFrom(roots, id)
	if !changed {
		return roots
	}
	return out
}

// MoveWithinParent reorders siblings under one shared parent, or under the
// root list when parentID is empty. The source is removed and reinserted
// immediately before the target's post-removal index. Missing ids, identical
// ids, or a pair spanning two different parents all leave the tree untouched.
func MoveWithinParent(roots []*model.Node, parentID, sourceID, targetID string) []*model.Node {
	if parentID == "" {
		out, changed := reorder(roots, sourceID, targetID)
		if !changed {
			return roots
		}
		return out
	}
	return replace(roots, parentID, func(n *model.Node) *model.Node {
		children, changed := reorder(n.Children, sourceID, targetID)
		if !changed {
			return n
		}
		dup := n.CloneShallow()
		dup.Children = children
		return dup
	})
}

// replace locates the node with the given id and substitutes transform(node),
// copying ancestors along the path. Returning the receiver from transform
// keeps the whole tree reference-identical.
func replace(roots []*model.Node, id string, transform func(*model.Node) *model.Node) []*model.Node {
	out, changed := replaceIn(roots, id, transform)
	if !changed {
		return roots
	}
	return out
}

func replaceIn(nodes []*model.Node, id string, transform func(*model.Node) *model.Node) ([]*model.Node, bool) {
	for i, n := range nodes {
		if n == nil {
			continue
		}
		if n.ID == id {
			replaced := transform(n)
			if replaced == n {
				return nodes, false
			}
			out := make([]*model.Node, len(nodes))
			copy(out, nodes)
			out[i] = replaced
			return out, true
		}
		if children, changed := replaceIn(n.Children, id, transform); changed {
			dup := n.CloneShallow()
			dup.Children = children
			out := make([]*model.Node, len(nodes))
			copy(out, nodes)
			out[i] = dup
			return out, true
		}
	}
	return nodes, false
}

func removeFrom(nodes []*model.Node, id string) ([]*model.Node, bool) {
	for i, n := range nodes {
		if n == nil {
			continue
		}
		if n.ID == id {
			out := make([]*model.Node, 0, len(nodes)-1)
			out = append(out, nodes[:i]...)
			out = append(out, nodes[i+1:]...)
			return out, true
		}
		if children, changed := removeFrom(n.Children, id); changed {
			dup := n.CloneShallow()
			dup.Children = children
			out := make([]*model.Node, len(nodes))
			copy(out, nodes)
			out[i] = dup
			return out, true
		}
	}
	return nodes, false
}

func reorder(siblings []*model.Node, sourceID, targetID string) ([]*model.Node, bool) {
	sourceIdx, targetIdx := -1, -1
	for i, n := range siblings {
		if n == nil {
			continue
		}
		switch n.ID {
		case sourceID:
			sourceIdx = i
		case targetID:
			targetIdx = i
		}
	}
	if sourceIdx < 0 || targetIdx < 0 || sourceIdx == targetIdx {
		return siblings, false
	}

	out := make([]*model.Node, 0, len(siblings))
	out = append(out, siblings[:sourceIdx]...)
	out = append(out, siblings[sourceIdx+1:]...)

	// The target shifts down by one once the source ahead of it is gone.
	insertAt := targetIdx
	if sourceIdx < targetIdx {
		insertAt--
	}
	out = append(out, nil)
	copy(out[insertAt+1:], out[insertAt:])
	out[insertAt] = siblings[sourceIdx]
	return out, true
}

// checkInsertion validates that grafting subtree into the tree (under
// container, or at the root when container is nil) keeps both invariants.
func checkInsertion(roots []*model.Node, container, subtree *model.Node) error {
	existing := make(map[string]struct{})
	collectIDs(roots, existing)

	path := make(map[*model.Node]struct{})
	if container != nil {
		// Grafting a subtree that contains its own destination would make
		// the container its own ancestor.
		path[container] = struct{}{}
	}
	return validateSubtree([]*model.Node{subtree}, existing, path)
}

func validateSubtree(nodes []*model.Node, seen map[string]struct{}, path map[*model.Node]struct{}) error {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if _, onPath := path[n]; onPath {
			return builderrors.NewInvariantError(builderrors.InvariantAcyclic, n.ID)
		}
		if _, dup := seen[n.ID]; dup {
			return builderrors.NewInvariantError(builderrors.InvariantUniqueID, n.ID)
		}
		seen[n.ID] = struct{}{}

		path[n] = struct{}{}
		if err := validateSubtree(n.Children, seen, path); err != nil {
			return err
		}
		delete(path, n)
	}
	return nil
}
