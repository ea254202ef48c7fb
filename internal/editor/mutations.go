package editor

import (
	"github.com/magus-warrior/80-s-webbuilder/internal/blocks"
	"github.com/magus-warrior/80-s-webbuilder/internal/color"
	"github.com/magus-warrior/80-s-webbuilder/internal/history"
	"github.com/magus-warrior/80-s-webbuilder/internal/model"
	"github.com/magus-warrior/80-s-webbuilder/internal/tree"
)

// InsertBlock instantiates a named library block at the active page's root
// and selects the new node.
func (e *Editor) InsertBlock(name string) (*model.Node, error) {
	tmpl, ok := blocks.Lookup(name)
	if !ok {
		return nil, nil
	}
	return e.InsertTemplate(tmpl)
}

// InsertTemplate instantiates a template at the active page's root and
// selects the new node. Invariant violations in the instantiated subtree
// surface as errors.
func (e *Editor) InsertTemplate(tmpl blocks.Template) (*model.Node, error) {
	node := blocks.Instantiate(tmpl)

	var insertErr error
	changed := e.mutate(history.Immediate, func(nodes []*model.Node) []*model.Node {
		out, err := tree.InsertAtRoot(nodes, node)
		if err != nil {
			insertErr = err
			return nodes
		}
		return out
	})
	if insertErr != nil {
		return nil, insertErr
	}
	if !changed {
		return nil, nil
	}
	e.selection = model.Selection{NodeID: node.ID}
	return node, nil
}

// InsertTemplateInto instantiates a template inside the container with the
// given id. An id that does not resolve to a container is a silent no-op and
// returns a nil node.
func (e *Editor) InsertTemplateInto(containerID string, tmpl blocks.Template) (*model.Node, error) {
	node := blocks.Instantiate(tmpl)

	var insertErr error
	changed := e.mutate(history.Immediate, func(nodes []*model.Node) []*model.Node {
		out, err := tree.InsertIntoContainer(nodes, containerID, node)
		if err != nil {
			insertErr = err
			return nodes
		}
		return out
	})
	if insertErr != nil {
		return nil, insertErr
	}
	if !changed {
		return nil, nil
	}
	e.selection = model.Selection{NodeID: node.ID}
	return node, nil
}

// UpdateNodeProps shallow-merges patch into the target node's props under
// the given recording mode. Continuous gestures (drag deltas, resize) use
// history.Debounced so the burst lands as one undo step.
func (e *Editor) UpdateNodeProps(nodeID string, patch map[string]string, mode history.Mode) {
	e.mutate(mode, func(nodes []*model.Node) []*model.Node {
		return tree.UpdateProps(nodes, nodeID, patch)
	})
}

// SetColorProp serializes a structured color value into the node's property
// map, the write-back path after a color editing interaction.
func (e *Editor) SetColorProp(nodeID, key string, value color.Value, mode history.Mode) {
	e.UpdateNodeProps(nodeID, map[string]string{key: value.String()}, mode)
}

// RenameNode replaces the target node's display name.
func (e *Editor) RenameNode(nodeID, name string) {
	e.mutate(history.Immediate, func(nodes []*model.Node) []*model.Node {
		return tree.Rename(nodes, nodeID, name)
	})
}

// RemoveNode deletes the node and its subtree. A removed selection clears.
func (e *Editor) RemoveNode(nodeID string) {
	changed := e.mutate(history.Immediate, func(nodes []*model.Node) []*model.Node {
		return tree.Remove(nodes, nodeID)
	})
	if changed && e.selection.NodeID != "" && e.findActive(e.selection.NodeID) == nil {
		e.selection = model.Selection{}
	}
}

// MoveNode reorders siblings under one parent on the active page; an empty
// parentID targets the root list.
func (e *Editor) MoveNode(parentID, sourceID, targetID string) {
	e.mutate(history.Immediate, func(nodes []*model.Node) []*model.Node {
		return tree.MoveWithinParent(nodes, parentID, sourceID, targetID)
	})
}

// FindNode returns the node with the given id on the active page, or nil.
func (e *Editor) FindNode(nodeID string) *model.Node {
	return e.findActive(nodeID)
}

func (e *Editor) findActive(nodeID string) *model.Node {
	page := e.ActivePage()
	if page == nil {
		return nil
	}
	return tree.Find(page.Nodes, nodeID)
}

// mutate runs op against the active page's root list, recording history only
// when the tree actually changed. No-ops leave state and history untouched.
func (e *Editor) mutate(mode history.Mode, op func([]*model.Node) []*model.Node) bool {
	page := e.ActivePage()
	if page == nil {
		return false
	}

	before := e.snapshot()
	next := op(page.Nodes)
	if sameNodes(page.Nodes, next) {
		return false
	}

	e.history.Record(mode, before)
	e.setActiveNodes(next)
	return true
}

// setActiveNodes swaps in a new root list persistently: the page and the
// page list are copied so recorded snapshots keep pointing at the old state.
func (e *Editor) setActiveNodes(nodes []*model.Node) {
	pages := make([]*model.Page, len(e.project.Pages))
	for i, page := range e.project.Pages {
		if page.ID == e.activePageID {
			dup := *page
			dup.Nodes = nodes
			pages[i] = &dup
			continue
		}
		pages[i] = page
	}
	e.project.Pages = pages
}

func sameNodes(a, b []*model.Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
