// Package blocks is the block library: reusable node templates the editing
// surface inserts into a page. Instantiating a template assigns fresh ids to
// every node in the subtree, so the same block can be dropped in twice.
package blocks

import (
	"github.com/google/uuid"

	"github.com/magus-warrior/80-s-webbuilder/internal/model"
)

// Template describes a node subtree without ids. Ids are assigned at
// instantiation time.
type Template struct {
	Type     model.NodeType    `json:"type" yaml:"type" validate:"required,node_type"`
	Name     string            `json:"name" yaml:"name" validate:"required"`
	Props    map[string]string `json:"props,omitempty" yaml:"props,omitempty"`
	Children []Template        `json:"children,omitempty" yaml:"children,omitempty"`
}

// Instantiate builds a node tree from the template with a fresh unique id per
// node. Props are copied so later edits never write back into the library.
func Instantiate(t Template) *model.Node {
	node := &model.Node{
		ID:    NewID(t.Type),
		Type:  t.Type,
		Name:  t.Name,
		Props: copyProps(t.Props),
	}
	if len(t.Children) > 0 {
		node.Children = make([]*model.Node, len(t.Children))
		for i, child := range t.Children {
			node.Children[i] = Instantiate(child)
		}
	}
	return node
}

// NewID mints a node id: the node type plus a short uuid segment, unique for
// practical purposes and readable in logs.
func NewID(t model.NodeType) string {
	return string(t) + "-" + uuid.NewString()[:8]
}

// NewPageID mints a page id in the persisted "page-xxxxxxxx" form.
func NewPageID() string {
	return "page-" + uuid.NewString()[:8]
}

func copyProps(props map[string]string) map[string]string {
	if len(props) == 0 {
		return nil
	}
	out := make(map[string]string, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}
