package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple name", input: "Landing Page", expected: "landing-page"},
		{name: "punctuation collapses", input: "My -- Cool!! Site", expected: "my-cool-site"},
		{name: "leading and trailing trimmed", input: "  Hello  ", expected: "hello"},
		{name: "empty falls back", input: "!!!", expected: "project"},
		{name: "already clean", input: "portfolio", expected: "portfolio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestNodeTypeValid(t *testing.T) {
	t.Parallel()

	for _, nt := range NodeTypes() {
		assert.True(t, nt.Valid(), string(nt))
	}
	assert.False(t, NodeType("video").Valid())
}

func TestCloneShallowSharesSubtrees(t *testing.T) {
	t.Parallel()

	child := &Node{ID: "child", Type: NodeText}
	original := &Node{
		ID:       "parent",
		Type:     NodeContainer,
		Props:    map[string]string{"gap": "8px"},
		Children: []*Node{child},
	}

	dup := original.CloneShallow()
	assert.NotSame(t, original, dup)
	assert.Same(t, original.Children[0], dup.Children[0])

	props := original.CloneProps()
	props["gap"] = "16px"
	assert.Equal(t, "8px", original.Props["gap"])
}

func TestProjectPageLookup(t *testing.T) {
	t.Parallel()

	project := &Project{
		Name:  "Demo",
		Pages: []*Page{{ID: "page-1", Title: "Home", Path: "/"}},
	}

	assert.NotNil(t, project.Page("page-1"))
	assert.Nil(t, project.Page("page-2"))

	var nilProject *Project
	assert.Nil(t, nilProject.Page("page-1"))
}

func TestCaptureSnapshotCopiesPageHeaders(t *testing.T) {
	t.Parallel()

	page := &Page{ID: "page-1", Title: "Home", Path: "/", Nodes: []*Node{{ID: "n1", Type: NodeText}}}
	snap := CaptureSnapshot([]*Page{page}, Selection{NodeID: "n1"}, "page-1")

	page.Title = "Renamed"
	assert.Equal(t, "Home", snap.Pages[0].Title)
	// Node structure is shared, not copied.
	assert.Same(t, page.Nodes[0], snap.Pages[0].Nodes[0])
}
