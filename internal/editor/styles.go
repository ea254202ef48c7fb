package editor

import (
	"github.com/magus-warrior/80-s-webbuilder/internal/model"
	"github.com/magus-warrior/80-s-webbuilder/internal/style"
	"github.com/magus-warrior/80-s-webbuilder/internal/tree"
)

// UpdateToken replaces one token's value. Tokens live outside snapshots
// (history captures tree, selection, and active page only), so theme edits
// are not undoable steps.
func (e *Editor) UpdateToken(name, value string) {
	e.registry.UpdateValue(name, value)
	e.syncTokens()
}

// ApplyPreset wholesale-replaces the token set. With preserveExistingValues,
// user overrides survive the preset's values for matching names.
func (e *Editor) ApplyPreset(tokens []model.ThemeToken, preserveExistingValues bool) error {
	if err := e.registry.ApplyPreset(tokens, preserveExistingValues); err != nil {
		return err
	}
	e.syncTokens()
	return nil
}

// Tokens returns the active token set.
func (e *Editor) Tokens() []model.ThemeToken {
	return e.registry.Tokens()
}

// CSSVariables returns the document-root variable map derived from the
// registry, for descendant renderers to consume without re-resolving.
func (e *Editor) CSSVariables() map[string]string {
	return e.registry.VariableMap()
}

// ResolveNode produces the final style declaration for a node on the active
// page. A stale id resolves to an empty declaration.
func (e *Editor) ResolveNode(nodeID string) style.Declaration {
	return e.resolver.Resolve(e.findActive(nodeID))
}

// ResolveActivePage resolves every node on the active page, keyed by node id.
func (e *Editor) ResolveActivePage() map[string]style.Declaration {
	out := map[string]style.Declaration{}
	page := e.ActivePage()
	if page == nil {
		return out
	}
	tree.Walk(page.Nodes, func(n *model.Node) {
		out[n.ID] = e.resolver.Resolve(n)
	})
	return out
}

// syncTokens mirrors the registry back onto the project model so the next
// persistence write carries the current theme.
func (e *Editor) syncTokens() {
	e.project.Tokens = e.registry.Tokens()
}
