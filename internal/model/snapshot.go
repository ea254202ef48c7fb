package model

// Selection identifies the node the editing surface currently targets.
// An empty NodeID means nothing is selected.
type Selection struct {
	NodeID string `json:"nodeId,omitempty" yaml:"node_id,omitempty"`
}

// Snapshot is an immutable point-in-time capture used by the history manager.
// Because trees are persistent, the snapshot shares node structure with the
// live document instead of deep-copying it; only the page headers are copied
// so later page-level edits cannot leak into a recorded state.
type Snapshot struct {
	Pages        []*Page
	Selection    Selection
	ActivePageID string
}

// CaptureSnapshot records the current document state.
func CaptureSnapshot(pages []*Page, selection Selection, activePageID string) Snapshot {
	copied := make([]*Page, len(pages))
	for i, page := range pages {
		dup := *page
		copied[i] = &dup
	}
	return Snapshot{Pages: copied, Selection: selection, ActivePageID: activePageID}
}
