// Package editor hosts the state container for one open document: the
// project being edited, the current selection, the undo/redo history, and
// the theme registry. Every editing action enters through here, so snapshot
// policy is decided in exactly one place.
//
// An Editor is constructor-injected into its host and owns its state
// exclusively; there is no package-level instance.
package editor

import (
	"github.com/magus-warrior/80-s-webbuilder/internal/document"
	"github.com/magus-warrior/80-s-webbuilder/internal/history"
	"github.com/magus-warrior/80-s-webbuilder/internal/logger"
	"github.com/magus-warrior/80-s-webbuilder/internal/model"
	"github.com/magus-warrior/80-s-webbuilder/internal/style"
	"github.com/magus-warrior/80-s-webbuilder/internal/theme"
)

// Config holds the editor tunables.
type Config struct {
	// History configures the undo/redo stacks and debounce window.
	History history.Config

	// RecordSelection makes pure selection changes undoable steps. Off by
	// default: a click should not consume an undo.
	RecordSelection bool
}

// DefaultConfig returns the default editor configuration.
func DefaultConfig() Config {
	return Config{
		History:         history.DefaultConfig(),
		RecordSelection: false,
	}
}

// Editor is the single-owner engine instance for one open document.
type Editor struct {
	cfg Config
	log *logger.Logger

	project      *model.Project
	activePageID string
	selection    model.Selection

	history  *history.Manager
	registry *theme.Registry
	resolver *style.Resolver
}

// New validates the project and builds an editor over it. A nil scheduler
// uses real timers for debounced recording.
func New(project *model.Project, cfg Config, scheduler history.Scheduler, log *logger.Logger) (*Editor, error) {
	if err := document.ValidateProject(project); err != nil {
		return nil, err
	}

	registry, err := theme.NewRegistry(project.Tokens, log)
	if err != nil {
		return nil, err
	}

	e := &Editor{
		cfg:      cfg,
		log:      log.Component("editor"),
		project:  project,
		history:  history.New(cfg.History, scheduler, log),
		registry: registry,
		resolver: style.NewResolver(registry),
	}
	if len(project.Pages) > 0 {
		e.activePageID = project.Pages[0].ID
	}
	return e, nil
}

// Project returns the project under edit.
func (e *Editor) Project() *model.Project {
	return e.project
}

// ActivePage returns the page edits currently target, or nil when the
// project has no pages.
func (e *Editor) ActivePage() *model.Page {
	return e.project.Page(e.activePageID)
}

// Selection returns the current selection.
func (e *Editor) Selection() model.Selection {
	return e.selection
}

// SetActivePage switches the page under edit. Unlike node edits this is a
// collaborator call, so an unknown id is an error rather than a no-op.
func (e *Editor) SetActivePage(id string) error {
	if e.project.Page(id) == nil {
		return notFoundPage(id)
	}
	e.activePageID = id
	e.selection = model.Selection{}
	return nil
}

// Select targets a node on the editing surface. Whether this consumes an
// undo step is a policy knob, not a contract.
func (e *Editor) Select(nodeID string) {
	if e.selection.NodeID == nodeID {
		return
	}
	if e.cfg.RecordSelection {
		e.history.Record(history.Immediate, e.snapshot())
	}
	e.selection = model.Selection{NodeID: nodeID}
}

// Undo rewinds the most recent recorded step. It returns false when history
// is exhausted.
func (e *Editor) Undo() bool {
	restored, ok := e.history.Undo(e.snapshot())
	if !ok {
		return false
	}
	e.restore(restored)
	e.log.Debug("undo applied")
	return true
}

// Redo reapplies the most recently undone step.
func (e *Editor) Redo() bool {
	restored, ok := e.history.Redo(e.snapshot())
	if !ok {
		return false
	}
	e.restore(restored)
	e.log.Debug("redo applied")
	return true
}

// CanUndo reports whether an undo step is available.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether a redo step is available.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// FlushHistory commits any pending debounced snapshot, for hosts that need a
// hard boundary (e.g. before persisting).
func (e *Editor) FlushHistory() { e.history.Flush() }

func (e *Editor) snapshot() model.Snapshot {
	return model.CaptureSnapshot(e.project.Pages, e.selection, e.activePageID)
}

func (e *Editor) restore(snap model.Snapshot) {
	e.project.Pages = snap.Pages
	e.selection = snap.Selection
	e.activePageID = snap.ActivePageID
}
