// Package history records undo/redo snapshots around document mutations,
// including debounced coalescing so a continuous gesture lands as one step.
package history

import (
	"sync"
	"time"

	"github.com/magus-warrior/80-s-webbuilder/internal/logger"
	"github.com/magus-warrior/80-s-webbuilder/internal/model"
)

// Mode selects how a mutation is recorded.
type Mode string

const (
	// Immediate pushes a snapshot of the pre-mutation state right away.
	Immediate Mode = "immediate"
	// Debounced captures one snapshot per burst and commits it after an
	// idle window, so a multi-step drag yields a single undo step.
	Debounced Mode = "debounced"
	// None applies the mutation without recording. Reserved for bookkeeping
	// that must not be independently undoable.
	None Mode = "none"
)

// Config holds the history manager tunables.
type Config struct {
	// Limit caps each of the past and future stacks. Oldest entries are
	// evicted on overflow. Default: 50.
	Limit int

	// DebounceWindow is the idle period after which a pending debounced
	// snapshot commits. Default: 200ms.
	DebounceWindow time.Duration
}

// DefaultConfig returns the default history configuration.
func DefaultConfig() Config {
	return Config{
		Limit:          50,
		DebounceWindow: 200 * time.Millisecond,
	}
}

// Manager owns the bounded past/future snapshot stacks for one document.
//
// The mutex exists only because timer-backed schedulers fire the debounce
// commit on their own goroutine; the document itself stays single-owner.
type Manager struct {
	cfg       Config
	scheduler Scheduler
	log       *logger.Logger

	mu      sync.Mutex
	past    []model.Snapshot
	future  []model.Snapshot
	pending *model.Snapshot
	handle  Handle
}

// New creates a Manager. A nil scheduler falls back to real timers.
func New(cfg Config, scheduler Scheduler, log *logger.Logger) *Manager {
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultConfig().Limit
	}
	if cfg.DebounceWindow <= 0 {
		cfg.DebounceWindow = DefaultConfig().DebounceWindow
	}
	if scheduler == nil {
		scheduler = NewTimerScheduler()
	}
	return &Manager{
		cfg:       cfg,
		scheduler: scheduler,
		log:       log.Component("history"),
	}
}

// Record registers the pre-mutation state under the given mode. Callers
// capture the snapshot before applying the mutation.
func (m *Manager) Record(mode Mode, before model.Snapshot) {
	switch mode {
	case Immediate:
		m.mu.Lock()
		m.flushPendingLocked()
		m.pushPastLocked(before)
		m.future = nil
		m.mu.Unlock()
	case Debounced:
		m.mu.Lock()
		if m.pending == nil {
			// First call of a burst: this is the state the whole gesture
			// rewinds to.
			snap := before
			m.pending = &snap
		}
		if m.handle != nil {
			m.handle.Cancel()
		}
		m.handle = m.scheduler.Schedule(m.cfg.DebounceWindow, m.commitPending)
		m.mu.Unlock()
	case None:
	}
}

// Flush commits any pending debounced snapshot immediately.
func (m *Manager) Flush() {
	m.commitPending()
}

func (m *Manager) commitPending() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pending == nil {
		return
	}
	m.pushPastLocked(*m.pending)
	m.future = nil
	m.pending = nil
	if m.handle != nil {
		m.handle.Cancel()
		m.handle = nil
	}
	m.log.Debug("debounced snapshot committed")
}

// Undo flushes any in-flight gesture, then swaps the current state for the
// most recent past snapshot. The second return is false when there is
// nothing to undo.
func (m *Manager) Undo(current model.Snapshot) (model.Snapshot, bool) {
	m.Flush()

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.past) == 0 {
		return model.Snapshot{}, false
	}
	top := m.past[len(m.past)-1]
	m.past = m.past[:len(m.past)-1]
	m.future = boundedPush(m.future, current, m.cfg.Limit)
	return top, true
}

// Redo is the mirror of Undo.
func (m *Manager) Redo(current model.Snapshot) (model.Snapshot, bool) {
	m.Flush()

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.future) == 0 {
		return model.Snapshot{}, false
	}
	top := m.future[len(m.future)-1]
	m.future = m.future[:len(m.future)-1]
	m.past = boundedPush(m.past, current, m.cfg.Limit)
	return top, true
}

// CanUndo reports whether an undo step is available, counting a pending
// debounced snapshot.
func (m *Manager) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.past) > 0 || m.pending != nil
}

// CanRedo reports whether a redo step is available.
func (m *Manager) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.future) > 0
}

// Depth returns the committed sizes of the past and future stacks.
func (m *Manager) Depth() (past, future int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.past), len(m.future)
}

func (m *Manager) pushPastLocked(snap model.Snapshot) {
	m.past = boundedPush(m.past, snap, m.cfg.Limit)
}

func (m *Manager) flushPendingLocked() {
	if m.pending == nil {
		return
	}
	// An immediate record supersedes the burst: commit what the gesture
	// captured first so its step is not lost.
	m.past = boundedPush(m.past, *m.pending, m.cfg.Limit)
	m.pending = nil
	if m.handle != nil {
		m.handle.Cancel()
		m.handle = nil
	}
}

func boundedPush(stack []model.Snapshot, snap model.Snapshot, limit int) []model.Snapshot {
	stack = append(stack, snap)
	if len(stack) > limit {
		overflow := len(stack) - limit
		stack = append([]model.Snapshot(nil), stack[overflow:]...)
	}
	return stack
}
