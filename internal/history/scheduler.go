package history

import (
	"sort"
	"sync"
	"time"
)

// Scheduler is the cancelable deferred-callback abstraction behind debounced
// recording. Keeping it explicit decouples the history manager from any
// particular runtime: production uses timers, tests and cooperative hosts
// drive time by hand.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) Handle
}

// Handle cancels a scheduled callback. Cancel after firing is harmless.
type Handle interface {
	Cancel()
}

// TimerScheduler schedules callbacks on real timers.
type TimerScheduler struct{}

// NewTimerScheduler returns the production Scheduler.
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{}
}

// Schedule runs fn after delay unless the handle is cancelled first.
func (s *TimerScheduler) Schedule(delay time.Duration, fn func()) Handle {
	return timerHandle{timer: time.AfterFunc(delay, fn)}
}

type timerHandle struct {
	timer *time.Timer
}

func (h timerHandle) Cancel() {
	h.timer.Stop()
}

// ManualScheduler is a Scheduler driven by explicit Advance calls. It serves
// tests and hosts without native timers, where the owner's own tick decides
// when the idle window has elapsed.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	nextID  int
	entries map[int]*manualEntry
}

type manualEntry struct {
	due time.Duration
	fn  func()
}

// NewManualScheduler returns an empty manual scheduler at time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{entries: make(map[int]*manualEntry)}
}

// Schedule registers fn to fire once the scheduler has advanced past delay.
func (s *ManualScheduler) Schedule(delay time.Duration, fn func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.entries[id] = &manualEntry{due: s.now + delay, fn: fn}
	return &manualHandle{scheduler: s, id: id}
}

// Advance moves the clock forward and fires every callback that has come due,
// in due order.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d

	type firing struct {
		id  int
		due time.Duration
		fn  func()
	}
	var ready []firing
	for id, entry := range s.entries {
		if entry.due <= s.now {
			ready = append(ready, firing{id: id, due: entry.due, fn: entry.fn})
		}
	}
	for _, f := range ready {
		delete(s.entries, f.id)
	}
	s.mu.Unlock()

	sort.Slice(ready, func(i, j int) bool { return ready[i].due < ready[j].due })
	for _, f := range ready {
		f.fn()
	}
}

type manualHandle struct {
	scheduler *ManualScheduler
	id        int
}

func (h *manualHandle) Cancel() {
	h.scheduler.mu.Lock()
	defer h.scheduler.mu.Unlock()
	delete(h.scheduler.entries, h.id)
}
