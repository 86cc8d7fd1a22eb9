package notify

import (
	"sort"
	"sync"
	"time"
)

// ManualScheduler is a deterministic Scheduler driven by Advance. It keeps
// its own clock starting at zero.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	owner   *ManualScheduler
	due     time.Duration
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

// AfterFunc registers f to run once the clock has advanced by d.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{owner: s, due: s.now + d, fn: f}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward and runs every timer that became due, in
// due order, outside the scheduler lock.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*manualTimer
	remaining := s.timers[:0]
	for _, t := range s.timers {
		switch {
		case t.stopped:
		case t.due <= s.now:
			t.stopped = true
			due = append(due, t)
		default:
			remaining = append(remaining, t)
		}
	}
	s.timers = remaining
	s.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].due < due[j].due })
	for _, t := range due {
		t.fn()
	}
}

// Active returns the number of timers that have neither fired nor been stopped.
func (s *ManualScheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}
