// Package notify coalesces bursts of value changes into a single delayed
// callback carrying the most recent value.
package notify

import (
	"sync"
	"time"
)

// DefaultDelay is the notification window used when none is configured.
const DefaultDelay = 50 * time.Millisecond

// Timer is the subset of *time.Timer the debouncer relies on.
type Timer interface {
	Stop() bool
}

// Scheduler starts timers. The default uses time.AfterFunc; tests swap in a
// manual scheduler.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option customises a Debouncer.
type Option func(*Debouncer)

// WithScheduler replaces the timer source.
func WithScheduler(s Scheduler) Option {
	return func(d *Debouncer) {
		if s != nil {
			d.sched = s
		}
	}
}

// Debouncer delivers at most one callback per quiet window. Every Trigger
// inside the window replaces the pending value and restarts the window.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	sched   Scheduler
	timer   Timer
	gen     uint64
	pending string
	armed   bool
	send    func(value string)
}

// New creates a Debouncer that calls send after delay of inactivity.
// A non-positive delay selects DefaultDelay.
func New(delay time.Duration, send func(value string), opts ...Option) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	d := &Debouncer{delay: delay, sched: realScheduler{}, send: send}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Delay returns the configured window.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Trigger records value as the latest state and (re)starts the window.
func (d *Debouncer) Trigger(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.pending = value
	d.armed = true
	d.timer = d.sched.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Pending reports whether a notification is waiting to fire.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.armed
}

// Flush delivers the pending notification immediately, if any.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.fireLocked(d.gen)
}

// Stop drops the pending notification without delivering it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.armed = false
	d.pending = ""
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	d.fireLocked(gen)
}

// fireLocked is entered with mu held and releases it before calling send.
func (d *Debouncer) fireLocked(gen uint64) {
	if gen != d.gen || !d.armed {
		d.mu.Unlock()
		return
	}
	value := d.pending
	d.armed = false
	d.pending = ""
	d.timer = nil
	send := d.send
	d.mu.Unlock()

	if send != nil {
		send(value)
	}
}
