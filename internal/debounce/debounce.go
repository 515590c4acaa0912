// Package debounce suppresses bursts of input values, delivering only the
// last value once the input has been quiet for a fixed delay.
package debounce

import (
	"sync"
	"time"
)

// Debouncer delivers the most recent pushed value after delay has elapsed
// with no newer value. Superseded values are dropped, never delivered.
type Debouncer[T any] struct {
	delay time.Duration
	fn    func(T)

	mu         sync.Mutex
	timer      *time.Timer
	seq        uint64
	stopped    bool
	pending    T
	hasPending bool
}

// New returns a Debouncer calling fn on its own goroutine for every settled value.
func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, fn: fn}
}

// Push records v as the latest value and restarts the quiet period.
func (d *Debouncer[T]) Push(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.seq++
	seq := d.seq
	d.pending, d.hasPending = v, true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fire(seq, v) })
}

// Cancel discards the pending value, if any.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.discardLocked()
}

// Flush delivers the pending value now, on the calling goroutine, instead
// of waiting for the quiet period. It reports whether a value was delivered.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if d.stopped || !d.hasPending {
		d.mu.Unlock()
		return false
	}
	v := d.pending
	d.discardLocked()
	d.mu.Unlock()
	d.fn(v)
	return true
}

// Stop discards the pending value and ignores every later Push.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.discardLocked()
}

func (d *Debouncer[T]) discardLocked() {
	// bumping seq also catches a timer that already fired and is waiting on mu
	d.seq++
	var zero T
	d.pending, d.hasPending = zero, false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer[T]) fire(seq uint64, v T) {
	d.mu.Lock()
	if d.stopped || seq != d.seq {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	var zero T
	d.pending, d.hasPending = zero, false
	d.mu.Unlock()
	d.fn(v)
}
