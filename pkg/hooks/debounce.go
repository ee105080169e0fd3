// Package hooks implements small timer-driven state machines used by the
// site's interactive widgets: a debounced value and a typewriter effect.
package hooks

import (
	"sync"
	"time"

	"portfolio-backend/pkg/clock"
)

// Debouncer exposes a settled value that follows its input only after the
// input has stayed unchanged for the configured delay.
type Debouncer[T any] struct {
	mu       sync.Mutex
	clock    clock.Clock
	delay    time.Duration
	settled  T
	pending  clock.Timer
	gen      uint64
	closed   bool
	onSettle func(T)
}

// NewDebouncer creates a Debouncer whose settled value starts at initial.
func NewDebouncer[T any](clk clock.Clock, initial T, delay time.Duration) *Debouncer[T] {
	if delay < 0 {
		delay = 0
	}
	return &Debouncer[T]{
		clock:   clk,
		delay:   delay,
		settled: initial,
	}
}

// OnSettle registers fn to be called with every newly settled value.
func (d *Debouncer[T]) OnSettle(fn func(T)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onSettle = fn
}

// Update records a new input value and restarts the quiet period. Any
// previously pending value is discarded.
func (d *Debouncer[T]) Update(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	if d.pending != nil {
		d.pending.Stop()
	}
	d.gen++
	gen := d.gen
	d.pending = d.clock.AfterFunc(d.delay, func() {
		d.settle(gen, v)
	})
}

// Value returns the last settled value.
func (d *Debouncer[T]) Value() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.settled
}

// Close cancels any pending update. Later calls to Update are ignored.
func (d *Debouncer[T]) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	d.gen++
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}

func (d *Debouncer[T]) settle(gen uint64, v T) {
	d.mu.Lock()
	// A timer that could not be stopped in time carries an old generation.
	if gen != d.gen || d.closed {
		d.mu.Unlock()
		return
	}
	d.settled = v
	d.pending = nil
	fn := d.onSettle
	d.mu.Unlock()

	if fn != nil {
		fn(v)
	}
}
