// Package frame fans a host's per-frame callback out to subscribers.
package frame

import (
	"sync"
	"time"
)

// Func receives the time elapsed since the previous frame. A non-nil error
// aborts the current tick and is returned to the host.
type Func func(dt time.Duration) error

// Source is anything a per-frame callback can subscribe to.
type Source interface {
	Subscribe(fn Func) *Subscription
}

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// NewSubscription wraps cancel so that it runs at most once.
func NewSubscription(cancel func()) *Subscription {
	return &Subscription{cancel: cancel}
}

// Stop unregisters the callback. Calls after the first are no-ops.
func (s *Subscription) Stop() {
	if s == nil {
		return
	}
	s.once.Do(s.cancel)
}

type entry struct {
	id int
	fn Func
}

// Dispatcher is a Source driven by the host calling Tick once per frame.
// It is meant to be used from the host's frame goroutine only.
type Dispatcher struct {
	nextID  int
	entries []entry
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) Subscribe(fn Func) *Subscription {
	d.nextID++
	id := d.nextID
	d.entries = append(d.entries, entry{id: id, fn: fn})
	return NewSubscription(func() { d.remove(id) })
}

func (d *Dispatcher) remove(id int) {
	for i, e := range d.entries {
		if e.id == id {
			// copy so a Tick iterating the old slice is unaffected
			next := make([]entry, 0, len(d.entries)-1)
			next = append(next, d.entries[:i]...)
			d.entries = append(next, d.entries[i+1:]...)
			return
		}
	}
}

// Len reports the number of active subscribers.
func (d *Dispatcher) Len() int { return len(d.entries) }

// Tick invokes every subscriber in subscription order.
func (d *Dispatcher) Tick(dt time.Duration) error {
	for _, e := range d.entries {
		if err := e.fn(dt); err != nil {
			return err
		}
	}
	return nil
}
