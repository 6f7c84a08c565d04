package fireworks

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/iburimskiy/weather-fireworks/internal/frame"
	"github.com/iburimskiy/weather-fireworks/internal/surface"
)

// Animation binds a System to a Surface and to a frame source.
type Animation struct {
	sys  *System
	surf surface.Surface
	log  *zap.Logger
	sub  *frame.Subscription
}

// NewAnimation returns a stopped animation.
func NewAnimation(sys *System, surf surface.Surface, log *zap.Logger) *Animation {
	if log == nil {
		log = zap.NewNop()
	}
	return &Animation{sys: sys, surf: surf, log: log}
}

// System returns the driven system.
func (a *Animation) System() *System { return a.sys }

// SetSurface rebinds the render target, e.g. after the host reallocated it.
func (a *Animation) SetSurface(surf surface.Surface) { a.surf = surf }

// Resize forwards new surface dimensions to the system.
func (a *Animation) Resize(w, h int) { a.sys.Resize(w, h) }

// Running reports whether the animation is subscribed to a frame source.
func (a *Animation) Running() bool { return a.sub != nil }

// Start subscribes to src. Each frame runs Step followed by Render. Starting a
// running animation returns the existing handle. The returned handle may be
// stopped any number of times; only the first call unsubscribes.
func (a *Animation) Start(src frame.Source) *frame.Subscription {
	if a.sub != nil {
		return a.sub
	}
	if a.sys.cfg.ResetOnStart {
		a.sys.Reset()
	}
	inner := src.Subscribe(a.frame)
	var sub *frame.Subscription
	sub = frame.NewSubscription(func() {
		inner.Stop()
		if a.sub == sub {
			a.sub = nil
		}
		a.log.Debug("animation stopped", zap.Int("live", a.sys.Len()))
	})
	a.sub = sub
	a.log.Debug("animation started", zap.Int("live", a.sys.Len()))
	return sub
}

// Stop is a shorthand for stopping the current handle.
func (a *Animation) Stop() { a.sub.Stop() }

func (a *Animation) frame(dt time.Duration) error {
	a.sys.Step(dt)
	if err := a.sys.Render(a.surf); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}
	return nil
}
