// Package term hosts the fireworks effect in a terminal.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/iburimskiy/weather-fireworks/internal/fireworks"
	"github.com/iburimskiy/weather-fireworks/internal/frame"
	"github.com/iburimskiy/weather-fireworks/internal/surface"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// Host runs the frame loop. A single goroutine owns the system: terminal
// events are polled on a helper goroutine and handed over on a channel, so
// resizes land between frames.
type Host struct {
	screen tcell.Screen
	surf   *surface.Terminal
	sys    *fireworks.System
	anim   *fireworks.Animation
	frames *frame.Dispatcher
	clock  frame.Clock
	log    *zap.Logger

	// Interval overrides frameInterval when non-zero.
	Interval time.Duration
}

// New binds sys to an initialised screen.
func New(screen tcell.Screen, sys *fireworks.System, log *zap.Logger) *Host {
	if log == nil {
		log = zap.NewNop()
	}
	surf := surface.NewTerminal(screen)
	h := &Host{
		screen: screen,
		surf:   surf,
		sys:    sys,
		anim:   fireworks.NewAnimation(sys, surf, log),
		frames: frame.NewDispatcher(),
		log:    log,
	}
	h.resize()
	return h
}

func (h *Host) resize() {
	w, hh := h.surf.PixelSize()
	h.anim.Resize(w, hh)
	h.log.Debug("terminal resized", zap.Int("width", w), zap.Int("height", hh))
}

// handleEvent applies one terminal event; it returns false when the user quits.
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				h.sys.Burst()
			case 'r':
				h.sys.Reset()
			}
		}
	case *tcell.EventResize:
		h.screen.Sync()
		h.resize()
	}
	return true
}

// tick runs one frame at the given wall-clock time.
func (h *Host) tick(now time.Time) error {
	if err := h.frames.Tick(h.clock.Advance(now)); err != nil {
		return err
	}
	h.screen.Show()
	return nil
}

// Run blocks until the user quits or a frame fails.
func (h *Host) Run() error {
	interval := h.Interval
	if interval <= 0 {
		interval = frameInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sub := h.anim.Start(h.frames)
	defer sub.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			if !h.handleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			if err := h.tick(now); err != nil {
				return fmt.Errorf("terminal frame: %w", err)
			}
		}
	}
}
