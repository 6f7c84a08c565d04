package fireworks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/weather-fireworks/internal/frame"
	"github.com/iburimskiy/weather-fireworks/internal/surface"
)

func TestAnimationStepsAndRendersEachFrame(t *testing.T) {
	cfg := quietConfig()
	cfg.BurstSize = 5
	s := newTestSystem(t, cfg)
	s.Burst()

	var rec surface.Recorder
	a := NewAnimation(s, &rec, nil)
	d := frame.NewDispatcher()
	sub := a.Start(d)
	require.True(t, a.Running())

	require.NoError(t, d.Tick(frameDT))
	assert.Equal(t, 5, rec.Circles())
	for _, p := range s.Particles() {
		assert.InDelta(t, 0.99, p.Opacity, 1e-12)
	}

	sub.Stop()
	assert.False(t, a.Running())
	assert.Equal(t, 0, d.Len())

	rec.Reset()
	require.NoError(t, d.Tick(frameDT))
	assert.Empty(t, rec.Ops, "no frames after stop")
	assert.Equal(t, 5, s.Len(), "population kept while stopped")
}

func TestAnimationStopIsIdempotent(t *testing.T) {
	s := newTestSystem(t, quietConfig())
	a := NewAnimation(s, &surface.Recorder{}, nil)
	d := frame.NewDispatcher()

	sub := a.Start(d)
	sub.Stop()
	sub.Stop()
	a.Stop()
	assert.Equal(t, 0, d.Len())

	// a new start after a stale Stop must not be cancelled by the old handle
	next := a.Start(d)
	sub.Stop()
	assert.True(t, a.Running())
	assert.Equal(t, 1, d.Len())
	next.Stop()
	assert.Equal(t, 0, d.Len())
}

func TestAnimationStartTwiceSubscribesOnce(t *testing.T) {
	s := newTestSystem(t, quietConfig())
	a := NewAnimation(s, &surface.Recorder{}, nil)
	d := frame.NewDispatcher()

	first := a.Start(d)
	second := a.Start(d)
	assert.Same(t, first, second)
	assert.Equal(t, 1, d.Len())
}

func TestAnimationRestart(t *testing.T) {
	tests := []struct {
		name         string
		resetOnStart bool
		wantLive     int
	}{
		{"Resume", false, 7},
		{"Reset", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := quietConfig()
			cfg.BurstSize = 7
			cfg.ResetOnStart = tt.resetOnStart
			s := newTestSystem(t, cfg)
			a := NewAnimation(s, &surface.Recorder{}, nil)
			d := frame.NewDispatcher()

			a.Start(d)
			s.Burst()
			require.NoError(t, d.Tick(frameDT))
			a.Stop()

			a.Start(d)
			assert.Equal(t, tt.wantLive, s.Len())
		})
	}
}

func TestAnimationFailsWithoutSurface(t *testing.T) {
	s := newTestSystem(t, quietConfig())
	a := NewAnimation(s, nil, nil)
	d := frame.NewDispatcher()
	a.Start(d)

	err := d.Tick(time.Millisecond)
	assert.ErrorIs(t, err, ErrNilSurface)

	a.SetSurface(&surface.Recorder{})
	assert.NoError(t, d.Tick(time.Millisecond))
}

func TestAnimationResize(t *testing.T) {
	s := newTestSystem(t, quietConfig())
	a := NewAnimation(s, &surface.Recorder{}, nil)
	a.Resize(0, 90)
	w, h := a.System().Size()
	assert.Equal(t, 1, w)
	assert.Equal(t, 90, h)
}
