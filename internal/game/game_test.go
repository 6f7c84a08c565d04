package game

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ncruces/zenity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/weather-fireworks/internal/config"
	"github.com/iburimskiy/weather-fireworks/internal/fireworks"
)

func newTestGame(t *testing.T) (*Game, *fireworks.System) {
	t.Helper()
	cfg := config.Default()
	cfg.Fireworks.SpawnMode = fireworks.SpawnPerFrame
	cfg.Fireworks.SpawnChance = 0
	sys := fireworks.New(cfg.Fireworks, rand.New(rand.NewSource(1)), nil)
	sys.Resize(640, 480)
	g := New(cfg, sys, nil, nil)
	g.selectFile = func() (string, error) { return "", zenity.ErrCanceled }
	g.notify = func(string, string) error { return nil }
	return g, sys
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{61 * time.Second, "01:01"},
		{75 * time.Minute, "75:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.d))
	}
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-1))
	assert.Equal(t, 0.25, clamp01(0.25))
	assert.Equal(t, 1.0, clamp01(3))
}

func TestNotifyEveryNBursts(t *testing.T) {
	g, sys := newTestGame(t)
	g.cfg.Notify.Every = 3
	sent := make(chan string, 10)
	g.notify = func(title, text string) error {
		sent <- text
		return nil
	}

	for i := 0; i < 7; i++ {
		sys.Burst()
	}

	for i := 0; i < 2; i++ {
		select {
		case text := <-sent:
			assert.Contains(t, text, "bursts so far")
		case <-time.After(time.Second):
			t.Fatal("notification not sent")
		}
	}
	select {
	case text := <-sent:
		t.Fatalf("unexpected notification %q", text)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNotifyDisabled(t *testing.T) {
	g, sys := newTestGame(t)
	g.notify = func(string, string) error {
		t.Error("notification sent while disabled")
		return nil
	}
	sys.Burst()
	time.Sleep(20 * time.Millisecond)
}

func TestOpenConfigCancelled(t *testing.T) {
	g, _ := newTestGame(t)
	assert.NoError(t, g.openConfig())
}

func TestOpenConfigDialogError(t *testing.T) {
	g, _ := newTestGame(t)
	boom := errors.New("no display")
	g.selectFile = func() (string, error) { return "", boom }
	assert.ErrorIs(t, g.openConfig(), boom)
}

func TestOpenConfigApplies(t *testing.T) {
	g, sys := newTestGame(t)
	sys.Burst()
	live := sys.Len()

	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[fireworks]\nburst_size = 7\ndecay = 0.5\n\n[notify]\nevery = 4\n"), 0o644))
	g.selectFile = func() (string, error) { return path, nil }
	g.lastErr = errors.New("stale")

	require.NoError(t, g.openConfig())
	assert.Nil(t, g.lastErr)
	assert.Equal(t, 7, sys.Config().BurstSize)
	assert.Equal(t, 4, g.cfg.Notify.Every)
	assert.Equal(t, live, sys.Len(), "sparks in flight survive a reload")

	sys.Burst()
	assert.Equal(t, live+7, sys.Len())
}

func TestOpenConfigInvalidFile(t *testing.T) {
	g, sys := newTestGame(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[fireworks]\nburst_size = -2\n"), 0o644))
	g.selectFile = func() (string, error) { return path, nil }

	assert.Error(t, g.openConfig())
	assert.Equal(t, 100, sys.Config().BurstSize)
}

func TestTogglePauseBeforeLayout(t *testing.T) {
	g, _ := newTestGame(t)
	g.togglePause()
	assert.True(t, g.paused)
	g.togglePause()
	assert.False(t, g.paused)
	assert.Equal(t, 0, g.frames.Len(), "no canvas yet, nothing subscribed")
}
