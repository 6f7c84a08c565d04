// Package game hosts the fireworks effect in a desktop window.
package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/iburimskiy/weather-fireworks/internal/audio"
	"github.com/iburimskiy/weather-fireworks/internal/config"
	"github.com/iburimskiy/weather-fireworks/internal/fireworks"
	"github.com/iburimskiy/weather-fireworks/internal/frame"
)

// Game implements ebiten.Game. Update drives the frame dispatcher, which steps
// the system and renders it onto an offscreen canvas; Draw composites the
// canvas over a backdrop that flashes with the burst audio.
type Game struct {
	cfg    *config.Config
	log    *zap.Logger
	sys    *fireworks.System
	anim   *fireworks.Animation
	frames *frame.Dispatcher
	canvas *canvas
	player *audio.Player

	// hooks for the native dialogs
	selectFile func() (string, error)
	notify     func(title, text string) error

	width, height int
	elapsed       time.Duration
	paused        bool
	lastErr       error
}

// New wires a window host around sys. player may be nil.
func New(cfg *config.Config, sys *fireworks.System, player *audio.Player, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		cfg:        cfg,
		log:        log,
		sys:        sys,
		frames:     frame.NewDispatcher(),
		player:     player,
		selectFile: selectConfigFile,
		notify:     notify,
	}
	g.anim = fireworks.NewAnimation(sys, nil, log)
	sys.OnBurst = g.onBurst
	return g
}

func (g *Game) onBurst(b fireworks.Burst) {
	if g.player != nil {
		g.player.Pop(b.Hue)
	}
	every := g.cfg.Notify.Every
	if every <= 0 || g.sys.Bursts()%every != 0 {
		return
	}
	text := fmt.Sprintf("%d bursts so far, %d sparks in the air", g.sys.Bursts(), g.sys.Len())
	go func() {
		if err := g.notify("Fireworks", text); err != nil {
			g.log.Warn("notification failed", zap.Error(err))
		}
	}()
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.sys.Burst()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sys.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.player != nil {
		g.player.SetMuted(!g.player.Muted())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if err := g.openConfig(); err != nil {
			g.lastErr = err
			g.log.Warn("open config", zap.Error(err))
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.sys.BurstAt(float64(x), float64(y))
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	dt := time.Second / time.Duration(tps)
	if !g.paused {
		g.elapsed += dt
	}
	return g.frames.Tick(dt)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	if g.canvas != nil {
		screen.DrawImage(g.canvas.img, nil)
	}
	if g.cfg.Window.HUD {
		ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
	}
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	flash := 0.0
	if g.player != nil {
		flash = clamp01(g.player.Level() * 2)
	}
	v := uint8(8 + 40*flash)
	screen.Fill(color.RGBA{R: v, G: v, B: v + 8, A: 255})
}

func (g *Game) status() string {
	state := "running"
	if g.paused {
		state = "paused"
	}
	s := fmt.Sprintf("%s | sparks: %d | bursts: %d | %s | TPS: %.0f",
		state, g.sys.Len(), g.sys.Bursts(), formatDuration(g.elapsed), ebiten.ActualTPS())
	if g.player != nil && g.player.Muted() {
		s += " | muted"
	}
	if g.lastErr != nil {
		s += " | Error: " + g.lastErr.Error()
	}
	return s
}

// Layout follows the window size so the canvas always covers it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)
	if w == g.width && h == g.height && g.canvas != nil {
		return w, h
	}
	g.width, g.height = w, h
	if g.canvas == nil {
		g.canvas = newCanvas(w, h)
		g.anim.SetSurface(g.canvas)
		g.anim.Resize(w, h)
		if !g.paused {
			g.anim.Start(g.frames)
		}
	} else {
		g.canvas.resize(w, h)
		g.anim.Resize(w, h)
	}
	g.log.Debug("layout", zap.Int("width", w), zap.Int("height", h))
	return w, h
}

// togglePause unsubscribes the animation; the live particles freeze and
// resume where they were.
func (g *Game) togglePause() {
	g.paused = !g.paused
	if g.paused {
		g.anim.Stop()
		return
	}
	if g.canvas != nil {
		g.anim.Start(g.frames)
	}
}

// applyConfig retunes the running system from a freshly loaded config.
func (g *Game) applyConfig(cfg *config.Config) {
	g.cfg.Fireworks = cfg.Fireworks
	g.cfg.Notify = cfg.Notify
	g.sys.Configure(cfg.Fireworks)
	g.log.Info("config applied",
		zap.Int("burst_size", cfg.Fireworks.BurstSize),
		zap.String("spawn_mode", string(cfg.Fireworks.SpawnMode)))
}

// Close releases the frame subscription and audio.
func (g *Game) Close() {
	g.anim.Stop()
	if g.player != nil {
		g.player.Close()
	}
}
