package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iburimskiy/weather-fireworks/internal/audio"
	"github.com/iburimskiy/weather-fireworks/internal/config"
	"github.com/iburimskiy/weather-fireworks/internal/fireworks"
	"github.com/iburimskiy/weather-fireworks/internal/game"
	"github.com/iburimskiy/weather-fireworks/internal/term"
)

const logFile = "fireworks.log"

var (
	configFlag   = flag.String("config", "", "Path to the TOML config (default $"+config.EnvPath+" or "+config.DefaultPath+")")
	terminalFlag = flag.Bool("term", false, "Render in the terminal instead of a window")
	seedFlag     = flag.Int64("seed", 0, "Random seed, 0 picks one from the clock")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.Resolve(*configFlag))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Logging, *terminalFlag)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sys := fireworks.New(cfg.Fireworks, rand.New(rand.NewSource(seed)), log.Named("fireworks"))
	log.Info("starting",
		zap.Bool("terminal", *terminalFlag),
		zap.Int64("seed", seed),
		zap.String("spawn_mode", string(cfg.Fireworks.SpawnMode)))

	if *terminalFlag {
		return runTerminal(sys, log)
	}
	return runWindow(cfg, sys, log)
}

func runWindow(cfg *config.Config, sys *fireworks.System, log *zap.Logger) error {
	var player *audio.Player
	if cfg.Audio.Enabled {
		player = audio.NewPlayer(cfg.Audio.SampleRate, cfg.Audio.Volume, log.Named("audio"))
		if err := player.Init(); err != nil {
			// Non-fatal, the effect runs without sound
			log.Warn("audio disabled", zap.Error(err))
		}
	}

	g := game.New(cfg, sys, player, log.Named("game"))
	defer g.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func runTerminal(sys *fireworks.System, log *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	return term.New(screen, sys, log.Named("term")).Run()
}

// newLogger builds a console or JSON logger. In terminal mode the output goes
// to logFile in the working directory so it does not tear through the frame.
func newLogger(cfg config.LoggingConfig, terminal bool) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if terminal {
		zapCfg.OutputPaths = []string{logFile}
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	return zapCfg.Build()
}
