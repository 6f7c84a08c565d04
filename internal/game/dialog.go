package game

import (
	"errors"

	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/iburimskiy/weather-fireworks/internal/config"
)

func selectConfigFile() (string, error) {
	return zenity.SelectFile(
		zenity.Title("Open Fireworks Config"),
		zenity.FileFilters{{
			Name:     "TOML",
			Patterns: []string{"*.toml"},
		}},
	)
}

func notify(title, text string) error {
	return zenity.Notify(text, zenity.Title(title))
}

// openConfig asks for a config file and applies it. Cancelling is not an error.
func (g *Game) openConfig() error {
	filename, err := g.selectFile()
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(filename)
	if err != nil {
		return err
	}
	g.log.Info("config loaded", zap.String("path", filename))
	g.applyConfig(cfg)
	g.lastErr = nil
	return nil
}
