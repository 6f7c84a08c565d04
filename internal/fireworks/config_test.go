package fireworks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		anyErr  bool
	}{
		{"Zero burst", func(c *Config) { c.BurstSize = 0 }, ErrBurstSize, false},
		{"Zero decay", func(c *Config) { c.Decay = 0 }, ErrDecay, false},
		{"Decay above one", func(c *Config) { c.Decay = 1.5 }, ErrDecay, false},
		{"Zero size", func(c *Config) { c.Size = Range{Min: 0, Max: 2} }, ErrSize, false},
		{"Inverted size", func(c *Config) { c.Size = Range{Min: 3, Max: 2} }, ErrSize, false},
		{"Chance above one", func(c *Config) { c.SpawnMode = SpawnPerFrame; c.SpawnChance = 1.2 }, ErrChance, false},
		{"Zero interval", func(c *Config) { c.SpawnInterval = 0 }, ErrInterval, false},
		{"Negative burst cap", func(c *Config) { c.MaxBurstsPerStep = -1 }, ErrBurstCap, false},
		{"Zero burst cap", func(c *Config) { c.MaxBurstsPerStep = 0 }, nil, false},
		{"Unknown mode", func(c *Config) { c.SpawnMode = "poisson" }, nil, true},
		{"Unknown jitter", func(c *Config) { c.JitterSource = "brownian" }, nil, true},
		{"Frame mode ignores interval", func(c *Config) { c.SpawnMode = SpawnPerFrame; c.SpawnInterval = 0 }, nil, false},
		{"Interval mode ignores chance", func(c *Config) { c.SpawnChance = 3; c.SpawnInterval = time.Second }, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestLifetime(t *testing.T) {
	tests := []struct {
		decay float64
		want  int
	}{
		{0.01, 100},
		{0.2, 5},
		{0.1, 10},
		{0.3, 4},
		{1, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Config{Decay: tt.decay}.Lifetime(), "decay %v", tt.decay)
	}
}
