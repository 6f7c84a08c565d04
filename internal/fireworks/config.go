package fireworks

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// SpawnMode selects how Step decides to emit bursts.
type SpawnMode string

const (
	// SpawnPerFrame runs one Bernoulli trial with SpawnChance per Step call,
	// so the burst rate follows the frame rate.
	SpawnPerFrame SpawnMode = "frame"
	// SpawnPerInterval emits one burst per elapsed SpawnInterval of frame time,
	// carrying the remainder over to the next Step.
	SpawnPerInterval SpawnMode = "interval"
)

// JitterSource selects the velocity perturbation generator.
type JitterSource string

const (
	JitterUniform JitterSource = "uniform"
	JitterNoise   JitterSource = "noise"
)

// Range is a half-open interval [Min, Max) sampled uniformly.
type Range struct {
	Min float64 `toml:"min"`
	Max float64 `toml:"max"`
}

func (r Range) sample(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Config is the tuning of one System.
type Config struct {
	BurstSize int     `toml:"burst_size"`
	Gravity   float64 `toml:"gravity"`
	Drag      float64 `toml:"drag"`
	Decay     float64 `toml:"decay"`

	SpawnMode        SpawnMode     `toml:"spawn_mode"`
	SpawnChance      float64       `toml:"spawn_chance"`        // frame mode
	SpawnInterval    time.Duration `toml:"spawn_interval"`      // interval mode
	MaxBurstsPerStep int           `toml:"max_bursts_per_step"` // 0 means no cap

	Jitter       float64      `toml:"jitter"`
	JitterSource JitterSource `toml:"jitter_source"`

	SpeedX Range `toml:"speed_x"`
	SpeedY Range `toml:"speed_y"`
	Size   Range `toml:"size"`

	ResetOnStart bool `toml:"reset_on_start"`
}

// DefaultConfig returns the weather backdrop tuning: 100 sparks
// per burst, roughly one burst every 20 frames at 60 TPS, sparks fading over 100 frames.
func DefaultConfig() Config {
	return Config{
		BurstSize:        100,
		Gravity:          0.1,
		Drag:             0.01,
		Decay:            0.01,
		SpawnMode:        SpawnPerInterval,
		SpawnChance:      0.05,
		SpawnInterval:    333 * time.Millisecond, // 0.05 bursts/frame at 60 fps
		MaxBurstsPerStep: 3,
		Jitter:           0.05,
		JitterSource:     JitterUniform,
		SpeedX:           Range{Min: -5, Max: 5},
		SpeedY:           Range{Min: -10, Max: 0},
		Size:             Range{Min: 1, Max: 6},
	}
}

var (
	ErrBurstSize = errors.New("burst size must be positive")
	ErrDecay     = errors.New("decay must be in (0, 1]")
	ErrChance    = errors.New("spawn chance must be in [0, 1]")
	ErrInterval  = errors.New("spawn interval must be positive")
	ErrSize      = errors.New("particle size must be positive")
	ErrBurstCap  = errors.New("max bursts per step must not be negative")
)

// Validate reports the first setting that would break the simulation.
func (c Config) Validate() error {
	if c.BurstSize <= 0 {
		return ErrBurstSize
	}
	if c.Decay <= 0 || c.Decay > 1 {
		return ErrDecay
	}
	if c.Size.Min <= 0 || c.Size.Max < c.Size.Min {
		return ErrSize
	}
	switch c.SpawnMode {
	case SpawnPerFrame:
		if c.SpawnChance < 0 || c.SpawnChance > 1 {
			return ErrChance
		}
	case SpawnPerInterval:
		if c.SpawnInterval <= 0 {
			return ErrInterval
		}
		if c.MaxBurstsPerStep < 0 {
			return ErrBurstCap
		}
	default:
		return fmt.Errorf("unknown spawn mode %q", c.SpawnMode)
	}
	switch c.JitterSource {
	case JitterUniform, JitterNoise:
	default:
		return fmt.Errorf("unknown jitter source %q", c.JitterSource)
	}
	return nil
}

// Lifetime is the number of updates a particle survives from full opacity.
func (c Config) Lifetime() int {
	return int(math.Ceil(1/c.Decay - 1e-9))
}
