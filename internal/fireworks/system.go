// Package fireworks runs the burst particle effect: it spawns bursts, advances
// and culls particles each frame, and draws the survivors onto a surface.
package fireworks

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/iburimskiy/weather-fireworks/internal/particle"
	"github.com/iburimskiy/weather-fireworks/internal/surface"
)

// ErrNilSurface is returned by Render when the host has not bound a surface.
// Only a nil interface is detected; a typed nil pointer panics on first use.
var ErrNilSurface = errors.New("fireworks: render without a surface")

// State is the coarse activity of a System.
type State int

const (
	Idle State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "idle"
}

// Burst describes one spawn event.
type Burst struct {
	X, Y  float64
	Hue   float64
	Count int
}

// System owns a live particle collection and the surface dimensions used to
// place new bursts. Step, Render and the spawn helpers must be called from a
// single goroutine; Resize and Size may be called from any goroutine.
type System struct {
	cfg     Config
	physics particle.Physics
	rng     *rand.Rand
	log     *zap.Logger

	live   []particle.Particle
	acc    time.Duration
	bursts int

	mu            sync.Mutex
	width, height int

	// OnBurst, when set, is called after every burst is spawned.
	OnBurst func(Burst)
}

// New creates an idle system with a 1x1 surface; call Resize before the first
// Step. A nil rng is seeded from the clock, a nil logger discards.
func New(cfg Config, rng *rand.Rand, log *zap.Logger) *System {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &System{
		rng:    rng,
		log:    log,
		width:  1,
		height: 1,
	}
	s.Configure(cfg)
	return s
}

// Configure swaps the tuning. Live particles keep their state and continue
// under the new physics.
func (s *System) Configure(cfg Config) {
	s.cfg = cfg
	s.physics = particle.Physics{
		Gravity: cfg.Gravity,
		Drag:    cfg.Drag,
		Decay:   cfg.Decay,
		Jitter:  cfg.Jitter,
	}
	switch cfg.JitterSource {
	case JitterNoise:
		s.physics.Source = particle.NewNoiseJitter(s.rng.Int63())
	default:
		s.physics.Source = particle.UniformJitter{Rand: s.rng}
	}
	if cap(s.live) < cfg.BurstSize {
		s.live = append(make([]particle.Particle, 0, cfg.BurstSize*4), s.live...)
	}
	s.log.Debug("fireworks configured",
		zap.Int("burst_size", cfg.BurstSize),
		zap.String("spawn_mode", string(cfg.SpawnMode)),
		zap.Float64("decay", cfg.Decay),
		zap.String("jitter", string(cfg.JitterSource)))
}

// Config returns the current tuning.
func (s *System) Config() Config { return s.cfg }

// Resize stores new surface dimensions, clamped to at least 1 in each axis.
// Only future burst origins are affected.
func (s *System) Resize(w, h int) {
	s.mu.Lock()
	s.width, s.height = max(w, 1), max(h, 1)
	s.mu.Unlock()
}

// Size returns the stored surface dimensions.
func (s *System) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// Step advances the simulation by one frame: spawn decision, then update and
// cull every live particle. Dead particles are gone when Step returns.
func (s *System) Step(dt time.Duration) {
	for n := s.spawnCount(dt); n > 0; n-- {
		s.Burst()
	}

	// swap-remove keeps the pass O(live); order is irrelevant
	for i := 0; i < len(s.live); {
		p := &s.live[i]
		p.Update(s.physics)
		if !p.IsAlive() {
			last := len(s.live) - 1
			s.live[i] = s.live[last]
			s.live = s.live[:last]
			continue
		}
		i++
	}
}

// spawnCount decides how many bursts this step emits.
func (s *System) spawnCount(dt time.Duration) int {
	switch s.cfg.SpawnMode {
	case SpawnPerFrame:
		if s.rng.Float64() < s.cfg.SpawnChance {
			return 1
		}
		return 0
	case SpawnPerInterval:
		if s.cfg.SpawnInterval <= 0 || dt <= 0 {
			return 0
		}
		s.acc += dt
		n := int(s.acc / s.cfg.SpawnInterval)
		s.acc -= time.Duration(n) * s.cfg.SpawnInterval
		if limit := s.cfg.MaxBurstsPerStep; limit > 0 && n > limit {
			s.log.Debug("burst backlog dropped", zap.Int("due", n), zap.Int("emitted", limit))
			n = limit
		}
		return n
	}
	return 0
}

// Burst spawns one burst at a random x along the bottom edge.
func (s *System) Burst() Burst {
	w, h := s.Size()
	return s.SpawnAt(s.rng.Float64()*float64(w), float64(h), s.rng.Float64()*360)
}

// BurstAt spawns one burst of a random hue from (x, y).
func (s *System) BurstAt(x, y float64) Burst {
	return s.SpawnAt(x, y, s.rng.Float64()*360)
}

// SpawnAt spawns one burst from an explicit origin and hue.
func (s *System) SpawnAt(x, y, hue float64) Burst {
	for range s.cfg.BurstSize {
		s.live = append(s.live, particle.New(
			x, y,
			s.cfg.SpeedX.sample(s.rng),
			s.cfg.SpeedY.sample(s.rng),
			hue,
			s.cfg.Size.sample(s.rng),
		))
	}
	s.bursts++
	b := Burst{X: x, Y: y, Hue: hue, Count: s.cfg.BurstSize}
	if s.OnBurst != nil {
		s.OnBurst(b)
	}
	return b
}

// Render clears surf and draws every live particle. It does not change the
// simulation, so repeated calls produce identical output.
func (s *System) Render(surf surface.Surface) error {
	if surf == nil {
		return ErrNilSurface
	}
	surf.Clear()
	for i := range s.live {
		s.live[i].Draw(surf)
	}
	return nil
}

// Reset drops every particle and any pending spawn time.
func (s *System) Reset() {
	s.live = s.live[:0]
	s.acc = 0
}

// Len is the live particle count.
func (s *System) Len() int { return len(s.live) }

// Bursts is the number of bursts spawned since creation.
func (s *System) Bursts() int { return s.bursts }

// State reports Active while any particle is alive.
func (s *System) State() State {
	if len(s.live) > 0 {
		return Active
	}
	return Idle
}

// Particles returns a copy of the live collection.
func (s *System) Particles() []particle.Particle {
	out := make([]particle.Particle, len(s.live))
	copy(out, s.live)
	return out
}
