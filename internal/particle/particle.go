// Package particle holds the single simulated entity of the fireworks effect.
package particle

import (
	"github.com/iburimskiy/weather-fireworks/internal/surface"
)

// Opacity at or below epsilon counts as spent, which keeps lifetimes exact
// (decay 0.01 dies after 100 updates) despite float drift.
const epsilon = 1e-9

// Physics are the per-update parameters shared by every particle of a system.
type Physics struct {
	Gravity float64 // added to VY each update
	Drag    float64 // VX is multiplied by 1-Drag each update
	Decay   float64 // subtracted from Opacity each update
	Jitter  float64 // bound on the random velocity perturbation
	Source  Jitter  // nil disables the perturbation
}

// Particle is one spark of a burst.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Hue     float64
	Size    float64
	Opacity float64
}

// New returns a fully opaque particle.
func New(x, y, vx, vy, hue, size float64) Particle {
	return Particle{X: x, Y: y, VX: vx, VY: vy, Hue: hue, Size: size, Opacity: 1}
}

// Update advances the particle by one frame.
func (p *Particle) Update(ph Physics) {
	p.X += p.VX
	p.Y += p.VY
	p.VX *= 1 - ph.Drag
	p.VY += ph.Gravity

	p.Opacity -= ph.Decay
	if p.Opacity <= epsilon {
		p.Opacity = 0
	}

	if ph.Source != nil && ph.Jitter != 0 {
		dx, dy := ph.Source.Perturb()
		p.VX += dx * ph.Jitter
		p.VY += dy * ph.Jitter
	}
}

// IsAlive reports whether the particle should still be updated and drawn.
func (p *Particle) IsAlive() bool { return p.Opacity > 0 }

// Draw fills the particle's circle with its hue at its current opacity.
func (p *Particle) Draw(s surface.Surface) {
	s.SetFill(surface.HueColor(p.Hue, p.Opacity))
	s.FillCircle(p.X, p.Y, p.Size)
}
