package particle

import (
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// Jitter yields zero-mean perturbations with each component in [-1, 1].
type Jitter interface {
	Perturb() (dx, dy float64)
}

// UniformJitter draws both components independently and uniformly.
type UniformJitter struct {
	Rand *rand.Rand
}

func (j UniformJitter) Perturb() (float64, float64) {
	return j.Rand.Float64()*2 - 1, j.Rand.Float64()*2 - 1
}

// noiseStep is how far along the noise field each Perturb call moves.
const noiseStep = 0.37

// NoiseJitter samples two decorrelated rows of a Perlin field so consecutive
// perturbations drift smoothly instead of flickering.
type NoiseJitter struct {
	noise *perlin.Perlin
	t     float64
}

// NewNoiseJitter seeds a Perlin field.
func NewNoiseJitter(seed int64) *NoiseJitter {
	return &NoiseJitter{noise: perlin.NewPerlin(2, 2, 3, seed)}
}

func (j *NoiseJitter) Perturb() (float64, float64) {
	j.t += noiseStep
	dx := clampUnit(j.noise.Noise2D(j.t, 0.5) * 2)
	dy := clampUnit(j.noise.Noise2D(j.t, 101.5) * 2)
	return dx, dy
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
