package object

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/tomz197/blaster/internal/loop/config"
)

// Particle is a short-lived spark that slows down and fades out.
type Particle struct {
	Circle
	VX, VY float64 // Units per tick
	Alpha  float64 // Opacity, 1 when spawned
}

// NewParticle creates a fully opaque particle.
func NewParticle(x, y, radius float64, clr color.Color, vx, vy float64) *Particle {
	return &Particle{
		Circle: Circle{X: x, Y: y, Radius: radius, Color: clr},
		VX:     vx,
		VY:     vy,
		Alpha:  1,
	}
}

// SpawnBurst creates the debris of a hit: one particle per unit of the
// hostile's diameter, in the hostile's colour, scattered in random directions.
func SpawnBurst(x, y, hostileRadius float64, clr color.Color, rng *rand.Rand) []*Particle {
	count := int(math.Ceil(hostileRadius * 2))
	if count <= 0 {
		return nil
	}

	burst := make([]*Particle, 0, count)
	for i := 0; i < count; i++ {
		radius := rng.Float64() * config.ParticleMaxRadius
		vx := (rng.Float64() - 0.5) * (rng.Float64() * config.ParticleMaxSpeed)
		vy := (rng.Float64() - 0.5) * (rng.Float64() * config.ParticleMaxSpeed)
		burst = append(burst, NewParticle(x, y, radius, clr, vx, vy))
	}
	return burst
}

// Update applies friction, moves the particle and fades it by one step.
// A particle that has already faded out does not move.
func (p *Particle) Update(UpdateContext) {
	if p.Alpha <= 0 {
		return
	}
	p.VX *= config.ParticleFriction
	p.VY *= config.ParticleFriction
	p.X += p.VX
	p.Y += p.VY
	p.Alpha -= config.ParticleAlphaStep
}

// Draw renders the particle at its current opacity.
func (p *Particle) Draw(ctx DrawContext) {
	if p.Alpha <= 0 {
		return
	}
	p.fill(ctx.Surface, p.Alpha)
}

// Expired reports whether the particle has faded out.
func (p *Particle) Expired() bool {
	return p.Alpha <= 0
}
