package object

import (
	"github.com/tomz197/blaster/internal/loop/config"
	"github.com/tomz197/blaster/internal/physics"
)

// Projectile is a shot fired from the centre toward a click.
type Projectile struct {
	Circle
	VX, VY    float64 // Units per tick
	spent     bool    // Hit something this tick
	offscreen bool    // Left the playfield
}

// NewProjectile creates a projectile at (x, y) heading toward (targetX, targetY).
func NewProjectile(x, y, targetX, targetY float64) *Projectile {
	ux, uy := physics.Heading(x, y, targetX, targetY)
	return &Projectile{
		Circle: Circle{
			X:      x,
			Y:      y,
			Radius: config.ProjectileRadius,
			Color:  config.ProjectileColor,
		},
		VX: ux * config.ProjectileSpeed,
		VY: uy * config.ProjectileSpeed,
	}
}

// Spend marks the projectile as used up by a hit. It keeps flying until the
// end of the tick, so it can still hit other hostiles it overlaps.
func (p *Projectile) Spend() {
	p.spent = true
}

// Spent reports whether the projectile has hit something.
func (p *Projectile) Spent() bool {
	return p.spent
}

// Offscreen reports whether the projectile has left the playfield.
func (p *Projectile) Offscreen() bool {
	return p.offscreen
}

// Update moves the projectile and flags it once it is fully off-screen.
func (p *Projectile) Update(ctx UpdateContext) {
	p.X += p.VX
	p.Y += p.VY
	if ctx.Screen.Outside(p.X, p.Y, p.Radius) {
		p.offscreen = true
	}
}

// Draw renders the projectile.
func (p *Projectile) Draw(ctx DrawContext) {
	p.fill(ctx.Surface, 1)
}

// Expired reports whether the projectile hit something or left the screen.
func (p *Projectile) Expired() bool {
	return p.spent || p.offscreen
}
