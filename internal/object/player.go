package object

import "github.com/tomz197/blaster/internal/loop/config"

// Player is the avatar fixed at the centre of the playfield.
type Player struct {
	Circle
}

// NewPlayer creates the player at the centre of screen.
func NewPlayer(screen Screen) *Player {
	x, y := screen.Center()
	return &Player{Circle{
		X:      x,
		Y:      y,
		Radius: config.PlayerRadius,
		Color:  config.PlayerColor,
	}}
}

// Draw renders the player.
func (p *Player) Draw(ctx DrawContext) {
	p.fill(ctx.Surface, 1)
}
