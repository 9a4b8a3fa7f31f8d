package object

import (
	"image/color"
	"time"

	"github.com/tomz197/blaster/internal/draw"
)

// Surface is what objects draw onto. Coordinates are logical playfield units.
type Surface interface {
	// Bounds returns the logical width and height of the playfield.
	Bounds() (width, height float64)
	// Fade paints translucent black over everything drawn so far.
	Fade(alpha float64)
	// FillCircle draws a filled circle with the given opacity.
	FillCircle(x, y, radius float64, clr color.Color, alpha float64)
}

var _ Surface = (*draw.Canvas)(nil)

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Now    time.Duration // Game clock, advanced one tick at a time
	Screen Screen
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Surface Surface
}

// Screen represents the playfield dimensions in logical units.
type Screen struct {
	Width  float64
	Height float64
}

// ScreenOf returns the screen covered by s.
func ScreenOf(s Surface) Screen {
	w, h := s.Bounds()
	return Screen{Width: w, Height: h}
}

// Center returns the middle of the playfield, where the player sits.
func (s Screen) Center() (x, y float64) {
	return s.Width / 2, s.Height / 2
}

// Outside reports whether a circle lies entirely beyond any edge.
func (s Screen) Outside(x, y, radius float64) bool {
	return x+radius < 0 || x-radius > s.Width ||
		y+radius < 0 || y-radius > s.Height
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update advances the object by one tick.
	Update(ctx UpdateContext)

	// Draw draws the object onto ctx.Surface.
	Draw(ctx DrawContext)

	// Expired reports whether the object should leave its container at the
	// end of the current tick.
	Expired() bool
}

// Circle is the shape shared by every entity.
type Circle struct {
	X, Y   float64
	Radius float64
	Color  color.Color
}

func (c *Circle) fill(s Surface, alpha float64) {
	s.FillCircle(c.X, c.Y, c.Radius, c.Color, alpha)
}

// Compact removes expired objects in place, keeping the order of the rest.
func Compact[T Object](objs []T) []T {
	kept := objs[:0]
	for _, o := range objs {
		if !o.Expired() {
			kept = append(kept, o)
		}
	}
	// Drop references held by the tail.
	var zero T
	for i := len(kept); i < len(objs); i++ {
		objs[i] = zero
	}
	return kept
}
