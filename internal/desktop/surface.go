package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tomz197/blaster/internal/object"
)

// surface draws the world onto a persistent offscreen image. The image is
// never cleared between ticks, so Fade leaves the trails.
type surface struct {
	img           *ebiten.Image
	width, height float64
}

var _ object.Surface = (*surface)(nil)

func newSurface(width, height int) *surface {
	return &surface{
		img:    ebiten.NewImage(width, height),
		width:  float64(width),
		height: float64(height),
	}
}

func (s *surface) Bounds() (float64, float64) {
	return s.width, s.height
}

func (s *surface) Fade(alpha float64) {
	vector.DrawFilledRect(s.img, 0, 0, float32(s.width), float32(s.height), withAlpha(color.Black, alpha), false)
}

func (s *surface) FillCircle(x, y, radius float64, clr color.Color, alpha float64) {
	if radius <= 0 || alpha <= 0 {
		return
	}
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(radius), withAlpha(clr, alpha), true)
}

func (s *surface) Clear() {
	s.img.Clear()
}

// withAlpha returns clr with its opacity multiplied by alpha, clamped to [0, 1].
func withAlpha(clr color.Color, alpha float64) color.NRGBA {
	alpha = min(max(alpha, 0), 1)
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	c.A = uint8(float64(c.A)*alpha + 0.5)
	return c
}
