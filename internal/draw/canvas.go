package draw

import (
	"image/color"
	"io"
	"math"
	"strconv"
)

// Canvas is a colour drawing buffer with 2x vertical resolution using half-block
// characters. It maps logical coordinates onto terminal pixels and keeps its
// contents between frames, so callers fade it instead of clearing it.
type Canvas struct {
	termWidth      int          // Actual terminal columns
	termHeight     int          // Actual terminal rows
	subPixelHeight int          // termHeight * 2
	pixels         []color.RGBA // Flat slice: [y * termWidth + x]

	// Scaling from logical to pixel coordinates
	logicalWidth  float64 // Target/logical width
	logicalHeight float64 // Target/logical height
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	// What the terminal currently shows, per cell (quantized top/bottom colours).
	// stale cells are re-emitted on the next Render regardless of content.
	shown []cell
	stale []bool

	renderBuf []byte // Reusable buffer for batching render output
}

// cell is the pair of sub-pixels drawn by one terminal character.
type cell struct {
	top, bottom color.RGBA
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.allocate(termWidth, termHeight)
	return c
}

// allocate (re)creates the pixel and cell buffers for the given terminal size.
func (c *Canvas) allocate(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	c.termWidth = termWidth
	c.termHeight = termHeight
	c.subPixelHeight = termHeight * 2
	c.pixels = make([]color.RGBA, c.subPixelHeight*termWidth)
	for i := range c.pixels {
		c.pixels[i] = Black
	}
	c.shown = make([]cell, termWidth*termHeight)
	c.stale = make([]bool, termWidth*termHeight)
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
	c.ForceRedraw()
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
// The picture is discarded when the size actually changes.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.allocate(termWidth, termHeight)
	}
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.ForceRedraw()
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Bounds returns the logical size of the drawing area.
func (c *Canvas) Bounds() (width, height float64) {
	return c.logicalWidth, c.logicalHeight
}

// Clear paints every pixel black.
func (c *Canvas) Clear() {
	for i := range c.pixels {
		c.pixels[i] = Black
	}
}

// Fade blends the whole canvas toward black by alpha (0 = no change, 1 = clear).
func (c *Canvas) Fade(alpha float64) {
	if alpha <= 0 {
		return
	}
	if alpha >= 1 {
		c.Clear()
		return
	}
	keep := uint32((1 - alpha) * 256)
	for i, p := range c.pixels {
		c.pixels[i] = color.RGBA{
			R: uint8(uint32(p.R) * keep >> 8),
			G: uint8(uint32(p.G) * keep >> 8),
			B: uint8(uint32(p.B) * keep >> 8),
			A: 255,
		}
	}
}

// FillCircle draws a filled circle in logical coordinates, blended over the
// existing pixels with the given opacity. Circles smaller than a pixel still
// light the pixel under their centre.
func (c *Canvas) FillCircle(x, y, radius float64, clr color.Color, alpha float64) {
	if radius <= 0 || alpha <= 0 {
		return
	}
	src := toNRGBA(clr)
	a := min(alpha*float64(src.A)/255, 1)

	cx := x * c.scaleX
	cy := y * c.scaleY
	rx := radius * c.scaleX
	ry := radius * c.scaleY

	x0 := max(int(math.Floor(cx-rx)), 0)
	x1 := min(int(math.Ceil(cx+rx)), c.termWidth-1)
	y0 := max(int(math.Floor(cy-ry)), 0)
	y1 := min(int(math.Ceil(cy+ry)), c.subPixelHeight-1)

	covered := false
	for py := y0; py <= y1; py++ {
		dy := (float64(py) + 0.5 - cy) / ry
		for px := x0; px <= x1; px++ {
			dx := (float64(px) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1 {
				c.blend(px, py, src, a)
				covered = true
			}
		}
	}

	if !covered {
		c.blend(int(math.Floor(cx)), int(math.Floor(cy)), src, a)
	}
}

// blend mixes src over the pixel at actual canvas coordinates (no scaling).
func (c *Canvas) blend(x, y int, src color.NRGBA, a float64) {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return
	}
	i := y*c.termWidth + x
	dst := c.pixels[i]
	c.pixels[i] = color.RGBA{
		R: mix(src.R, dst.R, a),
		G: mix(src.G, dst.G, a),
		B: mix(src.B, dst.B, a),
		A: 255,
	}
}

func mix(src, dst uint8, a float64) uint8 {
	return uint8(math.Round(float64(src)*a + float64(dst)*(1-a)))
}

// At returns the pixel at actual canvas coordinates.
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return Black
	}
	return c.pixels[y*c.termWidth+x]
}

// ForceRedraw makes the next Render emit every cell.
func (c *Canvas) ForceRedraw() {
	for i := range c.stale {
		c.stale[i] = true
	}
}

// Render writes every cell that changed since the previous Render.
func (c *Canvas) Render(w io.Writer) error {
	buf := c.renderBuf[:0]
	var fg, bg color.RGBA
	styled := false // whether fg/bg reflect the terminal's current SGR state
	cursorAt := -1  // cell index the cursor sits on, -1 if unknown

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			idx := row*c.termWidth + col
			next := cell{
				top:    quantize(c.pixels[topOffset+col]),
				bottom: quantize(c.pixels[bottomOffset+col]),
			}
			if !c.stale[idx] && c.shown[idx] == next {
				continue
			}
			c.shown[idx] = next
			c.stale[idx] = false

			if cursorAt != idx {
				buf = append(buf, "\033["...)
				buf = strconv.AppendInt(buf, int64(row+1+c.offsetRow), 10)
				buf = append(buf, ';')
				buf = strconv.AppendInt(buf, int64(col+1+c.offsetCol), 10)
				buf = append(buf, 'H')
			}

			if isBlack(next.top) && isBlack(next.bottom) {
				if styled {
					buf = append(buf, ColorReset...)
					styled = false
				}
				buf = append(buf, ' ')
			} else {
				if !styled || fg != next.top {
					buf = appendFg(buf, next.top)
					fg = next.top
				}
				if !styled || bg != next.bottom {
					buf = appendBg(buf, next.bottom)
					bg = next.bottom
				}
				styled = true
				buf = append(buf, string(BlockUpperHalf)...)
			}
			cursorAt = idx + 1
			if col == c.termWidth-1 {
				cursorAt = -1
			}
		}
	}
	if styled {
		buf = append(buf, ColorReset...)
	}
	c.renderBuf = buf

	_, err := w.Write(buf)
	return err
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// TerminalToLogical converts a 1-based terminal position (col, row), as reported
// by mouse events, to the logical coordinates at the centre of that cell.
// ok is false when the position falls outside the canvas area.
func (c *Canvas) TerminalToLogical(col, row int) (x, y float64, ok bool) {
	px := col - 1 - c.offsetCol
	py := row - 1 - c.offsetRow
	if px < 0 || px >= c.termWidth || py < 0 || py >= c.termHeight {
		return 0, 0, false
	}
	x = (float64(px) + 0.5) / c.scaleX
	y = float64(py*2+1) / c.scaleY
	return x, y, true
}
