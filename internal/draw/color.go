package draw

import (
	"image/color"
	"strconv"
)

// BlockUpperHalf draws a cell's top pixel in the foreground colour and its
// bottom pixel in the background colour.
const BlockUpperHalf = '▀'

// ANSI style sequences.
const (
	ColorReset = "\033[0m"
	StyleBold  = "\033[1m"
)

// Black is the background the canvas fades toward.
var Black = color.RGBA{A: 255}

// quantMask drops the low bits of each channel when comparing and emitting
// cells. Nearly identical shades then compare equal, which keeps the fading
// trail from rewriting every cell on every frame.
const quantMask = 0xF8

// quantize reduces a colour to the precision emitted to the terminal.
func quantize(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R & quantMask, G: c.G & quantMask, B: c.B & quantMask, A: 255}
}

// isBlack reports whether a quantized colour renders as background.
func isBlack(c color.RGBA) bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// appendFg appends a 24-bit foreground colour sequence.
func appendFg(buf []byte, c color.RGBA) []byte {
	buf = append(buf, "\033[38;2;"...)
	return appendRGB(buf, c)
}

// appendBg appends a 24-bit background colour sequence.
func appendBg(buf []byte, c color.RGBA) []byte {
	buf = append(buf, "\033[48;2;"...)
	return appendRGB(buf, c)
}

func appendRGB(buf []byte, c color.RGBA) []byte {
	buf = strconv.AppendUint(buf, uint64(c.R), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(c.G), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(c.B), 10)
	return append(buf, 'm')
}

// toNRGBA converts any colour to non-premultiplied 8-bit RGBA.
func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
