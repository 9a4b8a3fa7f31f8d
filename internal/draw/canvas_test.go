package draw

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func TestFillCircleCoversCentre(t *testing.T) {
	// 1:1 horizontally, 2 sub-pixels per logical unit vertically.
	c := NewScaledCanvas(40, 20, 40, 20)
	c.FillCircle(20, 10, 5, white, 1)

	// Centre pixel lit, far corner untouched.
	if got := c.At(20, 20); got != white {
		t.Fatalf("centre pixel = %v, want white", got)
	}
	if got := c.At(0, 0); got != Black {
		t.Fatalf("corner pixel = %v, want black", got)
	}
}

func TestFillCircleTinyStillVisible(t *testing.T) {
	c := NewScaledCanvas(10, 5, 1000, 500)
	c.FillCircle(500, 250, 0.5, white, 1)

	lit := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c.At(x, y) != Black {
				lit++
			}
		}
	}
	if lit != 1 {
		t.Fatalf("sub-pixel circle lit %d pixels, want 1", lit)
	}
}

func TestFillCircleAlphaBlends(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.FillCircle(5, 5, 3, white, 0.5)

	got := c.At(5, 5)
	if got.R < 120 || got.R > 135 {
		t.Fatalf("half-alpha white over black = %v, want ~128", got)
	}
}

func TestFadeDecaysToBlack(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.FillCircle(2, 2, 10, white, 1)

	prev := c.At(1, 1).R
	for i := 0; i < 200; i++ {
		c.Fade(0.1)
		cur := c.At(1, 1).R
		if cur > prev {
			t.Fatalf("fade step %d brightened pixel: %d -> %d", i, prev, cur)
		}
		prev = cur
	}
	if prev != 0 {
		t.Fatalf("after 200 fades pixel = %d, want 0", prev)
	}
}

func TestRenderOnlyEmitsChanges(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)
	c.FillCircle(10, 10, 3, white, 1)

	var first bytes.Buffer
	if err := c.Render(&first); err != nil {
		t.Fatal(err)
	}
	if !strings.ContainsRune(first.String(), BlockUpperHalf) {
		t.Fatal("first render did not draw any half-blocks")
	}

	var second bytes.Buffer
	if err := c.Render(&second); err != nil {
		t.Fatal(err)
	}
	if second.Len() != 0 {
		t.Fatalf("unchanged canvas emitted %d bytes", second.Len())
	}

	c.ForceRedraw()
	var third bytes.Buffer
	if err := c.Render(&third); err != nil {
		t.Fatal(err)
	}
	if third.Len() < first.Len() {
		t.Fatalf("forced redraw emitted %d bytes, want at least %d", third.Len(), first.Len())
	}
}

func TestTerminalToLogical(t *testing.T) {
	c := NewScaledCanvas(160, 45, 1280, 720)
	c.SetOffset(5, 2)

	tests := []struct {
		col, row int
		ok       bool
		x, y     float64
	}{
		{col: 6, row: 3, ok: true, x: 4, y: 8},
		{col: 165, row: 47, ok: true, x: 1276, y: 712},
		{col: 5, row: 3, ok: false},
		{col: 6, row: 48, ok: false},
	}
	for _, tc := range tests {
		x, y, ok := c.TerminalToLogical(tc.col, tc.row)
		if ok != tc.ok {
			t.Fatalf("TerminalToLogical(%d,%d) ok = %v, want %v", tc.col, tc.row, ok, tc.ok)
		}
		if ok && (x != tc.x || y != tc.y) {
			t.Fatalf("TerminalToLogical(%d,%d) = (%v,%v), want (%v,%v)", tc.col, tc.row, x, y, tc.x, tc.y)
		}
	}
}

func TestChunkWriterOffsets(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 3, 1)
	cw.WriteAt(2, 4, "hi")
	if out.Len() != 0 {
		t.Fatal("ChunkWriter wrote before Flush")
	}
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "\033[5;5Hhi"; got != want {
		t.Fatalf("flushed %q, want %q", got, want)
	}
}
