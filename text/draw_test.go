package text

import (
	"image"
	"image/color"
	"testing"
)

// countInk returns the number of pixels in img that are not the given
// background color.
func countInk(img *image.RGBA, bg color.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != bg {
				n++
			}
		}
	}
	return n
}

func newWhiteImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return img
}

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// TestDrawLine tests that drawing paints pixels at the pen position.
func TestDrawLine(t *testing.T) {
	face := testFace(t, 18)
	img := newWhiteImage(120, 40)

	DrawLine(img, "Hi", face, 10, 25, color.Black)

	if countInk(img, white) == 0 {
		t.Fatal("DrawLine() painted no pixels")
	}

	// Nothing may land left of the pen start.
	for y := 0; y < 40; y++ {
		for x := 0; x < 9; x++ {
			if img.RGBAAt(x, y) != white {
				t.Fatalf("pixel (%d,%d) painted left of pen origin", x, y)
			}
		}
	}
}

// TestDrawLineBlending tests the per-channel alpha blend: fully covered
// pixels reach the text color, everything stays between dst and color.
func TestDrawLineBlending(t *testing.T) {
	face := testFace(t, 24)
	img := newWhiteImage(60, 40)

	DrawLine(img, "M", face, 5, 30, color.RGBA{R: 20, G: 20, B: 20, A: 255})

	darkest := 255
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := img.RGBAAt(x, y)
			if int(px.R) < darkest {
				darkest = int(px.R)
			}
			if px.R < 20 {
				t.Fatalf("pixel (%d,%d) = %v darker than the text color", x, y, px)
			}
			if px.R != px.G || px.G != px.B {
				t.Fatalf("pixel (%d,%d) = %v not a gray blend of gray endpoints", x, y, px)
			}
		}
	}
	if darkest > 30 {
		t.Errorf("darkest painted pixel = %d, want close to text color 20", darkest)
	}
}

// TestDrawLineBoundsSafety tests that glyph boxes partially or fully
// outside the buffer never write out of bounds and never panic.
func TestDrawLineBoundsSafety(t *testing.T) {
	face := testFace(t, 18)

	tests := []struct {
		name         string
		x, baselineY float64
	}{
		{"fully left", -200, 10},
		{"fully above", 2, -200},
		{"fully below", 2, 200},
		{"straddling left edge", -5, 10},
		{"straddling top edge", 2, 2},
		{"straddling bottom right", 18, 19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := newWhiteImage(20, 20)
			DrawLine(img, "Wg", face, tt.x, tt.baselineY, color.Black)
		})
	}
}

// TestDrawLineUnresolvedGlyph tests that runes without a glyph
// contribute no pixels but do not abort the line.
func TestDrawLineUnresolvedGlyph(t *testing.T) {
	face := testFace(t, 18)

	missingOnly := newWhiteImage(60, 30)
	DrawLine(missingOnly, "\uE000\uE001", face, 5, 20, color.Black)
	if n := countInk(missingOnly, white); n != 0 {
		t.Errorf("unresolved-only line painted %d pixels, want 0", n)
	}

	mixed := newWhiteImage(120, 30)
	DrawLine(mixed, "a\uE000b", face, 5, 20, color.Black)
	if countInk(mixed, white) == 0 {
		t.Error("line with one unresolved rune painted nothing")
	}
}

// TestDrawLineEmpty tests the degenerate inputs.
func TestDrawLineEmpty(t *testing.T) {
	face := testFace(t, 18)
	img := newWhiteImage(20, 20)

	DrawLine(img, "", face, 5, 15, color.Black)
	DrawLine(nil, "x", face, 5, 15, color.Black)
	DrawLine(img, "x", nil, 5, 15, color.Black)

	if n := countInk(img, white); n != 0 {
		t.Errorf("degenerate draws painted %d pixels, want 0", n)
	}
}
