package text

import (
	"image/color"
	"image/draw"
	"math"
)

// coverageThreshold is the minimum glyph coverage that produces pixels.
// Coverage below it is an antialiasing fringe too faint to matter.
const coverageThreshold = 0.05

// DrawLine rasterizes one line of text onto dst.
//
// The pen starts at x and glyphs sit on the baseline at baselineY, each
// positioned by the active Shaper's cumulative advances. Every touched
// pixel is alpha-blended per channel with the glyph's coverage:
//
//	dst = dst*(1-coverage) + color*coverage
//
// Writes are bounds-checked per pixel, so glyph boxes that extend
// outside dst at cell edges are clipped safely. Runes the font cannot
// resolve contribute no pixels but do not abort the line.
func DrawLine(dst draw.Image, line string, face *Face, x, baselineY float64, col color.Color) {
	if dst == nil || line == "" || face == nil {
		return
	}

	glyphs := Shape(line, face)
	if len(glyphs) == 0 {
		return
	}

	runes := []rune(line)
	cr, cg, cb, _ := col.RGBA()
	fr := float64(cr) / 65535
	fg := float64(cg) / 65535
	fb := float64(cb) / 65535

	for i := range glyphs {
		g := &glyphs[i]
		if g.GID == 0 {
			// Notdef: skipped, not drawn as a box.
			continue
		}
		if g.Cluster < 0 || g.Cluster >= len(runes) {
			continue
		}

		gi := face.source.glyphMask(runes[g.Cluster], face.size, face.config.hinting)
		if gi == nil {
			continue
		}

		originX := int(math.Round(x + g.X))
		originY := int(math.Round(baselineY + g.Y))
		blendMask(dst, gi, originX, originY, fr, fg, fb)
	}
}

// blendMask composites one glyph's coverage mask onto dst with the pen
// origin at (originX, originY). This is the only place geometry touches
// pixel memory.
func blendMask(dst draw.Image, gi *GlyphImage, originX, originY int, r, g, b float64) {
	clip := dst.Bounds()
	w := gi.Bounds.Dx()
	h := gi.Bounds.Dy()

	for my := 0; my < h; my++ {
		dy := originY + gi.Bounds.Min.Y + my
		if dy < clip.Min.Y || dy >= clip.Max.Y {
			continue
		}
		for mx := 0; mx < w; mx++ {
			dx := originX + gi.Bounds.Min.X + mx
			if dx < clip.Min.X || dx >= clip.Max.X {
				continue
			}

			a := float64(gi.Mask.AlphaAt(mx, my).A) / 255
			if a < coverageThreshold {
				continue
			}

			dr, dg, db, _ := dst.At(dx, dy).RGBA()
			dst.Set(dx, dy, color.NRGBA{
				R: blendChannel(float64(dr)/65535, r, a),
				G: blendChannel(float64(dg)/65535, g, a),
				B: blendChannel(float64(db)/65535, b, a),
				A: 255,
			})
		}
	}
}

// blendChannel blends one channel: dst*(1-a) + src*a, quantized to 8 bits.
func blendChannel(dst, src, a float64) uint8 {
	return uint8(math.Round((dst*(1-a) + src*a) * 255))
}
