package text

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// GlyphImage represents a rasterized glyph.
// This contains the coverage mask and positioning information.
type GlyphImage struct {
	// Mask is the coverage mask (grayscale image, zero-based bounds).
	// Each pixel holds how much the glyph outline covers it.
	Mask *image.Alpha

	// Bounds is the glyph's pixel bounding box relative to the glyph
	// origin. The origin is on the baseline at the left edge, so MinY
	// is typically negative (above the baseline). Bounding boxes can
	// extend outside the destination buffer at cell edges; the
	// compositor bounds-checks every pixel.
	Bounds image.Rectangle

	// Advance width in pixels.
	Advance float64
}

// maskKey identifies a cached coverage mask.
// Sizes are keyed in 26.6 fixed point so fractional sizes don't collide.
type maskKey struct {
	r       rune
	size    fixed.Int26_6
	hinting Hinting
}

// glyphMask returns the coverage mask for r at the given size, using
// the source's mask cache. Returns nil when the glyph cannot be
// rasterized (unsupported parser backend or no outline, e.g. a space).
//
// Glyph outlines for a fixed font and size are reusable across cells,
// which is exactly what the cache exploits: a board render touches the
// same few dozen glyphs over and over.
func (s *FontSource) glyphMask(r rune, size float64, hinting Hinting) *GlyphImage {
	key := maskKey{r: r, size: fixed.Int26_6(size * 64), hinting: hinting}

	s.mu.Lock()
	if gi, ok := s.masks[key]; ok {
		s.mu.Unlock()
		return gi
	}
	s.mu.Unlock()

	gi := rasterizeGlyph(s.parsed, r, size, hinting)

	s.mu.Lock()
	if s.config.maskCacheLimit > 0 {
		if len(s.masks) >= s.config.maskCacheLimit {
			// One font at one size has a small working set; when the cap
			// is hit the map is simply reset rather than tracking LRU order.
			s.masks = make(map[maskKey]*GlyphImage)
		}
		s.masks[key] = gi
	}
	s.mu.Unlock()

	return gi
}

// rasterizeGlyph renders a glyph to a coverage mask.
// Uses golang.org/x/image/font for rasterization.
//
// Returns nil if the parser backend is not ximage, or the rune has no
// drawable outline.
func rasterizeGlyph(parsed ParsedFont, r rune, size float64, hinting Hinting) *GlyphImage {
	xparsed, ok := parsed.(*ximageParsedFont)
	if !ok {
		return nil
	}

	opts := &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: mapHinting(hinting),
	}

	otFace, err := opentype.NewFace(xparsed.font, opts)
	if err != nil {
		return nil
	}
	defer func() {
		_ = otFace.Close()
	}()

	// Rasterize with the pen at the origin: dr is then the glyph's
	// bounding box relative to the baseline origin.
	dr, mask, maskp, advance, ok := otFace.Glyph(fixed.Point26_6{}, r)
	if !ok || dr.Empty() {
		return nil
	}

	// The face reuses its rasterization buffer between Glyph calls, so
	// the mask must be copied before it can be cached.
	out := image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	draw.Draw(out, out.Bounds(), mask, maskp, draw.Src)

	return &GlyphImage{
		Mask:    out,
		Bounds:  dr,
		Advance: fixedToFloat(advance),
	}
}

// mapHinting converts text.Hinting to font.Hinting.
func mapHinting(h Hinting) font.Hinting {
	switch h {
	case HintingNone:
		return font.HintingNone
	case HintingVertical:
		return font.HintingVertical
	case HintingFull:
		return font.HintingFull
	default:
		return font.HintingFull
	}
}
