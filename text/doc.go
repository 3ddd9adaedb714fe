// Package text provides font parsing, text shaping, word wrapping, and
// glyph rasterization for the bingo renderer.
//
// A FontSource wraps a parsed TTF/OTF font and creates lightweight Face
// values at specific pixel sizes. Wrap lays a string out inside a fixed
// box with greedy word wrapping, and DrawLine rasterizes one laid-out
// line onto any draw.Image by alpha-blending per-glyph coverage masks.
//
// Advance measurement and glyph positioning go through a pluggable
// Shaper. The default BuiltinShaper positions glyphs by per-rune
// advances via golang.org/x/image/font; GoTextShaper is an opt-in
// HarfBuzz implementation on go-text/typesetting that adds kerning and
// ligatures. Complex-script shaping (bidi reordering, combining marks)
// is out of scope for this renderer.
package text
