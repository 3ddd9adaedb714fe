package text

// Face is a font face at a specific size.
// Face is a lightweight value created from a FontSource; it is safe for
// concurrent use.
type Face struct {
	source *FontSource
	size   float64
	config faceConfig
}

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics {
	fontMetrics := f.source.Parsed().Metrics(f.size)

	// FontMetrics.Descent is negative (below baseline)
	// Metrics.Descent is positive (absolute distance from baseline)
	descent := fontMetrics.Descent
	if descent < 0 {
		descent = -descent
	}

	return Metrics{
		Ascent:  fontMetrics.Ascent,
		Descent: descent,
		LineGap: fontMetrics.LineGap,
	}
}

// Advance returns the total advance width of the text in pixels.
// Measurement goes through the active Shaper, so it reflects kerning
// when the gotext shaper is installed.
func (f *Face) Advance(text string) float64 {
	glyphs := Shape(text, f)
	var width float64
	for i := range glyphs {
		width += glyphs[i].XAdvance
	}
	return width
}

// HasGlyph reports whether the font has a glyph for the given rune.
func (f *Face) HasGlyph(r rune) bool {
	return f.source.Parsed().GlyphIndex(r) != 0
}

// Direction returns the text direction for this face.
func (f *Face) Direction() Direction {
	return f.config.direction
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Size returns the size of this face in pixels.
func (f *Face) Size() float64 {
	return f.size
}
