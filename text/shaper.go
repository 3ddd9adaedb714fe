package text

import "sync"

// ShapedGlyph represents a positioned glyph produced by a Shaper.
type ShapedGlyph struct {
	// GID is the glyph index in the font. 0 is the notdef glyph.
	GID GlyphID

	// Cluster is the source rune index in the original text.
	Cluster int

	// X is the horizontal position relative to the text origin.
	X float64

	// Y is the vertical position relative to the baseline.
	Y float64

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float64
}

// Shaper converts text to positioned glyphs.
// Implementations provide different levels of text shaping support:
//   - BuiltinShaper: per-rune advances via golang.org/x/image/font
//   - GoTextShaper: HarfBuzz shaping via go-text/typesetting
type Shaper interface {
	// Shape converts text into positioned glyphs using the given face.
	// The font size is obtained from face.Size().
	Shape(text string, face *Face) []ShapedGlyph
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = &BuiltinShaper{}
)

// SetShaper sets the global shaper used by Shape().
// Pass nil to reset to the default BuiltinShaper.
//
// Example usage with the HarfBuzz shaper:
//
//	text.SetShaper(text.NewGoTextShaper())
//	defer text.SetShaper(nil) // Reset to default
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = &BuiltinShaper{}
	}
	globalShaper = s
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// Shape is a convenience function that uses the global shaper.
// It converts text to positioned glyphs using the given face.
func Shape(text string, face *Face) []ShapedGlyph {
	return GetShaper().Shape(text, face)
}

// MeasureText measures the total advance width of text.
// The font size is obtained from face.Size().
func MeasureText(text string, face *Face) float64 {
	if text == "" || face == nil {
		return 0
	}

	glyphs := Shape(text, face)
	var width float64
	for i := range glyphs {
		width += glyphs[i].XAdvance
	}
	return width
}
