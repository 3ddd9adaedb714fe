package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
// The sfnt working buffer is reused across calls; the mutex makes the
// parsed font safe to share between cells and goroutines.
type ximageParsedFont struct {
	font *opentype.Font

	mu  sync.Mutex
	buf sfnt.Buffer
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if name, err := f.font.Name(&f.buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.font.Name(&f.buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return ""
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()

	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(glyphIndex uint16, ppem float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	advance, err := f.font.GlyphAdvance(&f.buf, sfnt.GlyphIndex(glyphIndex), fixedFromFloat(ppem), font.HintingFull)
	if err != nil {
		return 0
	}
	return fixedToFloat(advance)
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics(ppem float64) FontMetrics {
	f.mu.Lock()
	defer f.mu.Unlock()

	metrics, err := f.font.Metrics(&f.buf, fixedFromFloat(ppem), font.HintingFull)
	if err != nil {
		return FontMetrics{}
	}

	ascent := fixedToFloat(metrics.Ascent)
	descent := fixedToFloat(metrics.Descent)
	return FontMetrics{
		Ascent:  ascent,
		Descent: -descent,
		LineGap: fixedToFloat(metrics.Height) - ascent - descent,
	}
}

// fixedFromFloat converts a float64 pixel value to fixed.Int26_6.
func fixedFromFloat(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
