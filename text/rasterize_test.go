package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// TestGlyphMask tests coverage mask rasterization and caching.
func TestGlyphMask(t *testing.T) {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}

	gi := src.glyphMask('A', 18, HintingFull)
	if gi == nil {
		t.Fatal("glyphMask('A') = nil, want a mask")
	}
	if gi.Mask == nil || gi.Bounds.Empty() {
		t.Fatalf("glyphMask('A') produced empty mask, bounds = %v", gi.Bounds)
	}
	if gi.Bounds.Min.Y >= 0 {
		t.Errorf("Bounds.Min.Y = %d, want < 0 (above baseline)", gi.Bounds.Min.Y)
	}
	if gi.Advance <= 0 {
		t.Errorf("Advance = %v, want > 0", gi.Advance)
	}

	// Some pixel must carry meaningful coverage.
	covered := false
	b := gi.Mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !covered; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if gi.Mask.AlphaAt(x, y).A > 128 {
				covered = true
				break
			}
		}
	}
	if !covered {
		t.Error("mask for 'A' has no pixel with coverage > 0.5")
	}

	// Second lookup must come from the cache.
	if again := src.glyphMask('A', 18, HintingFull); again != gi {
		t.Error("glyphMask() did not return the cached mask")
	}

	// Different sizes are distinct cache entries.
	if other := src.glyphMask('A', 36, HintingFull); other == gi {
		t.Error("glyphMask() shared a mask across sizes")
	}
}

// TestGlyphMaskNoOutline tests glyphs without drawable coverage.
func TestGlyphMaskNoOutline(t *testing.T) {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}

	if gi := src.glyphMask(' ', 18, HintingFull); gi != nil {
		t.Errorf("glyphMask(' ') = %+v, want nil (no outline)", gi)
	}
}
