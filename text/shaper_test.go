package text

import (
	"testing"
)

// TestBuiltinShaperShape tests simple left-to-right positioning.
func TestBuiltinShaperShape(t *testing.T) {
	face := testFace(t, 18)
	shaper := &BuiltinShaper{}

	glyphs := shaper.Shape("abc", face)
	if len(glyphs) != 3 {
		t.Fatalf("Shape(\"abc\") = %d glyphs, want 3", len(glyphs))
	}

	var x float64
	for i, g := range glyphs {
		if g.GID == 0 {
			t.Errorf("glyph %d is notdef", i)
		}
		if g.Cluster != i {
			t.Errorf("glyph %d Cluster = %d, want %d", i, g.Cluster, i)
		}
		if g.X != x {
			t.Errorf("glyph %d X = %v, want cumulative advance %v", i, g.X, x)
		}
		if g.XAdvance <= 0 {
			t.Errorf("glyph %d XAdvance = %v, want > 0", i, g.XAdvance)
		}
		x += g.XAdvance
	}
}

// TestBuiltinShaperEmpty tests degenerate inputs.
func TestBuiltinShaperEmpty(t *testing.T) {
	face := testFace(t, 18)
	shaper := &BuiltinShaper{}

	if got := shaper.Shape("", face); got != nil {
		t.Errorf("Shape(\"\") = %v, want nil", got)
	}
	if got := shaper.Shape("x", nil); got != nil {
		t.Errorf("Shape(x, nil) = %v, want nil", got)
	}
}

// TestSetShaper tests global shaper installation and reset.
func TestSetShaper(t *testing.T) {
	if _, ok := GetShaper().(*BuiltinShaper); !ok {
		t.Fatalf("default shaper = %T, want *BuiltinShaper", GetShaper())
	}

	gt := NewGoTextShaper()
	SetShaper(gt)
	if GetShaper() != Shaper(gt) {
		t.Error("SetShaper() did not install the shaper")
	}

	SetShaper(nil)
	if _, ok := GetShaper().(*BuiltinShaper); !ok {
		t.Errorf("SetShaper(nil) = %T, want reset to *BuiltinShaper", GetShaper())
	}
}

// TestGoTextShaperShape tests HarfBuzz shaping output.
func TestGoTextShaperShape(t *testing.T) {
	face := testFace(t, 18)
	shaper := NewGoTextShaper()

	glyphs := shaper.Shape("AV to", face)
	if len(glyphs) == 0 {
		t.Fatal("Shape() returned no glyphs")
	}

	var total float64
	for i, g := range glyphs {
		if g.XAdvance < 0 {
			t.Errorf("glyph %d XAdvance = %v, want >= 0", i, g.XAdvance)
		}
		total += g.XAdvance
	}
	if total <= 0 {
		t.Errorf("total advance = %v, want > 0", total)
	}

	// The run must measure in the same ballpark as the builtin shaper;
	// kerning may tighten it slightly but not wildly.
	builtin := MeasureText("AV to", face)
	if total > builtin*1.2 || total < builtin*0.8 {
		t.Errorf("gotext advance %v too far from builtin advance %v", total, builtin)
	}
}

// TestGoTextShaperFontCache tests that parsed fonts are cached per source.
func TestGoTextShaperFontCache(t *testing.T) {
	face := testFace(t, 18)
	shaper := NewGoTextShaper()

	_ = shaper.Shape("warm", face)
	if len(shaper.fontCache) != 1 {
		t.Fatalf("fontCache size = %d, want 1", len(shaper.fontCache))
	}

	first, ok := shaper.fontCache[face.Source()]
	if !ok {
		t.Fatal("fontCache missing entry for source")
	}

	_ = shaper.Shape("again", face)
	if shaper.fontCache[face.Source()] != first {
		t.Error("font was re-parsed instead of cached")
	}

	shaper.ClearCache()
	if len(shaper.fontCache) != 0 {
		t.Errorf("fontCache size after ClearCache = %d, want 0", len(shaper.fontCache))
	}
}

// TestMeasureText tests shaped measurement.
func TestMeasureText(t *testing.T) {
	face := testFace(t, 18)

	if got := MeasureText("", face); got != 0 {
		t.Errorf("MeasureText(\"\") = %v, want 0", got)
	}
	if got := MeasureText("x", nil); got != 0 {
		t.Errorf("MeasureText(x, nil) = %v, want 0", got)
	}

	narrow := MeasureText("il", face)
	wide := MeasureText("WM", face)
	if narrow <= 0 || wide <= 0 {
		t.Fatalf("measurements not positive: narrow=%v wide=%v", narrow, wide)
	}
	if wide <= narrow {
		t.Errorf("MeasureText(\"WM\") = %v, want > MeasureText(\"il\") = %v (proportional font)", wide, narrow)
	}
}
