package img2ascii

import (
	"testing"

	"github.com/wbrown/img2ascii/imageutil"
)

// TestGlyphBitmapBitOperations tests basic bit operations on GlyphBitmap
func TestGlyphBitmapBitOperations(t *testing.T) {
	var bitmap GlyphBitmap

	bitmap.setBit(0, 0, true)
	if !bitmap.getBit(0, 0) {
		t.Error("Expected bit at (0,0) to be set")
	}

	bitmap.setBit(7, 7, true)
	if !bitmap.getBit(7, 7) {
		t.Error("Expected bit at (7,7) to be set")
	}
	if got := bitmap.Coverage(); got != 2 {
		t.Errorf("Coverage() = %d, want 2", got)
	}

	bitmap.setBit(0, 0, false)
	if bitmap.getBit(0, 0) {
		t.Error("Expected bit at (0,0) to be clear")
	}

	bitmap.setBit(8, 8, true)
	if bitmap.getBit(8, 8) {
		t.Error("Out of bounds bit should return false")
	}
	if got := bitmap.Coverage(); got != 1 {
		t.Errorf("Coverage() = %d after out of bounds set, want 1", got)
	}
}

func TestNewGlyphSet(t *testing.T) {
	glyphs, err := NewGlyphSet(ShortRamp)
	if err != nil {
		t.Fatalf("NewGlyphSet: %v", err)
	}

	if c := glyphs.Bitmap(0).Coverage(); c == 0 {
		t.Error("'@' should cover some pixels")
	}
	if c := glyphs.Bitmap(ShortRamp.Len() - 1).Coverage(); c != 0 {
		t.Errorf("' ' should cover nothing, got %d pixels", c)
	}
	if glyphs.Bitmap(0).Coverage() <= glyphs.Bitmap(ShortRamp.Len()-2).Coverage() {
		t.Error("'@' should be denser than '.'")
	}
}

func TestShadeOverlayLeavesInputAlone(t *testing.T) {
	glyphs, err := NewGlyphSet(ShortRamp)
	if err != nil {
		t.Fatalf("NewGlyphSet: %v", err)
	}

	gray := imageutil.ToGrayscale(imageutil.CreateSolidImage(16, 16, imageutil.RGB{}))
	before := gray.Clone()

	overlay, err := ShadeOverlay(gray, glyphs, DefaultRangeWidth)
	if err != nil {
		t.Fatalf("ShadeOverlay: %v", err)
	}
	if n := imageutil.CountDiff(before, gray); n != 0 {
		t.Errorf("input changed in %d samples", n)
	}
	if n := imageutil.CountDiff(gray, overlay); n == 0 {
		t.Error("black input should be stamped with '@' glyphs")
	}
	if overlay.Width() != 16 || overlay.Height() != 16 {
		t.Errorf("overlay is %dx%d, want 16x16", overlay.Width(), overlay.Height())
	}
}

func TestShadeOverlayOfWhiteImageIsUnchanged(t *testing.T) {
	glyphs, err := NewGlyphSet(ShortRamp)
	if err != nil {
		t.Fatalf("NewGlyphSet: %v", err)
	}
	gray := imageutil.ToGrayscale(imageutil.CreateSolidImage(12, 6, imageutil.RGB{R: 255, G: 255, B: 255}))

	overlay, err := ShadeOverlay(gray, glyphs, DefaultRangeWidth)
	if err != nil {
		t.Fatalf("ShadeOverlay: %v", err)
	}
	if n := imageutil.CountDiff(gray, overlay); n != 0 {
		t.Errorf("white input gained %d stamped samples", n)
	}
}

func TestShadeOverlayRejectsBadRangeWidth(t *testing.T) {
	glyphs, err := NewGlyphSet(ShortRamp)
	if err != nil {
		t.Fatalf("NewGlyphSet: %v", err)
	}
	_, err = ShadeOverlay(imageutil.NewGrayImage(2, 2), glyphs, 0)
	if !IsKind(err, KindConfig) {
		t.Errorf("expected config error, got %v", err)
	}
}
