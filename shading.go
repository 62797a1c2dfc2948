package img2ascii

import (
	"fmt"
	"image"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/wbrown/img2ascii/imageutil"
)

const (
	// GlyphWidth and GlyphHeight define the cell a shading glyph is
	// rasterised into.
	GlyphWidth  = 8
	GlyphHeight = 8
)

// GlyphBitmap is an 8x8 glyph packed into 64 bits, row-major, bit set
// where the glyph covers the pixel.
type GlyphBitmap uint64

func (g GlyphBitmap) getBit(x, y int) bool {
	if x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return false
	}
	return g&(1<<(y*GlyphWidth+x)) != 0
}

func (g *GlyphBitmap) setBit(x, y int, value bool) {
	if x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return
	}
	pos := y*GlyphWidth + x
	if value {
		*g |= 1 << pos
	} else {
		*g &= ^(1 << pos)
	}
}

// Coverage returns the number of pixels the glyph covers.
func (g GlyphBitmap) Coverage() int {
	n := 0
	for v := uint64(g); v != 0; v &= v - 1 {
		n++
	}
	return n
}

var (
	monoOnce sync.Once
	monoFont *truetype.Font
	monoErr  error
)

// goMono parses the embedded Go Mono face once.
func goMono() (*truetype.Font, error) {
	monoOnce.Do(func() {
		monoFont, monoErr = freetype.ParseFont(gomono.TTF)
	})
	return monoFont, monoErr
}

// GlyphSet holds the rasterised glyphs of one ramp.
type GlyphSet struct {
	ramp    Ramp
	bitmaps []GlyphBitmap
}

// NewGlyphSet rasterises every glyph of ramp with Go Mono.
func NewGlyphSet(ramp Ramp) (*GlyphSet, error) {
	ttf, err := goMono()
	if err != nil {
		return nil, fmt.Errorf("failed to parse go mono: %w", err)
	}
	gs := &GlyphSet{ramp: ramp, bitmaps: make([]GlyphBitmap, ramp.Len())}
	for i, g := range ramp.glyphs {
		gs.bitmaps[i] = renderGlyphToBitmap(ttf, g)
	}
	return gs, nil
}

// Bitmap returns the bitmap for ramp index i.
func (gs *GlyphSet) Bitmap(i int) GlyphBitmap {
	return gs.bitmaps[i]
}

// renderGlyphToBitmap draws s at 8pt into an 8x8 alpha mask and keeps
// every pixel above 25% coverage. The baseline is centred from the face
// metrics so descenders are not clipped.
func renderGlyphToBitmap(ttf *truetype.Font, s string) GlyphBitmap {
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    float64(GlyphHeight),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	img := image.NewAlpha(image.Rect(0, 0, GlyphWidth, GlyphHeight))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(float64(GlyphHeight))
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	metrics := face.Metrics()
	ascent := metrics.Ascent.Round()
	descent := metrics.Descent.Round()
	baselineY := (GlyphHeight + ascent - descent) / 2

	if _, err := ctx.DrawString(s, freetype.Pt(0, baselineY)); err != nil {
		return 0
	}

	var bitmap GlyphBitmap
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if img.AlphaAt(x, y).A > 64 {
				bitmap.setBit(x, y, true)
			}
		}
	}
	return bitmap
}

// ShadeOverlay stamps, for every pixel of gray, the glyph the mapper would
// choose for it in white at that pixel's position. It draws onto a copy:
// gray itself is untouched, so the text rendering never sees the overlay.
func ShadeOverlay(gray *imageutil.GrayImage, glyphs *GlyphSet, rangeWidth int) (*imageutil.GrayImage, error) {
	if rangeWidth <= 0 {
		return nil, newError(KindConfig, "", ErrInvalidRangeWidth)
	}
	if glyphs.ramp.Len() == 0 {
		return nil, newError(KindConfig, "", ErrEmptyRamp)
	}

	width, height := gray.Width(), gray.Height()
	overlay := gray.Clone()
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			idx, _ := glyphs.ramp.Index(gray.Luma(x, y), rangeWidth, false)
			stampGlyph(overlay, glyphs.bitmaps[idx], x, y)
		}
	}
	return overlay, nil
}

func stampGlyph(img *imageutil.GrayImage, bitmap GlyphBitmap, x0, y0 int) {
	if bitmap == 0 {
		return
	}
	width, height := img.Width(), img.Height()
	for gy := 0; gy < GlyphHeight && y0+gy < height; gy++ {
		for gx := 0; gx < GlyphWidth && x0+gx < width; gx++ {
			if bitmap.getBit(gx, gy) {
				img.SetLuma(x0+gx, y0+gy, 255)
			}
		}
	}
}
