package img2ascii

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/wbrown/img2ascii/imageutil"
)

// PNGOptions controls how a document is rasterised.
type PNGOptions struct {
	// FontSize in points at 72 DPI. Defaults to 12.
	FontSize float64
	// Padding around the text in pixels. Defaults to FontSize / 2.
	Padding    float64
	Foreground color.Color
	Background color.Color
}

func (o PNGOptions) withDefaults() PNGOptions {
	if o.FontSize <= 0 {
		o.FontSize = 12
	}
	if o.Padding <= 0 {
		o.Padding = o.FontSize / 2
	}
	if o.Foreground == nil {
		o.Foreground = color.Black
	}
	if o.Background == nil {
		o.Background = color.White
	}
	return o
}

// RenderPNG draws doc in Go Mono onto a canvas sized to fit every line.
// The ramps are dark-to-light on a light page, so text is dark on white
// by default.
func RenderPNG(doc *Document, opts PNGOptions) (image.Image, error) {
	opts = opts.withDefaults()

	ttf, err := goMono()
	if err != nil {
		return nil, fmt.Errorf("failed to parse go mono: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    opts.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	advance, _ := face.GlyphAdvance('M')
	cellWidth := float64(advance) / 64
	lineHeight := float64(face.Metrics().Height) / 64
	ascent := float64(face.Metrics().Ascent) / 64

	cols := max(doc.DisplayWidth(), 1)
	rows := max(doc.Height(), 1)
	width := int(math.Ceil(cellWidth*float64(cols) + 2*opts.Padding))
	height := int(math.Ceil(lineHeight*float64(rows) + 2*opts.Padding))

	dc := gg.NewContext(width, height)
	dc.SetColor(opts.Background)
	dc.Clear()
	dc.SetFontFace(face)
	dc.SetColor(opts.Foreground)
	for i, line := range doc.lines {
		dc.DrawString(line, opts.Padding, opts.Padding+ascent+float64(i)*lineHeight)
	}
	return dc.Image(), nil
}

// WritePNG renders doc and saves it to path.
func WritePNG(path string, doc *Document, opts PNGOptions) error {
	img, err := RenderPNG(doc, opts)
	if err != nil {
		return newError(KindWrite, path, err)
	}
	if err := imageutil.SavePNG(img, path); err != nil {
		return newError(KindWrite, path, err)
	}
	return nil
}
