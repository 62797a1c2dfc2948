package img2ascii

import (
	"image"
	"io"

	"golang.org/x/exp/slog"

	"github.com/wbrown/img2ascii/imageutil"
)

// Converter holds the configuration of one ASCII conversion pipeline.
// A Converter keeps no state between calls.
type Converter struct {
	// TargetWidth is the number of characters per line.
	TargetWidth int
	// RangeWidth is the luminance bucket width used to index Ramp.
	RangeWidth int
	Ramp       Ramp
	// Brightness divides every sample before quantization. 1 leaves the
	// image unchanged, 0 is an error.
	Brightness float64
	// Shading renders the glyph overlay alongside the text. It never
	// changes the text.
	Shading bool
	// Strict fails on buckets past the end of the ramp instead of
	// clamping them.
	Strict        bool
	Interpolation imageutil.Interpolation
	// Filter runs over the luminance buffer before brightness is applied.
	Filter imageutil.Filter

	logger *slog.Logger
}

// ConverterOption is a functional option for configuring a Converter.
type ConverterOption func(*Converter)

// NewConverter creates a Converter with the given options applied over
// the defaults: TargetWidth=100, RangeWidth=25, Ramp=LongRamp,
// Brightness=1, no shading, clamping, CatmullRom resampling, no filter.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{
		TargetWidth:   100,
		RangeWidth:    DefaultRangeWidth,
		Ramp:          LongRamp,
		Brightness:    1.0,
		Interpolation: imageutil.InterpolationCatmullRom,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewBrightnessConverter returns the long-ramp converter that applies a
// brightness divisor.
func NewBrightnessConverter(width int, brightness float64, opts ...ConverterOption) *Converter {
	base := []ConverterOption{WithTargetWidth(width), WithBrightness(brightness)}
	return NewConverter(append(base, opts...)...)
}

// NewShadingConverter returns the short-ramp converter with the optional
// glyph overlay.
func NewShadingConverter(width int, shading bool, opts ...ConverterOption) *Converter {
	base := []ConverterOption{WithTargetWidth(width), WithRamp(ShortRamp), WithShading(shading)}
	return NewConverter(append(base, opts...)...)
}

// WithTargetWidth sets the number of characters per line.
func WithTargetWidth(width int) ConverterOption {
	return func(c *Converter) {
		c.TargetWidth = width
	}
}

// WithRangeWidth sets the luminance bucket width.
func WithRangeWidth(width int) ConverterOption {
	return func(c *Converter) {
		c.RangeWidth = width
	}
}

// WithRamp selects the glyph gradient.
func WithRamp(r Ramp) ConverterOption {
	return func(c *Converter) {
		c.Ramp = r
	}
}

// WithBrightness sets the brightness divisor.
func WithBrightness(factor float64) ConverterOption {
	return func(c *Converter) {
		c.Brightness = factor
	}
}

// WithShading enables the glyph overlay.
func WithShading(enabled bool) ConverterOption {
	return func(c *Converter) {
		c.Shading = enabled
	}
}

// WithStrict makes ramp overflow an error instead of clamping.
func WithStrict(strict bool) ConverterOption {
	return func(c *Converter) {
		c.Strict = strict
	}
}

// WithInterpolation selects the resampling kernel.
func WithInterpolation(interp imageutil.Interpolation) ConverterOption {
	return func(c *Converter) {
		c.Interpolation = interp
	}
}

// WithFilter selects the luminance pre-filter.
func WithFilter(f imageutil.Filter) ConverterOption {
	return func(c *Converter) {
		c.Filter = f
	}
}

// WithLogger routes pipeline logs to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) ConverterOption {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// Result is the output of one conversion.
type Result struct {
	Document *Document
	// Overlay is the shaded luminance buffer, nil unless shading is on.
	Overlay *imageutil.GrayImage
}

// ConvertFile loads the image at path and converts it. Load failures are
// reported as KindLoad errors naming path.
func (c *Converter) ConvertFile(path string) (*Result, error) {
	img, format, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, newError(KindLoad, path, err)
	}
	c.logger.Debug("loaded image",
		"path", path, "format", format,
		"width", img.Width(), "height", img.Height())

	res, err := c.convert(img)
	if err != nil {
		if e, ok := err.(*Error); ok && e.Path == "" {
			e.Path = path
		}
		return nil, err
	}
	return res, nil
}

// Convert runs the pipeline on an already decoded image.
func (c *Converter) Convert(img image.Image) (*Result, error) {
	return c.convert(imageutil.RGBAImageFromImage(img))
}

func (c *Converter) convert(img *imageutil.RGBAImage) (*Result, error) {
	if c.RangeWidth <= 0 {
		return nil, newError(KindConfig, "", ErrInvalidRangeWidth)
	}
	if c.Ramp.Len() == 0 {
		return nil, newError(KindConfig, "", ErrEmptyRamp)
	}

	scaled, err := imageutil.ScaleToWidth(img, c.TargetWidth, c.Interpolation)
	if err != nil {
		return nil, newError(KindConfig, "", err)
	}
	c.logger.Debug("scaled image",
		"width", scaled.Width(), "height", scaled.Height(),
		"interpolation", c.Interpolation)

	gray := imageutil.ToGrayscale(scaled)
	if c.Filter != imageutil.FilterNone {
		gray = imageutil.ApplyFilter(gray, c.Filter)
		c.logger.Debug("filtered luminance", "filter", c.Filter)
	}

	gray, err = AdjustBrightness(gray, c.Brightness)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	if c.Shading {
		glyphs, err := NewGlyphSet(c.Ramp)
		if err != nil {
			return nil, newError(KindConfig, "", err)
		}
		if res.Overlay, err = ShadeOverlay(gray, glyphs, c.RangeWidth); err != nil {
			return nil, err
		}
		c.logger.Debug("rendered shading overlay", "ramp", c.Ramp.Name())
	}

	if reachable := c.Ramp.Reachable(c.RangeWidth); reachable < c.Ramp.Len() {
		c.logger.Debug("ramp is only partly addressable",
			"ramp", c.Ramp.Name(), "reachable", reachable, "len", c.Ramp.Len(),
			"range_width", c.RangeWidth)
	}

	glyphs, err := MapPixels(gray, c.Ramp, c.RangeWidth, c.Strict)
	if err != nil {
		return nil, err
	}

	res.Document, err = FormatLines(glyphs, scaled.Width())
	if err != nil {
		return nil, err
	}
	c.logger.Debug("formatted document",
		"lines", res.Document.Height(), "width", res.Document.Width)
	return res, nil
}
