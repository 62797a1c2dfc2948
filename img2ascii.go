// Package img2ascii converts raster images into plain-text ASCII art by
// mapping each pixel's luminance onto a fixed gradient of glyphs.
//
// The pipeline is linear: the image is scaled to a target width, reduced
// to luminance, optionally brightness-adjusted or shaded, quantized into
// ramp buckets and finally cut into rows of text. See Converter for the
// configurable entry point and imageutil for the raster helpers.
package img2ascii

import (
	"fmt"
	"math"

	"github.com/wbrown/img2ascii/imageutil"
)

// AdjustBrightness divides every sample by factor, truncating toward zero
// and clamping into [0, 255]. Factors below one brighten the image.
//
// A zero factor fails with ErrZeroBrightness. Negative, NaN and infinite
// factors fail with ErrInvalidBrightness rather than clamping every sample
// to 0 and producing uniformly dark art.
func AdjustBrightness(gray *imageutil.GrayImage, factor float64) (*imageutil.GrayImage, error) {
	switch {
	case factor == 0:
		return nil, newError(KindArithmetic, "", ErrZeroBrightness)
	case factor < 0 || math.IsNaN(factor) || math.IsInf(factor, 0):
		return nil, newError(KindArithmetic, "", ErrInvalidBrightness)
	}

	var lut [256]uint8
	for v := range lut {
		lut[v] = imageutil.ClampUint8(float64(v) / factor)
	}

	out := gray.Clone()
	for i, v := range out.Pix {
		out.Pix[i] = lut[v]
	}
	return out, nil
}

// MapPixels quantizes every sample of gray, in row-major order, into a
// glyph of ramp: ramp[sample / rangeWidth]. Buckets past the end of the
// ramp clamp to its last glyph, or fail with ErrRampOverflow when strict
// is set.
func MapPixels(
	gray *imageutil.GrayImage,
	ramp Ramp,
	rangeWidth int,
	strict bool,
) ([]string, error) {
	if rangeWidth <= 0 {
		return nil, newError(KindConfig, "", ErrInvalidRangeWidth)
	}
	if ramp.Len() == 0 {
		return nil, newError(KindConfig, "", ErrEmptyRamp)
	}

	samples := gray.Samples()
	glyphs := make([]string, len(samples))
	for i, sample := range samples {
		idx, ok := ramp.Index(sample, rangeWidth, strict)
		if !ok {
			return nil, newError(KindArithmetic, "", &OverflowError{
				Sample: sample,
				Index:  idx,
				Len:    ramp.Len(),
				X:      i % gray.Width(),
				Y:      i / gray.Width(),
			})
		}
		glyphs[i] = ramp.glyphs[idx]
	}
	return glyphs, nil
}

// OverflowError describes the first sample whose bucket fell past the end
// of the ramp in strict mode. It unwraps to ErrRampOverflow.
type OverflowError struct {
	Sample uint8
	Index  int
	Len    int
	X, Y   int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%v: sample %d at (%d,%d) maps to index %d of a %d-glyph ramp",
		ErrRampOverflow, e.Sample, e.X, e.Y, e.Index, e.Len)
}

func (e *OverflowError) Unwrap() error {
	return ErrRampOverflow
}
