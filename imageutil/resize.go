package imageutil

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

var (
	// ErrInvalidWidth is returned when a target width is not positive.
	ErrInvalidWidth = errors.New("target width must be positive")
	// ErrEmptyImage is returned when asked to scale an image with no pixels.
	ErrEmptyImage = errors.New("image has no pixels")
)

// Interpolation specifies the resampling kernel used by the scaler.
type Interpolation int

const (
	// InterpolationCatmullRom is bicubic resampling, the closest match to
	// the resampler most imaging libraries use by default.
	InterpolationCatmullRom Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest

	// InterpolationLanczos uses a Lanczos3 kernel from nfnt/resize.
	InterpolationLanczos
)

var interpolationNames = map[Interpolation]string{
	InterpolationCatmullRom: "catmullrom",
	InterpolationLinear:     "bilinear",
	InterpolationNearest:    "nearest",
	InterpolationLanczos:    "lanczos",
}

func (i Interpolation) String() string {
	if name, ok := interpolationNames[i]; ok {
		return name
	}
	return fmt.Sprintf("Interpolation(%d)", int(i))
}

// ParseInterpolation maps a CLI name to an Interpolation. "bicubic" is
// accepted as an alias for catmullrom.
func ParseInterpolation(name string) (Interpolation, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "bicubic" || name == "" {
		return InterpolationCatmullRom, nil
	}
	for interp, n := range interpolationNames {
		if n == name {
			return interp, nil
		}
	}
	return 0, fmt.Errorf("unknown resampling method %q", name)
}

// Resize resamples img to exactly width x height.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	if interp == InterpolationLanczos {
		out := resize.Resize(uint(width), uint(height), img.RGBA, resize.Lanczos3)
		return RGBAImageFromImage(out)
	}

	var scaler draw.Scaler
	switch interp {
	case InterpolationLinear:
		scaler = draw.BiLinear
	case InterpolationNearest:
		scaler = draw.NearestNeighbor
	default:
		scaler = draw.CatmullRom
	}

	dst := NewRGBAImage(width, height)
	scaler.Scale(dst.RGBA, image.Rect(0, 0, width, height), img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// ScaledHeight derives the row count for a target width from the source
// aspect ratio. The result is truncated toward zero and never drops below
// one row for a non-empty source.
func ScaledHeight(srcWidth, srcHeight, width int) int {
	aspectRatio := float64(srcHeight) / float64(srcWidth)
	height := int(aspectRatio * float64(width))
	if height < 1 {
		height = 1
	}
	return height
}

// ScaleToWidth resizes img to width columns, preserving the aspect ratio.
// No correction is applied for non-square character cells.
func ScaleToWidth(img *RGBAImage, width int, interp Interpolation) (*RGBAImage, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWidth, width)
	}
	if img.Empty() {
		return nil, ErrEmptyImage
	}
	height := ScaledHeight(img.Width(), img.Height(), width)
	return Resize(img, width, height, interp), nil
}
