package imageutil

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrayImage(t *testing.T) {
	img := NewGrayImage(100, 50)
	assert.Equal(t, 100, img.Width())
	assert.Equal(t, 50, img.Height())
	assert.Len(t, img.Samples(), 5000)
}

func TestSamplesRowMajor(t *testing.T) {
	img := CreateGrayImage([][]uint8{
		{1, 2, 3},
		{4, 5, 6},
	})
	assert.Equal(t, []uint8{1, 2, 3, 4, 5, 6}, img.Samples())
}

func TestSamplesOfSubImageUsesStride(t *testing.T) {
	full := CreateGrayImage([][]uint8{
		{1, 2, 3},
		{4, 5, 6},
	})
	sub := &GrayImage{Gray: full.SubImage(image.Rect(1, 0, 3, 2)).(*image.Gray)}
	assert.Equal(t, []uint8{2, 3, 5, 6}, sub.Samples())
}

func TestGrayImageClone(t *testing.T) {
	img := NewGrayImage(4, 4)
	img.SetLuma(1, 1, 200)

	clone := img.Clone()
	assert.Equal(t, uint8(200), clone.Luma(1, 1))

	clone.SetLuma(1, 1, 10)
	assert.Equal(t, uint8(200), img.Luma(1, 1), "modifying clone should not affect original")
}

func TestRGBAImageFromImageNormalisesOrigin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 8, 7))
	src.Set(5, 5, color.NRGBA{R: 255, A: 255})

	img := RGBAImageFromImage(src)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(0, 0))
}

func TestToGrayscale(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want uint8
	}{
		{"white", RGB{255, 255, 255}, 255},
		{"black", RGB{0, 0, 0}, 0},
		{"red", RGB{255, 0, 0}, 76},
		{"green", RGB{0, 255, 0}, 150},
		{"blue", RGB{0, 0, 255}, 29},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gray := ToGrayscale(CreateSolidImage(2, 2, tt.in))
			assert.Equal(t, tt.want, gray.Luma(1, 1))
		})
	}
}

func TestToGrayscaleIgnoresAlpha(t *testing.T) {
	tests := []struct {
		name string
		in   color.NRGBA
		want uint8
	}{
		{"half white", color.NRGBA{R: 255, G: 255, B: 255, A: 128}, 255},
		{"faint white", color.NRGBA{R: 255, G: 255, B: 255, A: 10}, 255},
		{"half red", color.NRGBA{R: 255, A: 128}, 76},
		{"opaque gray", color.NRGBA{R: 90, G: 90, B: 90, A: 255}, 90},
		{"transparent", color.NRGBA{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
			draw.Draw(src, src.Bounds(), image.NewUniform(tt.in), image.Point{}, draw.Src)
			gray := ToGrayscale(RGBAImageFromImage(src))
			assert.Equal(t, tt.want, gray.Luma(1, 1))
		})
	}
}

func TestGrayscaleToRGBA(t *testing.T) {
	gray := CreateGrayImage([][]uint8{{7, 200}})
	rgba := GrayscaleToRGBA(gray)
	assert.Equal(t, color.RGBA{R: 200, G: 200, B: 200, A: 255}, rgba.RGBAAt(1, 0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-4, 0, 10))
	assert.Equal(t, 10, Clamp(11, 0, 10))
	assert.Equal(t, 5, Clamp(5, 0, 10))

	assert.Equal(t, uint8(0), ClampUint8(-3.5))
	assert.Equal(t, uint8(127), ClampUint8(127.9))
	assert.Equal(t, uint8(255), ClampUint8(510))
	assert.Equal(t, uint8(0), ClampUint8(math.NaN()))
	assert.Equal(t, uint8(255), ClampUint8(math.Inf(1)))
}

func TestScaledHeight(t *testing.T) {
	tests := []struct {
		srcW, srcH, width, want int
	}{
		{100, 100, 100, 100},
		{200, 100, 50, 25},
		{640, 480, 100, 75},
		{3, 2, 4, 2},     // 2.666 truncates
		{1000, 1, 10, 1}, // 0.01 is raised to one row
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ScaledHeight(tt.srcW, tt.srcH, tt.width),
			"%dx%d to width %d", tt.srcW, tt.srcH, tt.width)
	}
}

func TestScaleToWidth(t *testing.T) {
	img := CreateGradientImage(200, 100)
	for _, interp := range []Interpolation{
		InterpolationCatmullRom,
		InterpolationLinear,
		InterpolationNearest,
		InterpolationLanczos,
	} {
		t.Run(interp.String(), func(t *testing.T) {
			scaled, err := ScaleToWidth(img, 50, interp)
			require.NoError(t, err)
			assert.Equal(t, 50, scaled.Width())
			assert.Equal(t, 25, scaled.Height())
		})
	}
}

func TestScaleToWidthSolidColourIsExact(t *testing.T) {
	for _, c := range []RGB{{0, 0, 0}, {255, 255, 255}} {
		scaled, err := ScaleToWidth(CreateSolidImage(200, 100, c), 50, InterpolationCatmullRom)
		require.NoError(t, err)
		gray := ToGrayscale(scaled)
		for _, v := range gray.Samples() {
			require.Equal(t, c.R, v)
		}
	}
}

func TestScaleToWidthRejectsBadInput(t *testing.T) {
	_, err := ScaleToWidth(CreateSolidImage(4, 4, RGB{}), 0, InterpolationNearest)
	assert.ErrorIs(t, err, ErrInvalidWidth)

	_, err = ScaleToWidth(CreateSolidImage(4, 4, RGB{}), -3, InterpolationNearest)
	assert.ErrorIs(t, err, ErrInvalidWidth)

	_, err = ScaleToWidth(NewRGBAImage(0, 0), 10, InterpolationNearest)
	assert.ErrorIs(t, err, ErrEmptyImage)
}

func TestParseInterpolation(t *testing.T) {
	for name, want := range map[string]Interpolation{
		"":           InterpolationCatmullRom,
		"bicubic":    InterpolationCatmullRom,
		"CatmullRom": InterpolationCatmullRom,
		"bilinear":   InterpolationLinear,
		"nearest":    InterpolationNearest,
		"lanczos":    InterpolationLanczos,
	} {
		got, err := ParseInterpolation(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseInterpolation("box")
	assert.Error(t, err)
}

func TestLoadSavePNG(t *testing.T) {
	img := CreateCheckerboardImage(16, 16, 4)
	path := filepath.Join(t.TempDir(), "checker.png")
	require.NoError(t, SavePNG(img.RGBA, path))

	loaded, format, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, img.Pix, loaded.Pix)
}

func TestLoadImageMissingFile(t *testing.T) {
	_, _, err := LoadImage(filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeImage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, CreateSolidImage(3, 2, RGB{R: 9}).RGBA))

	img, format, err := DecodeImage(&buf)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 3, img.Width())

	_, _, err = DecodeImage(bytes.NewReader([]byte("not an image")))
	assert.ErrorIs(t, err, image.ErrFormat)
}
