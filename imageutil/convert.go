package imageutil

// ToGrayscale reduces an RGBA image to luminance using the ITU-R BT.601
// weights (Y = 0.299R + 0.587G + 0.114B), rounded to the nearest integer.
// Alpha is ignored: premultiplied samples are restored to straight colour
// first, so a half-transparent white pixel reads as white.
func ToGrayscale(img *RGBAImage) *GrayImage {
	width, height := img.Width(), img.Height()
	gray := NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		src := img.PixOffset(0, y)
		dst := gray.PixOffset(0, y)
		for x := 0; x < width; x++ {
			i := src + x*4
			r, g, b := int(img.Pix[i]), int(img.Pix[i+1]), int(img.Pix[i+2])
			if a := int(img.Pix[i+3]); a != 0 && a != 255 {
				r, g, b = unpremultiply(r, a), unpremultiply(g, a), unpremultiply(b, a)
			}
			lum := (299*r + 587*g + 114*b + 500) / 1000
			gray.Pix[dst+x] = uint8(Clamp(lum, 0, 255))
		}
	}

	return gray
}

func unpremultiply(c, a int) int {
	return min((c*255+a/2)/a, 255)
}

// GrayscaleToRGBA expands a luminance buffer back to RGBA, used when an
// encoder or preview needs a colour image.
func GrayscaleToRGBA(gray *GrayImage) *RGBAImage {
	width, height := gray.Width(), gray.Height()
	rgba := NewRGBAImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := gray.Luma(x, y)
			rgba.SetRGB(x, y, RGB{R: v, G: v, B: v})
		}
	}

	return rgba
}
