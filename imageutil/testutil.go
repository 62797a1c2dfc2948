package imageutil

// Synthetic images used by the tests across the module.

// CreateSolidImage creates a single-colour image.
func CreateSolidImage(width, height int, c RGB) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGB(x, y, c)
		}
	}
	return img
}

// CreateGradientImage creates a horizontal black-to-white ramp. Column 0
// is 0 and the last column is 255.
func CreateGradientImage(width, height int) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(0)
			if width > 1 {
				v = uint8(255 * x / (width - 1))
			}
			img.SetRGB(x, y, RGB{R: v, G: v, B: v})
		}
	}
	return img
}

// CreateCheckerboardImage creates black and white squares of squareSize,
// starting with white at the origin.
func CreateCheckerboardImage(width, height, squareSize int) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				img.SetRGB(x, y, RGB{R: 255, G: 255, B: 255})
			} else {
				img.SetRGB(x, y, RGB{})
			}
		}
	}
	return img
}

// CreateGrayImage builds a luminance buffer from rows of samples.
func CreateGrayImage(rows [][]uint8) *GrayImage {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	img := NewGrayImage(width, height)
	for y, row := range rows {
		for x, v := range row {
			img.SetLuma(x, y, v)
		}
	}
	return img
}

// CountDiff returns the number of samples that differ between two
// same-sized luminance buffers, or -1 if their sizes differ.
func CountDiff(a, b *GrayImage) int {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return -1
	}
	diff := 0
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.Luma(x, y) != b.Luma(x, y) {
				diff++
			}
		}
	}
	return diff
}
