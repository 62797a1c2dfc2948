package img2ascii

import (
	"github.com/rivo/uniseg"
)

// DefaultRangeWidth is the luminance bucket width used to index a ramp.
const DefaultRangeWidth = 25

// Ramp is an immutable gradient of glyphs ordered from visually darkest
// (index 0) to lightest. Each glyph is one grapheme cluster.
type Ramp struct {
	name   string
	glyphs []string
}

var (
	// LongRamp is the detailed gradient used by the brightness-adjusting
	// converter. With DefaultRangeWidth only its first 11 glyphs are
	// reachable.
	LongRamp = NewRamp("long", "@B%8WM#*oahkbdpwmZO0QCJYXzcvnxrjft/\\|()1{}[]-_+~<>i!lI;:,\\^`'. ")

	// ShortRamp is the ten-step gradient used by the shading converter.
	// Samples of 250 and above fall past its end with DefaultRangeWidth.
	ShortRamp = NewRamp("short", "@%#*+=-:. ")
)

// NewRamp splits chars into grapheme clusters.
func NewRamp(name, chars string) Ramp {
	glyphs := make([]string, 0, len(chars))
	g := uniseg.NewGraphemes(chars)
	for g.Next() {
		glyphs = append(glyphs, g.Str())
	}
	return Ramp{name: name, glyphs: glyphs}
}

// Name identifies the ramp in logs.
func (r Ramp) Name() string {
	return r.name
}

// Len returns the number of glyphs.
func (r Ramp) Len() int {
	return len(r.glyphs)
}

// Glyph returns the glyph at index i.
func (r Ramp) Glyph(i int) string {
	return r.glyphs[i]
}

// Glyphs returns a copy of the ramp's glyphs.
func (r Ramp) Glyphs() []string {
	out := make([]string, len(r.glyphs))
	copy(out, r.glyphs)
	return out
}

// String returns the ramp as a single string.
func (r Ramp) String() string {
	var n int
	for _, g := range r.glyphs {
		n += len(g)
	}
	buf := make([]byte, 0, n)
	for _, g := range r.glyphs {
		buf = append(buf, g...)
	}
	return string(buf)
}

// Reachable returns how many glyphs a full 0-255 sample range can address
// with the given bucket width.
func (r Ramp) Reachable(rangeWidth int) int {
	if rangeWidth <= 0 {
		return 0
	}
	return min(r.Len(), 255/rangeWidth+1)
}

// Index returns the bucket index for sample. Out-of-range buckets are
// clamped to the last glyph unless strict is set, in which case ok is
// false.
func (r Ramp) Index(sample uint8, rangeWidth int, strict bool) (idx int, ok bool) {
	idx = int(sample) / rangeWidth
	if idx >= r.Len() {
		if strict {
			return idx, false
		}
		idx = r.Len() - 1
	}
	return idx, true
}
