package img2ascii

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Document is a finished ASCII rendering: one line per scaled image row.
// It is built once and never modified.
type Document struct {
	lines []string
	// Width is the row length the document was cut to.
	Width int
}

// FormatLines cuts a flat glyph sequence into consecutive rows of width
// glyphs. The final row is shorter when len(glyphs) is not a multiple of
// width.
func FormatLines(glyphs []string, width int) (*Document, error) {
	if width <= 0 {
		return nil, newError(KindConfig, "", ErrInvalidWidth)
	}

	lines := make([]string, 0, (len(glyphs)+width-1)/width)
	var b strings.Builder
	for start := 0; start < len(glyphs); start += width {
		end := min(start+width, len(glyphs))
		b.Reset()
		for _, g := range glyphs[start:end] {
			b.WriteString(g)
		}
		lines = append(lines, b.String())
	}
	return &Document{lines: lines, Width: width}, nil
}

// Height returns the number of lines.
func (d *Document) Height() int {
	return len(d.lines)
}

// Line returns row i.
func (d *Document) Line(i int) string {
	return d.lines[i]
}

// Lines returns a copy of the rows.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// String joins the rows with "\n". There is no trailing newline.
func (d *Document) String() string {
	return strings.Join(d.lines, "\n")
}

// DisplayWidth returns the widest row measured in terminal cells.
func (d *Document) DisplayWidth() int {
	widest := 0
	for _, line := range d.lines {
		widest = max(widest, runewidth.StringWidth(line))
	}
	return widest
}
