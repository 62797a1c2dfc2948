package img2ascii

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// WriteTo prints doc to w followed by a single newline.
func WriteTo(w io.Writer, doc *Document) error {
	if _, err := io.WriteString(w, doc.String()+"\n"); err != nil {
		return newError(KindWrite, "", err)
	}
	return nil
}

// WriteFile creates or truncates path and writes the exact document bytes.
// The file is closed on every path, and a failed close is reported.
func WriteFile(path string, doc *Document) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return newError(KindWrite, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = newError(KindWrite, path, cerr)
		}
	}()

	if _, err := io.WriteString(f, doc.String()); err != nil {
		return newError(KindWrite, path, err)
	}
	return nil
}

// Save writes doc to path as text. "-" prints to stdout.
func Save(path string, doc *Document) error {
	if path == "-" {
		return WriteTo(os.Stdout, doc)
	}
	return WriteFile(path, doc)
}

// TerminalFit describes how a document relates to the terminal it is
// about to be printed on.
type TerminalFit struct {
	IsTerminal bool
	Columns    int
	Fits       bool
}

// CheckTerminalFit inspects f. Outside a terminal, or when the size is
// unknown, the document is assumed to fit.
func CheckTerminalFit(f *os.File, doc *Document) TerminalFit {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return TerminalFit{Fits: true}
	}
	cols, _, err := term.GetSize(fd)
	if err != nil || cols <= 0 {
		return TerminalFit{IsTerminal: true, Fits: true}
	}
	return TerminalFit{
		IsTerminal: true,
		Columns:    cols,
		Fits:       doc.DisplayWidth() <= cols,
	}
}

func (t TerminalFit) String() string {
	if !t.IsTerminal {
		return "not a terminal"
	}
	return fmt.Sprintf("terminal, %d columns", t.Columns)
}
