package img2ascii

import (
	"errors"
	"fmt"

	"github.com/wbrown/img2ascii/imageutil"
)

// Kind classifies a conversion failure.
type Kind int

const (
	// KindLoad covers unreadable, missing or undecodable input images.
	KindLoad Kind = iota + 1
	// KindArithmetic covers invalid brightness factors and ramp overflow.
	KindArithmetic
	// KindWrite covers failures creating or writing the output.
	KindWrite
	// KindConfig covers invalid options such as a non-positive width.
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindLoad:
		return "load"
	case KindArithmetic:
		return "arithmetic"
	case KindWrite:
		return "write"
	case KindConfig:
		return "config"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var (
	ErrZeroBrightness    = errors.New("brightness factor is zero")
	ErrInvalidBrightness = errors.New("brightness factor must be a positive finite number")
	ErrRampOverflow      = errors.New("luminance bucket is past the end of the ramp")
	ErrInvalidRangeWidth = errors.New("range width must be positive")
	ErrEmptyRamp         = errors.New("ramp has no glyphs")
	ErrInvalidWidth      = imageutil.ErrInvalidWidth
)

// Error is returned by every exported operation of the package.
type Error struct {
	Kind Kind
	// Path is the image or output file involved, if any.
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindLoad:
		return fmt.Sprintf("unable to open image file %s: %v", e.Path, e.Err)
	case e.Kind == KindWrite && e.Path != "":
		return fmt.Sprintf("unable to write %s: %v", e.Path, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s error for %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is, or wraps, an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func newError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}
