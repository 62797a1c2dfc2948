package img2ascii

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{newError(KindLoad, "cat.jpg", os.ErrNotExist), "unable to open image file cat.jpg: file does not exist"},
		{newError(KindWrite, "out.txt", os.ErrPermission), "unable to write out.txt: permission denied"},
		{newError(KindArithmetic, "cat.jpg", ErrZeroBrightness), "arithmetic error for cat.jpg: brightness factor is zero"},
		{newError(KindConfig, "", ErrInvalidRangeWidth), "config error: range width must be positive"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("converting: %w", newError(KindWrite, "x", os.ErrClosed))
	assert.True(t, IsKind(err, KindWrite))
	assert.False(t, IsKind(err, KindLoad))
	assert.ErrorIs(t, err, os.ErrClosed)
	assert.False(t, IsKind(errors.New("plain"), KindWrite))
	assert.False(t, IsKind(nil, KindWrite))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "load", KindLoad.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
