package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxesError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *BoxesError
		expected string
	}{
		{
			name:     "simple error",
			err:      New(ErrNoSource, "no source value supplied"),
			expected: "[NO_SOURCE] no source value supplied",
		},
		{
			name:     "formatted error",
			err:      Newf(ErrUnknownKind, "unknown metadata kind %q", "bogus"),
			expected: `[UNKNOWN_KIND] unknown metadata kind "bogus"`,
		},
		{
			name:     "wrapped error",
			err:      Wrap(fmt.Errorf("boom"), ErrConfigLoad, "loading defaults file"),
			expected: "[CONFIG_LOAD] loading defaults file: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestBoxesError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner")
	err := Wrap(inner, ErrConfigParse, "parse failed")

	assert.Equal(t, inner, errors.Unwrap(err))
	assert.True(t, errors.Is(err, inner))
}

func TestBoxesError_Is(t *testing.T) {
	err := New(ErrNilSource, "source is nil")

	assert.True(t, errors.Is(err, New(ErrNilSource, "other message")))
	assert.False(t, errors.Is(err, New(ErrNoSource, "source is nil")))
}

func TestWrap_NilError(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrInternal, "should vanish"))
	assert.Nil(t, Wrapf(nil, ErrInternal, "should vanish %d", 1))
}

func TestIsCode(t *testing.T) {
	err := Newf(ErrNotIdentifiable, "value of kind %s has no identity", "int")

	assert.True(t, IsCode(err, ErrNotIdentifiable))
	assert.False(t, IsCode(err, ErrNilSource))
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrNotIdentifiable))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrInvalidInput, "bad width").WithDetail("charsPerLine", 2)

	assert.Equal(t, 2, err.Details["charsPerLine"])
}
