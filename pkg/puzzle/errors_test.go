package puzzle

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	t.Run("file access", func(t *testing.T) {
		err := FileAccessError("inputs/day01.txt", fs.ErrNotExist)

		assert.True(t, IsFileAccess(err))
		assert.False(t, IsParse(err))
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Equal(t, "read input inputs/day01.txt: file does not exist", err.Error())
	})

	t.Run("parse", func(t *testing.T) {
		cause := &ParseError{Line: 2, Column: 1, Fragment: "x", Reason: "expected integer"}
		err := ParseFailure("inputs/day02.txt", cause)

		assert.True(t, IsParse(err))
		assert.False(t, IsFileAccess(err))

		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, 2, pe.Line)
		assert.Contains(t, err.Error(), "parse input inputs/day02.txt")
	})

	t.Run("kind survives wrapping", func(t *testing.T) {
		err := fmt.Errorf("day 3: %w", ParseFailure("p", errors.New("bad")))

		var pe *Error
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, KindParse, pe.Kind)
		assert.True(t, IsParse(err))
	})

	t.Run("plain errors match neither kind", func(t *testing.T) {
		err := errors.New("boom")
		assert.False(t, IsFileAccess(err))
		assert.False(t, IsParse(err))
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "file access", KindFileAccess.String())
	assert.Equal(t, "parse", KindParse.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
