package puzzle

import (
	"errors"
	"fmt"
)

// Kind classifies an Error. The set is closed.
type Kind int

const (
	// KindFileAccess means the input file could not be read as text.
	KindFileAccess Kind = iota + 1
	// KindParse means the input text did not match the puzzle's grammar.
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindFileAccess:
		return "file access"
	case KindParse:
		return "parse"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinels matched by errors.Is against an *Error of the same kind.
var (
	ErrFileAccess = errors.New("input file access failed")
	ErrParse      = errors.New("input parse failed")
)

// Error is the single failure type returned by the execution core. It wraps
// the underlying cause unchanged.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

// FileAccessError wraps a read failure for the input at path.
func FileAccessError(path string, err error) *Error {
	return &Error{Kind: KindFileAccess, Path: path, Err: err}
}

// ParseFailure wraps a parser diagnostic for the input at path.
func ParseFailure(path string, err error) *Error {
	return &Error{Kind: KindParse, Path: path, Err: err}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindFileAccess:
		return fmt.Sprintf("read input %s: %v", e.Path, e.Err)
	case KindParse:
		return fmt.Sprintf("parse input %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("%s input %s: %v", e.Kind, e.Path, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrFileAccess:
		return e.Kind == KindFileAccess
	case ErrParse:
		return e.Kind == KindParse
	}
	return false
}

// IsFileAccess reports whether err is a file access failure.
func IsFileAccess(err error) bool {
	return errors.Is(err, ErrFileAccess)
}

// IsParse reports whether err is a parse failure.
func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}
