package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyInput is returned by parsers that require at least one line.
var ErrEmptyInput = errors.New("input is empty")

// ParseError locates a grammar violation in the input. Line and Column are
// 1-based.
type ParseError struct {
	Line     int
	Column   int
	Fragment string
	Reason   string
}

func (e *ParseError) Error() string {
	if e.Fragment == "" {
		return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Reason)
	}
	return fmt.Sprintf("line %d, column %d: %s (near %q)", e.Line, e.Column, e.Reason, e.Fragment)
}

// Lines splits raw into lines. CRLF endings are normalized and a single
// trailing newline is tolerated; any further trailing blank line is kept so
// that parsers can reject it.
func Lines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.TrimSuffix(raw, "\n")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "\n")
}

// Ints parses one decimal integer per line.
func Ints(raw string) ([]int, error) {
	lines := Lines(raw)
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}
	out := make([]int, 0, len(lines))
	for i, line := range lines {
		n, err := Int(line, i+1)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Int parses a whole line as a decimal integer. lineNo is used for the
// diagnostic only.
func Int(line string, lineNo int) (int, error) {
	if line == "" {
		return 0, &ParseError{Line: lineNo, Column: 1, Reason: "expected integer, found empty line"}
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, &ParseError{
			Line:     lineNo,
			Column:   firstNonDigit(line) + 1,
			Fragment: line,
			Reason:   "expected integer",
		}
	}
	return n, nil
}

// Block is a group of consecutive non-blank lines. Start is the 1-based
// line number of its first line.
type Block struct {
	Start int
	Lines []string
}

// Blocks splits raw into groups separated by exactly one blank line. Empty
// groups, including a trailing blank line, are rejected.
func Blocks(raw string) ([]Block, error) {
	lines := Lines(raw)
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}
	var (
		blocks  []Block
		current Block
	)
	for i, line := range lines {
		if line != "" {
			if len(current.Lines) == 0 {
				current.Start = i + 1
			}
			current.Lines = append(current.Lines, line)
			continue
		}
		if len(current.Lines) == 0 {
			return nil, &ParseError{Line: i + 1, Column: 1, Reason: "unexpected blank line"}
		}
		blocks = append(blocks, current)
		current = Block{}
	}
	if len(current.Lines) == 0 {
		return nil, &ParseError{Line: len(lines), Column: 1, Reason: "trailing blank line"}
	}
	return append(blocks, current), nil
}

// Fields splits line on whitespace and requires exactly n fields.
func Fields(line string, lineNo, n int) ([]string, error) {
	f := strings.Fields(line)
	if len(f) != n {
		return nil, &ParseError{
			Line:     lineNo,
			Column:   1,
			Fragment: line,
			Reason:   fmt.Sprintf("expected %d fields, found %d", n, len(f)),
		}
	}
	return f, nil
}

// firstNonDigit returns the byte offset of the first character that cannot
// be part of a decimal integer.
func firstNonDigit(s string) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			continue
		}
		if i == 0 && (c == '-' || c == '+') {
			continue
		}
		return i
	}
	return len(s)
}
