package aoc

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when an answer needs at least one record and
// the input has none.
var ErrEmptyInput = errors.New("no records in input")

// ParseError reports a line that does not match the expected grammar.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("line %d: cannot parse %q", e.Line, e.Text)
	}
	return fmt.Sprintf("line %d: cannot parse %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
