package srt

import (
	"fmt"
	"strings"
)

// Kind identifies what went wrong while parsing a block.
type Kind int

const (
	// block has fewer than the index and time range lines
	InvalidBlock Kind = iota + 1
	// index line is not a non-negative decimal integer
	InvalidIndex
	// time range line has no usable "-->" separator
	InvalidTimeRange
	// a timecode does not match HH:MM:SS,mmm
	InvalidTime
	// block has no text after the time range line
	MissingText
)

func (k Kind) String() string {
	switch k {
	case InvalidBlock:
		return "invalid block"
	case InvalidIndex:
		return "invalid index"
	case InvalidTimeRange:
		return "invalid time range"
	case InvalidTime:
		return "invalid time"
	case MissingText:
		return "missing text"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// kindError is the sentinel form of a Kind; a *ParseError matches the
// sentinel of its own Kind under errors.Is.
type kindError Kind

func (k kindError) Error() string { return Kind(k).String() }

var (
	ErrInvalidBlock     error = kindError(InvalidBlock)
	ErrInvalidIndex     error = kindError(InvalidIndex)
	ErrInvalidTimeRange error = kindError(InvalidTimeRange)
	ErrInvalidTime      error = kindError(InvalidTime)
	ErrMissingText      error = kindError(MissingText)
)

// ParseError reports the first malformed construct found in the input.
//
// Line is the 1-based source line of the offending construct (0 when a
// timecode is parsed on its own). Text holds the offending line or
// substring, and Count the number of lines an InvalidBlock had.
type ParseError struct {
	Kind  Kind
	Line  int
	Text  string
	Count int
	Err   error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	b.WriteString(e.Kind.String())

	switch e.Kind {
	case InvalidBlock:
		fmt.Fprintf(
			&b,
			": expected index and time range lines, got %d line(s)",
			e.Count,
		)
	case MissingText:
		b.WriteString(": subtitle has no text lines")
	default:
		fmt.Fprintf(&b, ": %q", e.Text)
	}

	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	k, ok := target.(kindError)
	return ok && Kind(k) == e.Kind
}

func newError(kind Kind, line int, text string) *ParseError {
	return &ParseError{Kind: kind, Line: line, Text: text}
}
