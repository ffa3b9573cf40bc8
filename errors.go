package x12

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidHeader      = errors.New("x12: invalid interchange header")
	ErrNotThisTag         = errors.New("x12: not this segment")
	ErrMissingSegment     = errors.New("x12: missing mandatory segment")
	ErrMissingElement     = errors.New("x12: missing mandatory element")
	ErrTooManyElements    = errors.New("x12: too many elements")
	ErrUnterminated       = errors.New("x12: unterminated segment")
	ErrEmptySegment       = errors.New("x12: empty segment")
	ErrUnknownTransaction = errors.New("x12: unknown transaction set")
	ErrSchemaMismatch     = errors.New("x12: transaction set does not match group schema")
	ErrInvalidSchema      = errors.New("x12: invalid schema")
	ErrInvalidPayload     = errors.New("x12: invalid payload")
	ErrLimitExceeded      = errors.New("x12: limit exceeded")
	ErrValidation         = errors.New("x12: validation failed")
)

// DecodeError is a structural decode failure at a known position.
//
// Segment is the 0-based ordinal of the offending segment in the interchange
// (the ISA header is segment 0) and Offset its byte offset in the input.
type DecodeError struct {
	Tag      string // tag found at the position, empty at end of input
	Expected string // tag the decoder required, if any
	Segment  int
	Offset   int
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Tag == "" && errors.Is(e.Err, ErrEmptySegment) {
		return fmt.Sprintf("%v (segment %d, offset %d)", e.Err, e.Segment, e.Offset)
	}
	found := e.Tag
	if found == "" {
		found = "end of input"
	}
	if e.Expected != "" {
		return fmt.Sprintf("%v: expected %s, found %s (segment %d, offset %d)", e.Err, e.Expected, found, e.Segment, e.Offset)
	}
	return fmt.Sprintf("%v: %s (segment %d, offset %d)", e.Err, found, e.Segment, e.Offset)
}

func (e *DecodeError) Unwrap() error { return e.Err }
