package base64

import (
	"errors"
	"fmt"
)

var (
	ErrLength       = errors.New("invalid length")
	ErrCharacter    = errors.New("illegal character")
	ErrPadding      = errors.New("misplaced padding")
	ErrTrailingBits = errors.New("non-zero trailing bits")
)

// FormatError is returned by Decode when the input is not valid
// canonical base64. Offset is the index of the offending byte, or
// the input length for ErrLength.
type FormatError struct {
	Offset int
	Inner  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("base64: %v at offset %d", e.Inner, e.Offset)
}

func (e *FormatError) Unwrap() error {
	return e.Inner
}

func newFormatError(inner error, offset int) *FormatError {
	return &FormatError{Inner: inner, Offset: offset}
}
