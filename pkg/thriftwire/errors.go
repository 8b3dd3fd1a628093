package thriftwire

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated indicates a read past the end of the input buffer.
	ErrTruncated = errors.New("truncated input")
	// ErrMalformedVarint indicates a varint that did not terminate within
	// the maximum permitted byte count.
	ErrMalformedVarint = errors.New("malformed varint")
)

// UnknownTypeError indicates a wire type nibble outside the compact protocol
// definition. Decoding cannot continue past it because the size of the value
// is unknowable.
type UnknownTypeError struct {
	Type byte
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown wire type %d", e.Type)
}
