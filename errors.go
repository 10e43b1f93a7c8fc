package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when the source data cannot be coded,
	// e.g. because it is empty.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLookup is returned when a symbol has no code in the code table.
	ErrLookup = errors.New("symbol not found in code table")

	// ErrInvalidBit is returned when a bitstream contains a byte other
	// than '0' or '1'.
	ErrInvalidBit = errors.New("invalid bit")

	// ErrMalformedStream is returned when a bitstream does not end on a
	// code boundary, or selects a path that no symbol owns.
	ErrMalformedStream = errors.New("malformed bitstream")

	// ErrMalformedTree is returned when a serialized tree cannot be
	// decoded into a valid Huffman tree.
	ErrMalformedTree = errors.New("malformed Huffman tree")
)

// BitError reports the first invalid bit found in a bitstream.
type BitError struct {
	// Offset is the index of the bad byte in the bitstream.
	Offset int

	// Bit is the bad byte itself.
	Bit byte
}

// Error fulfills the error interface.
func (e *BitError) Error() string {
	return fmt.Sprintf("%v: %q at offset %d", ErrInvalidBit, e.Bit, e.Offset)
}

// Unwrap returns ErrInvalidBit.
func (e *BitError) Unwrap() error {
	return ErrInvalidBit
}

var _ error = (*BitError)(nil)
