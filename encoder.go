package huffman

import (
	"fmt"
	"strings"
)

// Compress Huffman-codes data.  The returned Result holds the bitstream and
// the Tree that Decompress needs to reverse it.
//
// Empty data is rejected with ErrInvalidInput.
//
func Compress(data []byte) (*Result, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: cannot compress empty data", ErrInvalidInput)
	}

	freq := CountFrequencies(data)
	tree, err := BuildTree(freq)
	if err != nil {
		return nil, err
	}

	bits, err := Encode(data, BuildCodeTable(tree))
	if err != nil {
		return nil, err
	}

	return &Result{bits: bits, tree: tree}, nil
}

// CompressString is like Compress, but takes a string.
func CompressString(data string) (*Result, error) {
	return Compress([]byte(data))
}

// Encode replaces each byte of data with its Code from table, in order, and
// returns the concatenation.  A byte without a Code fails the whole call with
// ErrLookup.
func Encode(data []byte, table *CodeTable) (string, error) {
	var size int
	for index, b := range data {
		hc, found := table.Lookup(Symbol(b))
		if !found {
			return "", fmt.Errorf("%w: symbol %d at offset %d", ErrLookup, b, index)
		}
		size += hc.Len()
	}

	var sb strings.Builder
	sb.Grow(size)
	for _, b := range data {
		sb.WriteString(string(table.codes[b]))
	}
	return sb.String(), nil
}
