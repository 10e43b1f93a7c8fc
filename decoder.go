package huffman

import (
	"fmt"
)

// Decompress reverses Compress.
func Decompress(r *Result) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil Result", ErrInvalidInput)
	}
	return Decode(r.bits, r.tree)
}

// DecompressString is like Decompress, but returns a string.
func DecompressString(r *Result) (string, error) {
	out, err := Decompress(r)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Decode walks tree once per output Symbol, starting from the root and
// following the left child on '0' and the right child on '1' until it reaches
// a leaf.
//
// Any byte other than '0' or '1' fails with a *BitError.  A bitstream that
// ends partway through a code, or that selects the placeholder leaf, fails
// with ErrMalformedStream.
//
func Decode(bits string, tree *Tree) ([]byte, error) {
	if tree == nil || tree.root == nil {
		return nil, fmt.Errorf("%w: empty Tree", ErrInvalidInput)
	}

	root := tree.root
	out := make([]byte, 0, len(bits)/tree.minDepth)
	node := root
	start := 0
	for index := 0; index < len(bits); index++ {
		switch bits[index] {
		case '0':
			node = node.left
		case '1':
			node = node.right
		default:
			return nil, &BitError{Offset: index, Bit: bits[index]}
		}

		switch node.kind {
		case internalNode:
			continue
		case placeholderNode:
			return nil, fmt.Errorf("%w: code at offset %d selects the placeholder leaf", ErrMalformedStream, start)
		}

		out = append(out, byte(node.symbol))
		node = root
		start = index + 1
	}

	if node != root {
		return nil, fmt.Errorf("%w: bitstream ends inside the code at offset %d", ErrMalformedStream, start)
	}
	return out, nil
}
