package huffman

import (
	"fmt"
)

// Result is the output of Compress: the encoded bitstream, plus the Tree that
// produced it.  The Tree is the only key needed to decode the bitstream, so
// the two always travel together.  A Result is immutable.
type Result struct {
	bits string
	tree *Tree
}

// Bits returns the encoded bitstream as a string of '0' and '1' digits.
func (r *Result) Bits() string {
	return r.bits
}

// Tree returns the Huffman tree used to encode the bitstream.
func (r *Result) Tree() *Tree {
	return r.tree
}

// Len returns the number of bits in the bitstream.
func (r *Result) Len() int {
	return len(r.bits)
}

// String returns a brief description of this Result.
func (r *Result) String() string {
	if r.tree == nil {
		return "(empty Huffman result)"
	}
	return fmt.Sprintf("(Huffman result with %d bits, coded with %d leaves of depth %d .. %d)",
		len(r.bits), r.tree.leaves, r.tree.minDepth, r.tree.maxDepth)
}

var _ fmt.Stringer = (*Result)(nil)
