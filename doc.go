// Package huffman implements static Huffman coding over bytes.  Compress
// tabulates symbol frequencies, builds a Huffman tree with a deterministic
// tie-break, derives a prefix-free code table from the tree, and encodes the
// input as a string of '0' and '1' digits.  Decompress walks the same tree to
// recover the input.
//
// The tree travels with the bitstream in a Result and is the only key needed
// for decoding.  Tree.MarshalBinary produces a canonical pre-order encoding of
// the tree for callers that need to move it out of process, and PackBits
// packs the digit string into bytes.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
