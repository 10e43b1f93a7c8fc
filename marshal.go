package huffman

import (
	"bytes"
	"encoding"
	"fmt"
	mathbits "math/bits"

	"github.com/icza/bitio"
)

// Trees are serialized in pre-order, one record per node:
//
//   internal node:  0
//   leaf:           1 0 <symbol:8> <n-1:6> <freq:n>
//   placeholder:    1 1
//
// where n is the bit length of the leaf's frequency.  The stream is padded
// with zero bits to a whole number of bytes.  Internal frequencies are not
// stored; they are the sums of their children.

const freqSizeBits = 6

// MarshalBinary returns the canonical serialized form of this Tree.
func (t *Tree) MarshalBinary() ([]byte, error) {
	if t.root == nil {
		return nil, fmt.Errorf("%w: empty Tree", ErrInvalidInput)
	}

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	stack := make([]*Node, 0, 16)
	stack = append(stack, t.root)
	for len(stack) != 0 {
		last := len(stack) - 1
		node := stack[last]
		stack = stack[:last]

		switch node.kind {
		case internalNode:
			if err := w.WriteBool(false); err != nil {
				return nil, err
			}
			stack = append(stack, node.right, node.left)

		case placeholderNode:
			if err := w.WriteBits(0x3, 2); err != nil {
				return nil, err
			}

		case leafNode:
			size := uint8(mathbits.Len64(node.freq))
			if err := w.WriteBits(0x2, 2); err != nil {
				return nil, err
			}
			if err := w.WriteByte(byte(node.symbol)); err != nil {
				return nil, err
			}
			if err := w.WriteBits(uint64(size-1), freqSizeBits); err != nil {
				return nil, err
			}
			if err := w.WriteBits(node.freq, size); err != nil {
				return nil, err
			}
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary replaces this Tree with the one serialized in data.  It
// fails like ParseTree, leaving the Tree unchanged.
func (t *Tree) UnmarshalBinary(data []byte) error {
	parsed, err := ParseTree(data)
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}

var (
	_ encoding.BinaryMarshaler   = (*Tree)(nil)
	_ encoding.BinaryUnmarshaler = (*Tree)(nil)
)

// ParseTree reconstructs a Tree from the output of Tree.MarshalBinary.
//
// Only the exact bytes that MarshalBinary produces for the tree BuildTree
// would build from the stored leaf frequencies are accepted.  Anything else,
// including a well-formed tree of the wrong shape or nonzero padding bits,
// fails with ErrMalformedTree.
//
func ParseTree(data []byte) (*Tree, error) {
	rd := bytes.NewReader(data)
	p := treeParser{r: bitio.NewReader(rd)}

	root, err := p.node(0)
	if err != nil {
		return nil, err
	}
	if root.IsLeaf() {
		return nil, fmt.Errorf("%w: root is a leaf", ErrMalformedTree)
	}
	if p.placeholders != 0 && p.leaves != 2 {
		return nil, fmt.Errorf("%w: placeholder leaf in a tree with %d leaves", ErrMalformedTree, p.leaves)
	}
	if rd.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedTree, rd.Len())
	}

	canonical, err := BuildTree(p.freq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTree, err)
	}
	raw, err := canonical.MarshalBinary()
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(raw, data) {
		return nil, fmt.Errorf("%w: not the Huffman tree for its leaf frequencies", ErrMalformedTree)
	}
	return canonical, nil
}

type treeParser struct {
	r            *bitio.Reader
	seen         [AlphabetSize]bool
	freq         FrequencyTable
	leaves       int
	placeholders int
}

func (p *treeParser) node(depth int) (*Node, error) {
	// A Huffman tree over AlphabetSize symbols plus one placeholder is
	// never deeper than AlphabetSize.
	if depth > AlphabetSize {
		return nil, fmt.Errorf("%w: tree is deeper than %d", ErrMalformedTree, AlphabetSize)
	}

	isLeaf, err := p.r.ReadBool()
	if err != nil {
		return nil, p.readError(err)
	}

	if !isLeaf {
		left, err := p.node(depth + 1)
		if err != nil {
			return nil, err
		}
		right, err := p.node(depth + 1)
		if err != nil {
			return nil, err
		}
		freq := left.freq + right.freq
		if freq < left.freq {
			return nil, fmt.Errorf("%w: frequency overflow", ErrMalformedTree)
		}
		return &Node{left: left, right: right, freq: freq, kind: internalNode}, nil
	}

	p.leaves++

	isPlaceholder, err := p.r.ReadBool()
	if err != nil {
		return nil, p.readError(err)
	}
	if isPlaceholder {
		p.placeholders++
		if p.placeholders > 1 {
			return nil, fmt.Errorf("%w: more than one placeholder leaf", ErrMalformedTree)
		}
		return &Node{freq: 1, rank: AlphabetSize, kind: placeholderNode}, nil
	}

	symbol, err := p.r.ReadByte()
	if err != nil {
		return nil, p.readError(err)
	}
	if p.seen[symbol] {
		return nil, fmt.Errorf("%w: symbol %d appears twice", ErrMalformedTree, symbol)
	}
	p.seen[symbol] = true

	sizeMinusOne, err := p.r.ReadBits(freqSizeBits)
	if err != nil {
		return nil, p.readError(err)
	}
	freq, err := p.r.ReadBits(uint8(sizeMinusOne) + 1)
	if err != nil {
		return nil, p.readError(err)
	}
	if freq == 0 {
		return nil, fmt.Errorf("%w: symbol %d has frequency 0", ErrMalformedTree, symbol)
	}
	p.freq[symbol] = freq

	return &Node{freq: freq, rank: uint32(symbol), kind: leafNode, symbol: Symbol(symbol)}, nil
}

func (p *treeParser) readError(err error) error {
	return fmt.Errorf("%w: %v", ErrMalformedTree, err)
}
