package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol present in a Tree to its Code.
type CodeTable struct {
	codes   [AlphabetSize]Code
	count   int
	minSize int
	maxSize int
}

// BuildCodeTable derives the code of every Symbol in t from its path: a left
// edge contributes '0' and a right edge contributes '1'.  The placeholder leaf,
// if any, receives no code.
func BuildCodeTable(t *Tree) *CodeTable {
	ct := &CodeTable{}
	walkLeaves(t.root, func(leaf *Node, path []byte) {
		symbol, ok := leaf.Symbol()
		if !ok {
			return
		}
		assert.Assertf(ct.codes[symbol] == "", "symbol %d appears twice in Huffman tree", symbol)

		size := len(path)
		ct.codes[symbol] = Code(path)
		if ct.count == 0 || ct.minSize > size {
			ct.minSize = size
		}
		if ct.maxSize < size {
			ct.maxSize = size
		}
		ct.count++
	})
	return ct
}

// Lookup returns the Code for symbol.  The second result is false if symbol
// did not occur in the data that the table was built from.
func (ct *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	hc := ct.codes[symbol]
	return hc, hc != ""
}

// Len returns the number of Symbols with a Code.
func (ct *CodeTable) Len() int {
	return ct.count
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() int {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() int {
	return ct.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet, 0 for Symbols without a Code.
func (ct *CodeTable) SizeBySymbol() []int {
	out := make([]int, AlphabetSize)
	for symbol := range ct.codes {
		out[symbol] = len(ct.codes[symbol])
	}
	return out
}

// EncodedSize returns the number of bits that Encode would produce for data
// with the given frequencies.
func (ct *CodeTable) EncodedSize(freq *FrequencyTable) (uint64, error) {
	var sum uint64
	for symbol, n := range freq {
		if n == 0 {
			continue
		}
		hc := ct.codes[symbol]
		if hc == "" {
			return 0, fmt.Errorf("%w: symbol %d", ErrLookup, symbol)
		}
		sum += n * uint64(len(hc))
	}
	return sum, nil
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol := range ct.codes {
		if hc := ct.codes[symbol]; hc != "" {
			fmt.Fprintf(&buf, "\tLookup(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
