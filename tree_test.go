package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func makeTestFrequencies() FrequencyTable {
	var freq FrequencyTable
	copy(freq[:], []uint64{5, 9, 12, 13, 16, 45})
	return freq
}

func makeTestTree(t *testing.T) *Tree {
	t.Helper()
	tree, err := BuildTree(makeTestFrequencies())
	require.NoError(t, err)
	return tree
}

func TestBuildTree(t *testing.T) {
	tree := makeTestTree(t)

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tLeaves() = 6\n",
		"\tMinDepth() = 1\n",
		"\tMaxDepth() = 4\n",
		"\t\"0\" = '\\x05' (45)\n",
		"\t\"100\" = '\\x02' (12)\n",
		"\t\"101\" = '\\x03' (13)\n",
		"\t\"1100\" = '\\x00' (5)\n",
		"\t\"1101\" = '\\x01' (9)\n",
		"\t\"111\" = '\\x04' (16)\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	root := tree.Root()
	require.False(t, root.IsLeaf())
	require.Equal(t, uint64(100), root.Frequency())
	_, ok := root.Symbol()
	require.False(t, ok)

	symbol, ok := root.Left().Symbol()
	require.True(t, ok)
	require.Equal(t, Symbol(5), symbol)
	require.Nil(t, root.Left().Left())
	require.Nil(t, root.Left().Right())
}

func TestBuildTree_Empty(t *testing.T) {
	tree, err := BuildTree(FrequencyTable{})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Nil(t, tree)
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	type testRow struct {
		name   string
		symbol Symbol
		freq   uint64
		code   Code
	}

	// A real symbol with frequency 1 ties with the placeholder, and wins.
	testData := [...]testRow{
		{name: "a", symbol: 'a', freq: 4, code: "1"},
		{name: "zero", symbol: 0, freq: 1, code: "0"},
		{name: "max", symbol: MaxSymbol, freq: 1000, code: "1"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var freq FrequencyTable
			freq[row.symbol] = row.freq

			tree, err := BuildTree(freq)
			require.NoError(t, err)
			require.Equal(t, 2, tree.Leaves())
			require.Equal(t, 1, tree.MinDepth())
			require.Equal(t, 1, tree.MaxDepth())

			root := tree.Root()
			leaf, placeholder := root.Right(), root.Left()
			if row.code == "0" {
				leaf, placeholder = placeholder, leaf
			}

			require.True(t, placeholder.IsPlaceholder())
			require.True(t, placeholder.IsLeaf())
			require.Equal(t, uint64(1), placeholder.Frequency())
			_, ok := placeholder.Symbol()
			require.False(t, ok)

			symbol, ok := leaf.Symbol()
			require.True(t, ok)
			require.False(t, leaf.IsPlaceholder())
			require.Equal(t, row.symbol, symbol)
			require.Equal(t, row.freq+1, root.Frequency())

			table := BuildCodeTable(tree)
			require.Equal(t, 1, table.Len())
			hc, found := table.Lookup(row.symbol)
			require.True(t, found)
			require.Equal(t, row.code, hc)
		})
	}
}

func TestBuildTree_Deterministic(t *testing.T) {
	freq := CountFrequencies([]byte("the quick brown fox jumps over the lazy dog"))

	a, err := BuildTree(freq)
	require.NoError(t, err)
	b, err := BuildTree(freq)
	require.NoError(t, err)

	var dumpA, dumpB strings.Builder
	_, _ = a.Dump(&dumpA)
	_, _ = b.Dump(&dumpB)
	require.Equal(t, dumpA.String(), dumpB.String())
}

func TestBuildTree_FullAlphabet(t *testing.T) {
	var freq FrequencyTable
	for symbol := range freq {
		freq[symbol] = 1
	}

	tree, err := BuildTree(freq)
	require.NoError(t, err)
	require.Equal(t, AlphabetSize, tree.Leaves())
	require.Equal(t, 8, tree.MinDepth())
	require.Equal(t, 8, tree.MaxDepth())
}

func TestLessNode(t *testing.T) {
	low := &Node{freq: 1, rank: 'z', kind: leafNode, symbol: 'z'}
	high := &Node{freq: 2, rank: 'a', kind: leafNode, symbol: 'a'}
	tieA := &Node{freq: 2, rank: 'a', kind: leafNode, symbol: 'a'}
	tieB := &Node{freq: 2, rank: 'b', kind: leafNode, symbol: 'b'}
	placeholder := &Node{freq: 2, rank: AlphabetSize, kind: placeholderNode}
	internal := &Node{freq: 2, rank: AlphabetSize + 1}

	require.True(t, lessNode(low, high))
	require.False(t, lessNode(high, low))
	require.True(t, lessNode(tieA, tieB))
	require.False(t, lessNode(tieB, tieA))
	require.True(t, lessNode(tieB, placeholder))
	require.True(t, lessNode(placeholder, internal))
	require.False(t, lessNode(tieA, tieA))
}

func TestTree_ZeroValue(t *testing.T) {
	var tree Tree

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tLeaves() = 0\n",
		"\tMinDepth() = 0\n",
		"\tMaxDepth() = 0\n",
		"}\n",
	}, "")
	require.Equal(t, expectDump, dumpTree(t, &tree))

	table := BuildCodeTable(&tree)
	require.Equal(t, 0, table.Len())

	var result Result
	require.Equal(t, "(empty Huffman result)", result.String())
	_, err := Decompress(&result)
	require.ErrorIs(t, err, ErrInvalidInput)
}
