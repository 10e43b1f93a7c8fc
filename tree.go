package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

type nodeKind byte

const (
	internalNode nodeKind = iota
	leafNode
	placeholderNode
)

// Node is one node of a Huffman tree.  A Node is either a leaf, which holds a
// Symbol, or an internal node, which holds exactly two children and no
// Symbol.  A tree built from a single distinct Symbol also contains one
// placeholder leaf, which holds no Symbol and is never emitted by Decode.
//
// Nodes are immutable once their Tree has been constructed.
type Node struct {
	left   *Node
	right  *Node
	freq   uint64
	rank   uint32
	kind   nodeKind
	symbol Symbol
}

// Frequency returns the number of input Symbols covered by this Node.
func (n *Node) Frequency() uint64 {
	return n.freq
}

// Left returns the child reached by a '0' bit, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the child reached by a '1' bit, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// IsLeaf returns true iff this Node has no children.
func (n *Node) IsLeaf() bool {
	return n.kind != internalNode
}

// IsPlaceholder returns true iff this Node is the synthetic leaf added to a
// tree with only one distinct Symbol.
func (n *Node) IsPlaceholder() bool {
	return n.kind == placeholderNode
}

// Symbol returns the Symbol held by this Node.  The second result is false
// for internal nodes and for the placeholder leaf.
func (n *Node) Symbol() (Symbol, bool) {
	if n.kind != leafNode {
		return 0, false
	}
	return n.symbol, true
}

// Tree is a Huffman tree.  The root of a Tree is always an internal node, so
// every real Symbol receives a code of at least one bit.
type Tree struct {
	root     *Node
	leaves   int
	minDepth int
	maxDepth int
}

// BuildTree constructs the Huffman tree for the given frequencies.
//
// Nodes are merged lowest-first, ordered by frequency and then by rank: a
// leaf's rank is its Symbol, the placeholder ranks after every Symbol, and
// internal nodes rank after all leaves in the order they were created.  The
// resulting tree is therefore fully determined by freq.
//
// An all-zero table is rejected with ErrInvalidInput.
//
func BuildTree(freq FrequencyTable) (*Tree, error) {
	nodes := make([]*Node, 0, AlphabetSize+1)
	for index, n := range freq {
		if n != 0 {
			nodes = append(nodes, &Node{
				freq:   n,
				rank:   uint32(index),
				kind:   leafNode,
				symbol: Symbol(index),
			})
		}
	}

	switch len(nodes) {
	case 0:
		return nil, fmt.Errorf("%w: cannot build Huffman tree: no symbol has a nonzero frequency", ErrInvalidInput)
	case 1:
		nodes = append(nodes, &Node{freq: 1, rank: AlphabetSize, kind: placeholderNode})
	}

	h := nodeHeap{nodes}
	h.Init()

	nextRank := uint32(AlphabetSize + 1)
	for h.Len() > 1 {
		a := heap.Pop(&h).(*Node)
		b := heap.Pop(&h).(*Node)
		heap.Push(&h, &Node{
			left:  a,
			right: b,
			freq:  a.freq + b.freq,
			rank:  nextRank,
			kind:  internalNode,
		})
		nextRank++
	}

	return newTree(heap.Pop(&h).(*Node)), nil
}

func newTree(root *Node) *Tree {
	assert.Assertf(!root.IsLeaf(), "Huffman tree root must be an internal node")

	t := &Tree{root: root}
	walkLeaves(root, func(leaf *Node, path []byte) {
		depth := len(path)
		if t.leaves == 0 || t.minDepth > depth {
			t.minDepth = depth
		}
		if t.maxDepth < depth {
			t.maxDepth = depth
		}
		t.leaves++
	})
	return t
}

// Root returns the root Node of this Tree.
func (t *Tree) Root() *Node {
	return t.root
}

// Leaves returns the number of leaves, including the placeholder if present.
func (t *Tree) Leaves() int {
	return t.leaves
}

// MinDepth is the bit length of the shortest code in this Tree.
func (t *Tree) MinDepth() int {
	return t.minDepth
}

// MaxDepth is the bit length of the longest code in this Tree.
func (t *Tree) MaxDepth() int {
	return t.maxDepth
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer, listing each leaf with its path from the root.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tLeaves() = %d\n", t.leaves)
	fmt.Fprintf(&buf, "\tMinDepth() = %d\n", t.minDepth)
	fmt.Fprintf(&buf, "\tMaxDepth() = %d\n", t.maxDepth)
	walkLeaves(t.root, func(leaf *Node, path []byte) {
		if symbol, ok := leaf.Symbol(); ok {
			fmt.Fprintf(&buf, "\t%s = %q (%d)\n", Code(path), byte(symbol), leaf.freq)
		} else {
			fmt.Fprintf(&buf, "\t%s = placeholder (%d)\n", Code(path), leaf.freq)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// walkLeaves visits every leaf below root in depth-first, left-to-right
// order.  The path passed to fn holds one '0' or '1' digit per edge from the
// root, and is only valid for the duration of the call.
//
func walkLeaves(root *Node, fn func(leaf *Node, path []byte)) {
	// stackItem.x tracks our progress through each internal node:
	//   x=0 → visit the left child next
	//   x=1 → visit the right child next
	//   x=2 → both children are done

	type stackItem struct {
		node *Node
		x    byte
	}

	if root == nil {
		return
	}

	stack := make([]stackItem, 0, 16)
	path := make([]byte, 0, 16)

	descend := func(child *Node, digit byte) {
		assert.Assertf(child != nil, "internal Huffman node is missing a child")
		if child.IsLeaf() {
			fn(child, append(path, digit))
			return
		}
		path = append(path, digit)
		stack = append(stack, stackItem{node: child})
	}

	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			descend(top.node.left, '0')
		case 1:
			descend(top.node.right, '1')
		case 2:
			stack = stack[:len(stack)-1]
			if len(path) != 0 {
				path = path[:len(path)-1]
			}
		}
	}
}

// lessNode is the ordering used to pick which nodes to merge next.
func lessNode(a, b *Node) bool {
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.rank < b.rank
}

// type nodeHeap {{{

type nodeHeap struct {
	list []*Node
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	return lessNode(h.list[i], h.list[j])
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(*Node))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
