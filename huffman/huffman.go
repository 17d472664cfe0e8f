// Package huffman implements Huffman coding of byte streams and the
// self-describing container format used to store them.
package huffman

import (
	"container/heap"
	"errors"
)

// Codec errors
var (
	// ErrEmptyTree is returned when a tree is requested for a frequency
	// table with no symbols. An empty input has no Huffman tree; the
	// container layer handles it as a degenerate success instead.
	ErrEmptyTree = errors.New("huffman: no symbols to build tree from")

	// ErrCorrupted is returned when a container (or a node record table
	// extracted from one) cannot describe a valid tree and bitstream.
	ErrCorrupted = errors.New("huffman: malformed container")
)

// internalSymbol marks nodes that carry no symbol of their own.
const internalSymbol = -1

// Node is a node of a Huffman prefix tree. Leaves carry a symbol in
// 0..255; internal nodes carry internalSymbol and one or two children.
// The only legal one-child shape is a root whose input had a single
// distinct symbol: its left child is the leaf and Right is nil.
type Node struct {
	Symbol      int
	Left, Right *Node

	// Number is the postorder index assigned by NumberNodes.
	// It exists only for the wire format; internal nodes only.
	Number int
}

// NewLeaf returns a leaf node for the given symbol.
func NewLeaf(symbol byte) *Node {
	return &Node{Symbol: int(symbol)}
}

// NewInternal returns an internal node over the given children.
func NewInternal(left, right *Node) *Node {
	return &Node{Symbol: internalSymbol, Left: left, Right: right}
}

// IsLeaf reports whether n is a leaf.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// treeItem is a pending entry in the tree builder's queue.
type treeItem struct {
	node   *Node
	weight uint64
	seq    int // insertion order, breaks weight ties
}

// treeHeap is a min-heap of pending subtrees, ordered by weight and then
// by insertion sequence. The sequence tie-break makes the resulting tree
// shape a deterministic function of symbol first-occurrence order.
type treeHeap []treeItem

func (h treeHeap) Len() int { return len(h) }
func (h treeHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].seq < h[j].seq
}
func (h treeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *treeHeap) Push(x any) {
	*h = append(*h, x.(treeItem))
}

func (h *treeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}

// BuildTree builds an optimal prefix tree for the frequency table.
// Leaves are seeded in first-occurrence order and merged nodes are
// sequenced after all existing entries, so equal-weight ties always
// resolve to the earliest-seeded entry.
//
// A table with one distinct symbol yields a root with a left leaf and a
// nil right child. An empty table returns ErrEmptyTree.
func BuildTree(ft *FreqTable) (*Node, error) {
	symbols := ft.Symbols()
	if len(symbols) == 0 {
		return nil, ErrEmptyTree
	}
	if len(symbols) == 1 {
		return &Node{Symbol: internalSymbol, Left: NewLeaf(symbols[0])}, nil
	}

	h := make(treeHeap, 0, len(symbols))
	seq := 0
	for _, s := range symbols {
		h = append(h, treeItem{node: NewLeaf(s), weight: ft.Count(s), seq: seq})
		seq++
	}
	heap.Init(&h)

	for h.Len() > 1 {
		left := heap.Pop(&h).(treeItem)
		right := heap.Pop(&h).(treeItem)
		heap.Push(&h, treeItem{
			node:   NewInternal(left.node, right.node),
			weight: left.weight + right.weight,
			seq:    seq,
		})
		seq++
	}
	return heap.Pop(&h).(treeItem).node, nil
}

// NumberNodes assigns postorder indices to the internal nodes of the
// tree, starting at 0, and returns the internal node count. Leaves are
// never numbered. The root always ends up with count-1. Idempotent;
// must run before TreeToRecords.
func NumberNodes(root *Node) int {
	return numberFrom(root, 0)
}

func numberFrom(n *Node, next int) int {
	if n == nil || n.IsLeaf() {
		return next
	}
	next = numberFrom(n.Left, next)
	next = numberFrom(n.Right, next)
	n.Number = next
	return next + 1
}
