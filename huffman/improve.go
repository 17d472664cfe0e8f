package huffman

import "sort"

// ImproveTree reassigns symbols to the leaves of an existing tree,
// without changing its shape, so that the weighted code length under ft
// is the minimum achievable for that shape: leaves sorted by depth
// ascending receive symbols sorted by frequency descending. Trees
// produced by BuildTree are already optimal and come out unchanged in
// cost; the pass matters for externally supplied shapes.
//
// Every symbol in ft must appear on exactly one leaf of the tree.
func ImproveTree(root *Node, ft *FreqTable) {
	if root == nil {
		return
	}

	type leafAt struct {
		node  *Node
		depth int
	}
	var leaves []leafAt
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		if n.IsLeaf() {
			leaves = append(leaves, leafAt{node: n, depth: depth})
			return
		}
		if n.Left != nil {
			walk(n.Left, depth+1)
		}
		if n.Right != nil {
			walk(n.Right, depth+1)
		}
	}
	walk(root, 0)

	// Shallow leaves first. The sort is stable so equal-depth leaves
	// keep their left-to-right order and the result is deterministic.
	sort.SliceStable(leaves, func(i, j int) bool {
		return leaves[i].depth < leaves[j].depth
	})

	symbols := make([]byte, len(ft.Symbols()))
	copy(symbols, ft.Symbols())
	sort.SliceStable(symbols, func(i, j int) bool {
		return ft.Count(symbols[i]) > ft.Count(symbols[j])
	})

	for i, s := range symbols {
		if i >= len(leaves) {
			break
		}
		leaves[i].node.Symbol = int(s)
	}
}
