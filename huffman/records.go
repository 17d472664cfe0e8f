package huffman

// Node record child flags. Anything non-zero is treated as internal
// when reading, matching the writers that only ever emit 0 or 1.
const (
	flagLeaf     = 0
	flagInternal = 1
)

// NodeRecord is the 4-byte wire form of one internal node. Each side
// holds either a literal symbol (flag 0) or the postorder number of
// another internal node (flag 1).
type NodeRecord struct {
	LFlag, LData, RFlag, RData byte
}

// TreeToRecords flattens the tree into its postorder record table:
// record i describes the internal node numbered i, and internal child
// references carry that child's number. NumberNodes must have run on
// the tree first.
//
// The wire format has no absent-child flag, so the degenerate
// single-symbol root writes its missing right child as a leaf
// duplicating the left symbol. No real Huffman tree puts the same
// symbol on two leaves, which lets readers reverse the encoding.
func TreeToRecords(root *Node) []NodeRecord {
	recs := make([]NodeRecord, 0, root.Number+1)
	appendRecords(root, &recs)
	return recs
}

func appendRecords(n *Node, recs *[]NodeRecord) {
	if n.Left != nil && !n.Left.IsLeaf() {
		appendRecords(n.Left, recs)
	}
	if n.Right != nil && !n.Right.IsLeaf() {
		appendRecords(n.Right, recs)
	}

	var r NodeRecord
	if n.Left.IsLeaf() {
		r.LFlag, r.LData = flagLeaf, byte(n.Left.Symbol)
	} else {
		r.LFlag, r.LData = flagInternal, byte(n.Left.Number)
	}
	switch {
	case n.Right == nil:
		r.RFlag, r.RData = flagLeaf, byte(n.Left.Symbol)
	case n.Right.IsLeaf():
		r.RFlag, r.RData = flagLeaf, byte(n.Right.Symbol)
	default:
		r.RFlag, r.RData = flagInternal, byte(n.Right.Number)
	}
	*recs = append(*recs, r)
}

// TreeFromRecords rebuilds a tree from a record table by following
// explicit indices, starting from the record at rootIndex. The table
// may be in any order. Out-of-range references and records reachable
// through more than one path are rejected as corrupt.
func TreeFromRecords(recs []NodeRecord, rootIndex int) (*Node, error) {
	used := make([]bool, len(recs))
	return resolveRecord(recs, rootIndex, used)
}

func resolveRecord(recs []NodeRecord, i int, used []bool) (*Node, error) {
	if i < 0 || i >= len(recs) || used[i] {
		return nil, ErrCorrupted
	}
	used[i] = true
	r := recs[i]

	var left, right *Node
	var err error
	if r.LFlag != flagLeaf {
		if left, err = resolveRecord(recs, int(r.LData), used); err != nil {
			return nil, err
		}
	} else {
		left = NewLeaf(r.LData)
	}
	if r.RFlag != flagLeaf {
		if right, err = resolveRecord(recs, int(r.RData), used); err != nil {
			return nil, err
		}
	} else {
		right = NewLeaf(r.RData)
	}

	if r.LFlag == flagLeaf && r.RFlag == flagLeaf && r.LData == r.RData {
		// Duplicated leaf symbol: the single-symbol one-child root.
		return &Node{Symbol: internalSymbol, Left: left}, nil
	}
	return NewInternal(left, right), nil
}

// TreeFromPostorder rebuilds a tree from a record table known to be in
// postorder, ignoring the index fields of internal references. Records
// are processed in order against a stack of completed subtrees; an
// internal right child pops first, then an internal left child, exactly
// reversing the order TreeToRecords emitted them in. Anything but one
// completed tree consuming every record is corrupt.
func TreeFromPostorder(recs []NodeRecord) (*Node, error) {
	if len(recs) == 0 {
		return nil, ErrCorrupted
	}

	var stack []*Node
	for _, r := range recs {
		var left, right *Node
		if r.RFlag != flagLeaf {
			if len(stack) == 0 {
				return nil, ErrCorrupted
			}
			right = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		} else {
			right = NewLeaf(r.RData)
		}
		if r.LFlag != flagLeaf {
			if len(stack) == 0 {
				return nil, ErrCorrupted
			}
			left = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		} else {
			left = NewLeaf(r.LData)
		}

		if r.LFlag == flagLeaf && r.RFlag == flagLeaf && r.LData == r.RData {
			stack = append(stack, &Node{Symbol: internalSymbol, Left: left})
		} else {
			stack = append(stack, NewInternal(left, right))
		}
	}
	if len(stack) != 1 {
		return nil, ErrCorrupted
	}
	return stack[0], nil
}
