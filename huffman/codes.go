package huffman

// Code is one symbol's bit pattern. The code occupies the low Len bits
// of Bits, most significant bit first.
type Code struct {
	Bits uint64
	Len  int
}

// CodeTable maps each symbol to its code. Codes read off distinct leaf
// paths of a binary tree, so the table is prefix-free by construction.
type CodeTable map[byte]Code

// GenerateCodes walks the tree and returns the code for every leaf:
// left edges contribute a 0 bit, right edges a 1 bit. An absent child
// (single-symbol tree) contributes nothing, which gives the lone symbol
// the one-bit code 0. A nil tree yields an empty table.
func GenerateCodes(root *Node) CodeTable {
	table := make(CodeTable)
	if root == nil {
		return table
	}
	collectCodes(root, 0, 0, table)
	return table
}

func collectCodes(n *Node, bits uint64, depth int, table CodeTable) {
	if n.IsLeaf() {
		table[byte(n.Symbol)] = Code{Bits: bits, Len: depth}
		return
	}
	if n.Left != nil {
		collectCodes(n.Left, bits<<1, depth+1, table)
	}
	if n.Right != nil {
		collectCodes(n.Right, bits<<1|1, depth+1, table)
	}
}

// WeightedLength returns the total encoded bit count for the table's
// frequencies: sum over symbols of freq(s) * len(code(s)).
func WeightedLength(codes CodeTable, ft *FreqTable) uint64 {
	var total uint64
	for sym, c := range codes {
		total += ft.Count(sym) * uint64(c.Len)
	}
	return total
}

// AvgLength returns the mean number of code bits per input symbol for
// the given tree and frequencies. Zero if the table is empty.
func AvgLength(root *Node, ft *FreqTable) float64 {
	if ft.Total() == 0 {
		return 0
	}
	codes := GenerateCodes(root)
	return float64(WeightedLength(codes, ft)) / float64(ft.Total())
}
