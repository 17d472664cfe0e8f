package huffman

// FreqTable records how often each byte value occurs in an input, plus
// the order in which distinct values first appeared. The order is part
// of the codec contract: BuildTree seeds its queue from it, so two
// inputs with the same counts but different first occurrences can
// produce differently shaped (equally optimal) trees.
type FreqTable struct {
	counts [256]uint64
	order  []byte
	total  uint64
}

// Count tallies the bytes of data into a new frequency table.
// An empty input yields an empty table.
func Count(data []byte) *FreqTable {
	ft := &FreqTable{}
	for _, b := range data {
		if ft.counts[b] == 0 {
			ft.order = append(ft.order, b)
		}
		ft.counts[b]++
	}
	ft.total = uint64(len(data))
	return ft
}

// Count returns the occurrence count of symbol b.
func (ft *FreqTable) Count(b byte) uint64 {
	return ft.counts[b]
}

// Total returns the sum of all counts, i.e. the input length.
func (ft *FreqTable) Total() uint64 {
	return ft.total
}

// NumSymbols returns the number of distinct symbols present.
func (ft *FreqTable) NumSymbols() int {
	return len(ft.order)
}

// Symbols returns the distinct symbols in first-occurrence order.
// The returned slice is owned by the table and must not be modified.
func (ft *FreqTable) Symbols() []byte {
	return ft.order
}
