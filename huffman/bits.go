package huffman

import "fmt"

// Pack concatenates the code of every input byte into a packed
// bitstream, MSB-first within each output byte, zero-padding the final
// partial byte on the right. An empty input packs to a single zero
// byte; the container's size field is what distinguishes it from data.
//
// Every input byte must have a code. A missing entry means the table
// was generated from a different input than the one being packed, which
// is a caller bug, so Pack panics rather than returning an error.
func Pack(data []byte, codes CodeTable) []byte {
	if len(data) == 0 {
		return []byte{0}
	}

	var totalBits int
	for _, b := range data {
		c, ok := codes[b]
		if !ok || c.Len == 0 {
			panic(fmt.Sprintf("huffman: no code for symbol %#02x", b))
		}
		totalBits += c.Len
	}

	out := make([]byte, (totalBits+7)/8)

	// Codes are at most ~46 bits for a 32-bit symbol count, and the
	// buffer is flushed below 8 bits after every symbol, so the shift
	// cannot overflow 64 bits.
	var bitBuffer uint64
	var bitsInBuffer int
	pos := 0
	for _, b := range data {
		c := codes[b]
		bitBuffer = bitBuffer<<uint(c.Len) | c.Bits
		bitsInBuffer += c.Len
		for bitsInBuffer >= 8 {
			bitsInBuffer -= 8
			out[pos] = byte(bitBuffer >> uint(bitsInBuffer))
			pos++
		}
	}
	if bitsInBuffer > 0 {
		out[pos] = byte(bitBuffer << uint(8-bitsInBuffer))
	}
	return out
}

// Unpack walks the packed bitstream against the tree, MSB-first,
// emitting a symbol each time a leaf is reached, until n symbols have
// been produced. Trailing pad bits are never interpreted because the
// loop stops on count, not on input exhaustion. Running out of bits
// mid-code, or stepping into an absent child, means the container the
// stream came from is corrupt.
func Unpack(packed []byte, root *Node, n int) ([]byte, error) {
	out := make([]byte, 0, n)
	if n == 0 {
		return out, nil
	}
	if root == nil {
		return nil, ErrCorrupted
	}

	node := root
	for _, b := range packed {
		for bit := 7; bit >= 0; bit-- {
			if b>>uint(bit)&1 == 0 {
				node = node.Left
			} else {
				node = node.Right
			}
			if node == nil {
				return nil, ErrCorrupted
			}
			if node.IsLeaf() {
				out = append(out, byte(node.Symbol))
				if len(out) == n {
					return out, nil
				}
				node = root
			}
		}
	}
	return nil, ErrCorrupted
}
