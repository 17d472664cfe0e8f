package huffman

import (
	"encoding/binary"
	"errors"
	"math"
)

// Container layout (all multi-byte integers little-endian):
//
//	offset 0      u8   internal node count N
//	offset 1      N x NodeRecord, 4 bytes each
//	offset 1+4N   u32  original symbol count
//	offset 5+4N   packed bitstream, MSB-first, zero-padded final byte
//
// N fits one byte by construction: 256 distinct byte values need at
// most 255 internal nodes.

// ErrTooLarge is returned by Compress when the input length does not
// fit the container's 32-bit size field.
var ErrTooLarge = errors.New("huffman: input exceeds container size field")

// headerSize is the fixed overhead around the record table.
const headerSize = 1 + 4

// Compress encodes data into a self-contained container holding the
// tree shape, the original length and the packed bitstream. An empty
// input produces a degenerate container with zero records, size zero
// and no bitstream.
func Compress(data []byte) ([]byte, error) {
	if uint64(len(data)) > math.MaxUint32 {
		return nil, ErrTooLarge
	}
	if len(data) == 0 {
		return make([]byte, headerSize), nil
	}

	ft := Count(data)
	root, err := BuildTree(ft)
	if err != nil {
		return nil, err
	}
	codes := GenerateCodes(root)
	count := NumberNodes(root)
	recs := TreeToRecords(root)
	packed := Pack(data, codes)

	out := make([]byte, 0, headerSize+4*len(recs)+len(packed))
	out = append(out, byte(count))
	for _, r := range recs {
		out = append(out, r.LFlag, r.LData, r.RFlag, r.RData)
	}
	out = binary.LittleEndian.AppendUint32(out, uint32(len(data)))
	return append(out, packed...), nil
}

// Decompress parses a container and reproduces the original bytes.
// Any structural problem reports ErrCorrupted: a truncated header or
// record table, a record index out of range, a size field the
// bitstream cannot possibly cover, or a bitstream that runs out before
// the declared symbol count.
func Decompress(data []byte) ([]byte, error) {
	if len(data) < headerSize {
		return nil, ErrCorrupted
	}
	count := int(data[0])

	if count == 0 {
		if binary.LittleEndian.Uint32(data[1:5]) != 0 {
			return nil, ErrCorrupted
		}
		return []byte{}, nil
	}

	sizeOff := 1 + 4*count
	if len(data) < sizeOff+4 {
		return nil, ErrCorrupted
	}
	recs := make([]NodeRecord, count)
	for i := range recs {
		off := 1 + 4*i
		recs[i] = NodeRecord{
			LFlag: data[off],
			LData: data[off+1],
			RFlag: data[off+2],
			RData: data[off+3],
		}
	}
	root, err := TreeFromRecords(recs, count-1)
	if err != nil {
		return nil, err
	}

	size := binary.LittleEndian.Uint32(data[sizeOff : sizeOff+4])
	packed := data[sizeOff+4:]

	// Codes are at least one bit, so the bitstream bounds the symbol
	// count. Rejecting here keeps a hostile size field from forcing a
	// huge allocation before Unpack fails anyway.
	if uint64(size) > 8*uint64(len(packed)) {
		return nil, ErrCorrupted
	}
	return Unpack(packed, root, int(size))
}
