package wordview

import (
	"github.com/ethereum/go-ethereum/common"
)

// PadRight copies up to the first 32 bytes of b into a zero word, starting at
// offset 0. Anything past 32 bytes is dropped.
func PadRight(b []byte) common.Hash {
	return common.BytesToHash(common.RightPadBytes(truncate(b, WordSize), WordSize))
}

// PadLeft copies up to the first 32 bytes of b into a zero word so that they
// end at offset 32. Anything past 32 bytes is dropped.
func PadLeft(b []byte) common.Hash {
	return common.BytesToHash(truncate(b, WordSize))
}

// Chunk returns the first 32 bytes of b as a word, right padding short input.
func Chunk(b []byte) common.Hash {
	if len(b) < WordSize {
		return PadRight(b)
	}
	var out common.Hash
	copy(out[:], b[:WordSize])
	return out
}

// ChunkAll splits b into consecutive 32-byte words. A short final window is
// right padded. Empty input gives an empty slice.
func ChunkAll(b []byte) []common.Hash {
	chunks := make([]common.Hash, 0, (len(b)+WordSize-1)/WordSize)
	for off := 0; off < len(b); off += WordSize {
		chunks = append(chunks, Chunk(b[off:]))
	}
	return chunks
}

func truncate(b []byte, n int) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}
