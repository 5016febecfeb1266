package wordview

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
)

// Word is a single element of a View's page.
//
// A Word keeps the shape it was built with: exactly 32 bytes are stored as a
// Word32, anything shorter as a Buffer. Hash derives the 32-byte form used by
// the bitwise and rotate operations without changing what is stored.
type Word struct {
	data Bytes
}

// NewWord builds a Word from the first 32 bytes of b.
func NewWord(b []byte) *Word {
	b = truncate(b, WordSize)
	if len(b) == WordSize {
		return &Word{data: Word32(common.BytesToHash(b))}
	}
	return &Word{data: Buffer(common.CopyBytes(b))}
}

// WordFromHex builds a Word from hex, with or without a 0x prefix.
func WordFromHex(s string) *Word {
	return NewWord(FromHex(s))
}

// WordFromHash builds a full width Word.
func WordFromHash(h common.Hash) *Word {
	return &Word{data: Word32(h)}
}

// WordFromAddress builds a full width Word holding addr left padded, the way
// an ABI encoder lays out an address argument.
func WordFromAddress(addr common.Address) *Word {
	return WordFromHash(PadLeft(addr.Bytes()))
}

// WordFromUint64 builds a full width big-endian Word holding v.
func WordFromUint64(v uint64) *Word {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return WordFromHash(PadLeft(buf[:]))
}

// ZeroWord returns an all-zero full width Word.
func ZeroWord() *Word {
	return WordFromHash(common.Hash{})
}

// Data returns the underlying container.
func (w *Word) Data() Bytes {
	return w.data
}

// Bytes returns a copy of the stored bytes.
func (w *Word) Bytes() []byte {
	return w.data.Bytes()
}

// Len returns the number of stored bytes, at most 32.
func (w *Word) Len() int {
	return w.data.Len()
}

// Hex returns the stored bytes as hex.
func (w *Word) Hex() string {
	return w.data.Hex()
}

// Hash returns the normalized 32-byte form: the word itself when it is full
// width, otherwise its bytes right padded.
func (w *Word) Hash() common.Hash {
	switch d := w.data.(type) {
	case Word32:
		return common.Hash(d)
	case Selector:
		return PadRight(d[:])
	case Buffer:
		return PadRight(d)
	default:
		return common.Hash{}
	}
}

// Equal reports whether both words hold the same shape and bytes.
func (w *Word) Equal(other *Word) bool {
	if w == nil || other == nil {
		return w == other
	}
	return EqualBytes(w.data, other.data)
}

// Clone returns an independent copy of w.
func (w *Word) Clone() *Word {
	switch d := w.data.(type) {
	case Buffer:
		return &Word{data: Buffer(common.CopyBytes(d))}
	default:
		return &Word{data: d}
	}
}
