package wordview

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
)

// SelectorSize is the width of a function selector in bytes.
const SelectorSize = 4

// Kind identifies which shape a Bytes container holds.
type Kind uint8

const (
	// KindSelector is a fixed 4-byte selector.
	KindSelector Kind = iota

	// KindWord32 is a fixed 32-byte word.
	KindWord32

	// KindBuffer is a variable length buffer.
	KindBuffer
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSelector:
		return "selector"
	case KindWord32:
		return "word32"
	case KindBuffer:
		return "buffer"
	default:
		return "unknown"
	}
}

// Bytes is the storage shared by Word, Signature and Calldata.
// This is a sealed interface - only Selector, Word32 and Buffer implement it.
type Bytes interface {
	// isBytes is unexported to seal the interface.
	isBytes()

	// Kind returns the shape of the container.
	Kind() Kind

	// Bytes returns a copy of the raw bytes.
	Bytes() []byte

	// Len returns the number of bytes held.
	Len() int

	// Hex returns the lowercase hex encoding, without prefix.
	Hex() string
}

// Selector holds exactly 4 bytes.
type Selector [SelectorSize]byte

func (s Selector) isBytes() {}

// Kind returns KindSelector.
func (s Selector) Kind() Kind { return KindSelector }

// Bytes returns a copy of the selector bytes.
func (s Selector) Bytes() []byte { return s[:] }

// Len always returns 4.
func (s Selector) Len() int { return SelectorSize }

// Hex returns the selector as 8 hex characters.
func (s Selector) Hex() string { return BytesToHex(s[:]) }

// Word32 holds exactly 32 bytes.
type Word32 common.Hash

func (w Word32) isBytes() {}

// Kind returns KindWord32.
func (w Word32) Kind() Kind { return KindWord32 }

// Bytes returns a copy of the word bytes.
func (w Word32) Bytes() []byte { return w[:] }

// Len always returns 32.
func (w Word32) Len() int { return WordSize }

// Hex returns the word as 64 hex characters.
func (w Word32) Hex() string { return BytesToHex(w[:]) }

// Buffer holds any number of bytes, including none.
type Buffer []byte

func (b Buffer) isBytes() {}

// Kind returns KindBuffer.
func (b Buffer) Kind() Kind { return KindBuffer }

// Bytes returns a copy of the buffer.
func (b Buffer) Bytes() []byte { return common.CopyBytes(b) }

// Len returns the buffer length.
func (b Buffer) Len() int { return len(b) }

// Hex returns the buffer as hex.
func (b Buffer) Hex() string { return BytesToHex(b) }

// EqualBytes reports whether a and b have the same shape and the same bytes.
// A nil container only equals another nil.
func EqualBytes(a, b Bytes) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	return bytes.Equal(a.Bytes(), b.Bytes())
}
