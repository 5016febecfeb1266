package wordview

import (
	"github.com/ethereum/go-ethereum/crypto"
)

// Signature is the 4-byte function selector at the head of calldata.
type Signature struct {
	data Selector
}

// NewSignature builds a Signature from the first 4 bytes of b.
// Fewer than 4 bytes cannot identify a function, so they give 00000000.
func NewSignature(b []byte) *Signature {
	var sel Selector
	if len(b) >= SelectorSize {
		copy(sel[:], b[:SelectorSize])
	}
	return &Signature{data: sel}
}

// SignatureFromHex builds a Signature from hex, with or without a 0x prefix.
func SignatureFromHex(s string) *Signature {
	return NewSignature(FromHex(s))
}

// SignatureFromMethod derives the selector of a canonical method signature
// such as "transfer(address,uint256)". The string is hashed as given.
func SignatureFromMethod(method string) *Signature {
	return NewSignature(crypto.Keccak256([]byte(method)))
}

// Data returns the underlying container.
func (s *Signature) Data() Bytes {
	return s.data
}

// Bytes returns a copy of the selector bytes.
func (s *Signature) Bytes() []byte {
	return s.data.Bytes()
}

// Len always returns 4.
func (s *Signature) Len() int {
	return SelectorSize
}

// Hex returns the selector as 8 hex characters.
func (s *Signature) Hex() string {
	return s.data.Hex()
}

// Selector returns the selector as an array.
func (s *Signature) Selector() [4]byte {
	return s.data
}

// Equal reports whether both signatures hold the same selector.
func (s *Signature) Equal(other *Signature) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.data == other.data
}
