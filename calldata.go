package wordview

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Calldata is the raw, untyped payload a View is built from and serialized
// back into.
type Calldata struct {
	data Buffer
}

// NewCalldata wraps a copy of b.
func NewCalldata(b []byte) *Calldata {
	data := common.CopyBytes(b)
	if data == nil {
		data = []byte{}
	}
	return &Calldata{data: data}
}

// CalldataFromHex decodes hex with an optional 0x or 0X prefix.
// Malformed hex is decoded best effort, see HexToBytes.
func CalldataFromHex(s string) *Calldata {
	return &Calldata{data: FromHex(s)}
}

// Data returns the underlying container.
func (c *Calldata) Data() Bytes {
	return c.data
}

// Bytes returns a copy of the payload.
func (c *Calldata) Bytes() []byte {
	return c.data.Bytes()
}

// Len returns the payload length in bytes.
func (c *Calldata) Len() int {
	return len(c.data)
}

// Hex returns the payload as hex without prefix.
func (c *Calldata) Hex() string {
	return c.data.Hex()
}

// Hex0x returns the payload as 0x-prefixed hex.
func (c *Calldata) Hex0x() string {
	return hexutil.Encode(c.data)
}

// Equal reports whether both payloads hold the same bytes.
func (c *Calldata) Equal(other *Calldata) bool {
	if c == nil || other == nil {
		return c == other
	}
	return EqualBytes(c.data, other.data)
}
