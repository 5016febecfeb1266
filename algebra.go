package wordview

import (
	"github.com/ethereum/go-ethereum/common"
)

// WordSize is the width of a word in bytes.
const WordSize = common.HashLength

// Xor returns the byte-wise exclusive or of a and b.
func Xor(a, b common.Hash) common.Hash {
	return combine(a, b, func(x, y byte) byte { return x ^ y })
}

// And returns the byte-wise and of a and b.
func And(a, b common.Hash) common.Hash {
	return combine(a, b, func(x, y byte) byte { return x & y })
}

// Or returns the byte-wise or of a and b.
func Or(a, b common.Hash) common.Hash {
	return combine(a, b, func(x, y byte) byte { return x | y })
}

// Not returns the one's complement of a.
func Not(a common.Hash) common.Hash {
	var out common.Hash
	for i := range a {
		out[i] = ^a[i]
	}
	return out
}

// RotateRight rotates a right by n bytes, n taken modulo 32.
// Bytes leaving the end re-enter at the front.
func RotateRight(a common.Hash, n uint) common.Hash {
	shift := int(n % WordSize)
	if shift == 0 {
		return a
	}
	var out common.Hash
	copy(out[shift:], a[:WordSize-shift])
	copy(out[:shift], a[WordSize-shift:])
	return out
}

// RotateLeft rotates a left by n bytes, n taken modulo 32.
func RotateLeft(a common.Hash, n uint) common.Hash {
	shift := int(n % WordSize)
	if shift == 0 {
		return a
	}
	var out common.Hash
	copy(out[WordSize-shift:], a[:shift])
	copy(out[:WordSize-shift], a[shift:])
	return out
}

func combine(a, b common.Hash, f func(x, y byte) byte) common.Hash {
	var out common.Hash
	for i := range a {
		out[i] = f(a[i], b[i])
	}
	return out
}
