package wordview

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by ValidateHex.
var (
	// ErrOddLength indicates a hex string with an odd number of characters.
	ErrOddLength = errors.New("wordview: hex string has odd length")
)

// InvalidHexError indicates a character that is not a hex digit.
type InvalidHexError struct {
	// Offset is the position of the character after any 0x prefix was removed.
	Offset int
	Char   byte
}

func (e *InvalidHexError) Error() string {
	return fmt.Sprintf("wordview: invalid hex character %q at offset %d", e.Char, e.Offset)
}
