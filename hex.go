package wordview

// hexTable maps a nibble to its lowercase hex digit.
const hexTable = "0123456789abcdef"

// nibbleInvalid marks a character that is not a hex digit.
const nibbleInvalid = 0xFF

// BytesToHex encodes b as lowercase hex without a prefix.
// An empty input yields an empty string.
func BytesToHex(b []byte) string {
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = hexTable[v>>4]
		out[i*2+1] = hexTable[v&0x0F]
	}
	return string(out)
}

// HexToBytes decodes an unprefixed hex string.
//
// The decode is best effort: an odd length returns an empty slice, and any
// pair containing a non-hex character decodes to 0x00 while the rest of the
// string is decoded normally.
func HexToBytes(s string) []byte {
	if len(s)%2 != 0 {
		return []byte{}
	}

	out := make([]byte, len(s)/2)
	for i := range out {
		hi := nibble(s[i*2])
		lo := nibble(s[i*2+1])
		if hi == nibbleInvalid || lo == nibbleInvalid {
			continue // left as 0x00
		}
		out[i] = hi<<4 | lo
	}
	return out
}

// FromHex strips an optional 0x or 0X prefix and decodes the rest with
// HexToBytes.
func FromHex(s string) []byte {
	if Has0xPrefix(s) {
		s = s[2:]
	}
	return HexToBytes(s)
}

// Has0xPrefix reports whether s starts with 0x or 0X.
func Has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// ValidateHex checks s strictly, allowing an optional 0x prefix.
// The tolerant decoders never call it; it exists for callers that want to
// reject input rather than have it zeroed.
func ValidateHex(s string) error {
	if Has0xPrefix(s) {
		s = s[2:]
	}
	if len(s)%2 != 0 {
		return ErrOddLength
	}
	for i := 0; i < len(s); i++ {
		if nibble(s[i]) == nibbleInvalid {
			return &InvalidHexError{Offset: i, Char: s[i]}
		}
	}
	return nil
}

func nibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return nibbleInvalid
	}
}
