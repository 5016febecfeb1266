package wordview

import (
	"bytes"
	"errors"
	"testing"
)

func TestBytesToHex(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"empty", []byte{}, ""},
		{"nil", nil, ""},
		{"single byte", []byte{0xFF}, "ff"},
		{"multiple bytes", []byte{0xAB, 0xCD}, "abcd"},
		{"leading zero nibble", []byte{0x01, 0x0a}, "010a"},
		{"all nibbles", []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}, "0123456789abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BytesToHex(tt.input); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestHexToBytes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{"empty", "", []byte{}},
		{"single pair", "ff", []byte{0xFF}},
		{"multiple pairs", "ba11", []byte{0xBA, 0x11}},
		{"upper case", "BA11", []byte{0xBA, 0x11}},
		{"mixed case", "bA1F", []byte{0xBA, 0x1F}},
		{"odd length", "abc", []byte{}},
		{"invalid high nibble", "g0", []byte{0x00}},
		{"invalid low nibble", "0z", []byte{0x00}},
		{"invalid pair in the middle", "01zz03", []byte{0x01, 0x00, 0x03}},
		{"prefix is not stripped", "0x", []byte{0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HexToBytes(tt.input)
			if got == nil {
				t.Fatal("Expected non-nil slice")
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Expected %x, got %x", tt.want, got)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		{0x00},
		{0xde, 0xad, 0xbe, 0xef},
		bytes.Repeat([]byte{0x5a}, 97),
	}

	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	inputs = append(inputs, all)

	for _, in := range inputs {
		if got := HexToBytes(BytesToHex(in)); !bytes.Equal(got, in) {
			t.Errorf("Round trip of %x gave %x", in, got)
		}
	}
}

func TestFromHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{"no prefix", "0102", []byte{0x01, 0x02}},
		{"lower prefix", "0x0102", []byte{0x01, 0x02}},
		{"upper prefix", "0X0102", []byte{0x01, 0x02}},
		{"prefix only", "0x", []byte{}},
		{"empty", "", []byte{}},
		{"single char", "0", []byte{}},
		{"odd after prefix", "0x123", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromHex(tt.input); !bytes.Equal(got, tt.want) {
				t.Errorf("Expected %x, got %x", tt.want, got)
			}
		})
	}
}

func TestValidateHex(t *testing.T) {
	t.Run("accepts well formed input", func(t *testing.T) {
		for _, s := range []string{"", "0x", "00", "0xdeadBEEF", "0XABCDEF"} {
			if err := ValidateHex(s); err != nil {
				t.Errorf("Expected %q to validate, got %v", s, err)
			}
		}
	})

	t.Run("rejects odd length", func(t *testing.T) {
		if err := ValidateHex("0xabc"); !errors.Is(err, ErrOddLength) {
			t.Errorf("Expected ErrOddLength, got %v", err)
		}
	})

	t.Run("rejects non hex character", func(t *testing.T) {
		err := ValidateHex("0x01g2")

		var hexErr *InvalidHexError
		if !errors.As(err, &hexErr) {
			t.Fatalf("Expected InvalidHexError, got %v", err)
		}
		if hexErr.Offset != 2 {
			t.Errorf("Expected offset 2, got %d", hexErr.Offset)
		}
		if hexErr.Char != 'g' {
			t.Errorf("Expected char 'g', got %q", hexErr.Char)
		}
	})
}
