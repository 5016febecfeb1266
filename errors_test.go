package wordview

import (
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrOddLength", ErrOddLength, "wordview: hex string has odd length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.msg {
				t.Errorf("Expected error message %q, got %q", tt.msg, tt.err.Error())
			}
		})
	}
}

func TestInvalidHexError(t *testing.T) {
	err := &InvalidHexError{Offset: 5, Char: 'z'}

	expected := `wordview: invalid hex character 'z' at offset 5`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
}
