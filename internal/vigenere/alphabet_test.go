package vigenere

import "testing"

func TestLetterIndex(t *testing.T) {
	tests := []struct {
		char byte
		want int
	}{
		{'A', 0},
		{'a', 0},
		{'Z', 25},
		{'z', 25},
		{'M', 12},
		{'n', 13},
	}
	for _, tt := range tests {
		if got := letterIndex(tt.char); got != tt.want {
			t.Errorf("letterIndex(%q) = %d, want %d", tt.char, got, tt.want)
		}
	}
}

func TestLetterAt(t *testing.T) {
	if got := letterAt(0, true); got != 'A' {
		t.Errorf("letterAt(0, true) = %q, want 'A'", got)
	}
	if got := letterAt(25, false); got != 'z' {
		t.Errorf("letterAt(25, false) = %q, want 'z'", got)
	}
}

func TestIsLetter(t *testing.T) {
	for _, c := range []byte{'A', 'Z', 'a', 'z', 'Q'} {
		if !isLetter(c) {
			t.Errorf("isLetter(%q) = false, want true", c)
		}
	}
	for _, c := range []byte{' ', '!', '0', '9', '@', '[', '`', '{'} {
		if isLetter(c) {
			t.Errorf("isLetter(%q) = true, want false", c)
		}
	}
}
