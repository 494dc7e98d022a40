package simd

import "testing"

func TestIsASCII(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want bool
	}{
		{"empty", "", true},
		{"short ascii", "hi", true},
		{"short non-ascii", "h\xc3\xa9", false},
		{"long ascii", "the quick brown fox jumps over the lazy dog 0123456789", true},
		{"long with trailing non-ascii", "the quick brown fox jumps over the lazy dog\xc3\xa9", false},
		{"non-ascii at word boundary", "abcdefgh\xc3\xa9", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsASCII(tt.s); got != tt.want {
				t.Errorf("IsASCII(%q) = %v, want %v", tt.s, got, tt.want)
			}
			if got := isASCIIByte(tt.s); got != tt.want {
				t.Errorf("isASCIIByte(%q) = %v, want %v", tt.s, got, tt.want)
			}
			if got := isASCIIWord(tt.s); got != tt.want {
				t.Errorf("isASCIIWord(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}
