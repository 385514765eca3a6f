package asciiscan

import "testing"

func TestIsASCII(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"empty", []byte(""), true},
		{"short ascii", []byte("abc"), true},
		{"short non-ascii", []byte("café"), false},
		{"exactly eight ascii", []byte("12345678"), true},
		{"eight with high byte", []byte("1234567\x80"), false},
		{"long ascii", []byte("the quick brown fox jumps over the lazy dog"), true},
		{"long with trailing non-ascii", []byte("the quick brown fox jumps over the lazy dog\xff"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsASCII(tt.data); got != tt.want {
				t.Errorf("IsASCII(%q) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}
