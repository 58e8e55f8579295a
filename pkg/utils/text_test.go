package utils

import (
	"testing"
)

func TestTruncate(t *testing.T) {
	if Truncate("hello", 10) != "hello" {
		t.Error("short string unchanged")
	}
	if Truncate("hello world", 5) != "hello..." {
		t.Errorf("got %s", Truncate("hello world", 5))
	}
	if Truncate("x", 0) != "x" {
		t.Error("maxLen 0 returns as-is")
	}
	if got := Truncate("검색 인덱스", 2); got != "검색..." {
		t.Errorf("multibyte: got %s", got)
	}
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		name string
		s    string
		n    int
		want string
	}{
		{"shorter than n", "abc", 5, "abc"},
		{"exact length", "abc", 3, "abc"},
		{"cut", "abcdef", 2, "ab"},
		{"zero", "abc", 0, ""},
		{"negative", "abc", -1, ""},
		{"runes not bytes", "가나다라", 3, "가나다"},
		{"empty", "", 4, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Prefix(tt.s, tt.n); got != tt.want {
				t.Errorf("Prefix(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
			}
		})
	}
}
