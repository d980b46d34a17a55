package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", "phi3:3.8b", 20, "phi3:3.8b"},
		{"exact", "phi3", 4, "phi3"},
		{"clipped", "qwen2.5-coder:3b", 10, "qwen2.5..."},
		{"tiny_limit", "abcdef", 2, "ab"},
		{"zero", "abc", 0, ""},
		{"non_ascii", "модель-тест", 8, "модел..."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.max); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
			}
		})
	}
}

func TestTruncateMiddleKeepsTail(t *testing.T) {
	in := "/home/user/.ollama/models/blobs/sha256-abcdef"
	got := truncateMiddle(in, 20)
	if len([]rune(got)) > 20 {
		t.Fatalf("truncateMiddle = %q (%d runes), want <=20", got, len([]rune(got)))
	}
	if got[len(got)-6:] != "abcdef" {
		t.Fatalf("truncateMiddle = %q, want the path tail preserved", got)
	}
	if got := truncateMiddle("short", 20); got != "short" {
		t.Fatalf("truncateMiddle(short) = %q, want unchanged", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Fatalf("padRight = %q, want %q", got, "ab   ")
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Fatalf("padRight = %q, want unchanged", got)
	}
}
