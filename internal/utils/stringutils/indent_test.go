package stringutils

import "testing"

func TestIndent(t *testing.T) {
	if got := Indent("a\nb", "\t"); got != "\ta\n\tb" {
		t.Errorf("Indent = %q", got)
	}
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"empty", "", 10, ""},
		{"single line", "hello", 10, "hello"},
		{"multi line", "  hello\nworld", 10, "hello"},
		{"truncated", "abcdefghijkl", 5, "abcd…"},
		{"unicode", "별이 빛나는 밤", 3, "별이…"},
		{"no limit", "abcdefghijkl", 0, "abcdefghijkl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstLine(tt.input, tt.max); got != tt.want {
				t.Errorf("FirstLine(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
		})
	}
}
