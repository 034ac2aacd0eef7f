package stringutils

import "strings"

func Indent(s string, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}

// FirstLine returns the first non-blank-trimmed line of s, cut to at most max
// runes (with an ellipsis when cut).
func FirstLine(s string, max int) string {
	s, _, _ = strings.Cut(strings.TrimSpace(s), "\n")
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if max > 0 && len(runes) > max {
		return string(runes[:max-1]) + "…"
	}
	return s
}
