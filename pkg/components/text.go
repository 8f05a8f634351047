package components

import "github.com/charmbracelet/x/ansi"

// VisibleLen returns the visible width of s in terminal cells. ANSI escape
// sequences are ignored and wide characters count as two cells.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// TruncateWithTail truncates s to at most maxWidth visible characters,
// appending tail if truncation occurs. The tail counts toward maxWidth.
func TruncateWithTail(s string, maxWidth int, tail string) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, tail)
}
