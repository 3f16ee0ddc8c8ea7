package logger

import "strings"

// Preview flattens prompt or response text onto one line for debug output and cuts it
// to limit runes. Runs of whitespace, newlines included, collapse to a single space.
func Preview(s string, limit int) string {
	if limit <= 0 {
		return ""
	}

	runes := []rune(strings.Join(strings.Fields(s), " "))
	if len(runes) <= limit {
		return string(runes)
	}
	return string(runes[:limit]) + "..."
}
