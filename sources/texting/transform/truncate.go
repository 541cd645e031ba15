package transform

import "unicode"

// SmartTruncate cuts text to at most maxLen runes, preferring the last space
// inside the limit. Titles are mostly CJK and digits, so the cut is rune
// based rather than byte based.
func SmartTruncate(text string, maxLen int) string {
	runes := []rune(text)
	if maxLen <= 0 || len(runes) <= maxLen {
		return text
	}

	truncated := runes[:maxLen]

	for i := len(truncated) - 1; i > 0; i-- {
		if unicode.IsSpace(truncated[i]) {
			return string(truncated[:i])
		}
	}

	return string(truncated)
}
