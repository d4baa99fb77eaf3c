package extract

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?\d[\d\s().\-]{7,}\d)`)
)

// Email returns the first email address found in the text, or "".
func Email(text string) string {
	return emailPattern.FindString(text)
}

// Phone returns the first phone-like number found in the text, or "".
func Phone(text string) string {
	match := phonePattern.FindString(text)
	return strings.TrimSpace(match)
}

// WordCount counts whitespace-delimited words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
