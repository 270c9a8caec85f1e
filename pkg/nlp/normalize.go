package nlp

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CleanText lowercases, NFC-normalizes and collapses whitespace so that
// visually identical inputs always compare equal. Accented characters are
// kept as written: patterns are authored in the same language as the
// incoming messages.
func CleanText(text string) string {
	text = norm.NFC.String(text)
	text = strings.ToLower(text)

	words := strings.Fields(text)
	return strings.Join(words, " ")
}
