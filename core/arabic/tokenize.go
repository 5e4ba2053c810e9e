package arabic

import "strings"

// Delimiter class covering Latin and Arabic punctuation. Any run of these
// (or whitespace) is a single token boundary.
const punctuation = ".,;:!?،؟؛()\"'-"

func isDelimiter(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return strings.ContainsRune(punctuation, r)
}

// Tokenize splits normalized text into word tokens. Consecutive delimiters
// collapse to one boundary and empty tokens are dropped.
func Tokenize(text string) []string {
	return strings.FieldsFunc(text, isDelimiter)
}
