package patterns

import (
	"strings"

	"github.com/FocuswithJustin/TanzilLens/core/corpus"
)

// PalindromeKind distinguishes the palindrome detectors' findings.
type PalindromeKind string

const (
	// WordPalindrome is a single token equal to its own reversal.
	WordPalindrome PalindromeKind = "word"
	// PhrasePalindrome is a contiguous token window whose sequence equals
	// its own reversal.
	PhrasePalindrome PalindromeKind = "phrase"
	// NoPalindrome is the sentinel emitted when the whole corpus yields
	// nothing.
	NoPalindrome PalindromeKind = "none"
)

// NoPatternFound is the sentinel text of the NoPalindrome finding.
const NoPatternFound = "no pattern found"

// Palindrome is one palindrome occurrence. Overlapping phrase windows are
// reported independently.
type Palindrome struct {
	SurahID string         `json:"surah_id,omitempty"`
	AyahID  string         `json:"ayah_id,omitempty"`
	Kind    PalindromeKind `json:"kind"`
	Text    string         `json:"text"`
}

// reversedEqualsRunes reports whether s reads the same backwards.
func reversedEqualsRunes(s string) bool {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}

// reversedEqualsTokens reports whether the token sequence reads the same
// backwards.
func reversedEqualsTokens(tokens []string) bool {
	for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
		if tokens[i] != tokens[j] {
			return false
		}
	}
	return true
}

// FindPalindromes scans every verse for word and phrase palindromes.
//
// A token is a word palindrome when it has more than one rune and equals its
// own reversal; single characters are never reported. Phrase palindromes are
// tested over every contiguous token window of PhraseMin through PhraseMax
// tokens (the bound caps the scan cost per verse). If the whole corpus
// yields nothing, the single NoPalindrome sentinel is returned instead of an
// empty list.
func FindPalindromes(c *corpus.Corpus, cfg Config) []Palindrome {
	cfg = cfg.withDefaults()

	var findings []Palindrome
	for _, rec := range c.Records {
		for _, tok := range rec.Tokens {
			if len([]rune(tok)) > 1 && reversedEqualsRunes(tok) {
				findings = append(findings, Palindrome{
					SurahID: rec.SurahID,
					AyahID:  rec.AyahID,
					Kind:    WordPalindrome,
					Text:    tok,
				})
			}
		}

		for n := cfg.PhraseMin; n <= cfg.PhraseMax; n++ {
			for i := 0; i+n <= len(rec.Tokens); i++ {
				window := rec.Tokens[i : i+n]
				if reversedEqualsTokens(window) {
					findings = append(findings, Palindrome{
						SurahID: rec.SurahID,
						AyahID:  rec.AyahID,
						Kind:    PhrasePalindrome,
						Text:    strings.Join(window, " "),
					})
				}
			}
		}
	}

	if len(findings) == 0 {
		return []Palindrome{{Kind: NoPalindrome, Text: NoPatternFound}}
	}
	return findings
}
