package patterns

import (
	"sort"

	"github.com/FocuswithJustin/TanzilLens/core/corpus"
)

// Symmetry reports the token-set overlap between the two halves of a surah.
type Symmetry struct {
	SurahID string `json:"surah_id"`
	// CommonCount is the size of the token-set intersection.
	CommonCount int `json:"common_count"`
	// CommonTokens lists the intersection, sorted for deterministic output.
	CommonTokens []string `json:"common_tokens"`
}

// tokenSet collects the distinct tokens of a token sequence.
func tokenSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}

func intersect(a, b map[string]bool) []string {
	var common []string
	for t := range a {
		if b[t] {
			common = append(common, t)
		}
	}
	sort.Strings(common)
	return common
}

// FindSymmetry bisects each surah and intersects the token sets of the two
// halves.
//
// Surahs with more than one verse split their ordered verse list at
// floor(n/2) verses. A single-verse surah instead bisects that verse's own
// token sequence at its midpoint; single-verse surahs with fewer than two
// tokens are skipped.
func FindSymmetry(c *corpus.Corpus) []Symmetry {
	var findings []Symmetry
	for _, surah := range c.Surahs() {
		verses := c.Surah(surah)

		var first, second []string
		switch {
		case len(verses) > 1:
			half := len(verses) / 2
			for _, rec := range verses[:half] {
				first = append(first, rec.Tokens...)
			}
			for _, rec := range verses[half:] {
				second = append(second, rec.Tokens...)
			}
		default:
			tokens := verses[0].Tokens
			if len(tokens) < 2 {
				continue
			}
			mid := len(tokens) / 2
			first = tokens[:mid]
			second = tokens[mid:]
		}

		common := intersect(tokenSet(first), tokenSet(second))
		findings = append(findings, Symmetry{
			SurahID:      surah,
			CommonCount:  len(common),
			CommonTokens: common,
		})
	}
	return findings
}
