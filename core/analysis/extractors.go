package analysis

import (
	"sort"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/TanzilLens/core/abjad"
	"github.com/FocuswithJustin/TanzilLens/core/corpus"
	"github.com/FocuswithJustin/TanzilLens/core/morph"
)

// Words yields every token of the record.
func Words(rec *corpus.VerseRecord) []string {
	return rec.Tokens
}

// Characters yields every letter of every token.
func Characters(rec *corpus.VerseRecord) []string {
	var keys []string
	for _, tok := range rec.Tokens {
		for _, r := range tok {
			keys = append(keys, string(r))
		}
	}
	return keys
}

// WordNGrams yields space-joined sliding windows of n tokens, step 1.
// Verses with fewer than n tokens yield nothing.
func WordNGrams(n int) Extractor {
	return func(rec *corpus.VerseRecord) []string {
		if len(rec.Tokens) < n {
			return nil
		}
		keys := make([]string, 0, len(rec.Tokens)-n+1)
		for i := 0; i+n <= len(rec.Tokens); i++ {
			keys = append(keys, strings.Join(rec.Tokens[i:i+n], " "))
		}
		return keys
	}
}

// CharNGrams yields sliding rune windows of n over each token, step 1.
// Windows never span token boundaries.
func CharNGrams(n int) Extractor {
	return func(rec *corpus.VerseRecord) []string {
		var keys []string
		for _, tok := range rec.Tokens {
			runes := []rune(tok)
			for i := 0; i+n <= len(runes); i++ {
				keys = append(keys, string(runes[i:i+n]))
			}
		}
		return keys
	}
}

// Roots yields the morphological root of every token.
func Roots(m morph.Analyzer) Extractor {
	return func(rec *corpus.VerseRecord) []string {
		keys := make([]string, len(rec.Tokens))
		for i, tok := range rec.Tokens {
			keys[i] = m.RootOf(tok)
		}
		return keys
	}
}

// Lemmas yields the lemma of every token.
func Lemmas(m morph.Analyzer) Extractor {
	return func(rec *corpus.VerseRecord) []string {
		keys := make([]string, len(rec.Tokens))
		for i, tok := range rec.Tokens {
			keys[i] = m.LemmaOf(tok)
		}
		return keys
	}
}

// FirstRoot yields the root of the verse's first token, nothing when empty.
func FirstRoot(m morph.Analyzer) Extractor {
	return func(rec *corpus.VerseRecord) []string {
		if len(rec.Tokens) == 0 {
			return nil
		}
		return []string{m.RootOf(rec.Tokens[0])}
	}
}

// LastRoot yields the root of the verse's last token, nothing when empty.
func LastRoot(m morph.Analyzer) Extractor {
	return func(rec *corpus.VerseRecord) []string {
		if len(rec.Tokens) == 0 {
			return nil
		}
		return []string{m.RootOf(rec.Tokens[len(rec.Tokens)-1])}
	}
}

// AbjadValues yields the abjad value of every token as a decimal key.
func AbjadValues(table abjad.Table) Extractor {
	return func(rec *corpus.VerseRecord) []string {
		keys := make([]string, len(rec.Tokens))
		for i, tok := range rec.Tokens {
			keys[i] = strconv.Itoa(table.Value(tok))
		}
		return keys
	}
}

// pairKey joins two tokens into an order-independent pair key.
func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + " " + b
}

// Cooccurrence yields every unordered pair of tokens sharing the verse.
// Cost is quadratic in the verse's token count, not in corpus size.
func Cooccurrence(rec *corpus.VerseRecord) []string {
	n := len(rec.Tokens)
	if n < 2 {
		return nil
	}
	keys := make([]string, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			keys = append(keys, pairKey(rec.Tokens[i], rec.Tokens[j]))
		}
	}
	return keys
}

// RootCooccurrence is Cooccurrence over the verse's root words.
func RootCooccurrence(m morph.Analyzer) Extractor {
	return func(rec *corpus.VerseRecord) []string {
		roots := Roots(m)(rec)
		n := len(roots)
		if n < 2 {
			return nil
		}
		keys := make([]string, 0, n*(n-1)/2)
		for i := 0; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				keys = append(keys, pairKey(roots[i], roots[j]))
			}
		}
		return keys
	}
}

// Collocation yields (target, neighbor) pairs for every neighbor within
// window positions of the target, excluding the target itself. Each ordered
// encounter counts once; the pair key itself is order-independent.
func Collocation(window int) Extractor {
	return func(rec *corpus.VerseRecord) []string {
		n := len(rec.Tokens)
		var keys []string
		for i := 0; i < n; i++ {
			start := i - window
			if start < 0 {
				start = 0
			}
			end := i + window + 1
			if end > n {
				end = n
			}
			for j := start; j < end; j++ {
				if j == i {
					continue
				}
				keys = append(keys, pairKey(rec.Tokens[i], rec.Tokens[j]))
			}
		}
		return keys
	}
}

// SemanticGroups yields the distinct roots of the verse, each once, in
// sorted order. It feeds the semantic-group frequency and co-occurrence
// analyses.
func SemanticGroups(m morph.Analyzer) Extractor {
	return func(rec *corpus.VerseRecord) []string {
		seen := make(map[string]bool)
		for _, tok := range rec.Tokens {
			seen[m.RootOf(tok)] = true
		}
		groups := make([]string, 0, len(seen))
		for g := range seen {
			groups = append(groups, g)
		}
		sort.Strings(groups)
		return groups
	}
}

// SemanticGroupPairs yields every unordered pair of the verse's distinct
// semantic groups.
func SemanticGroupPairs(m morph.Analyzer) Extractor {
	groups := SemanticGroups(m)
	return func(rec *corpus.VerseRecord) []string {
		gs := groups(rec)
		if len(gs) < 2 {
			return nil
		}
		var keys []string
		for i := 0; i < len(gs)-1; i++ {
			for j := i + 1; j < len(gs); j++ {
				keys = append(keys, pairKey(gs[i], gs[j]))
			}
		}
		return keys
	}
}
