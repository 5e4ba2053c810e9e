// Package search implements verse lookup over a loaded corpus: substring and
// phrase search, positional and structural matches, gematria-driven lookups,
// and a parsed verse-reference range syntax.
//
// Searches run against the raw surface text of each verse, not the normalized
// token stream the analysis pipeline consumes; callers searching Arabic text
// match exactly what the corpus file says.
package search

import (
	"strings"

	"github.com/FocuswithJustin/TanzilLens/core/corpus"
	tlerrors "github.com/FocuswithJustin/TanzilLens/core/errors"
)

// Options controls text matching.
type Options struct {
	// CaseSensitive compares text as-is instead of case-folded.
	CaseSensitive bool
}

func (o Options) matches(haystack, needle string) bool {
	if o.CaseSensitive {
		return strings.Contains(haystack, needle)
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Verses returns every verse whose raw text contains needle. Matching is
// substring-based, so needle may be a single word or a multi-word phrase.
func Verses(c *corpus.Corpus, needle string, opts Options) []*corpus.VerseRecord {
	var hits []*corpus.VerseRecord
	for _, rec := range c.Records {
		if opts.matches(rec.Raw, needle) {
			hits = append(hits, rec)
		}
	}
	return hits
}

// VersesInSurah restricts Verses to one surah.
func VersesInSurah(c *corpus.Corpus, needle, surahID string, opts Options) []*corpus.VerseRecord {
	var hits []*corpus.VerseRecord
	for _, rec := range c.Surah(surahID) {
		if opts.matches(rec.Raw, needle) {
			hits = append(hits, rec)
		}
	}
	return hits
}

// VersesInRange restricts Verses to records inside the inclusive range.
func VersesInRange(c *corpus.Corpus, needle string, r *VerseRange, opts Options) []*corpus.VerseRecord {
	var hits []*corpus.VerseRecord
	for _, rec := range c.Records {
		if r.Contains(rec) && opts.matches(rec.Raw, needle) {
			hits = append(hits, rec)
		}
	}
	return hits
}

// CountOccurrences returns the total number of non-overlapping,
// case-insensitive occurrences of needle across all raw verse texts.
// An empty needle counts zero.
func CountOccurrences(c *corpus.Corpus, needle string) int {
	if needle == "" {
		return 0
	}
	needle = strings.ToLower(needle)
	total := 0
	for _, rec := range c.Records {
		total += strings.Count(strings.ToLower(rec.Raw), needle)
	}
	return total
}

// wordsOf splits a record's raw text on whitespace.
func wordsOf(rec *corpus.VerseRecord) []string {
	return strings.Fields(rec.Raw)
}

// VersesByWordCount returns verses with exactly n whitespace-separated words.
func VersesByWordCount(c *corpus.Corpus, n int) []*corpus.VerseRecord {
	var hits []*corpus.VerseRecord
	for _, rec := range c.Records {
		if len(wordsOf(rec)) == n {
			hits = append(hits, rec)
		}
	}
	return hits
}

// VersesByWordCountMultiple returns verses whose word count is an exact
// multiple of m. A zero m is rejected.
func VersesByWordCountMultiple(c *corpus.Corpus, m int) ([]*corpus.VerseRecord, error) {
	if m == 0 {
		return nil, tlerrors.NewValidation("multiple", "must be non-zero")
	}
	var hits []*corpus.VerseRecord
	for _, rec := range c.Records {
		if len(wordsOf(rec))%m == 0 {
			hits = append(hits, rec)
		}
	}
	return hits, nil
}

// WordAt returns verses whose word at the 1-based position equals word.
func WordAt(c *corpus.Corpus, word string, position int, opts Options) []*corpus.VerseRecord {
	if position < 1 {
		return nil
	}
	want := word
	if !opts.CaseSensitive {
		want = strings.ToLower(want)
	}
	var hits []*corpus.VerseRecord
	for _, rec := range c.Records {
		words := wordsOf(rec)
		if position > len(words) {
			continue
		}
		got := words[position-1]
		if !opts.CaseSensitive {
			got = strings.ToLower(got)
		}
		if got == want {
			hits = append(hits, rec)
		}
	}
	return hits
}

// PhraseAt returns verses where the whitespace-separated phrase starts at the
// 1-based word position.
func PhraseAt(c *corpus.Corpus, phrase string, position int, opts Options) []*corpus.VerseRecord {
	want := strings.Fields(phrase)
	if position < 1 || len(want) == 0 {
		return nil
	}
	if !opts.CaseSensitive {
		for i, w := range want {
			want[i] = strings.ToLower(w)
		}
	}
	var hits []*corpus.VerseRecord
	for _, rec := range c.Records {
		words := wordsOf(rec)
		if position-1+len(want) > len(words) {
			continue
		}
		match := true
		for i, w := range want {
			got := words[position-1+i]
			if !opts.CaseSensitive {
				got = strings.ToLower(got)
			}
			if got != w {
				match = false
				break
			}
		}
		if match {
			hits = append(hits, rec)
		}
	}
	return hits
}
