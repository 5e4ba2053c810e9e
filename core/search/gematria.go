package search

import (
	"github.com/FocuswithJustin/TanzilLens/core/abjad"
	"github.com/FocuswithJustin/TanzilLens/core/corpus"
)

// WordHit is one word matched by a gematria search, with its site.
type WordHit struct {
	Word    string `json:"word"`
	SurahID string `json:"surah_id"`
	AyahID  string `json:"ayah_id"`
	Value   int    `json:"value"`
}

// WordsByValue returns every word in the corpus whose abjad value under t
// equals target. Words are scanned from the raw text, so un-normalized
// spellings still value correctly under the extended table.
func WordsByValue(c *corpus.Corpus, t abjad.Table, target int) []WordHit {
	var hits []WordHit
	for _, rec := range c.Records {
		for _, word := range wordsOf(rec) {
			if t.Value(word) == target {
				hits = append(hits, WordHit{
					Word:    word,
					SurahID: rec.SurahID,
					AyahID:  rec.AyahID,
					Value:   target,
				})
			}
		}
	}
	return hits
}

// VersesByVerseValue returns verses whose whole-verse abjad value under t
// equals target.
func VersesByVerseValue(c *corpus.Corpus, t abjad.Table, target int) []*corpus.VerseRecord {
	var hits []*corpus.VerseRecord
	for _, rec := range c.Records {
		if t.VerseValue(rec) == target {
			hits = append(hits, rec)
		}
	}
	return hits
}

// VersesWhereValueEqualsWordCount returns verses whose word count equals the
// abjad value of the given phrase.
func VersesWhereValueEqualsWordCount(c *corpus.Corpus, t abjad.Table, phrase string) []*corpus.VerseRecord {
	target := t.Value(phrase)
	var hits []*corpus.VerseRecord
	for _, rec := range c.Records {
		if len(wordsOf(rec)) == target {
			hits = append(hits, rec)
		}
	}
	return hits
}

// VersesWhereValueEqualsAyahNumber returns verses whose ayah number equals
// the abjad value of the given phrase.
func VersesWhereValueEqualsAyahNumber(c *corpus.Corpus, t abjad.Table, phrase string) []*corpus.VerseRecord {
	target := t.Value(phrase)
	var hits []*corpus.VerseRecord
	for _, rec := range c.Records {
		if rec.AyahNumber() == target {
			hits = append(hits, rec)
		}
	}
	return hits
}

// VersesWhereValueEqualsSurahNumber returns verses whose surah number equals
// the abjad value of the given phrase.
func VersesWhereValueEqualsSurahNumber(c *corpus.Corpus, t abjad.Table, phrase string) []*corpus.VerseRecord {
	target := t.Value(phrase)
	var hits []*corpus.VerseRecord
	for _, rec := range c.Records {
		if rec.SurahNumber() == target {
			hits = append(hits, rec)
		}
	}
	return hits
}
