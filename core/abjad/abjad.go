// Package abjad implements the historical Arabic letter-to-integer mapping
// and the scalar values derived from it.
//
// Two near-identical tables exist: Standard carries the 28 base letters only;
// Extended additionally maps the hamza carriers and taa marbuta so that text
// which skipped normalization still values every letter. Unmapped runes
// contribute 0 and are never an error.
package abjad

import (
	"github.com/FocuswithJustin/TanzilLens/core/corpus"
	"github.com/FocuswithJustin/TanzilLens/core/observe"
)

// Table is a named letter-value mapping configuration.
type Table struct {
	Name   string
	values map[rune]int
}

var standardValues = map[rune]int{
	'ا': 1, 'ب': 2, 'ج': 3, 'د': 4, 'ه': 5, 'و': 6, 'ز': 7, 'ح': 8, 'ط': 9,
	'ي': 10, 'ك': 20, 'ل': 30, 'م': 40, 'ن': 50, 'س': 60, 'ع': 70, 'ف': 80, 'ص': 90,
	'ق': 100, 'ر': 200, 'ش': 300, 'ت': 400, 'ث': 500, 'خ': 600, 'ذ': 700, 'ض': 800, 'ظ': 900, 'غ': 1000,
}

// Standard is the classical 28-letter table.
var Standard = Table{Name: "standard", values: standardValues}

// Extended adds the hamza carriers and taa marbuta on top of Standard.
var Extended = Table{Name: "extended", values: extendedValues()}

func extendedValues() map[rune]int {
	m := make(map[rune]int, len(standardValues)+7)
	for r, v := range standardValues {
		m[r] = v
	}
	m['ء'] = 1
	m['أ'] = 1
	m['ؤ'] = 1
	m['إ'] = 1
	m['ئ'] = 1
	m['ى'] = 10
	m['ة'] = 5
	return m
}

// Value returns the abjad value of text: the sum of the mapped values of its
// runes. Unmapped runes (including whitespace) contribute 0, which makes
// Value associative over space-joined concatenation:
//
//	Value(a + " " + b) == Value(a) + Value(b)
func (t Table) Value(text string) int {
	total := 0
	for _, r := range text {
		total += t.values[r]
	}
	return total
}

// ValueObserved is Value with unmapped letters surfaced to the sink as
// warnings. Whitespace and delimiters are expected gaps and stay silent.
func (t Table) ValueObserved(text string, log observe.Logger) int {
	log = observe.OrNop(log)
	total := 0
	for _, r := range text {
		v, ok := t.values[r]
		if !ok && r != ' ' && r != '\t' {
			log.Warn("rune not in abjad table, treated as 0",
				"rune", string(r), "table", t.Name)
		}
		total += v
	}
	return total
}

// VerseValue returns the abjad value of a record's normalized text.
func (t Table) VerseValue(rec *corpus.VerseRecord) int {
	return t.Value(rec.Normalized)
}

// SurahValues returns the per-surah sums of per-verse values.
func (t Table) SurahValues(c *corpus.Corpus) map[string]int {
	sums := make(map[string]int)
	for _, rec := range c.Records {
		sums[rec.SurahID] += t.VerseValue(rec)
	}
	return sums
}

// CorpusValue returns the total abjad value of every verse in the corpus.
func (t Table) CorpusValue(c *corpus.Corpus) int {
	total := 0
	for _, rec := range c.Records {
		total += t.VerseValue(rec)
	}
	return total
}
