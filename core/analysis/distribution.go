// Package analysis implements the hierarchical frequency engine.
//
// A single generic operation — fold a feature extractor over the corpus,
// grouping at three nested levels — backs every frequency analysis in the
// system. The word, root, lemma, character, n-gram, value, co-occurrence and
// collocation analyses differ only in the extractor function and the top-N
// used for reporting.
package analysis

import "sort"

// Distribution is a count mapping over some feature-key domain. Insertion
// order is irrelevant for correctness but retained as the deterministic
// tie-break when truncating to top-N.
type Distribution struct {
	counts map[string]int
	order  []string
}

// Entry is one (key, count) pair of a Distribution.
type Entry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// NewDistribution creates an empty Distribution.
func NewDistribution() *Distribution {
	return &Distribution{counts: make(map[string]int)}
}

// Add increments the count of key by one.
func (d *Distribution) Add(key string) {
	d.AddN(key, 1)
}

// AddN increments the count of key by n.
func (d *Distribution) AddN(key string, n int) {
	if _, seen := d.counts[key]; !seen {
		d.order = append(d.order, key)
	}
	d.counts[key] += n
}

// Count returns the count of key, zero when absent.
func (d *Distribution) Count(key string) int {
	return d.counts[key]
}

// Len returns the number of distinct keys.
func (d *Distribution) Len() int {
	return len(d.counts)
}

// Keys returns the keys in first-seen order.
func (d *Distribution) Keys() []string {
	return d.order
}

// Counts returns the raw count values in first-seen key order.
func (d *Distribution) Counts() []int {
	values := make([]int, len(d.order))
	for i, k := range d.order {
		values[i] = d.counts[k]
	}
	return values
}

// Entries returns all (key, count) pairs in first-seen order.
func (d *Distribution) Entries() []Entry {
	entries := make([]Entry, len(d.order))
	for i, k := range d.order {
		entries[i] = Entry{Key: k, Count: d.counts[k]}
	}
	return entries
}

// TopN returns the n highest-count entries, ties resolved by first-seen
// order. n larger than the key count returns everything.
func (d *Distribution) TopN(n int) []Entry {
	entries := d.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// Merge folds other's counts into d key-wise. Counting is a commutative
// monoid, so merge order never changes the totals.
func (d *Distribution) Merge(other *Distribution) {
	for _, k := range other.order {
		d.AddN(k, other.counts[k])
	}
}

// LeveledDistribution is one feature's distributions at the three nested
// granularities. Summing the ayah-level counts of any key always equals its
// corpus-level count.
type LeveledDistribution struct {
	// Feature names the distribution family (e.g. "word_frequencies").
	Feature string

	// Corpus is the whole-corpus distribution.
	Corpus *Distribution

	// BySurah maps surah ID to that surah's distribution.
	BySurah map[string]*Distribution

	// ByAyah maps "surah|ayah" to that verse's distribution.
	ByAyah map[string]*Distribution

	surahOrder []string
	ayahOrder  []string
}

// SurahKeys returns surah IDs in first-seen file order.
func (ld *LeveledDistribution) SurahKeys() []string {
	return ld.surahOrder
}

// AyahKeys returns "surah|ayah" labels in file order.
func (ld *LeveledDistribution) AyahKeys() []string {
	return ld.ayahOrder
}
