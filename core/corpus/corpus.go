// Package corpus loads a line-oriented scripture corpus into verse records.
//
// The canonical line syntax is "surah<delim>ayah<delim>text" with <delim>
// drawn from a small accepted set. Lines that do not match are salvage-parsed
// as whole-line text under a default surah; this is a documented happy path,
// not an error. The only fatal condition is an unreadable corpus file.
package corpus

import (
	"strconv"
)

// VerseRecord is one parsed line of the corpus. Records are created once per
// line, are immutable after the normalization/tokenization pass, and are
// owned exclusively by the run that loaded them.
type VerseRecord struct {
	// SurahID is the section identifier (numeric string for real corpora).
	SurahID string `json:"surah_id"`
	// AyahID is the subsection identifier, unique within its surah.
	AyahID string `json:"ayah_id"`
	// Raw is the verse text exactly as it appeared on the line.
	Raw string `json:"raw_text"`
	// Normalized is the canonicalized orthography of Raw.
	Normalized string `json:"normalized_text"`
	// Tokens is the ordered token sequence of Normalized.
	Tokens []string `json:"tokens"`
	// Salvaged marks records produced by the whole-line fallback rule.
	Salvaged bool `json:"salvaged,omitempty"`
}

// Ref returns the "surah|ayah" site label for this record.
func (v *VerseRecord) Ref() string {
	return v.SurahID + "|" + v.AyahID
}

// SurahNumber returns the surah identifier as an integer, or 0 when the
// identifier is non-numeric.
func (v *VerseRecord) SurahNumber() int {
	n, err := strconv.Atoi(v.SurahID)
	if err != nil {
		return 0
	}
	return n
}

// AyahNumber returns the ayah identifier as an integer, or 0 when the
// identifier is non-numeric.
func (v *VerseRecord) AyahNumber() int {
	n, err := strconv.Atoi(v.AyahID)
	if err != nil {
		return 0
	}
	return n
}

// Fingerprint identifies the raw corpus bytes by two digests.
type Fingerprint struct {
	SHA256 string `json:"sha256"`
	BLAKE3 string `json:"blake3"`
}

// Corpus is the full ordered collection of verse records for one run.
type Corpus struct {
	// Path is the source file, empty when loaded from a reader.
	Path string `json:"path,omitempty"`
	// Records are in file order.
	Records []*VerseRecord `json:"records"`
	// Fingerprint covers the raw bytes before any parsing.
	Fingerprint Fingerprint `json:"fingerprint"`

	surahOrder []string
	bySurah    map[string][]*VerseRecord
}

// index builds the per-surah grouping, preserving first-seen surah order.
func (c *Corpus) index() {
	if c.bySurah != nil {
		return
	}
	c.bySurah = make(map[string][]*VerseRecord)
	for _, rec := range c.Records {
		if _, seen := c.bySurah[rec.SurahID]; !seen {
			c.surahOrder = append(c.surahOrder, rec.SurahID)
		}
		c.bySurah[rec.SurahID] = append(c.bySurah[rec.SurahID], rec)
	}
}

// Len returns the number of verse records.
func (c *Corpus) Len() int {
	return len(c.Records)
}

// Surahs returns surah identifiers in first-seen file order.
func (c *Corpus) Surahs() []string {
	c.index()
	return c.surahOrder
}

// Surah returns the records of one surah in file order.
func (c *Corpus) Surah(id string) []*VerseRecord {
	c.index()
	return c.bySurah[id]
}

// TokenCount returns the total number of tokens across all records.
func (c *Corpus) TokenCount() int {
	total := 0
	for _, rec := range c.Records {
		total += len(rec.Tokens)
	}
	return total
}
