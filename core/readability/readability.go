// Package readability scores the orthographic complexity of corpus text.
//
// Two adapted classic measures are computed: a Dale-Chall-style score driven
// by a common-word list, and a SMOG-style index driven by a word-length proxy
// for syllable count. A verse is treated as one sentence throughout.
package readability

import (
	"math"
	"unicode/utf8"

	"github.com/FocuswithJustin/TanzilLens/core/corpus"
)

// Dale-Chall and SMOG formula constants, unchanged from their published
// adaptations.
const (
	daleChallDifficultWeight = 0.1579
	daleChallSentenceWeight  = 0.0496
	daleChallBase            = 3.6365

	smogScale = 1.0430
	smogBase  = 3.1291
)

// defaultCommonWords are high-frequency Arabic function words and names that
// never count as difficult.
var defaultCommonWords = []string{
	"في", "من", "على", "إلى", "و", "ما", "كان", "الله",
	"عن", "لا", "كل", "مع", "هذا", "ذلك", "هو", "هي",
}

// Config carries the readability tunables.
type Config struct {
	// LongWordRunes is the rune length above which a word counts as long
	// (the syllable-count proxy).
	LongWordRunes int
	// CommonWords never count as difficult. Empty means the built-in list.
	CommonWords []string
}

// DefaultConfig returns the reference settings: long words exceed 4 runes,
// the built-in common-word list.
func DefaultConfig() Config {
	return Config{LongWordRunes: 4, CommonWords: defaultCommonWords}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.LongWordRunes == 0 {
		c.LongWordRunes = d.LongWordRunes
	}
	if c.CommonWords == nil {
		c.CommonWords = d.CommonWords
	}
	return c
}

// Metrics are the readability measurements of one span of verses.
type Metrics struct {
	WordCount     int `json:"word_count"`
	SentenceCount int `json:"sentence_count"`
	// AvgWordLength is runes per word.
	AvgWordLength float64 `json:"avg_word_length"`
	// AvgSentenceLength is words per verse.
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	// DifficultRatio is the fraction of words longer than the configured
	// rune threshold.
	DifficultRatio float64 `json:"difficult_ratio"`
	// DaleChall is the adapted Dale-Chall readability score.
	DaleChall float64 `json:"dale_chall"`
	// SMOG is the adapted SMOG index.
	SMOG float64 `json:"smog"`
}

// Analyze measures the given verses as one text span. An empty span yields
// the base scores with zero counts.
func Analyze(verses []*corpus.VerseRecord, cfg Config) Metrics {
	cfg = cfg.withDefaults()
	common := make(map[string]bool, len(cfg.CommonWords))
	for _, w := range cfg.CommonWords {
		common[w] = true
	}

	var m Metrics
	var runeTotal, longWords, hardWords int
	for _, rec := range verses {
		m.SentenceCount++
		for _, tok := range rec.Tokens {
			m.WordCount++
			n := utf8.RuneCountInString(tok)
			runeTotal += n
			if n > cfg.LongWordRunes {
				longWords++
			}
			if !common[tok] {
				hardWords++
			}
		}
	}
	if m.SentenceCount == 0 {
		m.SentenceCount = 1
	}

	var pctDifficult float64
	if m.WordCount > 0 {
		m.AvgWordLength = float64(runeTotal) / float64(m.WordCount)
		m.DifficultRatio = float64(longWords) / float64(m.WordCount)
		pctDifficult = 100 * float64(hardWords) / float64(m.WordCount)
	}
	m.AvgSentenceLength = float64(m.WordCount) / float64(m.SentenceCount)

	m.DaleChall = daleChallDifficultWeight*pctDifficult +
		daleChallSentenceWeight*m.AvgSentenceLength + daleChallBase
	m.SMOG = smogScale*math.Sqrt(float64(longWords)*30/float64(m.SentenceCount)) + smogBase
	return m
}

// CorpusMetrics measures the whole corpus.
func CorpusMetrics(c *corpus.Corpus, cfg Config) Metrics {
	return Analyze(c.Records, cfg)
}

// SurahMetrics measures each surah, returned with first-seen surah order.
func SurahMetrics(c *corpus.Corpus, cfg Config) (map[string]Metrics, []string) {
	order := c.Surahs()
	metrics := make(map[string]Metrics, len(order))
	for _, surah := range order {
		metrics[surah] = Analyze(c.Surah(surah), cfg)
	}
	return metrics, order
}

// AyahMetrics measures every verse individually, keyed by "surah|ayah".
func AyahMetrics(c *corpus.Corpus, cfg Config) (map[string]Metrics, []string) {
	metrics := make(map[string]Metrics, c.Len())
	order := make([]string, 0, c.Len())
	for _, rec := range c.Records {
		ref := rec.Ref()
		order = append(order, ref)
		metrics[ref] = Analyze([]*corpus.VerseRecord{rec}, cfg)
	}
	return metrics, order
}
