// Package patterns implements the deterministic structural detectors:
// verse repetition, palindromes, and surah symmetry. All detectors work on
// the normalized record model and are pure functions of the corpus.
package patterns

// Config carries the detector tunables. The phrase-palindrome window bounds
// are fixed constants of the reference analysis kept overridable rather than
// inferred.
type Config struct {
	// PhraseMin and PhraseMax bound the token-window lengths tested for
	// phrase palindromes.
	PhraseMin int
	PhraseMax int
}

// DefaultConfig returns the reference bounds: windows of 2 through 5 tokens.
func DefaultConfig() Config {
	return Config{PhraseMin: 2, PhraseMax: 5}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.PhraseMin == 0 {
		c.PhraseMin = d.PhraseMin
	}
	if c.PhraseMax == 0 {
		c.PhraseMax = d.PhraseMax
	}
	return c
}
