package analysis

import (
	"github.com/FocuswithJustin/TanzilLens/core/abjad"
	"github.com/FocuswithJustin/TanzilLens/core/corpus"
	"github.com/FocuswithJustin/TanzilLens/core/morph"
	"github.com/FocuswithJustin/TanzilLens/core/observe"
)

// Feature family names. These label LeveledDistributions in logs, anomaly
// events, and the report store.
const (
	FeatureWords            = "word_frequencies"
	FeatureRoots            = "root_word_frequencies"
	FeatureLemmas           = "lemma_frequencies"
	FeatureCharacters       = "character_frequencies"
	FeatureWordNGrams       = "word_ngrams"
	FeatureCharNGrams       = "character_ngrams"
	FeatureCooccurrence     = "word_cooccurrence"
	FeatureRootCooccurrence = "root_word_cooccurrence"
	FeatureCollocation      = "word_collocation"
	FeatureAbjadValues      = "gematria_value_distribution"
	FeatureFirstRoot        = "first_root_word_frequency"
	FeatureLastRoot         = "last_root_word_frequency"
	FeatureSemanticGroups   = "semantic_group_frequency"
	FeatureSemanticPairs    = "semantic_group_cooccurrence"
)

// Config carries the tunables of the analysis suite. All zero values are
// replaced by the defaults below.
type Config struct {
	// Table is the abjad table used for the value distribution.
	Table abjad.Table
	// WordNGram and CharNGram are the sliding window sizes.
	WordNGram int
	CharNGram int
	// CollocationWindow is the neighbor distance for collocation pairs.
	CollocationWindow int
}

// DefaultConfig returns the reference configuration: bigrams and a ±3
// collocation window.
func DefaultConfig() Config {
	return Config{
		Table:             abjad.Extended,
		WordNGram:         2,
		CharNGram:         2,
		CollocationWindow: 3,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Table.Name == "" {
		c.Table = d.Table
	}
	if c.WordNGram == 0 {
		c.WordNGram = d.WordNGram
	}
	if c.CharNGram == 0 {
		c.CharNGram = d.CharNGram
	}
	if c.CollocationWindow == 0 {
		c.CollocationWindow = d.CollocationWindow
	}
	return c
}

// topNByFeature is the reporting truncation per feature family.
var topNByFeature = map[string]int{
	FeatureWords:            20,
	FeatureRoots:            20,
	FeatureLemmas:           20,
	FeatureCharacters:       10,
	FeatureWordNGrams:       20,
	FeatureCharNGrams:       20,
	FeatureCooccurrence:     2000,
	FeatureRootCooccurrence: 1000,
	FeatureCollocation:      20,
	FeatureAbjadValues:      10,
	FeatureFirstRoot:        5,
	FeatureLastRoot:         5,
	FeatureSemanticGroups:   10,
	FeatureSemanticPairs:    10,
}

// Suite runs the named feature analyses over one corpus. Each analysis is a
// thin parameterization of Aggregate.
type Suite struct {
	corpus *corpus.Corpus
	morph  morph.Analyzer
	log    observe.Logger
	cfg    Config
}

// NewSuite creates a Suite. A nil morphological analyzer falls back to
// identity, a nil logger to a no-op sink.
func NewSuite(c *corpus.Corpus, m morph.Analyzer, log observe.Logger, cfg Config) *Suite {
	if m == nil {
		m = morph.Identity{}
	}
	return &Suite{
		corpus: c,
		morph:  m,
		log:    observe.OrNop(log),
		cfg:    cfg.withDefaults(),
	}
}

// Features returns every feature family name in run order.
func Features() []string {
	return []string{
		FeatureWords,
		FeatureRoots,
		FeatureLemmas,
		FeatureCharacters,
		FeatureWordNGrams,
		FeatureCharNGrams,
		FeatureCooccurrence,
		FeatureRootCooccurrence,
		FeatureCollocation,
		FeatureAbjadValues,
		FeatureFirstRoot,
		FeatureLastRoot,
		FeatureSemanticGroups,
		FeatureSemanticPairs,
	}
}

// extractorFor maps a feature family to its extractor.
func (s *Suite) extractorFor(feature string) Extractor {
	switch feature {
	case FeatureWords:
		return Words
	case FeatureRoots:
		return Roots(s.morph)
	case FeatureLemmas:
		return Lemmas(s.morph)
	case FeatureCharacters:
		return Characters
	case FeatureWordNGrams:
		return WordNGrams(s.cfg.WordNGram)
	case FeatureCharNGrams:
		return CharNGrams(s.cfg.CharNGram)
	case FeatureCooccurrence:
		return Cooccurrence
	case FeatureRootCooccurrence:
		return RootCooccurrence(s.morph)
	case FeatureCollocation:
		return Collocation(s.cfg.CollocationWindow)
	case FeatureAbjadValues:
		return AbjadValues(s.cfg.Table)
	case FeatureFirstRoot:
		return FirstRoot(s.morph)
	case FeatureLastRoot:
		return LastRoot(s.morph)
	case FeatureSemanticGroups:
		return SemanticGroups(s.morph)
	case FeatureSemanticPairs:
		return SemanticGroupPairs(s.morph)
	}
	return nil
}

// Run aggregates one feature family and logs its corpus-level top entries.
// Unknown feature names return nil.
func (s *Suite) Run(feature string) *LeveledDistribution {
	extract := s.extractorFor(feature)
	if extract == nil {
		return nil
	}
	ld := Aggregate(s.corpus, feature, extract)

	topN := topNByFeature[feature]
	top := ld.Corpus.TopN(topN)
	s.log.Result("frequency analysis complete",
		"feature", feature,
		"unique_keys", ld.Corpus.Len(),
		"top_n", len(top))
	for rank, e := range top {
		s.log.Result("top entry",
			"feature", feature,
			"rank", rank+1,
			"key", e.Key,
			"count", e.Count)
	}
	return ld
}

// RunAll runs every feature family in order and returns the results keyed by
// feature name.
func (s *Suite) RunAll() map[string]*LeveledDistribution {
	results := make(map[string]*LeveledDistribution)
	for _, feature := range Features() {
		results[feature] = s.Run(feature)
	}
	return results
}
