package analysis

import "github.com/FocuswithJustin/TanzilLens/core/corpus"

// Extractor produces the feature keys of one verse record. Extractors must
// be pure: the aggregator may invoke them in any grouping pass.
type Extractor func(rec *corpus.VerseRecord) []string

// Aggregate folds extract over every record of c in file order and counts
// the produced keys at the corpus, surah, and ayah levels. A record that
// yields no keys (e.g. a verse shorter than an n-gram window) contributes an
// empty distribution, never an error.
func Aggregate(c *corpus.Corpus, feature string, extract Extractor) *LeveledDistribution {
	ld := &LeveledDistribution{
		Feature: feature,
		Corpus:  NewDistribution(),
		BySurah: make(map[string]*Distribution),
		ByAyah:  make(map[string]*Distribution),
	}

	for _, rec := range c.Records {
		surah := rec.SurahID
		ayah := rec.Ref()

		sd, ok := ld.BySurah[surah]
		if !ok {
			sd = NewDistribution()
			ld.BySurah[surah] = sd
			ld.surahOrder = append(ld.surahOrder, surah)
		}
		ad, ok := ld.ByAyah[ayah]
		if !ok {
			ad = NewDistribution()
			ld.ByAyah[ayah] = ad
			ld.ayahOrder = append(ld.ayahOrder, ayah)
		}

		for _, key := range extract(rec) {
			ld.Corpus.Add(key)
			sd.Add(key)
			ad.Add(key)
		}
	}

	return ld
}
