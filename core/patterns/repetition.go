package patterns

import "github.com/FocuswithJustin/TanzilLens/core/corpus"

// Repetition is a group of verses within one surah sharing identical
// normalized text. Groups of one are never reported.
type Repetition struct {
	SurahID string   `json:"surah_id"`
	Text    string   `json:"verse"`
	AyahIDs []string `json:"ayah_ids"`
	Count   int      `json:"repetition"`
}

// CorpusRepetition is identical normalized text recurring anywhere in the
// corpus, with every occurrence site listed in file order.
type CorpusRepetition struct {
	Text  string   `json:"verse"`
	Sites []string `json:"sites"`
	Count int      `json:"repetition"`
}

// FindRepetitionsWithinSurahs groups each surah's verses by normalized text
// and reports every group of two or more. Surahs are visited in file order;
// within a surah, groups appear in order of their first occurrence.
func FindRepetitionsWithinSurahs(c *corpus.Corpus) []Repetition {
	var findings []Repetition
	for _, surah := range c.Surahs() {
		groups := make(map[string][]string)
		var order []string
		for _, rec := range c.Surah(surah) {
			if _, seen := groups[rec.Normalized]; !seen {
				order = append(order, rec.Normalized)
			}
			groups[rec.Normalized] = append(groups[rec.Normalized], rec.AyahID)
		}
		for _, text := range order {
			ayahs := groups[text]
			if len(ayahs) < 2 {
				continue
			}
			findings = append(findings, Repetition{
				SurahID: surah,
				Text:    text,
				AyahIDs: ayahs,
				Count:   len(ayahs),
			})
		}
	}
	return findings
}

// FindRepetitionsAcrossCorpus reports normalized texts occurring at two or
// more (surah, ayah) sites anywhere in the corpus.
func FindRepetitionsAcrossCorpus(c *corpus.Corpus) []CorpusRepetition {
	groups := make(map[string][]string)
	var order []string
	for _, rec := range c.Records {
		if _, seen := groups[rec.Normalized]; !seen {
			order = append(order, rec.Normalized)
		}
		groups[rec.Normalized] = append(groups[rec.Normalized], rec.Ref())
	}

	var findings []CorpusRepetition
	for _, text := range order {
		sites := groups[text]
		if len(sites) < 2 {
			continue
		}
		findings = append(findings, CorpusRepetition{
			Text:  text,
			Sites: sites,
			Count: len(sites),
		})
	}
	return findings
}
