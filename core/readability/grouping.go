package readability

import (
	"sort"

	"github.com/FocuswithJustin/TanzilLens/core/analysis"
	"github.com/FocuswithJustin/TanzilLens/core/corpus"
	"github.com/FocuswithJustin/TanzilLens/core/morph"
)

// Band is a complexity tercile.
type Band string

const (
	BandLow    Band = "low"
	BandMedium Band = "medium"
	BandHigh   Band = "high"
)

// Bands returns the bands in ascending order.
func Bands() []Band {
	return []Band{BandLow, BandMedium, BandHigh}
}

// DescStats are descriptive statistics over one float-valued measure.
type DescStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Stdev  float64 `json:"stdev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// GroupStats summarizes the verses that fell into one band.
type GroupStats struct {
	Verses            int       `json:"verses"`
	AvgWordLength     DescStats `json:"avg_word_length"`
	AvgSentenceLength DescStats `json:"avg_sentence_length"`
}

// Grouping is a tercile split of verses by semantic density: the peak root
// frequency within each verse.
type Grouping struct {
	// Fallback marks a degenerate split: too few verses or collapsed
	// thresholds put every verse in the medium band.
	Fallback bool `json:"fallback"`
	// LowMedium and MediumHigh are the tercile thresholds, zero when
	// Fallback is set.
	LowMedium  float64             `json:"low_medium_threshold"`
	MediumHigh float64             `json:"medium_high_threshold"`
	Groups     map[Band]GroupStats `json:"groups"`
	Members    map[Band][]string   `json:"members"`
}

// density is the highest repetition count of any single root in the verse.
func density(rec *corpus.VerseRecord, analyzer morph.Analyzer) float64 {
	counts := make(map[string]int)
	peak := 0
	for _, tok := range rec.Tokens {
		root := analyzer.RootOf(tok)
		counts[root]++
		if counts[root] > peak {
			peak = counts[root]
		}
	}
	return float64(peak)
}

// tercileThresholds computes exclusive-method quantile cut points at 1/3 and
// 2/3. It requires at least two samples.
func tercileThresholds(values []float64) (low, high float64, ok bool) {
	if len(values) < 2 {
		return 0, 0, false
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	const n = 3
	m := len(sorted) + 1
	cut := func(i int) float64 {
		j := i * m / n
		if j < 1 {
			j = 1
		}
		if j > len(sorted)-1 {
			j = len(sorted) - 1
		}
		delta := float64(i*m - j*n)
		return (sorted[j-1]*(float64(n)-delta) + sorted[j]*delta) / float64(n)
	}
	return cut(1), cut(2), true
}

func describe(values []float64) DescStats {
	if len(values) == 0 {
		return DescStats{}
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mid := len(sorted) / 2
	median := sorted[mid]
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}
	return DescStats{
		Mean:   sum / float64(len(sorted)),
		Median: median,
		Stdev:  analysis.SampleStdevFloat(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
}

// GroupByComplexity splits verses into low/medium/high bands by semantic
// density and summarizes each band's text-complexity measures. When the
// density spread is too flat for distinct terciles, every verse lands in the
// medium band and Fallback is set.
func GroupByComplexity(c *corpus.Corpus, analyzer morph.Analyzer, cfg Config) Grouping {
	if analyzer == nil {
		analyzer = morph.Identity{}
	}

	densities := make([]float64, 0, c.Len())
	metrics := make([]Metrics, 0, c.Len())
	for _, rec := range c.Records {
		densities = append(densities, density(rec, analyzer))
		metrics = append(metrics, Analyze([]*corpus.VerseRecord{rec}, cfg))
	}

	g := Grouping{
		Groups:  make(map[Band]GroupStats),
		Members: make(map[Band][]string),
	}
	low, high, ok := tercileThresholds(densities)
	if !ok || low == high {
		g.Fallback = true
	} else {
		g.LowMedium, g.MediumHigh = low, high
	}

	wordLens := make(map[Band][]float64)
	sentLens := make(map[Band][]float64)
	for i, rec := range c.Records {
		band := BandMedium
		if !g.Fallback {
			switch {
			case densities[i] <= g.LowMedium:
				band = BandLow
			case densities[i] <= g.MediumHigh:
				band = BandMedium
			default:
				band = BandHigh
			}
		}
		g.Members[band] = append(g.Members[band], rec.Ref())
		wordLens[band] = append(wordLens[band], metrics[i].AvgWordLength)
		sentLens[band] = append(sentLens[band], metrics[i].AvgSentenceLength)
	}

	for _, band := range Bands() {
		g.Groups[band] = GroupStats{
			Verses:            len(g.Members[band]),
			AvgWordLength:     describe(wordLens[band]),
			AvgSentenceLength: describe(sentLens[band]),
		}
	}
	return g
}
