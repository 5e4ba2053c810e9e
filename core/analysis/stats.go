package analysis

import (
	"math"
	"sort"
	"strconv"

	"github.com/FocuswithJustin/TanzilLens/core/corpus"
)

// Summary holds the frequency distribution and descriptive statistics of a
// set of verse lengths.
type Summary struct {
	// Frequency maps decimal length keys to their occurrence counts.
	Frequency *Distribution
	Mean      float64
	Median    float64
	// Stdev is the sample standard deviation, 0 for fewer than two samples.
	Stdev float64
	// Modes lists the most frequent lengths, ascending. More than one entry
	// means there is no unique mode.
	Modes []int
}

// UniqueMode returns the single most frequent length. ok is false when the
// distribution has no unique mode.
func (s Summary) UniqueMode() (mode int, ok bool) {
	if len(s.Modes) != 1 {
		return 0, false
	}
	return s.Modes[0], true
}

// Mean returns the arithmetic mean of values, 0 for an empty input.
func Mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// Median returns the median of values, 0 for an empty input.
func Median(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}

// SampleStdev returns the sample standard deviation of values, 0 for fewer
// than two samples.
func SampleStdev(values []int) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	var sum float64
	for _, v := range values {
		d := float64(v) - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

// SampleStdevFloat is SampleStdev over float64 samples.
func SampleStdevFloat(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

// Summarize computes the Summary of a set of lengths. An empty input yields
// the zero Summary with an empty frequency distribution.
func Summarize(lengths []int) Summary {
	s := Summary{Frequency: NewDistribution()}
	if len(lengths) == 0 {
		return s
	}
	for _, l := range lengths {
		s.Frequency.Add(strconv.Itoa(l))
	}

	s.Mean = Mean(lengths)
	s.Median = Median(lengths)
	s.Stdev = SampleStdev(lengths)

	maxCount := 0
	for _, e := range s.Frequency.Entries() {
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}
	for _, e := range s.Frequency.Entries() {
		if e.Count == maxCount {
			l, _ := strconv.Atoi(e.Key)
			s.Modes = append(s.Modes, l)
		}
	}
	sort.Ints(s.Modes)
	return s
}

// SurahLengthSummaries groups verse lengths (token counts) by surah and
// summarizes each group. The returned order is first-seen file order.
func SurahLengthSummaries(c *corpus.Corpus) (map[string]Summary, []string) {
	lengths := make(map[string][]int)
	var order []string
	for _, rec := range c.Records {
		if _, seen := lengths[rec.SurahID]; !seen {
			order = append(order, rec.SurahID)
		}
		lengths[rec.SurahID] = append(lengths[rec.SurahID], len(rec.Tokens))
	}
	summaries := make(map[string]Summary, len(lengths))
	for id, ls := range lengths {
		summaries[id] = Summarize(ls)
	}
	return summaries, order
}

// AyahIndexLengthSummaries groups verse lengths by ayah index across all
// surahs (every first ayah together, every second ayah together, ...).
func AyahIndexLengthSummaries(c *corpus.Corpus) (map[string]Summary, []string) {
	lengths := make(map[string][]int)
	var order []string
	for _, rec := range c.Records {
		if _, seen := lengths[rec.AyahID]; !seen {
			order = append(order, rec.AyahID)
		}
		lengths[rec.AyahID] = append(lengths[rec.AyahID], len(rec.Tokens))
	}
	summaries := make(map[string]Summary, len(lengths))
	for id, ls := range lengths {
		summaries[id] = Summarize(ls)
	}
	return summaries, order
}
