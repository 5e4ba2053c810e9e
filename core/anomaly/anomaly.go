// Package anomaly flags distribution keys whose counts deviate from their
// distribution's mean by a z-score threshold.
//
// The same scan applies to every distribution the system produces, whatever
// its semantic origin: corpus-level families and every surah/ayah entry of
// every leveled family. Degenerate inputs (fewer than two distinct keys,
// zero variance) are a defined no-op, not an error.
package anomaly

import (
	"math"

	"github.com/FocuswithJustin/TanzilLens/core/analysis"
	"github.com/FocuswithJustin/TanzilLens/core/observe"
)

// Direction tags which side of the mean an anomalous count sits on.
type Direction string

const (
	// High marks counts above the mean.
	High Direction = "High"
	// Low marks counts below the mean.
	Low Direction = "Low"
)

// DefaultThreshold is the |z| at or above which a key is flagged.
const DefaultThreshold = 2.0

// ContextCorpus labels corpus-level scans.
const ContextCorpus = "Quran"

// Event is one flagged key.
type Event struct {
	Feature   string    `json:"feature_name"`
	Key       string    `json:"key"`
	Context   string    `json:"context_label"`
	Count     int       `json:"count"`
	Mean      float64   `json:"mean"`
	Stdev     float64   `json:"stdev"`
	Z         float64   `json:"z_score"`
	Direction Direction `json:"direction"`
}

// Engine scans distributions with a fixed threshold.
type Engine struct {
	threshold float64
	log       observe.Logger
}

// NewEngine creates an Engine. A non-positive threshold selects
// DefaultThreshold.
func NewEngine(threshold float64, log observe.Logger) *Engine {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Engine{threshold: threshold, log: observe.OrNop(log)}
}

// Threshold returns the engine's |z| threshold.
func (e *Engine) Threshold() float64 {
	return e.threshold
}

// Scan flags every key of d whose count deviates from the distribution mean
// by at least the threshold, in first-seen key order. Distributions with
// fewer than two distinct keys or zero sample variance yield no events.
func (e *Engine) Scan(feature, context string, d *analysis.Distribution) []Event {
	if d == nil || d.Len() < 2 {
		return nil
	}
	counts := d.Counts()
	mean := analysis.Mean(counts)
	stdev := analysis.SampleStdev(counts)
	if stdev == 0 {
		return nil
	}

	var events []Event
	for _, key := range d.Keys() {
		count := d.Count(key)
		z := (float64(count) - mean) / stdev
		if math.Abs(z) < e.threshold {
			continue
		}
		direction := Low
		if z > 0 {
			direction = High
		}
		ev := Event{
			Feature:   feature,
			Key:       key,
			Context:   context,
			Count:     count,
			Mean:      mean,
			Stdev:     stdev,
			Z:         z,
			Direction: direction,
		}
		events = append(events, ev)
		e.log.Notable("anomaly detected",
			"feature", feature,
			"key", key,
			"context", context,
			"count", count,
			"mean", mean,
			"stdev", stdev,
			"z_score", z,
			"direction", string(direction))
	}
	return events
}

// ScanLeveled scans all three levels of ld: the corpus distribution under
// ContextCorpus, then every surah and ayah entry under "Surah: <id>" and
// "Ayah: <surah|ayah>" labels, in file order.
func (e *Engine) ScanLeveled(ld *analysis.LeveledDistribution) []Event {
	if ld == nil {
		return nil
	}
	events := e.Scan(ld.Feature, ContextCorpus, ld.Corpus)
	for _, surah := range ld.SurahKeys() {
		events = append(events, e.Scan(ld.Feature, "Surah: "+surah, ld.BySurah[surah])...)
	}
	for _, ayah := range ld.AyahKeys() {
		events = append(events, e.Scan(ld.Feature, "Ayah: "+ayah, ld.ByAyah[ayah])...)
	}
	return events
}

// ScanAll scans every feature family produced by an analysis run, in the
// given feature order, and returns the concatenated events.
func (e *Engine) ScanAll(results map[string]*analysis.LeveledDistribution, order []string) []Event {
	var events []Event
	for _, feature := range order {
		events = append(events, e.ScanLeveled(results[feature])...)
	}
	e.log.Result("anomaly detection complete", "events", len(events))
	return events
}
