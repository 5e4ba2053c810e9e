package analysis

import (
	"math"
	"reflect"
	"testing"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]int{2, 4, 4, 6})

	if s.Mean != 4 {
		t.Errorf("Mean = %v, want 4", s.Mean)
	}
	if s.Median != 4 {
		t.Errorf("Median = %v, want 4", s.Median)
	}
	// Sample stdev of {2,4,4,6} is sqrt(8/3).
	want := math.Sqrt(8.0 / 3.0)
	if math.Abs(s.Stdev-want) > 1e-9 {
		t.Errorf("Stdev = %v, want %v", s.Stdev, want)
	}
	if mode, ok := s.UniqueMode(); !ok || mode != 4 {
		t.Errorf("UniqueMode() = %d, %v; want 4, true", mode, ok)
	}
	if got := s.Frequency.Count("4"); got != 2 {
		t.Errorf("Frequency.Count(4) = %d, want 2", got)
	}
}

func TestSummarizeNoUniqueMode(t *testing.T) {
	s := Summarize([]int{1, 2, 1, 2})
	if !reflect.DeepEqual(s.Modes, []int{1, 2}) {
		t.Errorf("Modes = %v, want [1 2]", s.Modes)
	}
	if _, ok := s.UniqueMode(); ok {
		t.Error("UniqueMode() should report no unique mode")
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Mean != 0 || s.Median != 0 || s.Stdev != 0 {
		t.Errorf("empty Summary = %+v, want zeros", s)
	}
	if len(s.Modes) != 0 {
		t.Errorf("Modes = %v, want empty", s.Modes)
	}
	if s.Frequency.Len() != 0 {
		t.Error("Frequency should be empty")
	}
}

func TestSummarizeSingleSample(t *testing.T) {
	s := Summarize([]int{5})
	if s.Stdev != 0 {
		t.Errorf("single sample Stdev = %v, want 0", s.Stdev)
	}
	if mode, ok := s.UniqueMode(); !ok || mode != 5 {
		t.Errorf("UniqueMode() = %d, %v", mode, ok)
	}
}

func TestMedianEvenCount(t *testing.T) {
	if got := Median([]int{1, 2, 3, 4}); got != 2.5 {
		t.Errorf("Median = %v, want 2.5", got)
	}
	if got := Median([]int{3, 1, 2}); got != 2 {
		t.Errorf("Median = %v, want 2", got)
	}
}

func TestSurahLengthSummaries(t *testing.T) {
	c := loadTest(t,
		"1|1|a b c",
		"1|2|a b c d e",
		"2|1|x",
	)
	summaries, order := SurahLengthSummaries(c)

	if !reflect.DeepEqual(order, []string{"1", "2"}) {
		t.Errorf("order = %v", order)
	}
	if got := summaries["1"].Mean; got != 4 {
		t.Errorf("surah 1 mean = %v, want 4", got)
	}
	if got := summaries["2"].Mean; got != 1 {
		t.Errorf("surah 2 mean = %v, want 1", got)
	}
}

func TestAyahIndexLengthSummaries(t *testing.T) {
	c := loadTest(t,
		"1|1|a b",
		"1|2|a b c",
		"2|1|x y z w",
	)
	summaries, order := AyahIndexLengthSummaries(c)

	if !reflect.DeepEqual(order, []string{"1", "2"}) {
		t.Errorf("order = %v", order)
	}
	// Ayah index 1 collects lengths 2 (from 1|1) and 4 (from 2|1).
	if got := summaries["1"].Mean; got != 3 {
		t.Errorf("ayah index 1 mean = %v, want 3", got)
	}
}
