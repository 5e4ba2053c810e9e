package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/FocuswithJustin/TanzilLens/internal/report"
)

// Test helper functions

func createTestCorpus(t *testing.T, dir string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, "corpus.txt")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		t.Fatalf("failed to create test corpus: %v", err)
	}
	return path
}

func TestAnalyzeCmd_Run(t *testing.T) {
	tempDir := t.TempDir()
	corpusPath := createTestCorpus(t, tempDir,
		"1|1|بسم الله الرحمن الرحيم",
		"1|2|الحمد لله رب العالمين",
		"2|1|الم",
	)

	cmd := &AnalyzeCmd{
		Corpus:    corpusPath,
		Threshold: 2.0,
		Table:     "extended",
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("AnalyzeCmd.Run() error = %v", err)
	}
}

func TestAnalyzeCmd_RunWithStore(t *testing.T) {
	tempDir := t.TempDir()
	corpusPath := createTestCorpus(t, tempDir,
		"1|1|a a a a a a b c d",
		"1|2|b c",
	)
	dbPath := filepath.Join(tempDir, "results.db")

	cmd := &AnalyzeCmd{
		Corpus:    corpusPath,
		Threshold: 1.4,
		Table:     "extended",
		DB:        dbPath,
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("AnalyzeCmd.Run() error = %v", err)
	}

	store, err := report.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	runs, err := store.Runs()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d stored runs, want 1", len(runs))
	}
	if runs[0].Verses != 2 {
		t.Errorf("stored verses = %d, want 2", runs[0].Verses)
	}

	events, err := store.Anomalies(runs[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) == 0 {
		t.Error("expected stored anomalies for the skewed corpus")
	}
}

func TestAnalyzeCmd_MissingCorpus(t *testing.T) {
	cmd := &AnalyzeCmd{
		Corpus:    filepath.Join(t.TempDir(), "no-such-file.txt"),
		Threshold: 2.0,
		Table:     "extended",
	}
	if err := cmd.Run(); err == nil {
		t.Fatal("expected error for missing corpus file")
	}
}

func TestSearchCmd_Run(t *testing.T) {
	tempDir := t.TempDir()
	corpusPath := createTestCorpus(t, tempDir,
		"1|1|alpha beta",
		"1|2|gamma",
	)

	tests := []struct {
		name string
		cmd  SearchCmd
	}{
		{"plain", SearchCmd{Corpus: corpusPath, Query: "alpha"}},
		{"count", SearchCmd{Corpus: corpusPath, Query: "a", Count: true}},
		{"surah", SearchCmd{Corpus: corpusPath, Query: "gamma", Surah: "1"}},
		{"range", SearchCmd{Corpus: corpusPath, Query: "alpha", Range: "1:1-1:2"}},
		{"position", SearchCmd{Corpus: corpusPath, Query: "beta", Position: 2}},
		{"word count", SearchCmd{Corpus: corpusPath, WordCount: 2}},
		{"multiple", SearchCmd{Corpus: corpusPath, MultipleOf: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Run(); err != nil {
				t.Errorf("SearchCmd.Run() error = %v", err)
			}
		})
	}
}

func TestSearchCmd_RejectsZeroMultiple(t *testing.T) {
	corpusPath := createTestCorpus(t, t.TempDir(), "1|1|x")
	cmd := SearchCmd{Corpus: corpusPath, Query: "x", MultipleOf: 0, Count: true}
	// MultipleOf zero means the flag is unset; this is the count path.
	if err := cmd.Run(); err != nil {
		t.Errorf("SearchCmd.Run() error = %v", err)
	}

	bad := SearchCmd{Corpus: corpusPath, Range: "not-a-range", Query: "x"}
	if err := bad.Run(); err == nil {
		t.Error("expected error for malformed range")
	}
}

func TestGematriaCmds_Run(t *testing.T) {
	corpusPath := createTestCorpus(t, t.TempDir(), "1|1|بسم الله")

	if err := (&GematriaValueCmd{Text: "الله", Table: "standard"}).Run(); err != nil {
		t.Errorf("GematriaValueCmd.Run() error = %v", err)
	}
	if err := (&GematriaWordsCmd{Corpus: corpusPath, Value: 66, Table: "standard"}).Run(); err != nil {
		t.Errorf("GematriaWordsCmd.Run() error = %v", err)
	}
	if err := (&GematriaVersesCmd{Corpus: corpusPath, Value: 168, Table: "standard"}).Run(); err != nil {
		t.Errorf("GematriaVersesCmd.Run() error = %v", err)
	}
	if err := (&GematriaTotalCmd{Corpus: corpusPath, Table: "standard", PerSurah: true}).Run(); err != nil {
		t.Errorf("GematriaTotalCmd.Run() error = %v", err)
	}
}

func TestPatternsCmds_Run(t *testing.T) {
	corpusPath := createTestCorpus(t, t.TempDir(),
		"1|1|AAA",
		"1|2|BBB",
		"1|3|AAA",
	)

	if err := (&RepetitionsCmd{Corpus: corpusPath}).Run(); err != nil {
		t.Errorf("RepetitionsCmd.Run() error = %v", err)
	}
	if err := (&RepetitionsCmd{Corpus: corpusPath, Across: true}).Run(); err != nil {
		t.Errorf("RepetitionsCmd.Run() (across) error = %v", err)
	}
	if err := (&PalindromesCmd{Corpus: corpusPath, Min: 2, Max: 5}).Run(); err != nil {
		t.Errorf("PalindromesCmd.Run() error = %v", err)
	}
	if err := (&SymmetryCmd{Corpus: corpusPath}).Run(); err != nil {
		t.Errorf("SymmetryCmd.Run() error = %v", err)
	}
}

func TestAnomaliesCmd_Run(t *testing.T) {
	corpusPath := createTestCorpus(t, t.TempDir(),
		"1|1|a a a a a a b c d",
	)
	cmd := &AnomaliesCmd{Corpus: corpusPath, Threshold: 1.4, Table: "extended"}
	if err := cmd.Run(); err != nil {
		t.Fatalf("AnomaliesCmd.Run() error = %v", err)
	}
}

func TestReadabilityCmds_Run(t *testing.T) {
	corpusPath := createTestCorpus(t, t.TempDir(),
		"1|1|short words",
		"1|2|considerably lengthier vocabulary",
	)
	if err := (&ReadabilityScoreCmd{Corpus: corpusPath, PerSurah: true}).Run(); err != nil {
		t.Errorf("ReadabilityScoreCmd.Run() error = %v", err)
	}
	if err := (&ReadabilityGroupsCmd{Corpus: corpusPath}).Run(); err != nil {
		t.Errorf("ReadabilityGroupsCmd.Run() error = %v", err)
	}
}

func TestRunsCmds_Run(t *testing.T) {
	tempDir := t.TempDir()
	corpusPath := createTestCorpus(t, tempDir, "1|1|a a a a a a b c")
	dbPath := filepath.Join(tempDir, "results.db")

	analyze := &AnalyzeCmd{Corpus: corpusPath, Threshold: 1.4, Table: "extended", DB: dbPath}
	if err := analyze.Run(); err != nil {
		t.Fatal(err)
	}

	if err := (&RunsListCmd{DB: dbPath}).Run(); err != nil {
		t.Errorf("RunsListCmd.Run() error = %v", err)
	}

	store, err := report.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	runs, err := store.Runs()
	store.Close()
	if err != nil || len(runs) == 0 {
		t.Fatalf("runs = %v, err = %v", runs, err)
	}
	if err := (&RunsAnomaliesCmd{DB: dbPath, RunID: runs[0].ID}).Run(); err != nil {
		t.Errorf("RunsAnomaliesCmd.Run() error = %v", err)
	}
}

func TestVersionCmd_Run(t *testing.T) {
	if err := (&VersionCmd{}).Run(); err != nil {
		t.Errorf("VersionCmd.Run() error = %v", err)
	}
}
