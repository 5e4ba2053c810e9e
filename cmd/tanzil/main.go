// Command tanzil is the CLI for TanzilLens.
// It loads a Tanzil-format corpus and runs frequency, gematria, pattern,
// anomaly, and readability analyses over it.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"

	"github.com/FocuswithJustin/TanzilLens/core/abjad"
	"github.com/FocuswithJustin/TanzilLens/core/analysis"
	"github.com/FocuswithJustin/TanzilLens/core/anomaly"
	"github.com/FocuswithJustin/TanzilLens/core/corpus"
	"github.com/FocuswithJustin/TanzilLens/core/morph"
	"github.com/FocuswithJustin/TanzilLens/core/patterns"
	"github.com/FocuswithJustin/TanzilLens/core/readability"
	"github.com/FocuswithJustin/TanzilLens/core/search"
	"github.com/FocuswithJustin/TanzilLens/internal/logging"
	"github.com/FocuswithJustin/TanzilLens/internal/report"
)

const version = "0.1.0"

// CLI defines the command-line interface for tanzil.
var CLI struct {
	// Global flags
	Log       string `help:"Analysis log file path" type:"path"`
	LogFormat string `name:"log-format" help:"Log format (text, json)" enum:"text,json" default:"text"`
	Lexicon   string `help:"Morphological lexicon file (TSV)" type:"path"`
	Verbose   bool   `short:"v" help:"Echo log records to stderr"`

	Analyze     AnalyzeCmd       `cmd:"" help:"Run the full analysis pipeline"`
	Search      SearchCmd        `cmd:"" help:"Search verses for a word or phrase"`
	Gematria    GematriaGroup    `cmd:"" help:"Gematria (abjad) value operations"`
	Patterns    PatternsGroup    `cmd:"" help:"Structural pattern detectors"`
	Anomalies   AnomaliesCmd     `cmd:"" help:"Scan frequency distributions for outliers"`
	Readability ReadabilityGroup `cmd:"" help:"Readability and complexity analysis"`
	Runs        RunsGroup        `cmd:"" help:"Stored run operations"`
	Version     VersionCmd       `cmd:"" help:"Print version information"`
}

// openSink opens the configured analysis log, or a discard sink when no path
// is set and --verbose is off.
func openSink() (*logging.Sink, error) {
	format := logging.FormatText
	if CLI.LogFormat == "json" {
		format = logging.FormatJSON
	}
	opts := logging.Options{Format: format}
	if CLI.Verbose {
		opts.Echo = os.Stderr
	}
	if CLI.Log == "" {
		if CLI.Verbose {
			return logging.NewWriter(os.Stderr, logging.Options{Format: format}), nil
		}
		return logging.NewDiscard(), nil
	}
	return logging.Open(CLI.Log, opts)
}

func loadCorpus(path string, sink *logging.Sink) (*corpus.Corpus, error) {
	c, err := corpus.Load(path, sink)
	if err != nil {
		return nil, err
	}
	sink.Result("corpus loaded",
		"path", path,
		"verses", c.Len(),
		"tokens", c.TokenCount(),
		"sha256", c.Fingerprint.SHA256)
	return c, nil
}

func tableByName(name string) (abjad.Table, error) {
	switch name {
	case "standard":
		return abjad.Standard, nil
	case "extended", "":
		return abjad.Extended, nil
	}
	return abjad.Table{}, fmt.Errorf("unknown abjad table %q", name)
}

// AnalyzeCmd runs the whole pipeline: frequency suite, anomaly scan, pattern
// detectors, and gematria scalars, optionally persisting results.
type AnalyzeCmd struct {
	Corpus    string  `arg:"" help:"Path to corpus file (xz-compressed accepted)" type:"existingfile"`
	Threshold float64 `help:"Anomaly z-score threshold" default:"2.0"`
	Table     string  `help:"Abjad table (standard, extended)" enum:"standard,extended" default:"extended"`
	DB        string  `help:"SQLite results database path" type:"path"`
}

func (c *AnalyzeCmd) Run() error {
	sink, err := openSink()
	if err != nil {
		return err
	}
	defer sink.Close()

	table, err := tableByName(c.Table)
	if err != nil {
		return err
	}

	corp, err := loadCorpus(c.Corpus, sink)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded: %s\n", c.Corpus)
	fmt.Printf("  Verses: %s\n", humanize.Comma(int64(corp.Len())))
	fmt.Printf("  Tokens: %s\n", humanize.Comma(int64(corp.TokenCount())))
	fmt.Printf("  SHA-256: %s\n", corp.Fingerprint.SHA256)
	fmt.Printf("  BLAKE3: %s\n", corp.Fingerprint.BLAKE3)

	analyzer := morph.Probe(CLI.Lexicon, sink)
	suite := analysis.NewSuite(corp, analyzer, sink, analysis.Config{Table: table})
	results := suite.RunAll()
	fmt.Printf("Analyzed %d feature families\n", len(results))

	engine := anomaly.NewEngine(c.Threshold, sink)
	events := engine.ScanAll(results, analysis.Features())
	fmt.Printf("Anomalies: %d (|z| >= %.2f)\n", len(events), engine.Threshold())

	cfg := patterns.DefaultConfig()
	reps := patterns.FindRepetitionsWithinSurahs(corp)
	corpusReps := patterns.FindRepetitionsAcrossCorpus(corp)
	pals := patterns.FindPalindromes(corp, cfg)
	syms := patterns.FindSymmetry(corp)
	fmt.Printf("Patterns: %d surah repetitions, %d corpus repetitions, %d palindrome findings, %d symmetry entries\n",
		len(reps), len(corpusReps), len(pals), len(syms))

	total := table.CorpusValue(corp)
	fmt.Printf("Total gematria value: %s", humanize.Comma(int64(total)))
	if label := abjad.Classify(total); label != abjad.LabelNone {
		fmt.Printf(" (%s)", label)
		sink.Notable("notable corpus gematria value", "value", total, "label", string(label))
	}
	fmt.Println()

	if c.DB == "" {
		return nil
	}
	store, err := report.Open(c.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	run := report.Run{
		ID:         sink.RunID(),
		CreatedAt:  time.Now(),
		CorpusPath: c.Corpus,
		SHA256:     corp.Fingerprint.SHA256,
		BLAKE3:     corp.Fingerprint.BLAKE3,
		Verses:     corp.Len(),
		Tokens:     corp.TokenCount(),
	}
	if err := store.SaveRun(run); err != nil {
		return err
	}
	if err := store.SaveAnomalies(run.ID, events); err != nil {
		return err
	}
	var findings []report.Finding
	for _, r := range reps {
		findings = append(findings, report.Finding{
			Kind:    "repetition",
			Context: r.SurahID,
			Detail:  fmt.Sprintf("%q x%d (ayahs %s)", r.Text, r.Count, strings.Join(r.AyahIDs, ",")),
		})
	}
	for _, p := range pals {
		if p.Kind == patterns.NoPalindrome {
			continue
		}
		findings = append(findings, report.Finding{
			Kind:    "palindrome",
			Context: p.SurahID + "|" + p.AyahID,
			Detail:  fmt.Sprintf("%s %q", p.Kind, p.Text),
		})
	}
	for _, s := range syms {
		findings = append(findings, report.Finding{
			Kind:    "symmetry",
			Context: s.SurahID,
			Detail:  fmt.Sprintf("%d common tokens", s.CommonCount),
		})
	}
	if err := store.SaveFindings(run.ID, findings); err != nil {
		return err
	}
	fmt.Printf("Stored run %s in %s (%s driver)\n", run.ID, c.DB, report.DriverType())
	return nil
}

// SearchCmd searches verses for a word or phrase.
type SearchCmd struct {
	Corpus        string `arg:"" help:"Path to corpus file" type:"existingfile"`
	Query         string `arg:"" help:"Word or phrase to search for"`
	Surah         string `help:"Restrict to one surah"`
	Range         string `name:"range" help:"Restrict to a verse range (e.g. 2:10-2:20)"`
	Position      int    `help:"Require the match to start at this 1-based word position"`
	CaseSensitive bool   `name:"case-sensitive" help:"Match case exactly"`
	Count         bool   `help:"Print the total occurrence count instead of verses"`
	WordCount     int    `name:"word-count" help:"Instead of text search, list verses with exactly this many words"`
	MultipleOf    int    `name:"multiple-of" help:"Instead of text search, list verses whose word count is a multiple of this"`
}

func (c *SearchCmd) Run() error {
	sink, err := openSink()
	if err != nil {
		return err
	}
	defer sink.Close()

	corp, err := loadCorpus(c.Corpus, sink)
	if err != nil {
		return err
	}
	opts := search.Options{CaseSensitive: c.CaseSensitive}

	var hits []*corpus.VerseRecord
	switch {
	case c.WordCount > 0:
		hits = search.VersesByWordCount(corp, c.WordCount)
	case c.MultipleOf != 0:
		hits, err = search.VersesByWordCountMultiple(corp, c.MultipleOf)
		if err != nil {
			return err
		}
	case c.Count:
		fmt.Printf("%d\n", search.CountOccurrences(corp, c.Query))
		return nil
	case c.Position > 0:
		if strings.ContainsAny(c.Query, " \t") {
			hits = search.PhraseAt(corp, c.Query, c.Position, opts)
		} else {
			hits = search.WordAt(corp, c.Query, c.Position, opts)
		}
	case c.Range != "":
		r, err := search.ParseVerseRange(c.Range)
		if err != nil {
			return err
		}
		hits = search.VersesInRange(corp, c.Query, r, opts)
	case c.Surah != "":
		hits = search.VersesInSurah(corp, c.Query, c.Surah, opts)
	default:
		hits = search.Verses(corp, c.Query, opts)
	}

	for _, rec := range hits {
		fmt.Printf("%s\t%s\n", rec.Ref(), rec.Raw)
	}
	fmt.Printf("Found %d verses\n", len(hits))
	return nil
}

// GematriaGroup contains abjad value operations.
type GematriaGroup struct {
	Value  GematriaValueCmd  `cmd:"" help:"Compute the abjad value of a word or phrase"`
	Words  GematriaWordsCmd  `cmd:"" help:"Find corpus words with a given abjad value"`
	Verses GematriaVersesCmd `cmd:"" help:"Find verses whose total abjad value matches"`
	Total  GematriaTotalCmd  `cmd:"" help:"Compute the whole-corpus abjad value"`
}

// GematriaValueCmd computes the abjad value of text.
type GematriaValueCmd struct {
	Text  string `arg:"" help:"Arabic word or phrase"`
	Table string `help:"Abjad table (standard, extended)" enum:"standard,extended" default:"extended"`
}

func (c *GematriaValueCmd) Run() error {
	table, err := tableByName(c.Table)
	if err != nil {
		return err
	}
	v := table.Value(c.Text)
	fmt.Printf("%d", v)
	if label := abjad.Classify(v); label != abjad.LabelNone {
		fmt.Printf(" (%s)", label)
	}
	fmt.Println()
	return nil
}

// GematriaWordsCmd finds words with a given abjad value.
type GematriaWordsCmd struct {
	Corpus string `arg:"" help:"Path to corpus file" type:"existingfile"`
	Value  int    `arg:"" help:"Target abjad value"`
	Table  string `help:"Abjad table (standard, extended)" enum:"standard,extended" default:"extended"`
}

func (c *GematriaWordsCmd) Run() error {
	sink, err := openSink()
	if err != nil {
		return err
	}
	defer sink.Close()

	table, err := tableByName(c.Table)
	if err != nil {
		return err
	}
	corp, err := loadCorpus(c.Corpus, sink)
	if err != nil {
		return err
	}
	hits := search.WordsByValue(corp, table, c.Value)
	for _, h := range hits {
		fmt.Printf("%s|%s\t%s\n", h.SurahID, h.AyahID, h.Word)
	}
	fmt.Printf("Found %d words with value %d\n", len(hits), c.Value)
	return nil
}

// GematriaVersesCmd finds verses whose whole-verse abjad value matches.
type GematriaVersesCmd struct {
	Corpus string `arg:"" help:"Path to corpus file" type:"existingfile"`
	Value  int    `arg:"" help:"Target abjad value"`
	Table  string `help:"Abjad table (standard, extended)" enum:"standard,extended" default:"extended"`
}

func (c *GematriaVersesCmd) Run() error {
	sink, err := openSink()
	if err != nil {
		return err
	}
	defer sink.Close()

	table, err := tableByName(c.Table)
	if err != nil {
		return err
	}
	corp, err := loadCorpus(c.Corpus, sink)
	if err != nil {
		return err
	}
	hits := search.VersesByVerseValue(corp, table, c.Value)
	for _, rec := range hits {
		fmt.Printf("%s\t%s\n", rec.Ref(), rec.Raw)
	}
	fmt.Printf("Found %d verses with value %d\n", len(hits), c.Value)
	return nil
}

// GematriaTotalCmd computes corpus and per-surah abjad totals.
type GematriaTotalCmd struct {
	Corpus   string `arg:"" help:"Path to corpus file" type:"existingfile"`
	Table    string `help:"Abjad table (standard, extended)" enum:"standard,extended" default:"extended"`
	PerSurah bool   `name:"per-surah" help:"Also print per-surah totals"`
}

func (c *GematriaTotalCmd) Run() error {
	sink, err := openSink()
	if err != nil {
		return err
	}
	defer sink.Close()

	table, err := tableByName(c.Table)
	if err != nil {
		return err
	}
	corp, err := loadCorpus(c.Corpus, sink)
	if err != nil {
		return err
	}
	if c.PerSurah {
		sums := table.SurahValues(corp)
		for _, surah := range corp.Surahs() {
			v := sums[surah]
			fmt.Printf("Surah %s: %s", surah, humanize.Comma(int64(v)))
			if label := abjad.Classify(v); label != abjad.LabelNone {
				fmt.Printf(" (%s)", label)
			}
			fmt.Println()
		}
	}
	total := table.CorpusValue(corp)
	fmt.Printf("Total: %s", humanize.Comma(int64(total)))
	if label := abjad.Classify(total); label != abjad.LabelNone {
		fmt.Printf(" (%s)", label)
	}
	fmt.Println()
	return nil
}

// PatternsGroup contains the structural pattern detectors.
type PatternsGroup struct {
	Repetitions RepetitionsCmd `cmd:"" help:"Detect repeated verses"`
	Palindromes PalindromesCmd `cmd:"" help:"Detect word and phrase palindromes"`
	Symmetry    SymmetryCmd    `cmd:"" help:"Measure first-half/second-half token overlap per surah"`
}

// RepetitionsCmd detects repeated verses.
type RepetitionsCmd struct {
	Corpus string `arg:"" help:"Path to corpus file" type:"existingfile"`
	Across bool   `help:"Report corpus-wide repetitions instead of per-surah"`
}

func (c *RepetitionsCmd) Run() error {
	sink, err := openSink()
	if err != nil {
		return err
	}
	defer sink.Close()

	corp, err := loadCorpus(c.Corpus, sink)
	if err != nil {
		return err
	}
	if c.Across {
		reps := patterns.FindRepetitionsAcrossCorpus(corp)
		for _, r := range reps {
			fmt.Printf("x%d\t%s\t%q\n", r.Count, strings.Join(r.Sites, ","), r.Text)
			sink.Notable("repeated verse across corpus",
				"text", r.Text, "count", r.Count)
		}
		fmt.Printf("Found %d repeated texts\n", len(reps))
		return nil
	}
	reps := patterns.FindRepetitionsWithinSurahs(corp)
	for _, r := range reps {
		fmt.Printf("surah %s\tx%d\tayahs %s\t%q\n",
			r.SurahID, r.Count, strings.Join(r.AyahIDs, ","), r.Text)
		sink.Notable("repeated verse within surah",
			"surah", r.SurahID, "text", r.Text, "count", r.Count)
	}
	fmt.Printf("Found %d repeated texts\n", len(reps))
	return nil
}

// PalindromesCmd detects palindromes.
type PalindromesCmd struct {
	Corpus string `arg:"" help:"Path to corpus file" type:"existingfile"`
	Min    int    `help:"Minimum phrase window in tokens" default:"2"`
	Max    int    `help:"Maximum phrase window in tokens" default:"5"`
}

func (c *PalindromesCmd) Run() error {
	sink, err := openSink()
	if err != nil {
		return err
	}
	defer sink.Close()

	corp, err := loadCorpus(c.Corpus, sink)
	if err != nil {
		return err
	}
	pals := patterns.FindPalindromes(corp, patterns.Config{PhraseMin: c.Min, PhraseMax: c.Max})
	for _, p := range pals {
		if p.Kind == patterns.NoPalindrome {
			fmt.Println(p.Text)
			continue
		}
		fmt.Printf("%s|%s\t%s\t%q\n", p.SurahID, p.AyahID, p.Kind, p.Text)
		sink.Notable("palindrome found",
			"surah", p.SurahID, "ayah", p.AyahID, "kind", string(p.Kind), "text", p.Text)
	}
	return nil
}

// SymmetryCmd measures per-surah half overlap.
type SymmetryCmd struct {
	Corpus string `arg:"" help:"Path to corpus file" type:"existingfile"`
}

func (c *SymmetryCmd) Run() error {
	sink, err := openSink()
	if err != nil {
		return err
	}
	defer sink.Close()

	corp, err := loadCorpus(c.Corpus, sink)
	if err != nil {
		return err
	}
	for _, s := range patterns.FindSymmetry(corp) {
		fmt.Printf("surah %s\t%d common\t%s\n",
			s.SurahID, s.CommonCount, strings.Join(s.CommonTokens, " "))
	}
	return nil
}

// AnomaliesCmd scans every frequency family for outliers.
type AnomaliesCmd struct {
	Corpus    string  `arg:"" help:"Path to corpus file" type:"existingfile"`
	Threshold float64 `help:"Anomaly z-score threshold" default:"2.0"`
	Table     string  `help:"Abjad table (standard, extended)" enum:"standard,extended" default:"extended"`
}

func (c *AnomaliesCmd) Run() error {
	sink, err := openSink()
	if err != nil {
		return err
	}
	defer sink.Close()

	table, err := tableByName(c.Table)
	if err != nil {
		return err
	}
	corp, err := loadCorpus(c.Corpus, sink)
	if err != nil {
		return err
	}
	analyzer := morph.Probe(CLI.Lexicon, sink)
	suite := analysis.NewSuite(corp, analyzer, sink, analysis.Config{Table: table})
	engine := anomaly.NewEngine(c.Threshold, sink)
	events := engine.ScanAll(suite.RunAll(), analysis.Features())
	for _, ev := range events {
		fmt.Printf("%s\t%s\t%q\tcount=%d z=%.2f %s\n",
			ev.Feature, ev.Context, ev.Key, ev.Count, ev.Z, ev.Direction)
	}
	fmt.Printf("Found %d anomalies (|z| >= %.2f)\n", len(events), engine.Threshold())
	return nil
}

// ReadabilityGroup contains readability operations.
type ReadabilityGroup struct {
	Score  ReadabilityScoreCmd  `cmd:"" help:"Compute readability scores"`
	Groups ReadabilityGroupsCmd `cmd:"" help:"Group verses into complexity terciles"`
}

// ReadabilityScoreCmd computes readability metrics.
type ReadabilityScoreCmd struct {
	Corpus   string `arg:"" help:"Path to corpus file" type:"existingfile"`
	PerSurah bool   `name:"per-surah" help:"Also print per-surah scores"`
}

func printMetrics(prefix string, m readability.Metrics) {
	fmt.Printf("%swords=%d avg_word_len=%.2f avg_sentence_len=%.2f difficult=%.2f dale_chall=%.2f smog=%.2f\n",
		prefix, m.WordCount, m.AvgWordLength, m.AvgSentenceLength,
		m.DifficultRatio, m.DaleChall, m.SMOG)
}

func (c *ReadabilityScoreCmd) Run() error {
	sink, err := openSink()
	if err != nil {
		return err
	}
	defer sink.Close()

	corp, err := loadCorpus(c.Corpus, sink)
	if err != nil {
		return err
	}
	cfg := readability.DefaultConfig()
	if c.PerSurah {
		metrics, order := readability.SurahMetrics(corp, cfg)
		for _, surah := range order {
			printMetrics(fmt.Sprintf("Surah %s\t", surah), metrics[surah])
		}
	}
	printMetrics("Corpus\t", readability.CorpusMetrics(corp, cfg))
	return nil
}

// ReadabilityGroupsCmd groups verses into complexity terciles.
type ReadabilityGroupsCmd struct {
	Corpus string `arg:"" help:"Path to corpus file" type:"existingfile"`
}

func (c *ReadabilityGroupsCmd) Run() error {
	sink, err := openSink()
	if err != nil {
		return err
	}
	defer sink.Close()

	corp, err := loadCorpus(c.Corpus, sink)
	if err != nil {
		return err
	}
	analyzer := morph.Probe(CLI.Lexicon, sink)
	g := readability.GroupByComplexity(corp, analyzer, readability.DefaultConfig())
	if g.Fallback {
		fmt.Println("Density spread too flat for terciles; all verses grouped as medium")
	} else {
		fmt.Printf("Thresholds: low/medium %.3f, medium/high %.3f\n", g.LowMedium, g.MediumHigh)
	}
	for _, band := range readability.Bands() {
		stats := g.Groups[band]
		fmt.Printf("%s\t%d verses\tavg_word_len mean=%.2f\tavg_sentence_len mean=%.2f\n",
			band, stats.Verses, stats.AvgWordLength.Mean, stats.AvgSentenceLength.Mean)
	}
	return nil
}

// RunsGroup contains stored run operations.
type RunsGroup struct {
	List      RunsListCmd      `cmd:"" help:"List stored runs"`
	Anomalies RunsAnomaliesCmd `cmd:"" help:"Print a stored run's anomalies"`
}

// RunsListCmd lists stored runs.
type RunsListCmd struct {
	DB string `arg:"" help:"SQLite results database path" type:"existingfile"`
}

func (c *RunsListCmd) Run() error {
	store, err := report.Open(c.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Runs()
	if err != nil {
		return err
	}
	for _, r := range runs {
		fmt.Printf("%s\t%s\t%s\t%s verses\n",
			r.ID, r.CreatedAt.Format(time.RFC3339), r.CorpusPath,
			humanize.Comma(int64(r.Verses)))
	}
	fmt.Printf("%d runs\n", len(runs))
	return nil
}

// RunsAnomaliesCmd prints a stored run's anomalies.
type RunsAnomaliesCmd struct {
	DB    string `arg:"" help:"SQLite results database path" type:"existingfile"`
	RunID string `arg:"" help:"Run identifier"`
}

func (c *RunsAnomaliesCmd) Run() error {
	store, err := report.Open(c.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	events, err := store.Anomalies(c.RunID)
	if err != nil {
		return err
	}
	for _, ev := range events {
		fmt.Printf("%s\t%s\t%q\tcount=%d z=%.2f %s\n",
			ev.Feature, ev.Context, ev.Key, ev.Count, ev.Z, ev.Direction)
	}
	fmt.Printf("%d anomalies\n", len(events))
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("tanzil version %s (sqlite driver: %s)\n", version, report.DriverType())
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("tanzil"),
		kong.Description("TanzilLens - scripture corpus text analytics"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
