package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"

	tlerrors "github.com/FocuswithJustin/TanzilLens/core/errors"
)

func TestLoadReaderStrictLines(t *testing.T) {
	input := "1|1|بِسْمِ الله\n1|2|الحمد لله\n2|1|الم\n"
	c, err := LoadReader(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}

	first := c.Records[0]
	if first.SurahID != "1" || first.AyahID != "1" {
		t.Errorf("first record = %s|%s, want 1|1", first.SurahID, first.AyahID)
	}
	if first.Raw != "بِسْمِ الله" {
		t.Errorf("Raw = %q", first.Raw)
	}
	if first.Normalized != "بسم الله" {
		t.Errorf("Normalized = %q, want diacritics stripped", first.Normalized)
	}
	if !reflect.DeepEqual(first.Tokens, []string{"بسم", "الله"}) {
		t.Errorf("Tokens = %v", first.Tokens)
	}
	if first.Salvaged {
		t.Error("strict line should not be marked salvaged")
	}

	if got := c.Surahs(); !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Errorf("Surahs() = %v, want [1 2]", got)
	}
	if got := len(c.Surah("1")); got != 2 {
		t.Errorf("Surah(1) has %d verses, want 2", got)
	}
}

func TestLoadReaderDelimiterVariants(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"pipe", "3|7|text here"},
		{"dash", "3-7-text here"},
		{"pipe with spaces", "3 | 7 | text here"},
		{"mixed", "3|7-text here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := LoadReader(strings.NewReader(tt.line), nil)
			if err != nil {
				t.Fatalf("LoadReader() error = %v", err)
			}
			rec := c.Records[0]
			if rec.SurahID != "3" || rec.AyahID != "7" || rec.Raw != "text here" {
				t.Errorf("parsed %s|%s %q", rec.SurahID, rec.AyahID, rec.Raw)
			}
		})
	}
}

func TestLoadReaderFallbackInterleaves(t *testing.T) {
	input := strings.Join([]string{
		"just some text",
		"2|5|proper verse",
		"more loose text",
		"",
		"   ",
		"final loose text",
	}, "\n")

	c, err := LoadReader(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}
	if c.Len() != 4 {
		t.Fatalf("Len() = %d, want 4 (blank lines skipped)", c.Len())
	}

	// Fallback records keep file order and their own running counter.
	wantRefs := []string{"1|1", "2|5", "1|2", "1|3"}
	for i, want := range wantRefs {
		if got := c.Records[i].Ref(); got != want {
			t.Errorf("record %d ref = %s, want %s", i, got, want)
		}
	}
	for _, i := range []int{0, 2, 3} {
		if !c.Records[i].Salvaged {
			t.Errorf("record %d should be salvaged", i)
		}
	}
	if c.Records[1].Salvaged {
		t.Error("record 1 should not be salvaged")
	}
}

func TestLoadMissingFileIsFatal(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), nil)
	if err == nil {
		t.Fatal("Load() of missing file should fail")
	}
	var ioErr *tlerrors.IOError
	if !errors.As(err, &ioErr) {
		t.Errorf("error should be *IOError, got %T", err)
	}
}

func TestLoadXZCompressed(t *testing.T) {
	content := "1|1|AAA\n1|2|BBB\n1|3|AAA\n"

	dir := t.TempDir()
	plainPath := filepath.Join(dir, "corpus.txt")
	xzPath := filepath.Join(dir, "corpus.txt.xz")

	if err := os.WriteFile(plainPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	xf, err := os.Create(xzPath)
	if err != nil {
		t.Fatal(err)
	}
	xw, err := xz.NewWriter(xf)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := xw.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := xw.Close(); err != nil {
		t.Fatal(err)
	}
	xf.Close()

	plain, err := Load(plainPath, nil)
	if err != nil {
		t.Fatalf("Load(plain) error = %v", err)
	}
	compressed, err := Load(xzPath, nil)
	if err != nil {
		t.Fatalf("Load(xz) error = %v", err)
	}

	if plain.Len() != compressed.Len() {
		t.Fatalf("record counts differ: %d vs %d", plain.Len(), compressed.Len())
	}
	for i := range plain.Records {
		if plain.Records[i].Raw != compressed.Records[i].Raw {
			t.Errorf("record %d differs: %q vs %q",
				i, plain.Records[i].Raw, compressed.Records[i].Raw)
		}
	}
	// Same decompressed bytes, same fingerprint.
	if plain.Fingerprint != compressed.Fingerprint {
		t.Errorf("fingerprints differ: %+v vs %+v", plain.Fingerprint, compressed.Fingerprint)
	}
}

func TestFingerprintIsStable(t *testing.T) {
	a, _ := LoadReader(strings.NewReader("1|1|AAA"), nil)
	b, _ := LoadReader(strings.NewReader("1|1|AAA"), nil)
	c, _ := LoadReader(strings.NewReader("1|1|BBB"), nil)

	if a.Fingerprint != b.Fingerprint {
		t.Error("identical bytes should fingerprint identically")
	}
	if a.Fingerprint == c.Fingerprint {
		t.Error("different bytes should fingerprint differently")
	}
	if a.Fingerprint.SHA256 == "" || a.Fingerprint.BLAKE3 == "" {
		t.Error("both digests should be populated")
	}
}

func TestRefAndNumbers(t *testing.T) {
	rec := &VerseRecord{SurahID: "2", AyahID: "255"}
	if rec.Ref() != "2|255" {
		t.Errorf("Ref() = %s", rec.Ref())
	}
	if rec.SurahNumber() != 2 || rec.AyahNumber() != 255 {
		t.Errorf("numbers = %d, %d", rec.SurahNumber(), rec.AyahNumber())
	}
	bad := &VerseRecord{SurahID: "x", AyahID: "y"}
	if bad.SurahNumber() != 0 || bad.AyahNumber() != 0 {
		t.Error("non-numeric identifiers should map to 0")
	}
}
