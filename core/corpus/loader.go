package corpus

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/TanzilLens/core/arabic"
	"github.com/FocuswithJustin/TanzilLens/core/errors"
	"github.com/FocuswithJustin/TanzilLens/core/observe"
)

// DefaultSurah is the section every salvage-parsed line is assigned to.
const DefaultSurah = "1"

// strictLine is rule 1 of the line grammar: surah <delim> ayah <delim> text,
// with <delim> in {|, -} and flexible surrounding whitespace. Rule 2, applied
// only when rule 1 fails, treats the whole line as verse text.
var strictLine = regexp.MustCompile(`^\s*(\d+)\s*[|-]\s*(\d+)\s*[|-]\s*(\S.*)$`)

// maxLineBytes bounds scanner buffers; corpus lines are short but the limit
// keeps a malformed file from aborting the scan.
const maxLineBytes = 1 << 20

// Load reads the corpus file at path. Files ending in ".xz" are decompressed
// transparently. A missing or unreadable file is fatal; no partial corpus is
// ever returned.
func Load(path string, log observe.Logger) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, errors.NewIO("decompress", path, err)
		}
		r = xr
	}

	c, err := LoadReader(r, log)
	if err != nil {
		return nil, errors.Wrapf(err, "loading corpus %s", path)
	}
	c.Path = path
	return c, nil
}

// LoadReader reads a corpus from r. Every record is normalized and tokenized
// before the corpus is returned; records are immutable afterwards.
func LoadReader(r io.Reader, log observe.Logger) (*Corpus, error) {
	log = observe.OrNop(log)

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewIO("read", "", err)
	}

	c := &Corpus{Fingerprint: fingerprint(raw)}

	scanner := bufio.NewScanner(bytes.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	fallbackAyah := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		rec := parseLine(line, &fallbackAyah)
		if rec.Salvaged {
			log.Warn("salvage-parsed corpus line",
				"line", lineNo, "ayah", rec.AyahID)
		}

		rec.Normalized = arabic.Normalize(rec.Raw)
		rec.Tokens = arabic.Tokenize(rec.Normalized)
		c.Records = append(c.Records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewIO("scan", "", err)
	}

	log.Result("corpus loaded",
		"verses", len(c.Records),
		"sha256", c.Fingerprint.SHA256,
		"blake3", c.Fingerprint.BLAKE3)
	return c, nil
}

// parseLine applies the two grammar rules in order. The fallback counter is
// shared across all salvaged lines of one load so their ayah identifiers
// interleave with explicit records in file order.
func parseLine(line string, fallbackAyah *int) *VerseRecord {
	if m := strictLine.FindStringSubmatch(line); m != nil {
		return &VerseRecord{
			SurahID: m[1],
			AyahID:  m[2],
			Raw:     strings.TrimSpace(m[3]),
		}
	}
	*fallbackAyah++
	return &VerseRecord{
		SurahID:  DefaultSurah,
		AyahID:   strconv.Itoa(*fallbackAyah),
		Raw:      line,
		Salvaged: true,
	}
}

// fingerprint hashes the raw corpus bytes with both SHA-256 and BLAKE3.
func fingerprint(raw []byte) Fingerprint {
	sum := sha256.Sum256(raw)
	b3 := blake3.Sum256(raw)
	return Fingerprint{
		SHA256: hex.EncodeToString(sum[:]),
		BLAKE3: hex.EncodeToString(b3[:]),
	}
}
