package search

import (
	"fmt"
	"math"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/TanzilLens/core/corpus"
	tlerrors "github.com/FocuswithJustin/TanzilLens/core/errors"
)

// VerseRange represents a parsed verse reference that may span ranges.
type VerseRange struct {
	SurahStart int  `parser:"@Number"`
	AyahStart  *int `parser:"( ':' @Number )?"`
	SurahEnd   *int `parser:"( '-' @Number"`
	AyahEnd    *int `parser:"  ( ':' @Number )? )?"`
}

// referenceLexer tokenizes verse references.
var referenceLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `\d+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var referenceParser = participle.MustBuild[VerseRange](
	participle.Lexer(referenceLexer),
	participle.Elide("Whitespace"),
)

// ParseVerseRange parses a verse reference string into a range.
// Supported formats:
//   - "2:10" (surah:ayah)
//   - "2:10-2:20" (range across surahs)
//   - "2:10-20" (ayah range within one surah)
//   - "2-4" (surah range)
//   - "2" (full surah)
func ParseVerseRange(input string) (*VerseRange, error) {
	ref, err := referenceParser.ParseString("", input)
	if err != nil {
		return nil, &tlerrors.ParseError{
			Format:  "verse reference",
			Message: fmt.Sprintf("%q: %v", input, err),
			Err:     err,
		}
	}

	// Post-processing: fix ayah range detection. "2:10-20" parses with the
	// 20 in SurahEnd, but when AyahStart is set and no second colon follows,
	// the number after the dash is an ayah bound in the same surah.
	if ref.AyahStart != nil && ref.SurahEnd != nil && ref.AyahEnd == nil {
		ref.AyahEnd = ref.SurahEnd
		ref.SurahEnd = nil
	}

	return ref, nil
}

// IsRange reports whether the reference spans more than one verse.
func (r *VerseRange) IsRange() bool {
	return r.SurahEnd != nil || r.AyahEnd != nil || r.AyahStart == nil
}

// Bounds returns the inclusive (surah, ayah) endpoints of the range.
// An omitted start ayah means the surah's first verse; an omitted end ayah
// means the end surah's last verse.
func (r *VerseRange) Bounds() (startSurah, startAyah, endSurah, endAyah int) {
	startSurah = r.SurahStart
	startAyah = 1
	if r.AyahStart != nil {
		startAyah = *r.AyahStart
	}

	endSurah = startSurah
	switch {
	case r.SurahEnd != nil:
		endSurah = *r.SurahEnd
		endAyah = math.MaxInt
		if r.AyahEnd != nil {
			endAyah = *r.AyahEnd
		}
	case r.AyahEnd != nil:
		endAyah = *r.AyahEnd
	case r.AyahStart != nil:
		endAyah = *r.AyahStart
	default:
		endAyah = math.MaxInt
	}
	return startSurah, startAyah, endSurah, endAyah
}

// Contains reports whether rec falls inside the range. Records with
// non-numeric identifiers never match.
func (r *VerseRange) Contains(rec *corpus.VerseRecord) bool {
	s, a := rec.SurahNumber(), rec.AyahNumber()
	if s == 0 || a == 0 {
		return false
	}
	ss, sa, es, ea := r.Bounds()
	if s < ss || (s == ss && a < sa) {
		return false
	}
	if s > es || (s == es && a > ea) {
		return false
	}
	return true
}

// String returns the canonical form of the reference.
func (r *VerseRange) String() string {
	out := fmt.Sprintf("%d", r.SurahStart)
	if r.AyahStart != nil {
		out += fmt.Sprintf(":%d", *r.AyahStart)
	}
	switch {
	case r.SurahEnd != nil:
		out += fmt.Sprintf("-%d", *r.SurahEnd)
		if r.AyahEnd != nil {
			out += fmt.Sprintf(":%d", *r.AyahEnd)
		}
	case r.AyahEnd != nil:
		out += fmt.Sprintf("-%d", *r.AyahEnd)
	}
	return out
}
