// Package arabic provides orthographic normalization and tokenization for
// Arabic scripture text.
//
// Normalization is a fixed pipeline whose step order is significant:
//
//  1. Unicode NFC composition
//  2. removal of invisible formatting marks
//  3. removal of tashkeel diacritics
//  4. folding of letter variants to one canonical form per phoneme class
//  5. conditional taa-marbuta conversion (depends on step 4's output)
//  6. case folding and trimming
//
// Both Normalize and Tokenize are pure functions of their input.
package arabic

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Invisible formatting marks stripped before any other step.
const (
	zeroWidthSpace   = '\u200b'
	zeroWidthNonJoin = '\u200c'
	zeroWidthJoin    = '\u200d'
	zeroWidthNoBreak = '\ufeff' // BOM when mid-text
)

// Tashkeel range plus the superscript alef.
const (
	tashkeelFirst   = 'ً' // fathatan
	tashkeelLast    = 'ْ' // sukun
	superscriptAlef = 'ٰ'
)

// Letter variants folded in step 4.
const (
	alef           = 'ا' // U+0627
	alefHamzaAbove = 'أ' // U+0623
	alefHamzaBelow = 'إ' // U+0625
	alefMadda      = 'آ' // U+0622
	yaa            = 'ي' // U+064A
	alefMaqsura    = 'ى' // U+0649
	yaaHamza       = 'ئ' // U+0626
	waw            = 'و' // U+0648
	wawHamza       = 'ؤ' // U+0624
	taaMarbuta     = 'ة' // U+0629
	haa            = 'ه' // U+0647
)

func isInvisible(r rune) bool {
	switch r {
	case zeroWidthSpace, zeroWidthNonJoin, zeroWidthJoin, zeroWidthNoBreak:
		return true
	}
	return false
}

func isTashkeel(r rune) bool {
	return (r >= tashkeelFirst && r <= tashkeelLast) || r == superscriptAlef
}

// foldVariant maps historical letter variants to their canonical form.
// Taa marbuta is handled separately because its conversion is conditional.
func foldVariant(r rune) rune {
	switch r {
	case alefHamzaAbove, alefHamzaBelow, alefMadda:
		return alef
	case alefMaqsura, yaaHamza:
		return yaa
	case wawHamza:
		return waw
	}
	return r
}

// Normalize canonicalizes Arabic orthography.
//
// The taa-marbuta rule is conditional: a terminal round taa converts to haa
// only when immediately preceded by the canonical yaa that variant folding
// may itself have produced, so folding must run first.
func Normalize(text string) string {
	text = norm.NFC.String(text)

	var b strings.Builder
	b.Grow(len(text))

	var prev rune
	for _, r := range text {
		if isInvisible(r) || isTashkeel(r) {
			continue
		}
		r = foldVariant(r)
		if r == taaMarbuta && prev == yaa {
			r = haa
		}
		b.WriteRune(r)
		prev = r
	}

	return strings.TrimSpace(strings.ToLower(b.String()))
}
