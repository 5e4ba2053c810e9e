// Package morph exposes the optional morphological capability used by the
// root-word and lemma analyses.
//
// The capability is injected at startup: Probe checks once whether a lexicon
// is available and selects either a lexicon-backed analyzer or the built-in
// identity fallback. Callers never branch on availability; an unavailable
// capability or a failed lookup silently returns the input token unchanged.
package morph

import (
	"bufio"
	"os"
	"strings"

	"github.com/FocuswithJustin/TanzilLens/core/cache"
	"github.com/FocuswithJustin/TanzilLens/core/observe"
)

// Analyzer is the morphological capability contract.
type Analyzer interface {
	// RootOf returns the root of token, or token itself when unknown.
	RootOf(token string) string
	// LemmaOf returns the lemma of token, or token itself when unknown.
	LemmaOf(token string) string
}

// Identity is the built-in fallback: every token is its own root and lemma.
type Identity struct{}

// RootOf returns token unchanged.
func (Identity) RootOf(token string) string { return token }

// LemmaOf returns token unchanged.
func (Identity) LemmaOf(token string) string { return token }

// lexEntry is one lexicon row.
type lexEntry struct {
	root  string
	lemma string
}

// Lexicon is a file-backed analyzer. The lexicon format is one entry per
// line: "token<TAB>root<TAB>lemma" (lemma optional). Tokens absent from the
// lexicon fall back to identity.
type Lexicon struct {
	entries map[string]lexEntry
}

// LoadLexicon reads a lexicon file. Malformed lines are skipped.
func LoadLexicon(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lex := &Lexicon{entries: make(map[string]lexEntry)}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}
		e := lexEntry{root: fields[1]}
		if len(fields) > 2 && fields[2] != "" {
			e.lemma = fields[2]
		} else {
			e.lemma = fields[1]
		}
		lex.entries[fields[0]] = e
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lex, nil
}

// RootOf returns the lexicon root of token, or token when absent.
func (l *Lexicon) RootOf(token string) string {
	if e, ok := l.entries[token]; ok && e.root != "" {
		return e.root
	}
	return token
}

// LemmaOf returns the lexicon lemma of token, or token when absent.
func (l *Lexicon) LemmaOf(token string) string {
	if e, ok := l.entries[token]; ok && e.lemma != "" {
		return e.lemma
	}
	return token
}

// Len returns the number of lexicon entries.
func (l *Lexicon) Len() int { return len(l.entries) }

// Probe selects the morphological capability exactly once at startup.
// An empty path, a missing file, or a parse failure selects Identity; the
// degradation is logged and never propagated as an error.
func Probe(lexiconPath string, log observe.Logger) Analyzer {
	log = observe.OrNop(log)
	if lexiconPath == "" {
		log.Result("morphological capability not configured, using identity fallback")
		return Identity{}
	}
	lex, err := LoadLexicon(lexiconPath)
	if err != nil {
		log.Warn("morphological lexicon unavailable, using identity fallback",
			"path", lexiconPath, "error", err.Error())
		return Identity{}
	}
	log.Result("morphological lexicon loaded",
		"path", lexiconPath, "entries", lex.Len())
	return Memoized(lex, cache.DefaultConfig())
}

// memoized wraps an Analyzer with an LRU cache keyed by token.
type memoized struct {
	inner Analyzer
	cache cache.Cache[string, lexEntry]
}

// Memoized returns an Analyzer that caches per-token results.
func Memoized(inner Analyzer, config cache.Config) Analyzer {
	return &memoized{
		inner: inner,
		cache: cache.NewLRUCache[string, lexEntry](config),
	}
}

func (m *memoized) lookup(token string) lexEntry {
	if e, ok := m.cache.Get(token); ok {
		return e
	}
	e := lexEntry{root: m.inner.RootOf(token), lemma: m.inner.LemmaOf(token)}
	m.cache.Put(token, e)
	return e
}

func (m *memoized) RootOf(token string) string  { return m.lookup(token).root }
func (m *memoized) LemmaOf(token string) string { return m.lookup(token).lemma }
