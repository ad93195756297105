package search

import (
	"github.com/rs/zerolog"
	"golang.org/x/text/unicode/norm"
)

// Finder holds the matching policy shared by Scan, Cursor and the replace
// operations. A Finder is immutable after New and safe to share.
type Finder struct {
	legacySpaceBoundary bool
	wholeWordReplace    bool
	normalizeTerm       bool
	logger              zerolog.Logger
}

// New creates a Finder with the given options.
func New(opts ...Option) *Finder {
	f := &Finder{
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// defaultFinder backs the package-level functions.
var defaultFinder = New()

// term returns the text actually searched for.
func (f *Finder) term(q Query) string {
	if f.normalizeTerm {
		return norm.NFC.String(q.Term)
	}
	return q.Term
}

// Scan returns every match of term in text using the default Finder.
// An empty term yields an empty MatchSet.
func Scan(text, term string, wholeWord bool) MatchSet {
	return defaultFinder.Scan(text, Query{Term: term, WholeWord: wholeWord})
}

// NewCursor returns a Cursor using the default Finder.
func NewCursor() *Cursor {
	return defaultFinder.NewCursor()
}

// ReplaceNext replaces the next occurrence after the insertion point using
// the default Finder. See (*Finder).ReplaceNext.
func ReplaceNext(doc Document, c *Cursor, q Query, replacement string) (Range, error) {
	return defaultFinder.ReplaceNext(doc, c, q, replacement)
}

// ReplaceAll replaces every occurrence using the default Finder.
// See (*Finder).ReplaceAll.
func ReplaceAll(doc Document, q Query, replacement string) (int, error) {
	return defaultFinder.ReplaceAll(doc, q, replacement)
}
