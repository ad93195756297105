package search

import (
	"github.com/rs/zerolog"
)

// Option configures a Finder.
type Option func(*Finder)

// WithLegacySpaceBoundary requires the character before a whole-word match
// to be a literal space, so a word at the start of the document or right
// after a newline or tab never matches.
func WithLegacySpaceBoundary() Option {
	return func(f *Finder) {
		f.legacySpaceBoundary = true
	}
}

// WithWholeWordReplace makes ReplaceNext and ReplaceAll honor the query's
// WholeWord flag. Without it replace always uses substring search.
func WithWholeWordReplace() Option {
	return func(f *Finder) {
		f.wholeWordReplace = true
	}
}

// WithNormalizedTerm converts the search term to Unicode NFC before
// matching. The document text is never normalized.
func WithNormalizedTerm() Option {
	return func(f *Finder) {
		f.normalizeTerm = true
	}
}

// WithLogger sets the logger used for debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(f *Finder) {
		f.logger = logger
	}
}
