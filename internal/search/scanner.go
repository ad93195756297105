package search

import (
	"strings"

	"github.com/dshills/notepad/internal/engine/buffer"
)

// Range is a half-open byte span in a document.
type Range = buffer.Range

// Scan returns every match of q in text, in document order. An empty term
// or one that is not valid UTF-8 matches nothing.
//
// Substring mode reports each literal occurrence and resumes the search at
// its end, so matches never overlap. Whole-word mode accepts an occurrence
// only when it starts a word and the word is exactly the term; the search
// then resumes at the end of that word.
func (f *Finder) Scan(text string, q Query) MatchSet {
	if checkQuery(q) != nil {
		return nil
	}
	term := f.term(q)

	var matches MatchSet
	pos := buffer.ByteOffset(0)
	for {
		r, ok := f.nextMatch(text, term, pos, q.WholeWord)
		if !ok {
			break
		}
		matches = append(matches, r)
		pos = r.End
	}

	f.logger.Debug().
		Str("term", term).
		Bool("wholeWord", q.WholeWord).
		Int("matches", len(matches)).
		Msg("scan")

	return matches
}

// nextMatch finds the first accepted occurrence of term at or after from.
func (f *Finder) nextMatch(text, term string, from buffer.ByteOffset, wholeWord bool) (Range, bool) {
	for from <= buffer.ByteOffset(len(text)) {
		i := strings.Index(text[from:], term)
		if i < 0 {
			return Range{}, false
		}
		start := from + buffer.ByteOffset(i)

		if !wholeWord {
			return Range{Start: start, End: start + buffer.ByteOffset(len(term))}, true
		}

		end := buffer.WordEnd(text, start)
		if f.startsWord(text, start) && text[start:end] == term {
			return Range{Start: start, End: end}, true
		}
		// Anything before end lies inside the rejected word.
		from = end
	}
	return Range{}, false
}

// startsWord reports whether start is a word's left boundary.
func (f *Finder) startsWord(text string, start buffer.ByteOffset) bool {
	r, ok := buffer.RuneBefore(text, start)
	if f.legacySpaceBoundary {
		return ok && r == ' '
	}
	return !ok || buffer.IsWordSeparator(r)
}
