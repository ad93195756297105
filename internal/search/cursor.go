package search

import (
	"gitlab.com/tozd/go/errors"

	"github.com/dshills/notepad/internal/engine/buffer"
)

// Cursor is the "find next" state a host keeps between calls: the current
// query, the matches it produced, the focused match and the document
// revision the matches were computed from.
//
// Navigation is cyclic: after the last match Next returns the first one
// again. When the document changes under the cursor the matches are
// recomputed on the next call and navigation resumes after the end of the
// previously focused match.
//
// A Cursor is not safe for concurrent use.
type Cursor struct {
	finder *Finder

	query Query
	valid bool

	matches  MatchSet
	revision buffer.RevisionID

	// focus indexes matches; -1 when nothing is focused.
	focus int
	// resume is where the next forward search begins: the end of the last
	// focused match, or 0 before the first Next.
	resume buffer.ByteOffset
}

// NewCursor returns an empty cursor that scans with f.
func (f *Finder) NewCursor() *Cursor {
	return &Cursor{finder: f, focus: -1}
}

// Query returns the active query. ok is false when the cursor holds none.
func (c *Cursor) Query() (q Query, ok bool) {
	return c.query, c.valid
}

// Valid reports whether the cursor holds a query.
func (c *Cursor) Valid() bool {
	return c.valid
}

// Matches returns a copy of the current match set.
func (c *Cursor) Matches() MatchSet {
	return c.matches.clone()
}

// Len returns the number of current matches.
func (c *Cursor) Len() int {
	return len(c.matches)
}

// Focus returns the focused match. ok is false when nothing is focused.
func (c *Cursor) Focus() (r Range, ok bool) {
	if c.focus < 0 || c.focus >= len(c.matches) {
		return Range{}, false
	}
	return c.matches[c.focus], true
}

// FocusIndex returns the 0-based index of the focused match, or -1.
func (c *Cursor) FocusIndex() int {
	return c.focus
}

// Resubmit handles a find request for q.
//
// An empty term is ignored and returns ErrEmptyQuery without touching the
// cursor; a term that is not valid UTF-8 returns ErrInvalidTerm the same way. The same query as before advances like Next. A different query
// rescans the document and returns its first match.
func (c *Cursor) Resubmit(doc Document, q Query) (Range, error) {
	if err := checkQuery(q); err != nil {
		return Range{}, err
	}
	if c.valid && q == c.query {
		return c.Next(doc)
	}

	c.Invalidate(doc)
	c.query = q
	c.valid = true
	c.rescan(doc)
	return c.Next(doc)
}

// Next focuses the match after the current one, wrapping to the first
// match after the last. It returns ErrNoMatches when there is nothing to
// focus.
//
// The new focus is tagged "found.focus" and the insertion point moves to
// its start.
func (c *Cursor) Next(doc Document) (Range, error) {
	if !c.valid {
		return Range{}, errors.WithStack(ErrNoMatches)
	}
	c.resync(doc)

	a, annotate := annotatorOf(doc)
	if annotate {
		a.RemoveTag(TagFocus)
	}

	if len(c.matches) == 0 {
		c.focus = -1
		return Range{}, errors.WithDetails(ErrNoMatches, "term", c.query.Term)
	}

	i := c.matches.IndexFrom(c.resume)
	if i == len(c.matches) {
		i = 0
	}
	c.focus = i
	r := c.matches[i]
	c.resume = r.End

	if annotate {
		a.AddTag(TagFocus, r)
	}
	doc.SetInsertionPoint(r.Start)
	return r, nil
}

// resync recomputes the matches if the document changed since the last
// scan. The focus is dropped on rescan; the resume position is kept.
func (c *Cursor) resync(doc Document) {
	if !c.valid || doc.RevisionID() == c.revision {
		return
	}
	c.rescan(doc)
}

// rescan recomputes matches for the current query and retags them.
func (c *Cursor) rescan(doc Document) {
	rev := doc.RevisionID()
	c.matches = c.finder.Scan(doc.Text(), c.query)
	c.revision = rev
	c.focus = -1

	if a, ok := annotatorOf(doc); ok {
		a.RemoveTag(TagFocus)
		a.RemoveTag(TagFound)
		for _, r := range c.matches {
			a.AddTag(TagFound, r)
		}
	}
}

// Invalidate discards the query and all match state, as when the search
// term or the whole-word flag changes. Annotations are removed when doc is
// an Annotator; doc may be nil.
func (c *Cursor) Invalidate(doc Document) {
	c.query = Query{}
	c.valid = false
	c.matches = nil
	c.revision = 0
	c.focus = -1
	c.resume = 0

	if doc == nil {
		return
	}
	if a, ok := annotatorOf(doc); ok {
		a.RemoveTag(TagFound)
		a.RemoveTag(TagFocus)
	}
}

// Cancel closes the search: annotations and cursor state are discarded and
// the document selection is restored around the last found occurrence.
//
// The selection is the term's length in characters ending at the end of the
// last focused match, and the insertion point moves to its start. Before
// any match was focused this is an empty selection at the document start.
// The restored selection is returned.
func (c *Cursor) Cancel(doc Document) Range {
	chars := 0
	if c.valid {
		chars = buffer.CharCount(c.query.Term)
	}

	text := doc.Text()
	end := c.resume
	if end > buffer.ByteOffset(len(text)) {
		end = buffer.ByteOffset(len(text))
	}
	sel := Range{Start: buffer.Retreat(text, end, chars), End: end}

	c.Invalidate(doc)
	doc.SetSelection(sel)
	doc.SetInsertionPoint(sel.Start)
	return sel
}
