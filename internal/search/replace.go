package search

import (
	"strings"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"

	"github.com/dshills/notepad/internal/engine/buffer"
)

// replaceSpan returns the span a replacement overwrites for an occurrence
// starting at start: from start to the end of the word containing it. When
// the term is a prefix of a longer token the whole token is replaced.
func replaceSpan(text string, start buffer.ByteOffset) Range {
	return Range{Start: start, End: buffer.WordEnd(text, start)}
}

// replaceWholeWord reports whether replace honors q.WholeWord.
func (f *Finder) replaceWholeWord(q Query) bool {
	return f.wholeWordReplace && q.WholeWord
}

// ReplaceNext replaces the first occurrence of q.Term at or after the
// document's insertion point. The search does not wrap: an occurrence
// before the insertion point is never replaced, and ErrNotFound is
// returned with the document untouched when none follows it.
//
// The replaced span runs from the occurrence to the end of its word. The
// returned range covers the inserted text and the insertion point moves to
// its end. When c is non-nil it is moved to q, rescanned, and advanced with
// Next to the first match after the inserted text, so the insertion point
// ends at the start of that match. With no further match the insertion
// point stays at the end of the inserted text.
//
// Whole-word filtering applies only when the Finder was created with
// WithWholeWordReplace.
func (f *Finder) ReplaceNext(doc Document, c *Cursor, q Query, replacement string) (Range, error) {
	if err := checkQuery(q); err != nil {
		return Range{}, err
	}
	term := f.term(q)

	text := doc.Text()
	from := clampToText(text, doc.InsertionPoint())

	match, ok := f.nextMatch(text, term, from, f.replaceWholeWord(q))
	if !ok {
		return Range{}, errors.WithDetails(ErrNotFound, "term", term, "offset", int64(from))
	}

	edit := buffer.NewEdit(replaceSpan(text, match.Start), replacement)
	if err := doc.ApplyEdits([]buffer.Edit{edit}); err != nil {
		return Range{}, errors.Errorf("apply %s: %w", edit, err)
	}

	// The host may normalize line endings in the inserted text, so measure
	// what actually went in.
	span := edit.Range
	inserted := Range{
		Start: span.Start,
		End:   span.End + buffer.ByteOffset(len(doc.Text())-len(text)),
	}
	doc.SetInsertionPoint(inserted.End)

	f.logger.Debug().
		Str("term", term).
		Int64("start", int64(span.Start)).
		Int64("end", int64(span.End)).
		Int("inserted", int(inserted.Len())).
		Msg("replace next")

	if c != nil {
		if cq, valid := c.Query(); !valid || cq != q {
			c.Invalidate(doc)
			c.query = q
			c.valid = true
		}
		c.resume = inserted.End
		c.rescan(doc)
		if _, err := c.Next(doc); err != nil && !errors.Is(err, ErrNoMatches) {
			return inserted, err
		}
	}

	return inserted, nil
}

// ReplaceAll replaces every occurrence of q.Term and returns how many
// replacements were made.
//
// Each replaced span runs from the occurrence to the end of its word. The
// document is rescanned after each pass, since a replacement can join with
// its surroundings to form a new occurrence ("aab" with "ab" replaced by
// "b" becomes "b" in two replacements). An occurrence lying entirely inside
// replacement text is never matched again, which keeps the loop finite when
// the replacement contains the term.
//
// All replacements are applied as one edit of the document; a count of 0
// means the document was not modified.
func (f *Finder) ReplaceAll(doc Document, q Query, replacement string) (int, error) {
	if err := checkQuery(q); err != nil {
		return 0, err
	}
	term := f.term(q)
	wholeWord := f.replaceWholeWord(q)
	original := doc.Text()

	var (
		text   = original
		fresh  []bool
		edits  []buffer.Edit
		count  int
		passes int
	)
	for {
		spans := f.replaceSpans(text, term, wholeWord, fresh)
		if len(spans) == 0 {
			break
		}
		passes++
		count += len(spans)
		edits = make([]buffer.Edit, len(spans))
		for i, span := range spans {
			edits[len(spans)-1-i] = buffer.NewEdit(span, replacement)
		}
		text, fresh = rewrite(text, fresh, spans, replacement)
	}

	if count == 0 {
		return 0, nil
	}
	if passes > 1 {
		edits = []buffer.Edit{diffEdit(original, text)}
	}
	if err := doc.ApplyEdits(edits); err != nil {
		return 0, errors.Errorf("replace all %q: %w", term, err)
	}

	f.logger.Debug().
		Str("term", term).
		Int("count", count).
		Int("passes", passes).
		Msg("replace all")

	return count, nil
}

// replaceSpans returns the spans one pass of ReplaceAll overwrites, front to
// back. fresh marks bytes of text that came from an earlier replacement; an
// occurrence made only of such bytes is skipped. A nil fresh marks nothing.
func (f *Finder) replaceSpans(text, term string, wholeWord bool, fresh []bool) []Range {
	var spans []Range
	pos := buffer.ByteOffset(0)
	for {
		match, ok := f.nextMatch(text, term, pos, wholeWord)
		if !ok {
			return spans
		}
		if allFresh(fresh, match) {
			pos = match.End
			continue
		}
		span := replaceSpan(text, match.Start)
		spans = append(spans, span)
		pos = span.End
	}
}

func allFresh(fresh []bool, r Range) bool {
	if fresh == nil {
		return false
	}
	for _, b := range fresh[r.Start:r.End] {
		if !b {
			return false
		}
	}
	return true
}

// rewrite replaces spans in text and returns the new text along with its
// fresh marks. Every replacement byte is marked; other bytes keep theirs.
func rewrite(text string, fresh []bool, spans []Range, replacement string) (string, []bool) {
	var b strings.Builder
	marks := make([]bool, 0, len(text))
	last := buffer.ByteOffset(0)
	keep := func(end buffer.ByteOffset) {
		b.WriteString(text[last:end])
		if fresh != nil {
			marks = append(marks, fresh[last:end]...)
		} else {
			marks = append(marks, make([]bool, end-last)...)
		}
	}

	for _, span := range spans {
		keep(span.Start)
		b.WriteString(replacement)
		for i := 0; i < len(replacement); i++ {
			marks = append(marks, true)
		}
		last = span.End
	}
	keep(buffer.ByteOffset(len(text)))
	return b.String(), marks
}

// diffEdit returns one edit turning before into after. It covers only the
// bytes between their common prefix and suffix, widened to rune boundaries.
func diffEdit(before, after string) buffer.Edit {
	n := min(len(before), len(after))

	prefix := 0
	for prefix < n && before[prefix] == after[prefix] {
		prefix++
	}
	for prefix > 0 && (!runeStartAt(before, prefix) || !runeStartAt(after, prefix)) {
		prefix--
	}

	suffix := 0
	for suffix < n-prefix && before[len(before)-1-suffix] == after[len(after)-1-suffix] {
		suffix++
	}
	for suffix > 0 && !runeStartAt(before, len(before)-suffix) {
		suffix--
	}

	r := Range{Start: buffer.ByteOffset(prefix), End: buffer.ByteOffset(len(before) - suffix)}
	return buffer.NewEdit(r, after[prefix:len(after)-suffix])
}

func runeStartAt(s string, i int) bool {
	return i >= len(s) || utf8.RuneStart(s[i])
}

// clampToText limits offset to [0, len(text)].
func clampToText(text string, offset buffer.ByteOffset) buffer.ByteOffset {
	if offset < 0 {
		return 0
	}
	if offset > buffer.ByteOffset(len(text)) {
		return buffer.ByteOffset(len(text))
	}
	return offset
}
