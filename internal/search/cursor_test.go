package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/notepad/internal/engine"
)

func newDoc(text string) *engine.Engine {
	return engine.New(engine.WithContent(text))
}

func TestCursorCyclesThroughMatches(t *testing.T) {
	doc := newDoc("foo bar foo baz foo")
	c := NewCursor()
	q := Query{Term: "foo"}

	r, err := c.Resubmit(doc, q)
	require.NoError(t, err)
	assert.Equal(t, rng(0, 3), r)
	assert.Equal(t, 0, c.FocusIndex())

	var got []Range
	for i := 0; i < 4; i++ {
		r, err = c.Next(doc)
		require.NoError(t, err)
		got = append(got, r)
	}
	assert.Equal(t, []Range{rng(8, 11), rng(16, 19), rng(0, 3), rng(8, 11)}, got)
	assert.Equal(t, 1, c.FocusIndex())
}

func TestCursorResubmitSameQueryAdvances(t *testing.T) {
	doc := newDoc("foo bar foo")
	c := NewCursor()
	q := Query{Term: "foo"}

	_, err := c.Resubmit(doc, q)
	require.NoError(t, err)
	r, err := c.Resubmit(doc, q)
	require.NoError(t, err)
	assert.Equal(t, rng(8, 11), r)
}

func TestCursorResubmitNewQueryRestarts(t *testing.T) {
	doc := newDoc("foo bar foo bar")
	c := NewCursor()

	_, err := c.Resubmit(doc, Query{Term: "foo"})
	require.NoError(t, err)
	_, err = c.Next(doc)
	require.NoError(t, err)

	r, err := c.Resubmit(doc, Query{Term: "bar"})
	require.NoError(t, err)
	assert.Equal(t, rng(4, 7), r)
	assert.Equal(t, MatchSet{rng(4, 7), rng(12, 15)}, c.Matches())
}

func TestCursorWholeWordToggleIsNewQuery(t *testing.T) {
	doc := newDoc("foobar foo")
	c := NewCursor()

	r, err := c.Resubmit(doc, Query{Term: "foo"})
	require.NoError(t, err)
	assert.Equal(t, rng(0, 3), r)

	r, err = c.Resubmit(doc, Query{Term: "foo", WholeWord: true})
	require.NoError(t, err)
	assert.Equal(t, rng(7, 10), r)
	assert.Equal(t, 1, c.Len())
}

func TestCursorEmptyQueryLeavesState(t *testing.T) {
	doc := newDoc("foo foo")
	c := NewCursor()
	q := Query{Term: "foo"}

	_, err := c.Resubmit(doc, q)
	require.NoError(t, err)

	_, err = c.Resubmit(doc, Query{})
	require.ErrorIs(t, err, ErrEmptyQuery)

	got, ok := c.Query()
	require.True(t, ok)
	assert.Equal(t, q, got)
	focus, ok := c.Focus()
	require.True(t, ok)
	assert.Equal(t, rng(0, 3), focus)
}

func TestCursorInvalidTermLeavesState(t *testing.T) {
	doc := newDoc("é é")
	c := NewCursor()
	q := Query{Term: "é"}

	_, err := c.Resubmit(doc, q)
	require.NoError(t, err)

	_, err = c.Resubmit(doc, Query{Term: "\xa9"})
	require.ErrorIs(t, err, ErrInvalidTerm)

	got, ok := c.Query()
	require.True(t, ok)
	assert.Equal(t, q, got)
	assert.Equal(t, 2, c.Len())
}

func TestCursorNoMatches(t *testing.T) {
	doc := newDoc("hello world")
	c := NewCursor()

	_, err := c.Resubmit(doc, Query{Term: "xyz"})
	require.ErrorIs(t, err, ErrNoMatches)
	assert.True(t, c.Valid())
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, -1, c.FocusIndex())

	_, err = c.Next(doc)
	require.ErrorIs(t, err, ErrNoMatches)
}

func TestCursorNextWithoutQuery(t *testing.T) {
	_, err := NewCursor().Next(newDoc("foo"))
	require.ErrorIs(t, err, ErrNoMatches)
}

func TestCursorAnnotations(t *testing.T) {
	doc := newDoc("foo bar foo")
	c := NewCursor()

	_, err := c.Resubmit(doc, Query{Term: "foo"})
	require.NoError(t, err)
	assert.Equal(t, []Range{rng(0, 3), rng(8, 11)}, doc.Tags().Ranges(TagFound))
	assert.Equal(t, []Range{rng(0, 3)}, doc.Tags().Ranges(TagFocus))
	assert.Equal(t, engine.ByteOffset(0), doc.InsertionPoint())

	_, err = c.Next(doc)
	require.NoError(t, err)
	assert.Equal(t, []Range{rng(8, 11)}, doc.Tags().Ranges(TagFocus))
	assert.Equal(t, engine.ByteOffset(8), doc.InsertionPoint())

	c.Invalidate(doc)
	assert.False(t, c.Valid())
	assert.Empty(t, doc.Tags().Names())
}

func TestCursorRescansAfterExternalEdit(t *testing.T) {
	doc := newDoc("foo foo")
	c := NewCursor()

	r, err := c.Resubmit(doc, Query{Term: "foo"})
	require.NoError(t, err)
	assert.Equal(t, rng(0, 3), r)

	_, err = doc.Insert(0, "foo ")
	require.NoError(t, err)

	// Navigation resumes at the first match starting at or after the end of
	// the previous focus.
	r, err = c.Next(doc)
	require.NoError(t, err)
	assert.Equal(t, rng(4, 7), r)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []Range{rng(0, 3), rng(4, 7), rng(8, 11)}, doc.Tags().Ranges(TagFound))
}

func TestCursorRescanDropsVanishedMatches(t *testing.T) {
	doc := newDoc("foo foo")
	c := NewCursor()

	_, err := c.Resubmit(doc, Query{Term: "foo"})
	require.NoError(t, err)

	require.NoError(t, doc.SetContent("bar bar"))
	_, err = c.Next(doc)
	require.ErrorIs(t, err, ErrNoMatches)
	assert.Empty(t, doc.Tags().Ranges(TagFocus))
}

func TestCursorCancelSelectsLastFound(t *testing.T) {
	doc := newDoc("foo bar foo")
	c := NewCursor()

	_, err := c.Resubmit(doc, Query{Term: "foo"})
	require.NoError(t, err)
	_, err = c.Next(doc)
	require.NoError(t, err)

	sel := c.Cancel(doc)
	assert.Equal(t, rng(8, 11), sel)

	got, ok := doc.Selection()
	require.True(t, ok)
	assert.Equal(t, rng(8, 11), got)
	assert.Equal(t, engine.ByteOffset(8), doc.InsertionPoint())
	assert.False(t, c.Valid())
	assert.Empty(t, doc.Tags().Names())
}

func TestCursorCancelCountsCharacters(t *testing.T) {
	doc := newDoc("xx héllo")
	c := NewCursor()

	_, err := c.Resubmit(doc, Query{Term: "héllo"})
	require.NoError(t, err)

	assert.Equal(t, rng(3, 9), c.Cancel(doc))
}

func TestCursorCancelBeforeSearch(t *testing.T) {
	doc := newDoc("foo")
	doc.SetSelection(rng(0, 2))

	sel := NewCursor().Cancel(doc)
	assert.True(t, sel.IsEmpty())
	_, ok := doc.Selection()
	assert.False(t, ok)
}
