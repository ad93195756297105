package search

import (
	"sort"

	"github.com/dshills/notepad/internal/engine/buffer"
)

// MatchSet is the ordered result of a scan: ranges in document order,
// strictly increasing starts, no overlaps.
type MatchSet []buffer.Range

// Len returns the number of matches.
func (m MatchSet) Len() int {
	return len(m)
}

// IndexFrom returns the index of the first match starting at or after
// offset, or Len() when there is none.
func (m MatchSet) IndexFrom(offset buffer.ByteOffset) int {
	return sort.Search(len(m), func(i int) bool { return m[i].Start >= offset })
}

// IndexOf returns the index of r, or -1.
func (m MatchSet) IndexOf(r buffer.Range) int {
	i := m.IndexFrom(r.Start)
	if i < len(m) && m[i] == r {
		return i
	}
	return -1
}

// Texts returns the matched text of each range in text.
func (m MatchSet) Texts(text string) []string {
	out := make([]string, len(m))
	for i, r := range m {
		out[i] = text[r.Start:r.End]
	}
	return out
}

// clone returns a copy that does not share storage with m.
func (m MatchSet) clone() MatchSet {
	if m == nil {
		return nil
	}
	out := make(MatchSet, len(m))
	copy(out, m)
	return out
}

// At returns the i-th match.
func (m MatchSet) At(i int) buffer.Range {
	return m[i]
}

// Contains reports whether offset lies inside any match.
func (m MatchSet) Contains(offset buffer.ByteOffset) bool {
	// Last match starting at or before offset.
	i := sort.Search(len(m), func(i int) bool { return m[i].Start > offset }) - 1
	return i >= 0 && m[i].Contains(offset)
}
