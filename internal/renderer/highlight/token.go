// Package highlight renders a document with its search annotations.
//
// Each line is split into spans carrying at most one match state, tabs are
// expanded to spaces, and every span is painted with the theme style of its
// state.
package highlight

import (
	"sort"

	"github.com/dshills/notepad/internal/engine/buffer"
	"github.com/dshills/notepad/internal/search"
)

// State is the match state of a span.
type State uint8

// Span states, in increasing priority.
const (
	StateNone State = iota
	StateFound
	StateFocus
)

// String returns the annotation tag name of the state.
func (s State) String() string {
	switch s {
	case StateFound:
		return search.TagFound
	case StateFocus:
		return search.TagFocus
	default:
		return ""
	}
}

// Span is a run of line text sharing one state.
type Span struct {
	// Start and End are byte offsets within the line.
	Start, End int
	State      State
}

// LineSpans splits the line [lineStart, lineStart+len(text)) into spans.
// found and focus are document ranges in order; focus wins where both
// apply. Adjacent spans always differ in state, and the spans cover the
// whole line.
func LineSpans(text string, lineStart buffer.ByteOffset, found, focus []buffer.Range) []Span {
	n := len(text)
	if n == 0 {
		return nil
	}

	// State of every byte of the line.
	states := make([]State, n)
	paint := func(ranges []buffer.Range, s State) {
		lineEnd := lineStart + buffer.ByteOffset(n)
		i := sort.Search(len(ranges), func(i int) bool { return ranges[i].End > lineStart })
		for ; i < len(ranges) && ranges[i].Start < lineEnd; i++ {
			start := max(ranges[i].Start, lineStart) - lineStart
			end := min(ranges[i].End, lineEnd) - lineStart
			for j := start; j < end; j++ {
				if s > states[j] {
					states[j] = s
				}
			}
		}
	}
	paint(found, StateFound)
	paint(focus, StateFocus)

	var spans []Span
	start := 0
	for i := 1; i <= n; i++ {
		if i == n || states[i] != states[start] {
			spans = append(spans, Span{Start: start, End: i, State: states[start]})
			start = i
		}
	}
	return spans
}
