package search

import "github.com/dshills/notepad/internal/engine/buffer"

// Tag names used to annotate matches.
const (
	// TagFound marks every match of the current query.
	TagFound = "found"
	// TagFocus marks the match the cursor currently points at.
	TagFocus = "found.focus"
)

// Document is the host-owned text the engine reads and edits.
// The engine borrows it for the duration of a call.
type Document interface {
	// Text returns the full content.
	Text() string
	// RevisionID changes whenever the content changes.
	RevisionID() buffer.RevisionID
	// ApplyEdits applies edits, highest offset first, as one change.
	ApplyEdits(edits []buffer.Edit) error
	// InsertionPoint returns the insertion mark.
	InsertionPoint() buffer.ByteOffset
	// SetInsertionPoint moves the insertion mark.
	SetInsertionPoint(offset buffer.ByteOffset)
	// SetSelection selects r; an empty range clears the selection.
	SetSelection(r buffer.Range)
}

// Annotator applies and removes named highlights. A Document that also
// implements Annotator receives "found" and "found.focus" tags.
type Annotator interface {
	AddTag(name string, r buffer.Range)
	RemoveTag(name string)
}

func annotatorOf(doc Document) (Annotator, bool) {
	a, ok := doc.(Annotator)
	return a, ok
}
