package engine

import (
	"io"
	"sync"

	"github.com/dshills/notepad/internal/engine/annotation"
	"github.com/dshills/notepad/internal/engine/buffer"
	"github.com/dshills/notepad/internal/engine/history"
)

// Re-export commonly used types for convenience.
type (
	// ByteOffset is a byte position in the buffer.
	ByteOffset = buffer.ByteOffset

	// Point represents a line/column position.
	Point = buffer.Point

	// Range represents a byte range in the buffer.
	Range = buffer.Range

	// Edit represents an edit operation.
	Edit = buffer.Edit

	// EditResult contains information about a completed edit.
	EditResult = buffer.EditResult

	// LineEnding specifies the line ending style.
	LineEnding = buffer.LineEnding

	// RevisionID uniquely identifies a buffer revision.
	RevisionID = buffer.RevisionID
)

// Re-export constants.
const (
	LineEndingLF   = buffer.LineEndingLF
	LineEndingCRLF = buffer.LineEndingCRLF
	LineEndingCR   = buffer.LineEndingCR
)

// Engine is the document a host editor hands to the find/replace engine.
// It combines the text buffer, an annotation layer for highlight tags,
// the insertion point and the selection into one thread-safe value.
//
// Edits move the insertion point and the selection along with the text.
type Engine struct {
	mu sync.RWMutex

	// Core components
	buf     *buffer.Buffer
	tags    *annotation.Layer
	history *history.History

	// Host editor state
	insert    ByteOffset
	selection Range
	selected  bool

	// Configuration
	tabWidth   int
	lineEnding buffer.LineEnding
	readOnly   bool
	undoLimit  int

	// Initialization
	initContent string
}

// New creates a new Engine with the given options.
func New(opts ...Option) *Engine {
	e := newUnbuffered(opts...)
	if e.initContent != "" {
		e.buf = buffer.NewBufferFromString(e.initContent, e.bufferOptions()...)
	} else {
		e.buf = buffer.NewBuffer(e.bufferOptions()...)
	}
	return e
}

// NewFromReader creates an Engine from an io.Reader.
func NewFromReader(r io.Reader, opts ...Option) (*Engine, error) {
	e := newUnbuffered(opts...)
	buf, err := buffer.NewBufferFromReader(r, e.bufferOptions()...)
	if err != nil {
		return nil, err
	}
	e.buf = buf
	return e, nil
}

func newUnbuffered(opts ...Option) *Engine {
	e := &Engine{
		tags:       annotation.NewLayer(),
		tabWidth:   DefaultTabWidth,
		lineEnding: buffer.LineEndingLF,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.history = history.NewHistory(e.undoLimit)
	return e
}

func (e *Engine) bufferOptions() []buffer.Option {
	return []buffer.Option{
		buffer.WithTabWidth(e.tabWidth),
		buffer.WithLineEnding(e.lineEnding),
	}
}

// ============================================================================
// Read Operations
// ============================================================================

// Text returns the full buffer content.
func (e *Engine) Text() string {
	return e.buf.Text()
}

// TextRange returns text in the given byte range.
func (e *Engine) TextRange(start, end ByteOffset) string {
	return e.buf.TextRange(start, end)
}

// Len returns the total byte length of the buffer.
func (e *Engine) Len() ByteOffset {
	return e.buf.Len()
}

// LineCount returns the number of lines.
func (e *Engine) LineCount() uint32 {
	return e.buf.LineCount()
}

// LineText returns the text of a specific line (without newline).
func (e *Engine) LineText(line uint32) string {
	return e.buf.LineText(line)
}

// LineStartOffset returns the byte offset of the start of a line.
func (e *Engine) LineStartOffset(line uint32) ByteOffset {
	return e.buf.LineStartOffset(line)
}

// LineEndOffset returns the byte offset of the end of a line.
func (e *Engine) LineEndOffset(line uint32) ByteOffset {
	return e.buf.LineEndOffset(line)
}

// OffsetToPoint converts a byte offset to line/column.
func (e *Engine) OffsetToPoint(offset ByteOffset) Point {
	return e.buf.OffsetToPoint(offset)
}

// PointToOffset converts line/column to byte offset.
func (e *Engine) PointToOffset(point Point) ByteOffset {
	return e.buf.PointToOffset(point)
}

// RevisionID returns the current buffer revision.
func (e *Engine) RevisionID() RevisionID {
	return e.buf.RevisionID()
}

// ============================================================================
// Write Operations
// ============================================================================

// Insert inserts text at the given offset.
// Returns the end position of the inserted text.
func (e *Engine) Insert(offset ByteOffset, text string) (ByteOffset, error) {
	result, err := e.ApplyEdit(buffer.NewInsert(offset, text))
	if err != nil {
		return 0, err
	}
	return result.NewRange.End, nil
}

// Delete removes text in the given range.
func (e *Engine) Delete(start, end ByteOffset) error {
	_, err := e.ApplyEdit(buffer.NewDelete(start, end))
	return err
}

// Replace replaces text in the given range with new text.
// Returns the end position of the replacement text.
func (e *Engine) Replace(start, end ByteOffset, text string) (ByteOffset, error) {
	result, err := e.ApplyEdit(buffer.NewEdit(Range{Start: start, End: end}, text))
	if err != nil {
		return 0, err
	}
	return result.NewRange.End, nil
}

// ApplyEdit applies a single edit and moves host state with it.
// The edit is recorded as one undo step.
func (e *Engine) ApplyEdit(edit Edit) (EditResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return EditResult{}, ErrReadOnly
	}

	edit.NewText = e.buf.NormalizeLineEndings(edit.NewText)
	before := e.insert
	result, err := e.buf.ApplyEdit(edit)
	if err != nil {
		return EditResult{}, err
	}
	e.transformLocked(edit)
	e.history.Push(&history.Entry{
		Ops:          history.OperationList{history.NewOperation(edit.Range, result.OldText, edit.NewText)},
		InsertBefore: before,
		InsertAfter:  e.insert,
	})
	return result, nil
}

// ApplyEdits applies multiple edits atomically.
// Edits must be in reverse order (highest offset first).
// The whole batch is recorded as one undo step.
func (e *Engine) ApplyEdits(edits []Edit) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return ErrReadOnly
	}

	edits = e.normalizeLocked(edits)
	old, before := e.buf.Text(), e.insert
	if err := e.applyLocked(edits); err != nil {
		return err
	}
	e.history.Push(&history.Entry{
		Ops:          history.FromEdits(old, edits),
		InsertBefore: before,
		InsertAfter:  e.insert,
	})
	return nil
}

// applyLocked applies a batch to the buffer and moves host state with it.
func (e *Engine) applyLocked(edits []Edit) error {
	if err := e.buf.ApplyEdits(edits); err != nil {
		return err
	}
	// Edits are highest offset first, so each one is expressed in
	// coordinates that the previous ones did not disturb.
	for _, edit := range edits {
		e.transformLocked(edit)
	}
	return nil
}

// normalizeLocked copies edits with their text in the buffer's line ending
// style, so recorded lengths match what the buffer stores.
func (e *Engine) normalizeLocked(edits []Edit) []Edit {
	out := make([]Edit, len(edits))
	for i, edit := range edits {
		edit.NewText = e.buf.NormalizeLineEndings(edit.NewText)
		out[i] = edit
	}
	return out
}

// transformLocked moves the insertion point, selection and tags after an edit.
func (e *Engine) transformLocked(edit Edit) {
	e.insert = edit.TransformOffset(e.insert)
	e.tags.ApplyEdit(edit)
	if e.selected {
		e.selection = edit.TransformRange(e.selection)
		if e.selection.IsEmpty() {
			e.selected = false
		}
	}
}

// SetContent replaces all content and starts the document over: the
// insertion point, selection, annotations and undo history are reset.
func (e *Engine) SetContent(content string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return ErrReadOnly
	}

	if _, err := e.buf.Replace(0, e.buf.Len(), content); err != nil {
		return err
	}
	e.insert = 0
	e.selected = false
	e.selection = Range{}
	e.tags.Clear()
	e.history.Clear()
	return nil
}

// ============================================================================
// Undo / Redo
// ============================================================================

// Undo reverts the last recorded edit batch and restores the insertion
// point from before it. Returns history.ErrNothingToUndo when there is
// nothing to revert.
func (e *Engine) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return ErrReadOnly
	}
	return e.history.Undo(func(entry *history.Entry) error {
		if err := e.applyLocked(entry.Ops.InverseEdits()); err != nil {
			return err
		}
		e.insert = clamp(entry.InsertBefore, e.buf.Len())
		return nil
	})
}

// Redo reapplies the last undone edit batch.
func (e *Engine) Redo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return ErrReadOnly
	}
	return e.history.Redo(func(entry *history.Entry) error {
		if err := e.applyLocked(entry.Ops.Edits()); err != nil {
			return err
		}
		e.insert = clamp(entry.InsertAfter, e.buf.Len())
		return nil
	})
}

// CanUndo reports whether there is an edit to undo.
func (e *Engine) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo reports whether there is an undone edit to redo.
func (e *Engine) CanRedo() bool {
	return e.history.CanRedo()
}

// ============================================================================
// Insertion Point and Selection
// ============================================================================

// InsertionPoint returns the offset of the insertion mark.
func (e *Engine) InsertionPoint() ByteOffset {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.insert
}

// SetInsertionPoint moves the insertion mark, clamped to the buffer.
func (e *Engine) SetInsertionPoint(offset ByteOffset) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.insert = clamp(offset, e.buf.Len())
}

// Selection returns the selected range. ok is false when nothing is selected.
func (e *Engine) Selection() (r Range, ok bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.selection, e.selected
}

// SetSelection selects r, clamped to the buffer. An empty range clears the
// selection.
func (e *Engine) SetSelection(r Range) {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := e.buf.Len()
	r = Range{Start: clamp(r.Start, n), End: clamp(r.End, n)}
	if !r.IsValid() || r.IsEmpty() {
		e.selected = false
		e.selection = Range{}
		return
	}
	e.selection = r
	e.selected = true
}

// ============================================================================
// Annotations
// ============================================================================

// AddTag tags r with name.
func (e *Engine) AddTag(name string, r Range) {
	e.tags.Add(name, r)
}

// RemoveTag removes every range tagged with name.
func (e *Engine) RemoveTag(name string) {
	e.tags.Remove(name)
}

// Tags returns the annotation layer.
func (e *Engine) Tags() *annotation.Layer {
	return e.tags
}

// ============================================================================
// Configuration
// ============================================================================

// TabWidth returns the tab width.
func (e *Engine) TabWidth() int {
	return e.buf.TabWidth()
}

// LineEnding returns the line ending style.
func (e *Engine) LineEnding() LineEnding {
	return e.buf.LineEnding()
}

func clamp(offset, n ByteOffset) ByteOffset {
	if offset < 0 {
		return 0
	}
	if offset > n {
		return n
	}
	return offset
}
