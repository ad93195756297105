package history

import (
	"github.com/dshills/notepad/internal/engine/buffer"
)

// ByteOffset is an alias for buffer.ByteOffset for convenience.
type ByteOffset = buffer.ByteOffset

// Range is an alias for buffer.Range for convenience.
type Range = buffer.Range

// Operation is a single replacement within an edit batch.
type Operation struct {
	Range   Range  // Range that was replaced, in pre-batch coordinates
	OldText string // Text that was replaced (for undo)
	NewText string // Text that was inserted (for redo)
}

// NewOperation creates a new operation.
func NewOperation(r Range, oldText, newText string) Operation {
	return Operation{Range: r, OldText: oldText, NewText: newText}
}

func (op Operation) isNoop() bool {
	return op.OldText == op.NewText
}

// BytesDelta returns the change in document length.
func (op Operation) BytesDelta() int {
	return len(op.NewText) - int(op.Range.Len())
}

// OperationList is the ordered set of operations of one batch.
type OperationList []Operation

// FromEdits records edits the way buffer.ApplyEdits takes them (highest
// offset first) against text, the document before the batch.
func FromEdits(text string, edits []buffer.Edit) OperationList {
	ops := make(OperationList, 0, len(edits))
	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		ops = append(ops, NewOperation(e.Range, text[e.Range.Start:e.Range.End], e.NewText))
	}
	return ops
}

// Edits returns the edits that replay the batch on the pre-batch document,
// highest offset first.
func (ops OperationList) Edits() []buffer.Edit {
	edits := make([]buffer.Edit, len(ops))
	for i, op := range ops {
		edits[len(ops)-1-i] = buffer.NewEdit(op.Range, op.NewText)
	}
	return edits
}

// InverseEdits returns the edits that restore the pre-batch document from
// the post-batch one, highest offset first.
func (ops OperationList) InverseEdits() []buffer.Edit {
	edits := make([]buffer.Edit, len(ops))
	var delta ByteOffset
	for i, op := range ops {
		start := op.Range.Start + delta
		r := Range{Start: start, End: start + ByteOffset(len(op.NewText))}
		edits[len(ops)-1-i] = buffer.NewEdit(r, op.OldText)
		delta += ByteOffset(op.BytesDelta())
	}
	return edits
}

// TotalBytesDelta returns the total change in document length.
func (ops OperationList) TotalBytesDelta() int {
	total := 0
	for _, op := range ops {
		total += op.BytesDelta()
	}
	return total
}

func (ops OperationList) isNoop() bool {
	for _, op := range ops {
		if !op.isNoop() {
			return false
		}
	}
	return true
}
