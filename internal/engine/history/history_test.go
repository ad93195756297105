package history

import (
	"errors"
	"testing"

	"github.com/dshills/notepad/internal/engine/buffer"
)

func applyBatch(t *testing.T, buf *buffer.Buffer, edits []buffer.Edit) OperationList {
	t.Helper()
	ops := FromEdits(buf.Text(), edits)
	if err := buf.ApplyEdits(edits); err != nil {
		t.Fatalf("ApplyEdits: %v", err)
	}
	return ops
}

// Operation Tests

func TestOperationBytesDelta(t *testing.T) {
	tests := []struct {
		name     string
		op       Operation
		expected int
	}{
		{"insert", NewOperation(Range{Start: 0, End: 0}, "", "hello"), 5},
		{"delete", NewOperation(Range{Start: 0, End: 5}, "hello", ""), -5},
		{"replace longer", NewOperation(Range{Start: 0, End: 3}, "abc", "hello"), 2},
		{"replace shorter", NewOperation(Range{Start: 0, End: 5}, "hello", "hi"), -3},
		{"replace same", NewOperation(Range{Start: 0, End: 5}, "hello", "world"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op.BytesDelta(); got != tt.expected {
				t.Errorf("BytesDelta() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestFromEditsOrdersAscending(t *testing.T) {
	edits := []buffer.Edit{
		buffer.NewEdit(Range{Start: 8, End: 11}, "x"),
		buffer.NewEdit(Range{Start: 0, End: 3}, "yy"),
	}
	ops := FromEdits("foo bar foo", edits)

	if len(ops) != 2 {
		t.Fatalf("len = %d, want 2", len(ops))
	}
	if ops[0].Range.Start != 0 || ops[0].OldText != "foo" || ops[0].NewText != "yy" {
		t.Errorf("ops[0] = %+v", ops[0])
	}
	if ops[1].Range.Start != 8 || ops[1].OldText != "foo" || ops[1].NewText != "x" {
		t.Errorf("ops[1] = %+v", ops[1])
	}
	if got := ops.TotalBytesDelta(); got != -1 {
		t.Errorf("TotalBytesDelta() = %d, want -1", got)
	}
}

func TestInverseEditsRestoreBatch(t *testing.T) {
	buf := buffer.NewBufferFromString("a a a")
	ops := applyBatch(t, buf, []buffer.Edit{
		buffer.NewEdit(Range{Start: 4, End: 5}, "aa"),
		buffer.NewEdit(Range{Start: 2, End: 3}, "aa"),
		buffer.NewEdit(Range{Start: 0, End: 1}, "aa"),
	})
	if buf.Text() != "aa aa aa" {
		t.Fatalf("after batch = %q", buf.Text())
	}

	if err := buf.ApplyEdits(ops.InverseEdits()); err != nil {
		t.Fatalf("inverse: %v", err)
	}
	if buf.Text() != "a a a" {
		t.Errorf("after inverse = %q, want %q", buf.Text(), "a a a")
	}

	if err := buf.ApplyEdits(ops.Edits()); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if buf.Text() != "aa aa aa" {
		t.Errorf("after replay = %q", buf.Text())
	}
}

func TestInverseEditsShrinkingBatch(t *testing.T) {
	buf := buffer.NewBufferFromString("foobar x foobaz")
	ops := applyBatch(t, buf, []buffer.Edit{
		buffer.NewEdit(Range{Start: 9, End: 15}, "y"),
		buffer.NewEdit(Range{Start: 0, End: 6}, "y"),
	})
	if buf.Text() != "y x y" {
		t.Fatalf("after batch = %q", buf.Text())
	}

	if err := buf.ApplyEdits(ops.InverseEdits()); err != nil {
		t.Fatalf("inverse: %v", err)
	}
	if buf.Text() != "foobar x foobaz" {
		t.Errorf("after inverse = %q", buf.Text())
	}
}

// History Stack Tests

func TestHistoryUndoRedo(t *testing.T) {
	buf := buffer.NewBufferFromString("hello")
	h := NewHistory(10)

	ops := applyBatch(t, buf, []buffer.Edit{buffer.NewEdit(Range{Start: 0, End: 5}, "world")})
	h.Push(&Entry{Ops: ops, InsertBefore: 0, InsertAfter: 5})

	if !h.CanUndo() || h.CanRedo() {
		t.Fatal("expected undo only")
	}

	err := h.Undo(func(e *Entry) error { return buf.ApplyEdits(e.Ops.InverseEdits()) })
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if buf.Text() != "hello" {
		t.Errorf("after undo = %q", buf.Text())
	}
	if h.UndoCount() != 0 || h.RedoCount() != 1 {
		t.Errorf("counts = %d/%d, want 0/1", h.UndoCount(), h.RedoCount())
	}

	err = h.Redo(func(e *Entry) error { return buf.ApplyEdits(e.Ops.Edits()) })
	if err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if buf.Text() != "world" {
		t.Errorf("after redo = %q", buf.Text())
	}
}

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory(0)
	if h.MaxEntries() != DefaultMaxEntries {
		t.Errorf("MaxEntries() = %d, want %d", h.MaxEntries(), DefaultMaxEntries)
	}

	noop := func(*Entry) error { return nil }
	if err := h.Undo(noop); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo error = %v, want ErrNothingToUndo", err)
	}
	if err := h.Redo(noop); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("Redo error = %v, want ErrNothingToRedo", err)
	}
}

func TestHistoryPushClearsRedo(t *testing.T) {
	h := NewHistory(10)
	h.Push(&Entry{Ops: OperationList{NewOperation(Range{}, "", "a")}})
	_ = h.Undo(func(*Entry) error { return nil })
	if !h.CanRedo() {
		t.Fatal("expected redo")
	}

	h.Push(&Entry{Ops: OperationList{NewOperation(Range{}, "", "b")}})
	if h.CanRedo() {
		t.Error("push should clear redo")
	}
}

func TestHistoryDropsNoops(t *testing.T) {
	h := NewHistory(10)
	h.Push(nil)
	h.Push(&Entry{})
	h.Push(&Entry{Ops: OperationList{NewOperation(Range{Start: 0, End: 3}, "foo", "foo")}})
	if h.CanUndo() {
		t.Error("no-op entries should not be recorded")
	}
}

func TestHistoryMaxEntries(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		h.Push(&Entry{Ops: OperationList{NewOperation(Range{}, "", "x")}, InsertAfter: ByteOffset(i)})
	}
	if h.UndoCount() != 3 {
		t.Fatalf("UndoCount() = %d, want 3", h.UndoCount())
	}

	var last ByteOffset
	_ = h.Undo(func(e *Entry) error { last = e.InsertAfter; return nil })
	if last != 4 {
		t.Errorf("newest entry InsertAfter = %d, want 4", last)
	}
}

func TestHistoryFailedUndoKeepsEntry(t *testing.T) {
	h := NewHistory(10)
	h.Push(&Entry{Ops: OperationList{NewOperation(Range{}, "", "x")}})

	boom := errors.New("boom")
	if err := h.Undo(func(*Entry) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("Undo error = %v, want boom", err)
	}
	if h.UndoCount() != 1 || h.RedoCount() != 0 {
		t.Errorf("counts = %d/%d, want 1/0", h.UndoCount(), h.RedoCount())
	}

	h.Clear()
	if h.CanUndo() {
		t.Error("Clear should empty the stacks")
	}
}
