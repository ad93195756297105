// Package history records the edits applied to a document so they can be
// undone and redone.
//
// Every call that mutates the document produces one Entry. An Entry holds
// the Operations of a single atomic edit batch, so a batch such as a
// replace-all undoes with one step:
//
//	h := history.NewHistory(1000)
//	h.Push(&history.Entry{Ops: ops, InsertBefore: 0, InsertAfter: 7})
//
//	err := h.Undo(func(e *history.Entry) error {
//	    return buf.ApplyEdits(e.Ops.InverseEdits())
//	})
//
// Operations are stored in ascending offset order, in the coordinates of
// the document before the batch was applied.
package history
