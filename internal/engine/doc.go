// Package engine provides the document a host editor hands to the
// find/replace engine.
//
// The engine package is a facade over three sub-packages:
//
//   - buffer: text storage, line index, positions, ranges and character motion
//   - annotation: named highlight ranges ("found", "found.focus")
//   - history: undo/redo, one step per edit batch
//
// On top of those it keeps the host editor state the search dialogs read
// and write: the insertion point and the selection. Both follow edits.
//
// # Basic Usage
//
//	e := engine.New(engine.WithContent("foo bar foo"))
//
//	e.SetInsertionPoint(4)
//	e.Replace(4, 7, "baz")           // "foo baz foo"
//	e.AddTag("found", engine.Range{Start: 0, End: 3})
//	e.Undo()                         // "foo bar foo"
//
// # Loading Files
//
//	f, _ := os.Open("file.txt")
//	defer f.Close()
//	e, _ := engine.NewFromReader(f)
//
// # Thread Safety
//
// All Engine operations are thread-safe. The find/replace engine itself
// is synchronous and assumes no other writer for the duration of a call.
package engine
