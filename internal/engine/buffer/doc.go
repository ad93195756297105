// Package buffer provides the document model used by the find/replace
// engine: a thread-safe text buffer with a line index, position and range
// types, and character motion.
//
// The buffer package provides:
//
//   - Thread-safe read/write access via sync.RWMutex
//   - Coordinate conversion between byte offsets and line/column positions
//   - Character motion: Advance, Retreat and WordEnd over runes
//   - Atomic multi-edit application under a single revision
//   - Line ending normalization
//   - Revision tracking so callers can detect stale derived state
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("foo bar")
//
//	end := buf.WordEnd(0)           // 3
//	buf.Replace(0, end, "baz")      // "baz bar"
//	next := buf.Advance(0, 4)       // 4, start of "bar"
//
// Position Types:
//
//   - ByteOffset: Raw byte position in the buffer
//   - Point: Line and column position (0-indexed, column in bytes)
//   - Range: Half-open byte span [Start, End)
//
// A character is a Unicode code point. A word is a maximal run of
// non-space characters.
//
// Thread Safety:
//
// All Buffer methods are thread-safe. Read operations acquire a read lock,
// while write operations acquire an exclusive write lock.
package buffer
