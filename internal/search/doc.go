// Package search implements find and replace over a mutable document.
//
// The package is built from four pieces:
//
//   - Scan locates every literal occurrence of a term, either as a plain
//     substring or as a whole word (a maximal run of non-space characters).
//   - Cursor wraps the scan result in a cyclic "find next" pointer and keeps
//     the "found" and "found.focus" annotations on the document current.
//   - ReplaceNext replaces the next occurrence after the insertion point.
//   - ReplaceAll replaces every occurrence in one atomic edit.
//
// Replacement spans run from the start of an occurrence to the end of the
// word it begins, not just the length of the term, so replacing "foo"
// inside "foobar" consumes the whole token. Replace ignores whole-word mode
// unless the Finder is built with WithWholeWordReplace.
//
// Matching is literal and case-sensitive. All operations are synchronous;
// the caller must not mutate the document concurrently.
//
// Basic usage:
//
//	doc := engine.New(engine.WithContent("concatenate cat"))
//	cur := search.NewCursor()
//
//	q, _ := search.NewQuery("cat", true)
//	r, err := cur.Resubmit(doc, q)       // [12:15)
//
//	n, err := search.ReplaceAll(doc, q, "dog")
package search
