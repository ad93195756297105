// Package annotation stores named highlight ranges over a document.
//
// A Layer maps a tag name such as "found" or "found.focus" to an ordered
// set of byte ranges. It is the visual side channel the search engine
// writes to; it never touches document text. Overlapping ranges added
// under the same name are merged, adjacent ones are kept apart so each
// match stays individually addressable.
//
// ApplyEdit keeps ranges attached to their text as the document changes.
package annotation
