package search

import (
	"fmt"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
)

// Query is an immutable search request. Two queries are equal when both
// fields are equal; comparing with == is the intended use.
type Query struct {
	// Term is the literal text to find.
	Term string
	// WholeWord restricts matches to complete words.
	WholeWord bool
}

// NewQuery returns a Query for term. An empty term yields ErrEmptyQuery
// and a term that is not valid UTF-8 yields ErrInvalidTerm.
func NewQuery(term string, wholeWord bool) (Query, error) {
	q := Query{Term: term, WholeWord: wholeWord}
	if err := checkQuery(q); err != nil {
		return Query{}, err
	}
	return q, nil
}

// checkQuery rejects queries no operation can run. A term with invalid
// UTF-8 could match inside a multibyte character.
func checkQuery(q Query) error {
	if q.IsEmpty() {
		return errors.WithStack(ErrEmptyQuery)
	}
	if !utf8.ValidString(q.Term) {
		return errors.WithDetails(ErrInvalidTerm, "term", q.Term)
	}
	return nil
}

// IsEmpty reports whether the query has no term.
func (q Query) IsEmpty() bool {
	return q.Term == ""
}

// String returns a human-readable representation of the query.
func (q Query) String() string {
	if q.WholeWord {
		return fmt.Sprintf("%q (whole word)", q.Term)
	}
	return fmt.Sprintf("%q", q.Term)
}
