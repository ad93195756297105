package search

import (
	"gitlab.com/tozd/go/errors"

	"github.com/dshills/notepad/internal/engine/buffer"
)

// Errors returned by search operations. None of them is fatal: the host
// decides whether to show a message or ignore them.
var (
	// ErrEmptyQuery indicates an empty search term. Hosts normally ignore it.
	ErrEmptyQuery = errors.Base("empty search term")

	// ErrInvalidTerm indicates a search term that is not valid UTF-8.
	ErrInvalidTerm = errors.Base("search term is not valid UTF-8")

	// ErrNoMatches indicates the cursor was advanced with no matches present.
	ErrNoMatches = errors.Base("no matches")

	// ErrNotFound indicates a single replace found nothing to replace.
	ErrNotFound = errors.Base("no occurrence to replace")

	// ErrOutOfRange indicates position arithmetic left the document where
	// strict containment was required.
	ErrOutOfRange = buffer.ErrOffsetOutOfRange
)
