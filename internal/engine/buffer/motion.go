package buffer

import (
	"unicode"
	"unicode/utf8"
)

// A character is one Unicode code point. The functions below move over
// characters in a string and never split a multi-byte rune, as long as the
// starting offset is on a rune boundary.

// IsWordSeparator reports whether r ends a word. A word is a maximal run of
// non-space characters.
func IsWordSeparator(r rune) bool {
	return unicode.IsSpace(r)
}

// clampOffset limits pos to [0, len(text)].
func clampOffset(text string, pos ByteOffset) ByteOffset {
	if pos < 0 {
		return 0
	}
	if pos > ByteOffset(len(text)) {
		return ByteOffset(len(text))
	}
	return pos
}

// Advance moves pos forward by n characters, crossing line boundaries.
// Advancing past the end of text clamps to the end.
func Advance(text string, pos ByteOffset, n int) ByteOffset {
	pos = clampOffset(text, pos)
	for ; n > 0 && pos < ByteOffset(len(text)); n-- {
		_, size := utf8.DecodeRuneInString(text[pos:])
		pos += ByteOffset(size)
	}
	return pos
}

// AdvanceStrict is Advance for callers that need the result to lie strictly
// inside the document. It returns ErrOffsetOutOfRange when pos is outside
// text, when fewer than n characters follow pos, or when the result is the
// end of the document.
func AdvanceStrict(text string, pos ByteOffset, n int) (ByteOffset, error) {
	if pos < 0 || pos > ByteOffset(len(text)) {
		return 0, ErrOffsetOutOfRange
	}
	for ; n > 0; n-- {
		if pos >= ByteOffset(len(text)) {
			return ByteOffset(len(text)), ErrOffsetOutOfRange
		}
		_, size := utf8.DecodeRuneInString(text[pos:])
		pos += ByteOffset(size)
	}
	if pos >= ByteOffset(len(text)) {
		return pos, ErrOffsetOutOfRange
	}
	return pos, nil
}

// Retreat moves pos backward by n characters, clamped at the start of text.
func Retreat(text string, pos ByteOffset, n int) ByteOffset {
	pos = clampOffset(text, pos)
	for ; n > 0 && pos > 0; n-- {
		_, size := utf8.DecodeLastRuneInString(text[:pos])
		pos -= ByteOffset(size)
	}
	return pos
}

// WordEnd returns the end of the word containing pos.
// When the character at pos is a separator the result is one character
// past pos.
// At or past the end of text it returns len(text).
func WordEnd(text string, pos ByteOffset) ByteOffset {
	pos = clampOffset(text, pos)
	if pos >= ByteOffset(len(text)) {
		return ByteOffset(len(text))
	}

	r, size := utf8.DecodeRuneInString(text[pos:])
	if IsWordSeparator(r) {
		return pos + ByteOffset(size)
	}

	for pos < ByteOffset(len(text)) {
		r, size = utf8.DecodeRuneInString(text[pos:])
		if IsWordSeparator(r) {
			break
		}
		pos += ByteOffset(size)
	}
	return pos
}

// RuneBefore returns the character ending at pos.
// ok is false at the start of text.
func RuneBefore(text string, pos ByteOffset) (r rune, ok bool) {
	pos = clampOffset(text, pos)
	if pos == 0 {
		return 0, false
	}
	r, _ = utf8.DecodeLastRuneInString(text[:pos])
	return r, true
}

// CharCount returns the number of characters in s.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}
