package buffer

import "sort"

// lineIndex records the byte offset at which every line starts.
// Entry 0 is always 0, so an empty document has exactly one line.
type lineIndex []ByteOffset

// computeLineIndex scans s and records the start of each line.
func computeLineIndex(s string) lineIndex {
	idx := make(lineIndex, 1, 1+countNewlines(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			idx = append(idx, ByteOffset(i+1))
		}
	}
	return idx
}

func countNewlines(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
		}
	}
	return n
}

// count returns the number of lines.
func (idx lineIndex) count() uint32 {
	return uint32(len(idx))
}

// lineOf returns the 0-indexed line containing offset.
func (idx lineIndex) lineOf(offset ByteOffset) uint32 {
	// First line whose start is past offset, minus one.
	i := sort.Search(len(idx), func(i int) bool { return idx[i] > offset })
	if i == 0 {
		return 0
	}
	return uint32(i - 1)
}

// start returns the byte offset of the start of line, or textLen when the
// line does not exist.
func (idx lineIndex) start(line uint32, textLen ByteOffset) ByteOffset {
	if line >= idx.count() {
		return textLen
	}
	return idx[line]
}

// end returns the byte offset of the end of line, before its newline.
func (idx lineIndex) end(line uint32, textLen ByteOffset) ByteOffset {
	if line+1 < idx.count() {
		return idx[line+1] - 1
	}
	return textLen
}

// DetectLineEnding reports the line ending style used most often in text.
// Ties prefer CRLF, then CR. Text without line breaks is LF.
func DetectLineEnding(text string) LineEnding {
	var counts [3]int // LF, CRLF, CR
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			counts[0]++
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				counts[1]++
				i++
			} else {
				counts[2]++
			}
		}
	}

	lf, crlf, cr := counts[0], counts[1], counts[2]
	switch {
	case crlf > 0 && crlf >= lf && crlf >= cr:
		return LineEndingCRLF
	case cr > 0 && cr >= lf:
		return LineEndingCR
	default:
		return LineEndingLF
	}
}
