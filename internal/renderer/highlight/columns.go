package highlight

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ExpandTabs replaces tabs in text with spaces up to the next tab stop.
// column is the display column text starts at; the column after text is
// returned so a line can be expanded span by span.
func ExpandTabs(text string, column, tabWidth int) (string, int) {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text, column + displayWidth(text)
	}

	var b strings.Builder
	for _, r := range text {
		if r == '\t' {
			spaces := tabWidth - column%tabWidth
			b.WriteString(strings.Repeat(" ", spaces))
			column += spaces
			continue
		}
		b.WriteRune(r)
		column += max(runewidth.RuneWidth(r), 1)
	}
	return b.String(), column
}

// displayWidth is the printable width of text without tabs, counting
// zero-width runes as one column like ExpandTabs does.
func displayWidth(text string) int {
	width := 0
	for _, r := range text {
		width += max(runewidth.RuneWidth(r), 1)
	}
	return width
}

// DisplayColumn returns the 0-indexed screen column of byte offset col in
// line, with tabs expanded. Grapheme clusters count once, so a letter
// followed by a combining mark occupies a single column.
func DisplayColumn(line string, col, tabWidth int) int {
	if col > len(line) {
		col = len(line)
	}

	column := 0
	state := -1
	rest := line[:col]
	for len(rest) > 0 {
		var cluster string
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if cluster == "\t" && tabWidth > 0 {
			column += tabWidth - column%tabWidth
			continue
		}
		column += width
	}
	return column
}
