package highlight

import (
	"io"
	"strings"

	"github.com/dshills/notepad/internal/engine/buffer"
	"github.com/dshills/notepad/internal/search"
)

// Document is the read side of a document the renderer needs.
type Document interface {
	LineCount() uint32
	LineText(line uint32) string
	LineStartOffset(line uint32) buffer.ByteOffset
}

// TagSource returns the ranges annotated with a tag, in document order.
type TagSource interface {
	Ranges(name string) []buffer.Range
}

// Renderer paints documents with their match annotations.
type Renderer struct {
	theme    *Theme
	tabWidth int
}

// NewRenderer creates a renderer. A nil theme renders plain text.
func NewRenderer(theme *Theme, tabWidth int) *Renderer {
	if theme == nil {
		theme = PlainTheme()
	}
	return &Renderer{theme: theme, tabWidth: tabWidth}
}

// RenderLine paints one line of doc.
func (r *Renderer) RenderLine(doc Document, tags TagSource, line uint32) string {
	return r.renderLine(doc, line, tags.Ranges(search.TagFound), tags.Ranges(search.TagFocus))
}

func (r *Renderer) renderLine(doc Document, line uint32, found, focus []buffer.Range) string {
	text := doc.LineText(line)
	if text == "" {
		return ""
	}

	var b strings.Builder
	column := 0
	for _, span := range LineSpans(text, doc.LineStartOffset(line), found, focus) {
		var expanded string
		expanded, column = ExpandTabs(text[span.Start:span.End], column, r.tabWidth)
		b.WriteString(r.theme.Paint(span.State, expanded))
	}
	return b.String()
}

// Render writes every line of doc to w, each followed by a newline.
func (r *Renderer) Render(w io.Writer, doc Document, tags TagSource) error {
	found := tags.Ranges(search.TagFound)
	focus := tags.Ranges(search.TagFocus)

	for line := uint32(0); line < doc.LineCount(); line++ {
		if _, err := io.WriteString(w, r.renderLine(doc, line, found, focus)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// RenderMatches writes only the lines that contain a found range.
// Each line is prefixed with its 1-based number, as in the status bar.
func (r *Renderer) RenderMatches(w io.Writer, doc Document, tags TagSource, number func(line uint32) string) error {
	found := tags.Ranges(search.TagFound)
	focus := tags.Ranges(search.TagFocus)

	last := int64(-1)
	for _, m := range found {
		first := lineOf(doc, m.Start)
		end := lineOf(doc, max(m.Start, m.End-1))
		for line := first; line <= end; line++ {
			if int64(line) <= last {
				continue
			}
			last = int64(line)
			out := number(line) + r.renderLine(doc, line, found, focus) + "\n"
			if _, err := io.WriteString(w, out); err != nil {
				return err
			}
		}
	}
	return nil
}

// lineOf returns the line containing offset by binary search over line
// starts.
func lineOf(doc Document, offset buffer.ByteOffset) uint32 {
	lo, hi := uint32(0), doc.LineCount()
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if doc.LineStartOffset(mid) <= offset {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
