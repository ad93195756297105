package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/dshills/notepad/internal/engine/buffer"
	"github.com/dshills/notepad/internal/renderer/highlight"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	okColor     = color.New(color.FgGreen)
	warnColor   = color.New(color.FgYellow)
	dimColor    = color.New(color.Faint)
)

// position formats an offset as 1-based line and column, plus the screen
// column when tabs or wide characters make it differ.
func (o *rootOptions) position(doc *document, offset buffer.ByteOffset) string {
	p := doc.OffsetToPoint(offset)
	col := int(p.Column)
	display := highlight.DisplayColumn(doc.LineText(p.Line), col, o.cfg.Editor.TabWidth)
	if display == col {
		return fmt.Sprintf("%d:%d", p.Line+1, col+1)
	}
	return fmt.Sprintf("%d:%d (screen %d)", p.Line+1, col+1, display+1)
}

// lineNumber prefixes rendered lines.
func lineNumber(line uint32) string {
	return dimColor.Sprintf("%6d│ ", line+1)
}

func printHeader(w io.Writer, format string, args ...any) {
	headerColor.Fprintf(w, format+"\n", args...)
}

func printOK(w io.Writer, format string, args ...any) {
	okColor.Fprintf(w, "✓ "+format+"\n", args...)
}

func printWarn(w io.Writer, format string, args ...any) {
	warnColor.Fprintf(w, "! "+format+"\n", args...)
}
