package main

import (
	"os"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/dshills/notepad/internal/config"
	"github.com/dshills/notepad/internal/engine"
	"github.com/dshills/notepad/internal/engine/buffer"
)

// document is a file opened as an engine document. Text is kept with LF
// line endings in memory and written back with the file's original ones.
type document struct {
	*engine.Engine
	path   string
	ending buffer.LineEnding
	mode   os.FileMode
}

func openDocument(path string, cfg *config.Config) (*document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Errorf("opening %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", path, err)
	}

	text := string(data)
	doc := &document{
		path:   path,
		ending: buffer.DetectLineEnding(text),
		mode:   info.Mode().Perm(),
	}
	doc.Engine = engine.New(append(cfg.EngineOptions(), engine.WithContent(text))...)
	return doc, nil
}

// contents returns the document text with the original line endings.
func (d *document) contents() string {
	text := d.Text()
	if seq := d.ending.Sequence(); seq != "\n" {
		text = strings.ReplaceAll(text, "\n", seq)
	}
	return text
}

func (d *document) save() error {
	if err := os.WriteFile(d.path, []byte(d.contents()), d.mode); err != nil {
		return errors.Errorf("writing %s: %w", d.path, err)
	}
	return nil
}
