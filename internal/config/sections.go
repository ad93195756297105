package config

import (
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog"

	"github.com/dshills/notepad/internal/engine"
	"github.com/dshills/notepad/internal/search"
)

// Tab widths outside this range are rejected.
const (
	minTabWidth = 1
	maxTabWidth = 16
)

// Validate checks every setting that has a restricted range.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return &ValidationError{Path: "logging.level", Message: "unknown level", Value: c.Logging.Level}
	}
	if c.Editor.TabWidth < minTabWidth || c.Editor.TabWidth > maxTabWidth {
		return &ValidationError{Path: "editor.tabWidth", Message: "must be between 1 and 16", Value: c.Editor.TabWidth}
	}
	for path, color := range map[string]string{
		"highlight.found.foreground": c.Highlight.Found.Foreground,
		"highlight.found.background": c.Highlight.Found.Background,
		"highlight.focus.foreground": c.Highlight.Focus.Foreground,
		"highlight.focus.background": c.Highlight.Focus.Background,
	} {
		if !validColor(color) {
			return &ValidationError{Path: path, Message: "want a hex color or an ANSI color number", Value: color}
		}
	}
	return nil
}

// validColor accepts "#RRGGBB" hex colors and ANSI color numbers 0-255.
func validColor(s string) bool {
	if _, err := colorful.Hex(s); err == nil {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}

// LogLevel returns the configured log level, or info when unset.
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Logging.Level)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// SearchOptions converts the search section into Finder options.
func (c *Config) SearchOptions() []search.Option {
	var opts []search.Option
	if c.Search.LegacySpaceBoundary {
		opts = append(opts, search.WithLegacySpaceBoundary())
	}
	if c.Search.WholeWordReplace {
		opts = append(opts, search.WithWholeWordReplace())
	}
	if c.Search.NormalizeTerm {
		opts = append(opts, search.WithNormalizedTerm())
	}
	return opts
}

// EngineOptions converts the editor section into document options.
func (c *Config) EngineOptions() []engine.Option {
	return []engine.Option{engine.WithTabWidth(c.Editor.TabWidth)}
}
