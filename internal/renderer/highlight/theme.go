package highlight

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dshills/notepad/internal/config"
)

// Theme holds the style of each match state.
type Theme struct {
	Found lipgloss.Style
	Focus lipgloss.Style
}

// DefaultTheme returns the theme of the default configuration.
func DefaultTheme() *Theme {
	return NewTheme(config.Default().Highlight)
}

// NewTheme builds a theme from highlight settings. When highlighting is
// disabled every state renders as plain text.
func NewTheme(cfg config.HighlightConfig) *Theme {
	if !cfg.Enabled {
		return PlainTheme()
	}
	return &Theme{
		Found: tagStyle(cfg.Found),
		Focus: tagStyle(cfg.Focus).Bold(true),
	}
}

// PlainTheme returns a theme without any styling.
func PlainTheme() *Theme {
	return &Theme{
		Found: lipgloss.NewStyle(),
		Focus: lipgloss.NewStyle(),
	}
}

func tagStyle(s config.TagStyle) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.Foreground)).
		Background(lipgloss.Color(s.Background))
}

// Paint renders text in the style of state.
func (t *Theme) Paint(state State, text string) string {
	switch state {
	case StateFound:
		return t.Found.Render(text)
	case StateFocus:
		return t.Focus.Render(text)
	default:
		return text
	}
}
