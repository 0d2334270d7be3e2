package report

import (
	"github.com/charmbracelet/glamour"
)

// DefaultWrap is the word-wrap width used for terminal rendering.
const DefaultWrap = 120

// Terminal styles a markdown report for display. width <= 0 uses DefaultWrap.
func Terminal(markdown string, width int) (string, error) {
	if width <= 0 {
		width = DefaultWrap
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}
