package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// NewMarkdownRenderer builds the renderer used for the home banner and
// product descriptions. plain selects the colorless style.
func NewMarkdownRenderer(width int, plain bool) *glamour.TermRenderer {
	style := glamour.WithAutoStyle()
	if plain {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return nil
	}
	return r
}

// RenderMarkdown renders text with r, falling back to the raw text.
func RenderMarkdown(r *glamour.TermRenderer, text string) string {
	if r == nil || strings.TrimSpace(text) == "" {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
