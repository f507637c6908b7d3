package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlighter_ColorsKnownLanguages(t *testing.T) {
	h := newHighlighter("main.go")
	require.NotNil(t, h)

	out := h.line("func main() {}")
	assert.Contains(t, out, "\x1b[")
	assert.NotContains(t, out, "\n")
	assert.Equal(t, lipgloss.Width("func main() {}"), lipgloss.Width(out))
}

func TestHighlighter_UnknownTypeIsPlain(t *testing.T) {
	h := newHighlighter("notes.unknownext")
	assert.Nil(t, h)
	assert.Equal(t, "plain text", h.line("plain text"))
}

func TestRenderSideBySide_HighlightsUnchangedLines(t *testing.T) {
	original := "package main\n\nfunc mian() {}\n"
	fixed := "package main\n\nfunc main() {}\n"

	plain := RenderSideBySide("main.go", original, fixed, 100)
	colored := renderSideBySide("main.go", original, fixed, 100, newHighlighter("main.go"))

	assert.NotContains(t, plain, "\x1b[")
	assert.Contains(t, colored, "\x1b[")
	assert.Contains(t, colored, "+ func main() {}")
}
