package tui

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlighter colors single lines of code for a terminal. A nil
// highlighter leaves text unchanged.
type highlighter struct {
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter chroma.Formatter
}

// newHighlighter picks a lexer from the filename. Unknown file types get nil.
func newHighlighter(filename string) *highlighter {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return nil
	}
	style := styles.Get("dracula")
	if style == nil {
		style = styles.Fallback
	}
	return &highlighter{
		lexer:     chroma.Coalesce(lexer),
		style:     style,
		formatter: formatters.TTY256,
	}
}

func (h *highlighter) line(s string) string {
	if h == nil || s == "" {
		return s
	}
	it, err := h.lexer.Tokenise(nil, s)
	if err != nil {
		return s
	}
	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, it); err != nil {
		return s
	}
	return strings.ReplaceAll(b.String(), "\n", "")
}
