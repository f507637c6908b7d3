package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fixhook/fixhook/internal/adapters/outbound/textdiff"
)

// DefaultDiffWidth is the total width of the side-by-side view.
const DefaultDiffWidth = 120

var (
	delStyle    = lipgloss.NewStyle().Foreground(danger)
	insStyle    = lipgloss.NewStyle().Foreground(success)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
)

// RenderSideBySide renders original (left) and fixed (right) in two columns.
func RenderSideBySide(filename, original, fixed string, width int) string {
	return renderSideBySide(filename, original, fixed, width, nil)
}

// renderSideBySide is RenderSideBySide with unchanged lines passed through h.
func renderSideBySide(filename, original, fixed string, width int, h *highlighter) string {
	if width < 40 {
		width = 40
	}
	col := (width - 3) / 2
	lines := textdiff.Lines(original, fixed)
	removed, added := textdiff.Stats(lines)

	var b strings.Builder
	b.WriteString("  " + titleStyle.Render(filename) + "  ")
	b.WriteString(failStyle.Render(fmt.Sprintf("-%d", removed)) + " ")
	b.WriteString(passStyle.Render(fmt.Sprintf("+%d", added)))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render(padRight("  Original", col)))
	b.WriteString(faintStyle.Render(" │ "))
	b.WriteString(headerStyle.Render("Fixed"))
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(strings.Repeat("─", col) + "─┼─" + strings.Repeat("─", col)))
	b.WriteString("\n")

	if removed == 0 && added == 0 {
		b.WriteString("  " + dimStyle.Render("No changes: the fixed code is identical to the original.") + "\n")
		return b.String()
	}

	for _, row := range textdiff.SideBySide(lines) {
		b.WriteString(renderCell(row.Left, col, true, h))
		b.WriteString(faintStyle.Render(" │ "))
		b.WriteString(renderCell(row.Right, col, false, h))
		b.WriteString("\n")
	}
	return b.String()
}

func renderCell(l *textdiff.Line, col int, left bool, h *highlighter) string {
	if l == nil {
		return strings.Repeat(" ", col)
	}
	n := l.NewLine
	if left {
		n = l.OldLine
	}
	marker, style := "  ", lipgloss.NewStyle()
	switch l.Op {
	case textdiff.Delete:
		marker, style = "- ", delStyle
	case textdiff.Insert:
		marker, style = "+ ", insStyle
	}
	text := truncate(l.Text, col-len(marker)-5)
	body := style.Render(marker + text)
	if l.Op == textdiff.Equal && h != nil {
		body = marker + h.line(text)
	}
	cell := dimStyle.Render(lineNo(n)) + " " + body
	return padRight(cell, col)
}
