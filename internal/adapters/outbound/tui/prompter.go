package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fixhook/fixhook/internal/domain"
)

// LinePrompter asks on a plain line-oriented stream. It is used when stdin
// is not a terminal (pipes, editors, tests).
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

var _ domain.Prompter = (*LinePrompter)(nil)

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Choose re-asks until the answer matches a choice. End of input counts as Cancel.
func (p *LinePrompter) Choose(ctx context.Context, message string, choices []domain.Choice) (domain.Choice, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprintf(p.out, "%s\n  %s: ", promptStyle.Render(message), renderOptions(choices))

		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading answer: %w", err)
		}
		if c, ok := matchChoice(strings.TrimSpace(line), choices); ok {
			return c, nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return domain.ChoiceCancel, nil
		}
		fmt.Fprintln(p.out, dimStyle.Render("  Please answer with one of the keys shown."))
	}
}

func hotkey(c domain.Choice) string {
	switch c {
	case domain.ChoiceShowDiff:
		return "d"
	default:
		return strings.ToLower(c.Label()[:1])
	}
}

func renderOptions(choices []domain.Choice) string {
	parts := make([]string, len(choices))
	for i, c := range choices {
		parts[i] = keyStyle.Render("["+hotkey(c)+"]") + " " + c.Label()
	}
	return strings.Join(parts, "  ")
}

// matchChoice accepts a hotkey, the full label or a 1-based index.
func matchChoice(answer string, choices []domain.Choice) (domain.Choice, bool) {
	a := strings.ToLower(answer)
	if a == "" {
		return "", false
	}
	if n, err := strconv.Atoi(a); err == nil && n >= 1 && n <= len(choices) {
		return choices[n-1], true
	}
	for _, c := range choices {
		if a == hotkey(c) || a == strings.ToLower(c.Label()) || a == string(c) {
			return c, true
		}
	}
	return "", false
}
