package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fixhook/fixhook/internal/domain"
)

// parseSelection turns --lines or --range into a selection. Neither set
// yields nil, which the fix flow reports as "no code selected".
func parseSelection(lines, charRange string) (*domain.Selection, error) {
	switch {
	case lines != "":
		from, to, err := parseLines(lines)
		if err != nil {
			return nil, err
		}
		return &domain.Selection{StartLine: from, EndLine: to}, nil
	case charRange != "":
		r, err := parseRange(charRange)
		if err != nil {
			return nil, err
		}
		return &domain.Selection{Range: &r}, nil
	}
	return nil, nil
}

// parseLines accepts "A-B" or a single line "A".
func parseLines(s string) (int, int, error) {
	from, to, found := strings.Cut(strings.TrimSpace(s), "-")
	a, err := strconv.Atoi(strings.TrimSpace(from))
	if err != nil {
		return 0, 0, domain.NewUserError(fmt.Sprintf("invalid --lines %q: want A-B", s))
	}
	if !found {
		return a, a, nil
	}
	b, err := strconv.Atoi(strings.TrimSpace(to))
	if err != nil {
		return 0, 0, domain.NewUserError(fmt.Sprintf("invalid --lines %q: want A-B", s))
	}
	return a, b, nil
}

// parseRange accepts "L:C-L:C" with 1-based lines and columns.
func parseRange(s string) (domain.Range, error) {
	start, end, found := strings.Cut(strings.TrimSpace(s), "-")
	if !found {
		return domain.Range{}, domain.NewUserError(fmt.Sprintf("invalid --range %q: want L:C-L:C", s))
	}
	sp, err := parsePosition(start)
	if err != nil {
		return domain.Range{}, domain.NewUserError(fmt.Sprintf("invalid --range %q: %v", s, err))
	}
	ep, err := parsePosition(end)
	if err != nil {
		return domain.Range{}, domain.NewUserError(fmt.Sprintf("invalid --range %q: %v", s, err))
	}
	return domain.Range{Start: sp, End: ep}, nil
}

func parsePosition(s string) (domain.Position, error) {
	l, c, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return domain.Position{}, fmt.Errorf("position %q is not L:C", s)
	}
	line, err := strconv.Atoi(l)
	if err != nil || line < 1 {
		return domain.Position{}, fmt.Errorf("line %q must be a positive integer", l)
	}
	col, err := strconv.Atoi(c)
	if err != nil || col < 1 {
		return domain.Position{}, fmt.Errorf("column %q must be a positive integer", c)
	}
	return domain.Position{Line: line - 1, Character: col - 1}, nil
}

func parseColumns(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 40 {
		return 0, fmt.Errorf("terminal too narrow: %d", n)
	}
	return n, nil
}
