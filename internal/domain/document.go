package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Position in a document (0-based line and character, characters counted in runes).
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range in a document. End is exclusive.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// IsEmpty reports whether the range covers no characters.
func (r Range) IsEmpty() bool { return r.Start == r.End }

func (p Position) before(o Position) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Character < o.Character
}

// Document is a snapshot of a file as read from disk.
type Document struct {
	Path        string `json:"path"`
	LanguageID  string `json:"language_id"`
	Text        string `json:"-"`
	Fingerprint string `json:"fingerprint"`
}

// Lines splits the document on '\n'. A trailing newline yields a final empty line.
func (d *Document) Lines() []string {
	return strings.Split(d.Text, "\n")
}

// FullRange returns a range spanning the whole document.
func (d *Document) FullRange() Range {
	lines := d.Lines()
	last := len(lines) - 1
	return Range{
		Start: Position{},
		End:   Position{Line: last, Character: utf8.RuneCountInString(lines[last])},
	}
}

// LineRange returns the range covering 1-based lines from..to inclusive,
// without the newline (or CRLF) that terminates the last line.
func (d *Document) LineRange(from, to int) (Range, error) {
	lines := d.Lines()
	if from < 1 || to < from || to > len(lines) {
		return Range{}, NewUserError(fmt.Sprintf("invalid line selection %d-%d (document has %d lines)", from, to, len(lines)))
	}
	return Range{
		Start: Position{Line: from - 1},
		End:   Position{Line: to - 1, Character: utf8.RuneCountInString(strings.TrimSuffix(lines[to-1], "\r"))},
	}, nil
}

// Offset converts a position into a byte offset into Text.
func (d *Document) Offset(p Position) (int, error) {
	lines := d.Lines()
	if p.Line < 0 || p.Line >= len(lines) || p.Character < 0 {
		return 0, NewUserError(fmt.Sprintf("position %d:%d is outside the document", p.Line+1, p.Character+1))
	}
	off := 0
	for i := 0; i < p.Line; i++ {
		off += len(lines[i]) + 1
	}
	line := lines[p.Line]
	chars := 0
	for i := range line {
		if chars == p.Character {
			return off + i, nil
		}
		chars++
	}
	if chars == p.Character {
		return off + len(line), nil
	}
	return 0, NewUserError(fmt.Sprintf("position %d:%d is outside the document", p.Line+1, p.Character+1))
}

// TextIn returns the text covered by r.
func (d *Document) TextIn(r Range) (string, error) {
	start, end, err := d.offsets(r)
	if err != nil {
		return "", err
	}
	return d.Text[start:end], nil
}

// Replace returns the document text with r replaced by text.
func (d *Document) Replace(r Range, text string) (string, error) {
	start, end, err := d.offsets(r)
	if err != nil {
		return "", err
	}
	return d.Text[:start] + text + d.Text[end:], nil
}

func (d *Document) offsets(r Range) (int, int, error) {
	if r.End.before(r.Start) {
		return 0, 0, NewUserError("selection end is before its start")
	}
	start, err := d.Offset(r.Start)
	if err != nil {
		return 0, 0, err
	}
	end, err := d.Offset(r.End)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// Selection is a user selection: either an explicit Range, or 1-based
// inclusive whole lines StartLine..EndLine.
type Selection struct {
	StartLine int    `json:"start_line,omitempty"`
	EndLine   int    `json:"end_line,omitempty"`
	Range     *Range `json:"range,omitempty"`
}

// Resolve converts the selection into a range within doc.
func (s Selection) Resolve(doc *Document) (Range, error) {
	if s.Range != nil {
		if _, _, err := doc.offsets(*s.Range); err != nil {
			return Range{}, err
		}
		return *s.Range, nil
	}
	return doc.LineRange(s.StartLine, s.EndLine)
}
