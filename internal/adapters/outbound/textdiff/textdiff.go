// Package textdiff computes line diffs between original and fixed code.
package textdiff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

// Line is one diff line. OldLine/NewLine are 1-based; 0 means absent on that side.
type Line struct {
	Op      Op
	Text    string
	OldLine int
	NewLine int
}

// Row pairs an original line with a fixed line for side-by-side display.
// Either side may be nil.
type Row struct {
	Left  *Line
	Right *Line
}

// Lines returns the line diff of a against b.
func Lines(a, b string) []Line {
	dmp := diffmatchpatch.New()
	ca, cb, table := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), table)

	var (
		out              []Line
		oldLine, newLine int
	)
	for _, d := range diffs {
		for _, text := range splitLines(d.Text) {
			l := Line{Text: text}
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				oldLine++
				newLine++
				l.Op, l.OldLine, l.NewLine = Equal, oldLine, newLine
			case diffmatchpatch.DiffDelete:
				oldLine++
				l.Op, l.OldLine = Delete, oldLine
			case diffmatchpatch.DiffInsert:
				newLine++
				l.Op, l.NewLine = Insert, newLine
			}
			out = append(out, l)
		}
	}
	return out
}

// SideBySide pairs each run of deletions with the insertions that follow it.
func SideBySide(lines []Line) []Row {
	var rows []Row
	for i := 0; i < len(lines); {
		if lines[i].Op == Equal {
			rows = append(rows, Row{Left: &lines[i], Right: &lines[i]})
			i++
			continue
		}
		var dels, ins []*Line
		for i < len(lines) && lines[i].Op == Delete {
			dels = append(dels, &lines[i])
			i++
		}
		for i < len(lines) && lines[i].Op == Insert {
			ins = append(ins, &lines[i])
			i++
		}
		for j := 0; j < max(len(dels), len(ins)); j++ {
			var r Row
			if j < len(dels) {
				r.Left = dels[j]
			}
			if j < len(ins) {
				r.Right = ins[j]
			}
			rows = append(rows, r)
		}
	}
	return rows
}

// Stats counts removed and added lines.
func Stats(lines []Line) (removed, added int) {
	for _, l := range lines {
		switch l.Op {
		case Delete:
			removed++
		case Insert:
			added++
		}
	}
	return removed, added
}

// Unified renders the whole diff with ---/+++ headers and -/+/space prefixes.
func Unified(name string, a, b string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s (original)\n+++ %s (fixed)\n", name, name)
	for _, l := range Lines(a, b) {
		switch l.Op {
		case Delete:
			sb.WriteString("-")
		case Insert:
			sb.WriteString("+")
		default:
			sb.WriteString(" ")
		}
		sb.WriteString(l.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.SplitAfter(s, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\n")
	}
	return parts
}
