package libdiff

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) Prefix() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	}
	return " "
}

type Line struct {
	Op   Op
	Text string
}

func (l Line) String() string {
	return l.Op.Prefix() + l.Text
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func mapLinesTo(m map[string]rune, im map[rune]string, lines []string) []rune {
	rs := make([]rune, len(lines))
	for i, ln := range lines {
		r, ok := m[ln]
		if !ok {
			r = rune(len(m))
			m[ln] = r
			im[r] = ln
		}
		rs[i] = r
	}
	return rs
}

// Lines returns the line diff turning from into to.
func Lines(from, to string) []Line {
	lineMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapLinesTo(lineMap, runeMap, splitLines(from))
	toRunes := mapLinesTo(lineMap, runeMap, splitLines(to))
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	res := []Line{}
	for i := range diffs {
		diff := &diffs[i]
		op := Equal
		switch diff.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		}
		for _, r := range diff.Text {
			res = append(res, Line{Op: op, Text: runeMap[r]})
		}
	}
	return res
}

// Changed reports whether any line differs.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != Equal {
			return true
		}
	}
	return false
}

const context = 3

// Unified returns the diff of from and to in unified format, or "" if
// they have the same lines.
func Unified(fromName, toName, from, to string) string {
	lines := Lines(from, to)
	if !Changed(lines) {
		return ""
	}
	buf := &strings.Builder{}
	fmt.Fprintf(buf, "--- %s\n+++ %s\n", fromName, toName)
	for _, h := range hunks(lines) {
		oldBefore, newBefore := count(lines[:h[0]])
		oldN, newN := count(lines[h[0]:h[1]])
		fmt.Fprintf(buf, "@@ -%s +%s @@\n", span(oldBefore, oldN), span(newBefore, newN))
		for _, l := range lines[h[0]:h[1]] {
			buf.WriteString(l.String())
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}

// hunks returns the [start, end) line ranges of the changes with their
// context, merging ranges whose context overlaps.
func hunks(lines []Line) [][2]int {
	var res [][2]int
	for i, l := range lines {
		if l.Op == Equal {
			continue
		}
		start, end := max(0, i-context), min(len(lines), i+1+context)
		if n := len(res); n > 0 && start <= res[n-1][1] {
			res[n-1][1] = end
			continue
		}
		res = append(res, [2]int{start, end})
	}
	return res
}

func count(lines []Line) (old, new int) {
	for _, l := range lines {
		switch l.Op {
		case Equal:
			old++
			new++
		case Delete:
			old++
		case Insert:
			new++
		}
	}
	return old, new
}

func span(before, n int) string {
	if n == 0 {
		return fmt.Sprintf("%d,0", before)
	}
	if n == 1 {
		return fmt.Sprintf("%d", before+1)
	}
	return fmt.Sprintf("%d,%d", before+1, n)
}
