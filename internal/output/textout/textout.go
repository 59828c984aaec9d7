// Package textout lays a view tree out as fixed-width text for terminals.
package textout

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"

	"github.com/hyperifyio/mdrender/internal/node"
	"github.com/hyperifyio/mdrender/internal/view"
)

// DefaultWidth is used when a caller passes a width below 1.
const DefaultWidth = 80

// Render lays v out into lines of at most cols display columns. Trailing
// spaces are trimmed and the result ends with a newline.
func Render(v view.View, cols int) string {
	if cols < 1 {
		cols = DefaultWidth
	}
	lines := layout(v, cols)
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(strings.TrimRight(l, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

type borderChars struct {
	h, v                   string
	tl, tr, bl, br         string
	teeL, teeR, teeT, teeB string
	cross                  string
}

var (
	lightBorder = borderChars{h: "─", v: "│", tl: "┌", tr: "┐", bl: "└", br: "┘", teeL: "├", teeR: "┤", teeT: "┬", teeB: "┴", cross: "┼"}
	plainBorder = borderChars{h: "-", v: "|", tl: "+", tr: "+", bl: "+", br: "+", teeL: "+", teeR: "+", teeT: "+", teeB: "+", cross: "+"}
)

func charsFor(s view.BorderStyle) borderChars {
	if s == view.BorderLight {
		return lightBorder
	}
	return plainBorder
}

func layout(v view.View, w int) []string {
	if w < 1 {
		w = 1
	}
	switch v := v.(type) {
	case view.Text:
		return wrapText(v, w)
	case view.VStack:
		var out []string
		for i, c := range v.Children {
			if i > 0 {
				for j := 0; j < v.Spacing; j++ {
					out = append(out, "")
				}
			}
			out = append(out, layout(c, w)...)
		}
		return out
	case view.HStack:
		return layoutColumns(v.Children, w, v.Spacing)
	case view.Grid:
		return layoutGrid(v, w)
	case view.Frame:
		return align(layout(v.Child, w), w, v.Alignment)
	case view.Border:
		if v.Style == view.BorderNone {
			return layout(v.Child, w)
		}
		return box(layout(v.Child, max(w-4, 1)), max(w-4, 1), charsFor(v.Style))
	case view.Indent:
		mw := StringWidth(v.Marker)
		child := layout(v.Child, w-mw)
		if len(child) == 0 {
			return []string{v.Marker}
		}
		pad := strings.Repeat(" ", mw)
		out := make([]string, len(child))
		for i, l := range child {
			if i == 0 {
				out[i] = v.Marker + l
			} else {
				out[i] = pad + l
			}
		}
		return out
	case view.Rule:
		return []string{strings.Repeat("─", w)}
	case view.Anchor:
		return layout(v.Child, w)
	case view.Code:
		out := make([]string, len(v.Lines))
		for i, l := range v.Lines {
			out[i] = "    " + strings.ReplaceAll(l, "\t", "    ")
		}
		return out
	}
	return nil
}

// layoutColumns splits w evenly between children and zips their lines.
func layoutColumns(children []view.View, w, spacing int) []string {
	n := len(children)
	if n == 0 {
		return nil
	}
	widths := splitWidth(w-spacing*(n-1), n)
	cols := make([][]string, n)
	height := 0
	for i, c := range children {
		cols[i] = layout(c, widths[i])
		height = max(height, len(cols[i]))
	}
	gap := strings.Repeat(" ", spacing)
	out := make([]string, height)
	for row := 0; row < height; row++ {
		var b strings.Builder
		for i := range cols {
			if i > 0 {
				b.WriteString(gap)
			}
			line := ""
			if row < len(cols[i]) {
				line = cols[i][row]
			}
			b.WriteString(padRight(line, widths[i]))
		}
		out[row] = b.String()
	}
	return out
}

func layoutGrid(g view.Grid, w int) []string {
	n := len(g.Columns)
	if n == 0 {
		return nil
	}
	bc := charsFor(g.Border)
	// each column costs "│ " + content + " ", plus the closing "│"
	widths := splitWidth(w-1-3*n, n)

	rule := func(left, mid, right string) string {
		var b strings.Builder
		b.WriteString(left)
		for i, cw := range widths {
			if i > 0 {
				b.WriteString(mid)
			}
			b.WriteString(strings.Repeat(bc.h, cw+2))
		}
		b.WriteString(right)
		return b.String()
	}

	out := []string{rule(bc.tl, bc.teeT, bc.tr)}
	for r, row := range g.Rows {
		if r > 0 {
			out = append(out, rule(bc.teeL, bc.cross, bc.teeR))
		}
		cells := make([][]string, n)
		height := 1
		for c := 0; c < n; c++ {
			var cell view.View = view.Text{}
			if c < len(row) {
				cell = row[c]
			}
			cells[c] = layout(cell, widths[c])
			height = max(height, len(cells[c]))
		}
		for line := 0; line < height; line++ {
			var b strings.Builder
			for c := 0; c < n; c++ {
				b.WriteString(bc.v)
				b.WriteByte(' ')
				s := ""
				if line < len(cells[c]) {
					s = cells[c][line]
				}
				b.WriteString(padRight(s, widths[c]))
				b.WriteByte(' ')
			}
			b.WriteString(bc.v)
			out = append(out, b.String())
		}
	}
	return append(out, rule(bc.bl, bc.teeB, bc.br))
}

func box(lines []string, inner int, bc borderChars) []string {
	out := make([]string, 0, len(lines)+2)
	out = append(out, bc.tl+strings.Repeat(bc.h, inner+2)+bc.tr)
	if len(lines) == 0 {
		lines = []string{""}
	}
	for _, l := range lines {
		out = append(out, bc.v+" "+padRight(l, inner)+" "+bc.v)
	}
	return append(out, bc.bl+strings.Repeat(bc.h, inner+2)+bc.br)
}

func align(lines []string, w int, a node.Alignment) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		gap := w - StringWidth(l)
		switch {
		case gap <= 0:
			out[i] = l
		case a == node.AlignCenter:
			out[i] = strings.Repeat(" ", gap/2) + l
		case a == node.AlignRight:
			out[i] = strings.Repeat(" ", gap) + l
		default:
			out[i] = l
		}
	}
	return out
}

// splitWidth divides total into n parts of at least 1, giving the remainder
// to the last part.
func splitWidth(total, n int) []int {
	each := total / n
	if each < 1 {
		each = 1
	}
	out := make([]int, n)
	for i := range out {
		out[i] = each
	}
	if rest := total - each*n; rest > 0 {
		out[n-1] += rest
	}
	return out
}

// wrapText greedily wraps the runs of t. Forced breaks start new lines and
// words wider than w are split.
func wrapText(t view.Text, w int) []string {
	var paragraphs []string
	var cur strings.Builder
	for _, r := range t.Runs {
		cur.WriteString(r.Text)
		if r.Break {
			paragraphs = append(paragraphs, cur.String())
			cur.Reset()
		}
	}
	paragraphs = append(paragraphs, cur.String())

	var out []string
	for _, p := range paragraphs {
		out = append(out, wrapLine(p, w)...)
	}
	return out
}

func wrapLine(s string, w int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var out []string
	line := ""
	lineW := 0
	for _, word := range words {
		ww := StringWidth(word)
		for ww > w {
			if lineW > 0 {
				out = append(out, line)
				line, lineW = "", 0
			}
			head, tail := splitAtWidth(word, w)
			out = append(out, head)
			word = tail
			ww = StringWidth(word)
		}
		if ww == 0 {
			continue
		}
		switch {
		case lineW == 0:
			line, lineW = word, ww
		case lineW+1+ww <= w:
			line += " " + word
			lineW += 1 + ww
		default:
			out = append(out, line)
			line, lineW = word, ww
		}
	}
	if lineW > 0 {
		out = append(out, line)
	}
	return out
}

func splitAtWidth(s string, w int) (string, string) {
	used := 0
	for i, r := range s {
		rw := RuneWidth(r)
		if used+rw > w && used > 0 {
			return s[:i], s[i:]
		}
		used += rw
	}
	return s, ""
}

func padRight(s string, w int) string {
	if gap := w - StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// RuneWidth is the number of terminal columns r occupies: 2 for East Asian
// wide and fullwidth characters, 0 for combining marks, 1 otherwise.
func RuneWidth(r rune) int {
	if r == 0 || unicode.Is(unicode.Mn, r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// StringWidth sums RuneWidth over s.
func StringWidth(s string) int {
	n := 0
	for _, r := range s {
		n += RuneWidth(r)
	}
	return n
}
