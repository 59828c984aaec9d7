package view

import "strings"

// Walk calls fn for v and each descendant in reading order: stacks and grid
// rows front to back, containers before their children. Returning false from
// fn skips the children of that view.
func Walk(v View, fn func(View) bool) {
	if v == nil || !fn(v) {
		return
	}
	switch v := v.(type) {
	case VStack:
		for _, c := range v.Children {
			Walk(c, fn)
		}
	case HStack:
		for _, c := range v.Children {
			Walk(c, fn)
		}
	case Grid:
		for _, row := range v.Rows {
			for _, c := range row {
				Walk(c, fn)
			}
		}
	case Frame:
		Walk(v.Child, fn)
	case Border:
		Walk(v.Child, fn)
	case Indent:
		Walk(v.Child, fn)
	case Anchor:
		Walk(v.Child, fn)
	}
}

// Texts returns the plain text of every Text view under v in reading order.
func Texts(v View) []string {
	var out []string
	Walk(v, func(cur View) bool {
		if t, ok := cur.(Text); ok {
			out = append(out, t.PlainText())
		}
		return true
	})
	return out
}

// PlainText joins all text under v with single spaces; code lines are
// included verbatim.
func PlainText(v View) string {
	var parts []string
	Walk(v, func(cur View) bool {
		switch t := cur.(type) {
		case Text:
			if s := t.PlainText(); s != "" {
				parts = append(parts, s)
			}
		case Code:
			parts = append(parts, strings.Join(t.Lines, "\n"))
		}
		return true
	})
	return strings.Join(parts, " ")
}
