// Package view holds the platform-neutral UI tree produced by the renderer.
// Surfaces (text, PDF) lay it out; the tree itself is plain data.
package view

import (
	"github.com/hyperifyio/mdrender/internal/node"
	"github.com/hyperifyio/mdrender/internal/style"
)

// View is a node of the UI tree. The variant set is closed.
type View interface {
	view()
}

// Run is a styled span of text.
type Run struct {
	Text  string
	Attrs style.Native
	// Break ends the current line after Text.
	Break bool
}

type Text struct {
	Runs []Run
}

// VStack lays children out top to bottom.
type VStack struct {
	Spacing  int
	Children []View
}

// HStack lays children out left to right, top-aligned.
type HStack struct {
	Spacing  int
	Children []View
}

// Grid is a table laid out with a native grid primitive. Columns fix the
// column count; rows with fewer cells leave trailing columns empty and
// extra cells are dropped.
type Grid struct {
	Columns []node.Alignment
	Rows    [][]View
	Border  BorderStyle
}

// Frame expands Child to the available width and places it per Alignment.
type Frame struct {
	Alignment node.Alignment
	Child     View
}

type BorderStyle int

const (
	BorderNone BorderStyle = iota
	// BorderLight is drawn with box-drawing characters / thin strokes.
	BorderLight
	// BorderPlain is drawn with ASCII characters / plain strokes.
	BorderPlain
)

// Border draws a box around Child.
type Border struct {
	Style BorderStyle
	Child View
}

// Indent prefixes the first line of Child with Marker and indents the rest
// by the marker width.
type Indent struct {
	Marker string
	Child  View
}

// Rule is a horizontal separator.
type Rule struct{}

// Anchor names Child so it can be linked to.
type Anchor struct {
	ID    string
	Child View
}

// Code is preformatted text; lines are never wrapped or collapsed.
type Code struct {
	Language string
	Lines    []string
	Attrs    style.Native
}

func (Text) view()   {}
func (VStack) view() {}
func (HStack) view() {}
func (Grid) view()   {}
func (Frame) view()  {}
func (Border) view() {}
func (Indent) view() {}
func (Rule) view()   {}
func (Anchor) view() {}
func (Code) view()   {}

// PlainText concatenates the text of all runs.
func (t Text) PlainText() string {
	n := 0
	for _, r := range t.Runs {
		n += len(r.Text)
	}
	b := make([]byte, 0, n)
	for _, r := range t.Runs {
		b = append(b, r.Text...)
	}
	return string(b)
}
