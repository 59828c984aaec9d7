package node

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Inline is content inside a block. Like Block, the variant set is closed.
type Inline interface {
	inlineNode()
}

type Text struct {
	Value string
}

// Image references an image; Children hold the alt text.
type Image struct {
	Source   string
	Children []Inline
}

type Code struct {
	Value string
}

type Emphasis struct {
	Children []Inline
}

type Strong struct {
	Children []Inline
}

type Strikethrough struct {
	Children []Inline
}

type Link struct {
	Destination string
	Children    []Inline
}

type SoftBreak struct{}

type LineBreak struct{}

// InlineHTML is a raw HTML fragment inside a paragraph.
type InlineHTML struct {
	Value string
}

func (Text) inlineNode()          {}
func (Image) inlineNode()         {}
func (Code) inlineNode()          {}
func (Emphasis) inlineNode()      {}
func (Strong) inlineNode()        {}
func (Strikethrough) inlineNode() {}
func (Link) inlineNode()          {}
func (SoftBreak) inlineNode()     {}
func (LineBreak) inlineNode()     {}
func (InlineHTML) inlineNode()    {}

// PlainText flattens inline content to text. Breaks become spaces and
// inline HTML is dropped.
func PlainText(content []Inline) string {
	var b strings.Builder
	writePlain(&b, content)
	return b.String()
}

func writePlain(b *strings.Builder, content []Inline) {
	for _, in := range content {
		switch n := in.(type) {
		case Text:
			b.WriteString(n.Value)
		case Code:
			b.WriteString(n.Value)
		case Image:
			writePlain(b, n.Children)
		case Emphasis:
			writePlain(b, n.Children)
		case Strong:
			writePlain(b, n.Children)
		case Strikethrough:
			writePlain(b, n.Children)
		case Link:
			writePlain(b, n.Children)
		case SoftBreak, LineBreak:
			b.WriteByte(' ')
		case InlineHTML:
		}
	}
}

var lower = cases.Lower(language.Und)

// Slug returns a kebab-cased anchor for heading text: lowercase letters and
// digits joined by single hyphens.
func Slug(s string) string {
	s = lower.String(s)
	var b strings.Builder
	pendingDash := false
	for _, r := range s {
		if isSlugRune(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}

func isSlugRune(r rune) bool {
	if r < utf8.RuneSelf {
		return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
