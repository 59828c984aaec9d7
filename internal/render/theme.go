package render

import "github.com/hyperifyio/mdrender/internal/style"

// Theme holds the text styles applied per element.
type Theme struct {
	Text          style.TextStyle
	Headings      [6]style.TextStyle
	Code          style.TextStyle
	CodeBlock     style.TextStyle
	Emphasis      style.TextStyle
	Strong        style.TextStyle
	Strikethrough style.TextStyle
	Link          style.TextStyle
	Blockquote    style.TextStyle
	TableHeader   style.TextStyle
	// BlockSpacing is the gap between sibling blocks, in lines.
	BlockSpacing int
}

// DefaultTheme mirrors the stock look: scaled bold headings, monospaced code
// and a muted blockquote.
func DefaultTheme() Theme {
	heading := func(scale float64) style.TextStyle {
		return style.Styles{style.FontWeightStyle{Weight: style.WeightSemibold}, style.FontSize{Size: scale, Relative: true}}
	}
	mono := style.Styles{style.FontFamilyVariantStyle{Variant: style.FamilyMonospaced}, style.FontSize{Size: 0.85, Relative: true}}
	return Theme{
		Text:          style.NoStyle{},
		Headings:      [6]style.TextStyle{heading(2), heading(1.5), heading(1.25), heading(1), heading(0.875), heading(0.85)},
		Code:          style.Styles{mono, style.BackgroundColor{Color: style.RGB(0xf0, 0xf0, 0xf0)}},
		CodeBlock:     mono,
		Emphasis:      style.Italic{},
		Strong:        style.FontWeightStyle{Weight: style.WeightSemibold},
		Strikethrough: style.Strikethrough{},
		Link:          style.ForegroundColor{Color: style.RGB(0x22, 0x6a, 0xe0)},
		Blockquote:    style.ForegroundColor{Color: style.RGB(0x6b, 0x6e, 0x75)},
		TableHeader:   style.FontWeightStyle{Weight: style.WeightSemibold},
		BlockSpacing:  1,
	}
}

// HeadingStyle returns the style for a heading level, clamping the index.
func (t Theme) HeadingStyle(level int) style.TextStyle {
	if level < 1 {
		level = 1
	}
	if level > len(t.Headings) {
		level = len(t.Headings)
	}
	return t.Headings[level-1]
}
