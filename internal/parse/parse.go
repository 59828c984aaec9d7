// Package parse adapts the goldmark CommonMark parser to the node model.
// Raw HTML blocks are passed through as node.HTMLBlock for the renderer to
// interpret.
package parse

import (
	"strings"

	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/hyperifyio/mdrender/internal/node"
)

// Parser is stateless and safe to share across goroutines.
type Parser struct {
	md goldmark.Markdown
}

// New builds a parser with the GFM table, strikethrough, task list and
// linkify extensions.
func New() *Parser {
	md := goldmark.New(goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		extension.TaskList,
		extension.Linkify,
	))
	return &Parser{md: md}
}

// Parse converts Markdown source into top-level blocks.
func (p *Parser) Parse(source []byte) []node.Block {
	doc := p.md.Parser().Parse(text.NewReader(source))
	c := converter{source: source}
	return c.blocks(doc)
}

type converter struct {
	source []byte
}

func (c converter) blocks(parent gast.Node) []node.Block {
	var out []node.Block
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		if b, ok := c.block(n); ok {
			out = append(out, b)
		}
	}
	return out
}

func (c converter) block(n gast.Node) (node.Block, bool) {
	switch n := n.(type) {
	case *gast.Paragraph:
		return node.Paragraph{Content: c.inlines(n)}, true
	case *gast.TextBlock:
		return node.Paragraph{Content: c.inlines(n)}, true
	case *gast.Heading:
		return node.NewHeading(n.Level, c.inlines(n)), true
	case *gast.ThematicBreak:
		return node.ThematicBreak{}, true
	case *gast.CodeBlock:
		return node.CodeBlock{Content: c.lines(n)}, true
	case *gast.FencedCodeBlock:
		info := ""
		if n.Info != nil {
			info = strings.TrimSpace(string(n.Info.Segment.Value(c.source)))
		}
		return node.CodeBlock{FenceInfo: info, Content: c.lines(n)}, true
	case *gast.Blockquote:
		return node.Blockquote{Children: c.blocks(n)}, true
	case *gast.List:
		return c.list(n), true
	case *gast.HTMLBlock:
		content := c.lines(n)
		if n.HasClosure() {
			content += string(n.ClosureLine.Value(c.source))
		}
		return node.HTMLBlock{Content: content}, true
	case *east.Table:
		return c.table(n), true
	}
	return nil, false
}

func (c converter) lines(n gast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(c.source))
	}
	return b.String()
}

func (c converter) list(l *gast.List) node.Block {
	if isTaskList(l) {
		tl := node.TaskList{Tight: l.IsTight}
		for it := l.FirstChild(); it != nil; it = it.NextSibling() {
			tl.Items = append(tl.Items, node.TaskListItem{Completed: taskChecked(it), Children: c.blocks(it)})
		}
		return tl
	}
	var items []node.ListItem
	for it := l.FirstChild(); it != nil; it = it.NextSibling() {
		items = append(items, node.ListItem{Children: c.blocks(it)})
	}
	if l.IsOrdered() {
		return node.NumberedList{Tight: l.IsTight, Start: l.Start, Items: items}
	}
	return node.BulletedList{Tight: l.IsTight, Items: items}
}

func taskCheckBox(item gast.Node) *east.TaskCheckBox {
	first := item.FirstChild()
	if first == nil {
		return nil
	}
	box, _ := first.FirstChild().(*east.TaskCheckBox)
	return box
}

func isTaskList(l *gast.List) bool {
	for it := l.FirstChild(); it != nil; it = it.NextSibling() {
		if taskCheckBox(it) != nil {
			return true
		}
	}
	return false
}

func taskChecked(item gast.Node) bool {
	box := taskCheckBox(item)
	return box != nil && box.IsChecked
}

func (c converter) table(t *east.Table) node.Table {
	out := node.Table{Alignments: make([]node.Alignment, 0, len(t.Alignments))}
	for _, a := range t.Alignments {
		out.Alignments = append(out.Alignments, alignment(a))
	}
	if len(out.Alignments) == 0 {
		out.Alignments = append(out.Alignments, node.AlignNone)
	}
	for r := t.FirstChild(); r != nil; r = r.NextSibling() {
		var row node.Row
		for cell := r.FirstChild(); cell != nil; cell = cell.NextSibling() {
			row.Cells = append(row.Cells, node.Cell{Content: c.inlines(cell)})
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

func alignment(a east.Alignment) node.Alignment {
	switch a {
	case east.AlignLeft:
		return node.AlignLeft
	case east.AlignCenter:
		return node.AlignCenter
	case east.AlignRight:
		return node.AlignRight
	default:
		return node.AlignNone
	}
}

func (c converter) inlines(parent gast.Node) []node.Inline {
	var out []node.Inline
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *gast.Text:
			if v := n.Segment.Value(c.source); len(v) > 0 {
				out = append(out, node.Text{Value: string(v)})
			}
			if n.HardLineBreak() {
				out = append(out, node.LineBreak{})
			} else if n.SoftLineBreak() {
				out = append(out, node.SoftBreak{})
			}
		case *gast.String:
			out = append(out, node.Text{Value: string(n.Value)})
		case *gast.CodeSpan:
			out = append(out, node.Code{Value: node.PlainText(c.inlines(n))})
		case *gast.Emphasis:
			if n.Level >= 2 {
				out = append(out, node.Strong{Children: c.inlines(n)})
			} else {
				out = append(out, node.Emphasis{Children: c.inlines(n)})
			}
		case *east.Strikethrough:
			out = append(out, node.Strikethrough{Children: c.inlines(n)})
		case *gast.Link:
			out = append(out, node.Link{Destination: string(n.Destination), Children: c.inlines(n)})
		case *gast.AutoLink:
			out = append(out, node.Link{
				Destination: string(n.URL(c.source)),
				Children:    []node.Inline{node.Text{Value: string(n.Label(c.source))}},
			})
		case *gast.Image:
			out = append(out, node.Image{Source: string(n.Destination), Children: c.inlines(n)})
		case *gast.RawHTML:
			var b strings.Builder
			for i := 0; i < n.Segments.Len(); i++ {
				seg := n.Segments.At(i)
				b.Write(seg.Value(c.source))
			}
			out = append(out, node.InlineHTML{Value: b.String()})
		case *east.TaskCheckBox:
			// carried by node.TaskListItem
		default:
			out = append(out, c.inlines(n)...)
		}
	}
	return out
}
