package render

import (
	"fmt"
	"strings"

	"github.com/hyperifyio/mdrender/internal/htmlblock"
	"github.com/hyperifyio/mdrender/internal/node"
	"github.com/hyperifyio/mdrender/internal/style"
	"github.com/hyperifyio/mdrender/internal/view"
)

// Observer is told what the renderer produced. Implementations must be safe
// for the renderer's goroutine; the renderer itself keeps no counts.
type Observer interface {
	Block(kind string)
	HTMLFallback(c htmlblock.Category)
	TableStrategy(name string)
}

type nopObserver struct{}

func (nopObserver) Block(string)                    {}
func (nopObserver) HTMLFallback(htmlblock.Category) {}
func (nopObserver) TableStrategy(string)            {}

// Renderer turns document blocks into a view tree. It is stateless between
// calls; every call re-resolves HTML blocks and strategies.
type Renderer struct {
	Router      Router
	Interpreter htmlblock.Interpreter
	Theme       Theme
	Observer    Observer
}

// New returns a Renderer with the default theme and pattern interpreter.
func New(p Platform) *Renderer {
	return &Renderer{
		Router:      Router{Platform: p},
		Interpreter: htmlblock.PatternInterpreter{},
		Theme:       DefaultTheme(),
	}
}

func (r *Renderer) observer() Observer {
	if r.Observer == nil {
		return nopObserver{}
	}
	return r.Observer
}

func (r *Renderer) interpreter() htmlblock.Interpreter {
	if r.Interpreter == nil {
		return htmlblock.PatternInterpreter{}
	}
	return r.Interpreter
}

// Document renders top-level blocks into a vertical stack.
func (r *Renderer) Document(blocks []node.Block) view.View {
	base := r.Router.Attributes(style.Native{}, r.Theme.Text)
	return r.blocks(blocks, base, r.Theme.BlockSpacing)
}

// Block renders a single block with the theme's base text style.
func (r *Renderer) Block(b node.Block) view.View {
	return r.block(b, r.Router.Attributes(style.Native{}, r.Theme.Text))
}

func (r *Renderer) blocks(blocks []node.Block, base style.Native, spacing int) view.View {
	stack := view.VStack{Spacing: spacing, Children: make([]view.View, 0, len(blocks))}
	for _, b := range blocks {
		stack.Children = append(stack.Children, r.block(b, base))
	}
	return stack
}

func (r *Renderer) block(b node.Block, base style.Native) view.View {
	r.observer().Block(node.Kind(b))
	switch b := b.(type) {
	case node.Blockquote:
		quoted := r.Router.Attributes(base, r.Theme.Blockquote)
		return view.Indent{Marker: "│ ", Child: r.blocks(b.Children, quoted, r.Theme.BlockSpacing)}
	case node.BulletedList:
		items := make([]view.View, 0, len(b.Items))
		for _, it := range b.Items {
			items = append(items, view.Indent{Marker: "• ", Child: r.blocks(it.Children, base, itemSpacing(b.Tight))})
		}
		return view.VStack{Spacing: itemSpacing(b.Tight), Children: items}
	case node.NumberedList:
		items := make([]view.View, 0, len(b.Items))
		for i, it := range b.Items {
			marker := fmt.Sprintf("%d. ", b.Start+i)
			items = append(items, view.Indent{Marker: marker, Child: r.blocks(it.Children, base, itemSpacing(b.Tight))})
		}
		return view.VStack{Spacing: itemSpacing(b.Tight), Children: items}
	case node.TaskList:
		items := make([]view.View, 0, len(b.Items))
		for _, it := range b.Items {
			marker := "[ ] "
			if it.Completed {
				marker = "[x] "
			}
			items = append(items, view.Indent{Marker: marker, Child: r.blocks(it.Children, base, itemSpacing(b.Tight))})
		}
		return view.VStack{Spacing: itemSpacing(b.Tight), Children: items}
	case node.CodeBlock:
		return view.Code{
			Language: b.FenceInfo,
			Lines:    strings.Split(strings.TrimSuffix(b.Content, "\n"), "\n"),
			Attrs:    r.Router.Attributes(base, r.Theme.CodeBlock),
		}
	case node.HTMLBlock:
		r.observer().HTMLFallback(htmlblock.Sniff(b.Content))
		interpreted := r.interpreter().Interpret(b.Content)
		if _, again := interpreted.(node.HTMLBlock); again {
			return r.block(node.ParagraphFromString(b.Content), base)
		}
		return r.block(interpreted, base)
	case node.Paragraph:
		return view.Text{Runs: r.inlines(b.Content, base)}
	case node.Heading:
		attrs := r.Router.Attributes(base, r.Theme.HeadingStyle(b.Level))
		return view.Anchor{
			ID:    node.Slug(node.PlainText(b.Content)),
			Child: view.Text{Runs: r.inlines(b.Content, attrs)},
		}
	case node.Table:
		return r.table(b, base)
	case node.ThematicBreak:
		return view.Rule{}
	default:
		return view.Text{}
	}
}

func itemSpacing(tight bool) int {
	if tight {
		return 0
	}
	return 1
}

func (r *Renderer) table(t node.Table, base style.Native) view.View {
	header := r.Router.Attributes(base, r.Theme.TableHeader)
	rows := make([][]view.View, 0, len(t.Rows))
	for i, row := range t.Rows {
		attrs := base
		if i == 0 {
			attrs = header
		}
		cells := make([]view.View, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, view.Text{Runs: r.inlines(cell.Content, attrs)})
		}
		rows = append(rows, cells)
	}
	strategy := r.Router.TableStrategy()
	r.observer().TableStrategy(strategy.Name())
	return strategy.Table(t.Alignments, rows)
}

func (r *Renderer) inlines(content []node.Inline, attrs style.Native) []view.Run {
	var runs []view.Run
	for _, in := range content {
		switch n := in.(type) {
		case node.Text:
			runs = append(runs, view.Run{Text: n.Value, Attrs: attrs})
		case node.Code:
			runs = append(runs, view.Run{Text: n.Value, Attrs: r.Router.Attributes(attrs, r.Theme.Code)})
		case node.Emphasis:
			runs = append(runs, r.inlines(n.Children, r.Router.Attributes(attrs, r.Theme.Emphasis))...)
		case node.Strong:
			runs = append(runs, r.inlines(n.Children, r.Router.Attributes(attrs, r.Theme.Strong))...)
		case node.Strikethrough:
			runs = append(runs, r.inlines(n.Children, r.Router.Attributes(attrs, r.Theme.Strikethrough))...)
		case node.Link:
			linked := r.Router.Attributes(attrs, style.Styles{r.Theme.Link, style.Link{URL: n.Destination}})
			runs = append(runs, r.inlines(n.Children, linked)...)
		case node.Image:
			alt := node.PlainText(n.Children)
			if alt == "" {
				alt = n.Source
			}
			linked := r.Router.Attributes(attrs, style.Link{URL: n.Source})
			runs = append(runs, view.Run{Text: "[" + alt + "]", Attrs: linked})
		case node.SoftBreak:
			runs = append(runs, view.Run{Text: " ", Attrs: attrs})
		case node.LineBreak:
			runs = append(runs, view.Run{Attrs: attrs, Break: true})
		case node.InlineHTML:
			if tag, ok := htmlblock.ParseTag(n.Value); ok && tag.Name == "br" {
				runs = append(runs, view.Run{Attrs: attrs, Break: true})
			}
		}
	}
	return runs
}
