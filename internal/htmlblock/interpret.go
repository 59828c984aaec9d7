package htmlblock

import "github.com/hyperifyio/mdrender/internal/node"

// Interpreter turns the raw content of an HTML block into a typed block.
// Implementations must be deterministic, free of side effects and total.
type Interpreter interface {
	Interpret(html string) node.Block
}

// PatternInterpreter recognizes tables, lists, headings, code and
// blockquotes by pattern matching. It holds no state.
type PatternInterpreter struct{}

func (PatternInterpreter) Interpret(html string) node.Block {
	return Interpret(html)
}

// Interpret sniffs html and assembles the block the Markdown parser would
// have produced for the same structure. Unrecognized markup becomes a
// paragraph holding the original text verbatim.
func Interpret(html string) node.Block {
	return Assemble(Sniff(html), html)
}

// Assemble runs the extractor of category c over html and wraps the result
// in native node variants.
func Assemble(c Category, html string) node.Block {
	switch c {
	case CategoryTable:
		return tableNode(ExtractTable(html))
	case CategoryList:
		return listNode(ExtractList(html))
	case CategoryHeading:
		h := ExtractHeading(html)
		return node.NewHeading(h.Level, []node.Inline{node.Text{Value: h.Text}})
	case CategoryCode:
		return node.CodeBlock{Content: ExtractCode(html)}
	case CategoryBlockquote:
		return node.Blockquote{Children: []node.Block{textParagraph(ExtractBlockquote(html))}}
	default:
		return textParagraph(html)
	}
}

func tableNode(t TableData) node.Table {
	rows := make([]node.Row, 0, len(t.Rows))
	for _, cells := range t.Rows {
		row := node.Row{Cells: make([]node.Cell, 0, len(cells))}
		for _, c := range cells {
			row.Cells = append(row.Cells, node.Cell{Content: []node.Inline{node.Text{Value: c}}})
		}
		rows = append(rows, row)
	}
	return node.Table{Alignments: t.Alignments, Rows: rows}
}

func listNode(l ListData) node.Block {
	items := make([]node.ListItem, 0, len(l.Items))
	for _, text := range l.Items {
		items = append(items, node.ListItem{Children: []node.Block{textParagraph(text)}})
	}
	if l.Ordered {
		return node.NumberedList{Tight: true, Start: 1, Items: items}
	}
	return node.BulletedList{Tight: true, Items: items}
}

func textParagraph(s string) node.Paragraph {
	return node.Paragraph{Content: []node.Inline{node.Text{Value: s}}}
}
