package textout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hyperifyio/mdrender/internal/node"
	"github.com/hyperifyio/mdrender/internal/render"
	"github.com/hyperifyio/mdrender/internal/view"
)

func twoByTwo(align node.Alignment) node.Table {
	cell := func(s string) node.Cell { return node.Cell{Content: []node.Inline{node.Text{Value: s}}} }
	return node.Table{
		Alignments: []node.Alignment{node.AlignNone, align},
		Rows: []node.Row{
			{Cells: []node.Cell{cell("A"), cell("B")}},
			{Cells: []node.Cell{cell("1"), cell("2")}},
		},
	}
}

func TestRender_GridTable(t *testing.T) {
	r := render.New(render.StaticPlatform{Grid: true})
	got := Render(r.Block(twoByTwo(node.AlignRight)), 21)
	want := strings.Join([]string{
		"┌─────────┬─────────┐",
		"│ A       │       B │",
		"├─────────┼─────────┤",
		"│ 1       │       2 │",
		"└─────────┴─────────┘",
	}, "\n") + "\n"
	assert.Equal(t, want, got)
}

func TestRender_StackedTableSameReadingOrder(t *testing.T) {
	r := render.New(render.StaticPlatform{})
	got := Render(r.Block(twoByTwo(node.AlignNone)), 21)
	assert.Contains(t, got, "+")
	assert.NotContains(t, got, "┌")

	idx := func(s string) int { return strings.Index(got, s) }
	assert.True(t, idx("A") < idx("B") && idx("B") < idx("1") && idx("1") < idx("2"), "reading order in:\n%s", got)
	for _, l := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
		assert.LessOrEqual(t, StringWidth(l), 21)
	}
}

func TestRender_ListsAndQuotes(t *testing.T) {
	r := render.New(render.StaticPlatform{})
	item := func(s string) node.ListItem { return node.ListItem{Children: []node.Block{node.ParagraphFromString(s)}} }
	got := Render(r.Block(node.BulletedList{Tight: true, Items: []node.ListItem{item("x"), item("y")}}), 20)
	assert.Equal(t, "• x\n• y\n", got)

	got = Render(r.Block(node.HTMLBlock{Content: "<blockquote>quoted words</blockquote>"}), 40)
	assert.Equal(t, "│ quoted words\n", got)
}

func TestRender_CodeIsNotWrapped(t *testing.T) {
	r := render.New(render.StaticPlatform{})
	got := Render(r.Block(node.CodeBlock{Content: "a very long line that exceeds the width\n"}), 10)
	assert.Equal(t, "    a very long line that exceeds the width\n", got)
}

func TestWrapLine(t *testing.T) {
	assert.Equal(t, []string{"hello world", "foo"}, wrapLine("hello   world foo", 11))
	assert.Equal(t, []string{"abcd", "ef"}, wrapLine("abcdef", 4))
	assert.Equal(t, []string{""}, wrapLine("   ", 4))
}

func TestWrapText_Breaks(t *testing.T) {
	txt := view.Text{Runs: []view.Run{{Text: "one"}, {Break: true}, {Text: "two"}}}
	assert.Equal(t, []string{"one", "two"}, wrapText(txt, 10))
}

func TestStringWidth(t *testing.T) {
	assert.Equal(t, 5, StringWidth("hello"))
	assert.Equal(t, 4, StringWidth("한국"))
	assert.Equal(t, 4, StringWidth("表格"))
	assert.Equal(t, 1, StringWidth("é"))
}

func TestRender_Rule(t *testing.T) {
	assert.Equal(t, "─────\n", Render(view.Rule{}, 5))
}
