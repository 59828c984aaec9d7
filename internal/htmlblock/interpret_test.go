package htmlblock

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperifyio/mdrender/internal/node"
)

func TestSniff_Categories(t *testing.T) {
	cases := []struct {
		in   string
		want Category
	}{
		{"<table><tr><td>x</td></tr></table>", CategoryTable},
		{"<UL><li>x</li></UL>", CategoryList},
		{"<ol start=\"3\"><li>x</li></ol>", CategoryList},
		{"<h5>x</h5>", CategoryHeading},
		{"<pre>x</pre>", CategoryCode},
		{"<code>x</code>", CategoryCode},
		{"<BlockQuote>x</BlockQuote>", CategoryBlockquote},
		{"<div>hi</div>", CategoryUnknown},
		{"<h0>x</h0>", CategoryUnknown},
		{"", CategoryUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Sniff(tc.in), "input %q", tc.in)
	}
}

func TestSniff_Precedence(t *testing.T) {
	assert.Equal(t, CategoryTable, Sniff("<ul><li>a</li></ul><table></table>"))
	assert.Equal(t, CategoryList, Sniff("<h1>t</h1><ol><li>a</li></ol>"))
	assert.Equal(t, CategoryHeading, Sniff("<pre><code>x</code></pre><h2>t</h2>"))
	assert.Equal(t, CategoryCode, Sniff("<blockquote><code>x</code></blockquote>"))
	// a table inside a quote loses its quote
	assert.Equal(t, CategoryTable, Sniff("<blockquote><table></table></blockquote>"))
}

func TestInterpret_UnknownIsVerbatimParagraph(t *testing.T) {
	got := Interpret("<div>hi</div>")
	assert.Equal(t, node.Paragraph{Content: []node.Inline{node.Text{Value: "<div>hi</div>"}}}, got)
}

func TestInterpret_Table(t *testing.T) {
	html := "<table><thead><tr><th>A</th><th>B</th></tr></thead><tbody><tr><td>1</td><td>2</td></tr><tr><td>3</td><td>4</td></tr></tbody></table>"
	got, ok := Interpret(html).(node.Table)
	require.True(t, ok)
	assert.Len(t, got.Alignments, 2)
	require.Len(t, got.Rows, 3)
	for _, row := range got.Rows {
		assert.Len(t, row.Cells, 2)
	}
	assert.Equal(t, []node.Inline{node.Text{Value: "4"}}, got.Rows[2].Cells[1].Content)
}

func TestInterpret_Lists(t *testing.T) {
	bulleted, ok := Interpret("<ul><li>A</li><li>B</li></ul>").(node.BulletedList)
	require.True(t, ok)
	assert.True(t, bulleted.Tight)
	require.Len(t, bulleted.Items, 2)
	assert.Equal(t, []node.Block{node.Paragraph{Content: []node.Inline{node.Text{Value: "B"}}}}, bulleted.Items[1].Children)

	numbered, ok := Interpret("<ol><li>one</li></ol>").(node.NumberedList)
	require.True(t, ok)
	assert.True(t, numbered.Tight)
	assert.Equal(t, 1, numbered.Start)
	assert.Len(t, numbered.Items, 1)
}

func TestInterpret_HeadingCodeQuote(t *testing.T) {
	assert.Equal(t, node.Heading{Level: 3, Content: []node.Inline{node.Text{Value: "Title"}}}, Interpret("<h3>Title</h3>"))
	assert.Equal(t, node.CodeBlock{Content: "x &lt; y"}, Interpret("<pre><code>x &lt; y</code></pre>"))
	assert.Equal(t,
		node.Blockquote{Children: []node.Block{node.Paragraph{Content: []node.Inline{node.Text{Value: "wise words"}}}}},
		Interpret("<blockquote><p>wise words</p></blockquote>"))
}

func TestPatternInterpreter_SatisfiesInterface(t *testing.T) {
	var in Interpreter = PatternInterpreter{}
	assert.Equal(t, Interpret("<h2>x</h2>"), in.Interpret("<h2>x</h2>"))
}

func TestInterpret_NoHTMLBlockOutput(t *testing.T) {
	inputs := []string{"", "<", "<table", "<ul", "<h1>", "<pre", "<blockquote", "plain text", "<code>"}
	for _, in := range inputs {
		_, isHTML := Interpret(in).(node.HTMLBlock)
		assert.False(t, isHTML, "input %q", in)
	}
}

func BenchmarkInterpret(b *testing.B) {
	var sb strings.Builder
	sb.WriteString("<table><thead><tr><th>a</th><th>b</th></tr></thead><tbody>")
	for i := 0; i < 200; i++ {
		sb.WriteString("<tr><td>")
		sb.WriteString(sampleText)
		sb.WriteString("</td><td>x</td></tr>")
	}
	sb.WriteString("</tbody></table>")
	table := sb.String()
	list := "<ul>" + strings.Repeat("<li>"+sampleText+"<ul><li>nested</li></ul></li>", 200) + "</ul>"

	b.Run("table", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Interpret(table)
		}
	})
	b.Run("list", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Interpret(list)
		}
	})
}

const sampleText = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua."
