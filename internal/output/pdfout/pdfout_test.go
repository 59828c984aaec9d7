package pdfout

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperifyio/mdrender/internal/node"
	"github.com/hyperifyio/mdrender/internal/render"
	"github.com/hyperifyio/mdrender/internal/style"
	"github.com/hyperifyio/mdrender/internal/view"
)

func sampleDocument() []node.Block {
	return []node.Block{
		node.NewHeading(1, []node.Inline{node.Text{Value: "Report"}}),
		node.Paragraph{Content: []node.Inline{
			node.Text{Value: "See "},
			node.Link{Destination: "#report", Children: []node.Inline{node.Text{Value: "top"}}},
			node.Text{Value: " and "},
			node.Link{Destination: "https://go.dev", Children: []node.Inline{node.Text{Value: "Go"}}},
		}},
		node.HTMLBlock{Content: "<table><thead><tr><th>k</th><th>v</th></tr></thead><tbody><tr><td>a</td><td>1</td></tr></tbody></table>"},
		node.HTMLBlock{Content: "<ol><li>first</li><li>second</li></ol>"},
		node.HTMLBlock{Content: "<blockquote>quote</blockquote>"},
		node.CodeBlock{FenceInfo: "go", Content: "x := 1\n"},
		node.ThematicBreak{},
	}
}

func TestWrite_ProducesPDFForBothStrategies(t *testing.T) {
	for _, grid := range []bool{true, false} {
		r := render.New(render.StaticPlatform{Grid: grid, NativeAttributes: grid})
		var buf bytes.Buffer
		require.NoError(t, Write(r.Document(sampleDocument()), &buf))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "grid=%v", grid)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "doc.pdf")
	r := render.New(render.StaticPlatform{})
	require.NoError(t, WriteFile(r.Document(sampleDocument()), out))
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestCellOf(t *testing.T) {
	attrs := style.Native{Link: style.Ptr("x")}
	c := cellOf(view.Border{Child: view.Frame{Alignment: node.AlignRight, Child: view.Text{Runs: []view.Run{{Text: "42", Attrs: attrs}}}}})
	assert.Equal(t, "42", c.text)
	assert.Equal(t, node.AlignRight, c.align)
	assert.Equal(t, attrs, c.attrs)
}

func TestFontStyle(t *testing.T) {
	bold := style.Bridge(style.Native{}, style.Styles{style.FontWeightStyle{Weight: style.WeightBold}, style.Italic{}, style.Underline{}})
	assert.Equal(t, "BIU", fontStyle(bold))
	assert.Equal(t, "", fontStyle(style.Native{}))
}
