package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampLevel(t *testing.T) {
	assert.Equal(t, 1, ClampLevel(0))
	assert.Equal(t, 1, ClampLevel(-4))
	assert.Equal(t, 3, ClampLevel(3))
	assert.Equal(t, 6, ClampLevel(9))
	assert.Equal(t, 6, NewHeading(7, nil).Level)
}

func TestParagraphFromString_DropsOneTrailingNewline(t *testing.T) {
	p := ParagraphFromString("line\n\n")
	assert.Equal(t, []Inline{Text{Value: "line\n"}}, p.Content)
}

func TestPlainText(t *testing.T) {
	content := []Inline{
		Text{Value: "Hello"},
		SoftBreak{},
		Strong{Children: []Inline{Text{Value: "bold"}}},
		Text{Value: " "},
		Link{Destination: "https://x", Children: []Inline{Code{Value: "x()"}}},
		InlineHTML{Value: "<br>"},
	}
	assert.Equal(t, "Hello bold x()", PlainText(content))
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Getting Started":      "getting-started",
		"  API: v2 / Overview ": "api-v2-overview",
		"Ünïcode Title":        "ünïcode-title",
		"":                     "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slug(in), "slug of %q", in)
	}
}

func TestKind(t *testing.T) {
	assert.Equal(t, "table", Kind(Table{}))
	assert.Equal(t, "html_block", Kind(HTMLBlock{}))
	assert.Equal(t, "thematic_break", Kind(ThematicBreak{}))
}
