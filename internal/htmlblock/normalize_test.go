package htmlblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	assert.Equal(t, "bold and italic", StripTags("<b>bold</b> and <i class=\"x\">italic</i>"))
	assert.Equal(t, "a < b", StripTags("a < b"))
	assert.Equal(t, "a <> b", StripTags("a <> b"))
	assert.Equal(t, "", StripTags("<br/>"))
	assert.Equal(t, "no tags", StripTags("no tags"))
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseWhitespace("  a \t b\n\n c  "))
	assert.Equal(t, "", CollapseWhitespace(" \n\t "))
	assert.Equal(t, "한국어 텍스트", CollapseWhitespace("한국어   텍스트"))
}

func TestCollapseWhitespace_UnicodeSpaces(t *testing.T) {
	assert.Equal(t, "a b", CollapseWhitespace("a\u00a0\u00a0 \u2003b"))
	assert.Equal(t, "a b", CollapseWhitespace("\u3000a\u2028b\u0085"))
	assert.Equal(t, "a b", ExtractBlockquote("<blockquote>a\u00a0\u00a0 \u2003b</blockquote>"))
}

func TestCollapseWhitespace_KeepsInvalidUTF8Bytes(t *testing.T) {
	assert.Equal(t, "\xff\xfe a", CollapseWhitespace("\xff\xfe   a "))
	assert.Equal(t, "x\xc3 y", CollapseWhitespace("x\xc3\t\ty"))
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "Hello world", NormalizeText("<p>\n  Hello   <span>world</span>\n</p>"))
}

func TestParseTag(t *testing.T) {
	tag, ok := ParseTag("<BR>")
	assert.True(t, ok)
	assert.Equal(t, Tag{Name: "br"}, tag)

	tag, ok = ParseTag("</sub>")
	assert.True(t, ok)
	assert.Equal(t, Tag{Name: "sub", Closing: true}, tag)

	tag, ok = ParseTag("<img src=\"x.png\"/>")
	assert.True(t, ok)
	assert.Equal(t, Tag{Name: "img", SelfClosing: true}, tag)

	_, ok = ParseTag("<!-- comment -->")
	assert.False(t, ok)

	_, ok = ParseTag("just text")
	assert.False(t, ok)
}
