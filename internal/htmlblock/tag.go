package htmlblock

import (
	"strings"

	"golang.org/x/net/html"
)

// Tag describes the first tag found in an inline HTML fragment.
type Tag struct {
	Name        string
	Closing     bool
	SelfClosing bool
}

// ParseTag reports the first start, end or self-closing tag in fragment.
// Names are lowercased by the tokenizer. It returns false when the fragment
// holds no tag (plain text, comments, doctype).
func ParseTag(fragment string) (Tag, bool) {
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return Tag{}, false
		case html.StartTagToken:
			name, _ := z.TagName()
			return Tag{Name: string(name)}, true
		case html.EndTagToken:
			name, _ := z.TagName()
			return Tag{Name: string(name), Closing: true}, true
		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			return Tag{Name: string(name), SelfClosing: true}, true
		}
	}
}
