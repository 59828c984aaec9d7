package htmlblock

import "strings"

// Category is the structure an HTML block is interpreted as.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryTable
	CategoryList
	CategoryHeading
	CategoryCode
	CategoryBlockquote
)

func (c Category) String() string {
	switch c {
	case CategoryTable:
		return "table"
	case CategoryList:
		return "list"
	case CategoryHeading:
		return "heading"
	case CategoryCode:
		return "code"
	case CategoryBlockquote:
		return "blockquote"
	default:
		return "unknown"
	}
}

// sniffOrder lists categories by precedence together with the opening-tag
// tokens that select them. The first category with any token present wins.
var sniffOrder = []struct {
	category Category
	tokens   []string
}{
	{CategoryTable, []string{"<table"}},
	{CategoryList, []string{"<ul", "<ol"}},
	{CategoryHeading, []string{"<h1", "<h2", "<h3", "<h4", "<h5", "<h6"}},
	{CategoryCode, []string{"<pre", "<code"}},
	{CategoryBlockquote, []string{"<blockquote"}},
}

// Sniff classifies raw HTML by case-insensitive presence of opening-tag
// tokens. Precedence is Table > List > Heading > Code > Blockquote; a blob
// holding several structures is classified by the first one only.
func Sniff(html string) Category {
	lowered := strings.ToLower(html)
	for _, entry := range sniffOrder {
		if containsAny(lowered, entry.tokens) {
			return entry.category
		}
	}
	return CategoryUnknown
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
