package htmlblock

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var newlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// flattenNewlines turns embedded line breaks into spaces so tags spanning
// several lines can be matched.
func flattenNewlines(s string) string {
	return newlineReplacer.Replace(s)
}

// NormalizeText strips residual tags, collapses whitespace runs and trims.
// Extractors run it last so their output is plain text even when the markup
// was malformed or nested unexpectedly.
func NormalizeText(s string) string {
	return CollapseWhitespace(StripTags(s))
}

// StripTags removes every "<...>" span holding at least one character.
// A "<" without a later ">" is kept as text.
func StripTags(s string) string {
	if strings.IndexByte(s, '<') < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '<' {
			if j := strings.IndexByte(s[i+1:], '>'); j > 0 {
				i += j + 2
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// CollapseWhitespace replaces runs of Unicode whitespace with single spaces
// and trims both ends. Bytes that are not valid UTF-8 are copied unchanged.
func CollapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != utf8.RuneError && unicode.IsSpace(r) {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			i += size
			continue
		}
		b.WriteString(s[i : i+size])
		lastSpace = false
		i += size
	}
	return strings.TrimRight(b.String(), " ")
}
