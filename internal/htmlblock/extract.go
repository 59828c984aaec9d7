package htmlblock

import (
	"strconv"
	"strings"

	"github.com/hyperifyio/mdrender/internal/node"
)

// TableData is the result of table extraction. Alignments always holds at
// least one column; Rows[0] is the header row when a <thead> was found.
type TableData struct {
	Alignments []node.Alignment
	Rows       [][]string
}

// ListData is the result of list extraction. Items are plain text in source
// order; nested lists are dropped.
type ListData struct {
	Ordered bool
	Items   []string
}

// HeadingData is the result of heading extraction.
type HeadingData struct {
	Level int
	Text  string
}

func defaultTable() TableData {
	return TableData{Alignments: []node.Alignment{node.AlignNone}}
}

// ExtractTable finds an optional <thead> header row and the <tr> rows of an
// optional <tbody>. Cells are trimmed but keep inner tags. The column count
// follows the header; without a header a single unaligned column is reported
// and body rows are kept as they are.
func ExtractTable(html string) TableData {
	return extractTable(tablePatterns, html)
}

func extractTable(l *lazyMatchers[tableMatchers], html string) TableData {
	m, ok := l.load()
	if !ok {
		return defaultTable()
	}
	cleaned := CollapseWhitespace(flattenNewlines(html))

	var rows [][]string
	columns := 0
	if hm := m.header.FindStringSubmatch(cleaned); hm != nil {
		cells := extractCells(m, hm[1])
		columns = len(cells)
		rows = append(rows, cells)
	}
	if bm := m.body.FindStringSubmatch(cleaned); bm != nil {
		for _, rm := range m.row.FindAllStringSubmatch(bm[1], -1) {
			rows = append(rows, extractCells(m, rm[1]))
		}
	}

	if columns < 1 {
		columns = 1
	}
	alignments := make([]node.Alignment, columns)
	for i := range alignments {
		alignments[i] = node.AlignNone
	}
	return TableData{Alignments: alignments, Rows: rows}
}

func extractCells(m tableMatchers, row string) []string {
	matches := m.cell.FindAllStringSubmatch(row, -1)
	cells := make([]string, 0, len(matches))
	for _, cm := range matches {
		cells = append(cells, strings.TrimSpace(cm[1]))
	}
	return cells
}

// ExtractList collects the top-level <li> items of the outermost list.
// An item that contains a nested list ends at its own </li>; the nested
// list is cut out before the remaining tags are stripped.
func ExtractList(html string) ListData {
	return extractList(listPatterns, html)
}

func extractList(l *lazyMatchers[listMatchers], html string) ListData {
	ordered := strings.Contains(strings.ToLower(html), "<ol")
	m, ok := l.load()
	if !ok {
		return ListData{Ordered: ordered}
	}
	cleaned := flattenNewlines(html)

	var raw []string
	depth := 0
	itemStart := -1
	flush := func(end int) {
		if itemStart >= 0 {
			raw = append(raw, cleaned[itemStart:end])
			itemStart = -1
		}
	}
	for _, loc := range m.tag.FindAllStringSubmatchIndex(cleaned, -1) {
		closing := loc[3] > loc[2]
		name := strings.ToLower(cleaned[loc[4]:loc[5]])
		switch name {
		case "ul", "ol":
			if !closing {
				depth++
				continue
			}
			if depth > 0 {
				depth--
				if depth == 0 {
					flush(loc[0])
				}
			}
		case "li":
			if depth > 1 {
				continue
			}
			flush(loc[0])
			if !closing {
				itemStart = loc[1]
			}
		}
	}
	flush(len(cleaned))

	items := make([]string, 0, len(raw))
	for _, item := range raw {
		items = append(items, NormalizeText(removeNestedLists(m, item)))
	}
	return ListData{Ordered: ordered, Items: items}
}

// removeNestedLists replaces every balanced <ul>/<ol> span in s with a
// single space so the text around it stays separated. An unterminated list
// is cut to the end of s.
func removeNestedLists(m listMatchers, s string) string {
	var b strings.Builder
	depth := 0
	last := 0
	for _, loc := range m.tag.FindAllStringSubmatchIndex(s, -1) {
		name := strings.ToLower(s[loc[4]:loc[5]])
		if name == "li" {
			continue
		}
		if loc[3] == loc[2] {
			if depth == 0 {
				b.WriteString(s[last:loc[0]])
				b.WriteByte(' ')
			}
			depth++
			continue
		}
		if depth > 0 {
			depth--
			if depth == 0 {
				last = loc[1]
			}
		}
	}
	if depth == 0 {
		b.WriteString(s[last:])
	}
	return b.String()
}

// ExtractHeading returns the first <h1>..<h6> element anywhere in html,
// whatever its level. Without a match it reports level 1 and empty text.
func ExtractHeading(html string) HeadingData {
	return extractHeading(headingPatterns, html)
}

func extractHeading(l *lazyMatchers[headingMatchers], html string) HeadingData {
	m, ok := l.load()
	if !ok {
		return HeadingData{Level: 1}
	}
	hm := m.heading.FindStringSubmatch(flattenNewlines(html))
	if hm == nil {
		return HeadingData{Level: 1}
	}
	level, err := strconv.Atoi(hm[1])
	if err != nil {
		level = 1
	}
	return HeadingData{Level: node.ClampLevel(level), Text: NormalizeText(hm[2])}
}

// ExtractCode returns the verbatim inner text of a <code> span, optionally
// wrapped in <pre>. Entities are not decoded. Without a match the whole
// input is returned trimmed.
func ExtractCode(html string) string {
	return extractCode(codePatterns, html)
}

func extractCode(l *lazyMatchers[codeMatchers], html string) string {
	m, ok := l.load()
	if !ok {
		return strings.TrimSpace(html)
	}
	// Line breaks are content here, so the input is matched as is.
	cm := m.code.FindStringSubmatch(html)
	if cm == nil {
		return strings.TrimSpace(html)
	}
	return cm[1]
}

// ExtractBlockquote returns the plain text of the first <blockquote>.
// Nested quotes are flattened. Without a match the whole input is
// normalized instead.
func ExtractBlockquote(html string) string {
	return extractBlockquote(blockquotePatterns, html)
}

func extractBlockquote(l *lazyMatchers[blockquoteMatchers], html string) string {
	m, ok := l.load()
	if !ok {
		return NormalizeText(html)
	}
	qm := m.quote.FindStringSubmatch(flattenNewlines(html))
	if qm == nil {
		return NormalizeText(html)
	}
	return NormalizeText(qm[1])
}
