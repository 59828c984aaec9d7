package htmlblock

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/rs/zerolog/log"
)

// lazyMatchers compiles the patterns of one category on first use and shares
// them read-only afterwards. A build failure disables only that category.
type lazyMatchers[T any] struct {
	category Category
	build    func() (T, error)

	once  sync.Once
	value T
	ok    bool
}

func (l *lazyMatchers[T]) load() (T, bool) {
	l.once.Do(func() {
		v, err := l.build()
		if err != nil {
			log.Warn().Err(err).Str("category", l.category.String()).Msg("html pattern compile failed; category disabled")
			return
		}
		l.value = v
		l.ok = true
	})
	return l.value, l.ok
}

// compileAll compiles exprs in order and reports the first failure.
func compileAll(exprs ...string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("compile %q: %w", expr, err)
		}
		out = append(out, re)
	}
	return out, nil
}

type tableMatchers struct {
	header *regexp.Regexp
	body   *regexp.Regexp
	row    *regexp.Regexp
	cell   *regexp.Regexp
}

type listMatchers struct {
	// tag matches any opening or closing li/ul/ol tag; group 1 is "/" for
	// closing tags, group 2 the tag name.
	tag *regexp.Regexp
}

type headingMatchers struct {
	heading *regexp.Regexp
}

type codeMatchers struct {
	code *regexp.Regexp
}

type blockquoteMatchers struct {
	quote *regexp.Regexp
}

var tablePatterns = &lazyMatchers[tableMatchers]{
	category: CategoryTable,
	build: func() (tableMatchers, error) {
		res, err := compileAll(
			`(?is)<thead[^>]*>.*?<tr[^>]*>(.*?)</tr>.*?</thead>`,
			`(?is)<tbody[^>]*>(.*?)</tbody>`,
			`(?is)<tr[^>]*>(.*?)</tr>`,
			`(?is)<t[hd][^>]*>(.*?)</t[hd]>`,
		)
		if err != nil {
			return tableMatchers{}, err
		}
		return tableMatchers{header: res[0], body: res[1], row: res[2], cell: res[3]}, nil
	},
}

var listPatterns = &lazyMatchers[listMatchers]{
	category: CategoryList,
	build: func() (listMatchers, error) {
		res, err := compileAll(`(?i)<(/?)(li|ul|ol)\b[^>]*>`)
		if err != nil {
			return listMatchers{}, err
		}
		return listMatchers{tag: res[0]}, nil
	},
}

var headingPatterns = &lazyMatchers[headingMatchers]{
	category: CategoryHeading,
	build: func() (headingMatchers, error) {
		res, err := compileAll(`(?is)<h([1-6])[^>]*>(.*?)</h[1-6]>`)
		if err != nil {
			return headingMatchers{}, err
		}
		return headingMatchers{heading: res[0]}, nil
	},
}

var codePatterns = &lazyMatchers[codeMatchers]{
	category: CategoryCode,
	build: func() (codeMatchers, error) {
		res, err := compileAll(`(?is)(?:<pre[^>]*>\s*)?<code[^>]*>(.*?)</code>`)
		if err != nil {
			return codeMatchers{}, err
		}
		return codeMatchers{code: res[0]}, nil
	},
}

var blockquotePatterns = &lazyMatchers[blockquoteMatchers]{
	category: CategoryBlockquote,
	build: func() (blockquoteMatchers, error) {
		res, err := compileAll(`(?is)<blockquote[^>]*>(.*?)</blockquote>`)
		if err != nil {
			return blockquoteMatchers{}, err
		}
		return blockquoteMatchers{quote: res[0]}, nil
	},
}
