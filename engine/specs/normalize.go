// Package specs turns a free-text car search into a specification record:
// it splits the query, prompts the upstream provider, extracts labelled
// fields from the answer, and falls back to a static catalog when the
// provider is unavailable.
package specs

import (
	"strings"
	"unicode"
)

// Query is a search term split into a candidate make and model.
type Query struct {
	Term  string // the whole trimmed search term
	Make  string // empty when the term has no internal whitespace
	Model string
}

// HasMake reports whether the term contained a make/model split.
func (q Query) HasMake() bool { return q.Make != "" }

// SplitQuery splits term on its first whitespace run. A single word is
// treated as a model with no make.
func SplitQuery(term string) Query {
	term = strings.TrimSpace(term)
	i := strings.IndexFunc(term, unicode.IsSpace)
	if i < 0 {
		return Query{Term: term, Model: term}
	}
	return Query{
		Term:  term,
		Make:  term[:i],
		Model: strings.TrimLeftFunc(term[i:], unicode.IsSpace),
	}
}
