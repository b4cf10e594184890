package usecase

import (
	"strings"

	"github.com/chemaware/catalog/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// searchMatcher tests products against one lowercased query. Matching is a
// plain substring test, so internal whitespace in the query must appear
// verbatim in the field.
type searchMatcher struct {
	query string
	lower cases.Caser
}

func newSearchMatcher(searchText string) searchMatcher {
	lower := cases.Lower(language.Und)
	return searchMatcher{
		query: lower.String(strings.TrimSpace(searchText)),
		lower: lower,
	}
}

// Empty reports whether the query matches everything
func (m searchMatcher) Empty() bool {
	return m.query == ""
}

// Match reports whether the query is a substring of the product's name,
// description or usage.
func (m searchMatcher) Match(p domain.Product) bool {
	if m.query == "" {
		return true
	}
	for _, field := range []string{p.Name, p.Description, p.Usage} {
		if field != "" && strings.Contains(m.lower.String(field), m.query) {
			return true
		}
	}
	return false
}
