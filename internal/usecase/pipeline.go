package usecase

import (
	"slices"

	"github.com/chemaware/catalog/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ApplyView computes the visible page for a catalog and view state. It is a
// pure function: same inputs, same output order.
func ApplyView(catalog *domain.Catalog, state domain.ViewState) domain.Page {
	filtered := FilterProducts(catalog.Products(), state.SearchText, state.EcoOnly)
	SortProducts(filtered, state.Sort)
	return Paginate(filtered, state.Page)
}

// FilterProducts keeps products that pass the eco flag and search text.
// The input order is preserved.
func FilterProducts(products []domain.Product, searchText string, ecoOnly bool) []domain.Product {
	matcher := newSearchMatcher(searchText)
	if matcher.Empty() && !ecoOnly {
		return slices.Clone(products)
	}
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if ecoOnly && !p.Eco {
			continue
		}
		if !matcher.Match(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortProducts stably sorts products in place by key. Ties keep their
// existing relative order.
func SortProducts(products []domain.Product, key domain.SortKey) {
	switch key {
	case domain.SortName:
		col := collate.New(language.English)
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return col.CompareString(a.Name, b.Name)
		})
	case domain.SortHazard:
		// Descending; unknown hazard is stored as 0 and sorts last.
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return b.Hazard - a.Hazard
		})
	case domain.SortSource:
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			switch {
			case a.Source < b.Source:
				return -1
			case a.Source > b.Source:
				return 1
			}
			return 0
		})
	}
}

// TotalPages returns the number of pages for total items, never less than 1
func TotalPages(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + domain.PageSize - 1) / domain.PageSize
}

// ClampPage moves page into [1, TotalPages(total)]
func ClampPage(page, total int) int {
	return max(1, min(page, TotalPages(total)))
}

// Paginate slices one page out of products after clamping the page number
func Paginate(products []domain.Product, page int) domain.Page {
	total := len(products)
	page = ClampPage(page, total)

	start := (page - 1) * domain.PageSize
	end := min(start+domain.PageSize, total)

	items := make([]domain.Product, 0, end-start)
	items = append(items, products[start:end]...)

	return domain.Page{
		Items:      items,
		Page:       page,
		TotalPages: TotalPages(total),
		Total:      total,
		HasPrev:    page > 1,
		HasNext:    page*domain.PageSize < total,
	}
}
