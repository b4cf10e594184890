package usecase

import (
	"fmt"
	"slices"

	"github.com/chemaware/catalog/internal/domain"
)

// MaxCompare is the largest compare selection
const MaxCompare = 2

// Compare manages the transient side-by-side selection. Identifiers keep
// insertion order.
type Compare struct {
	catalog *domain.Catalog
	ids     []string
}

// NewCompare creates an empty compare set
func NewCompare(catalog *domain.Catalog) *Compare {
	return &Compare{catalog: catalog}
}

// Add inserts identifier. It fails with ErrCompareLimitExceeded when the set
// is full; adding an identifier already selected is a no-op.
func (c *Compare) Add(identifier string) error {
	if c.Has(identifier) {
		return nil
	}
	if !c.catalog.Contains(identifier) {
		return fmt.Errorf("%w: %s", domain.ErrProductNotFound, identifier)
	}
	if len(c.ids) >= MaxCompare {
		return domain.ErrCompareLimitExceeded
	}
	c.ids = append(c.ids, identifier)
	return nil
}

// Remove drops identifier if selected
func (c *Compare) Remove(identifier string) {
	c.ids = slices.DeleteFunc(c.ids, func(id string) bool { return id == identifier })
}

// Toggle removes identifier if selected, otherwise adds it
func (c *Compare) Toggle(identifier string) (bool, error) {
	if c.Has(identifier) {
		c.Remove(identifier)
		return false, nil
	}
	if err := c.Add(identifier); err != nil {
		return false, err
	}
	return true, nil
}

// Clear empties the selection
func (c *Compare) Clear() {
	c.ids = nil
}

// Has reports whether identifier is selected
func (c *Compare) Has(identifier string) bool {
	return slices.Contains(c.ids, identifier)
}

// Len returns the number of selected identifiers
func (c *Compare) Len() int {
	return len(c.ids)
}

// Selected returns the selected products in insertion order
func (c *Compare) Selected() []domain.Product {
	out := make([]domain.Product, 0, len(c.ids))
	for _, id := range c.ids {
		if p, ok := c.catalog.Lookup(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// Pair returns the two selected products in the order they were added
func (c *Compare) Pair() (domain.Product, domain.Product, error) {
	sel := c.Selected()
	if len(sel) < MaxCompare {
		return domain.Product{}, domain.Product{}, domain.ErrInsufficientSelection
	}
	return sel[0], sel[1], nil
}
