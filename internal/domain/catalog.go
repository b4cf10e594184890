package domain

// Catalog is the ordered, merged product collection. It is built once and
// never mutated afterwards.
type Catalog struct {
	products []Product
	index    map[string]int
}

// NewCatalog creates a catalog from products in order. Later duplicates of an
// identifier are dropped.
func NewCatalog(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
	}
	for _, p := range products {
		id := p.Identifier()
		if _, exists := c.index[id]; exists {
			continue
		}
		c.index[id] = len(c.products)
		c.products = append(c.products, p)
	}
	return c
}

// Len returns the number of products in the catalog
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

// Products returns a copy of the catalog in catalog order
func (c *Catalog) Products() []Product {
	if c == nil {
		return nil
	}
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Lookup finds a product by identifier
func (c *Catalog) Lookup(identifier string) (Product, bool) {
	if c == nil {
		return Product{}, false
	}
	i, ok := c.index[identifier]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Contains reports whether identifier resolves to a catalog product
func (c *Catalog) Contains(identifier string) bool {
	_, ok := c.Lookup(identifier)
	return ok
}

// Position returns the catalog index of identifier, or -1
func (c *Catalog) Position(identifier string) int {
	if c == nil {
		return -1
	}
	if i, ok := c.index[identifier]; ok {
		return i
	}
	return -1
}
