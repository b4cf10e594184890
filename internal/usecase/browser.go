package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/chemaware/catalog/internal/domain"
)

// Listener is notified with the recomputed page after every state change
type Listener func(domain.Page)

// Browser is the catalog view-model. It owns the view state, the favorites
// and the compare selection, and recomputes the visible page on every change.
type Browser struct {
	mu        sync.Mutex
	catalog   *domain.Catalog
	state     domain.ViewState
	favorites *Favorites
	compare   *Compare
	listeners []Listener
}

// NewBrowser creates a view-model over catalog, persisting favorites in store
func NewBrowser(catalog *domain.Catalog, store domain.KVStore, favoritesKey string) *Browser {
	return &Browser{
		catalog:   catalog,
		state:     domain.ViewState{Page: 1},
		favorites: NewFavorites(store, favoritesKey, catalog),
		compare:   NewCompare(catalog),
	}
}

// Load restores persisted favorites
func (b *Browser) Load(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.favorites.Load(ctx)
}

// Catalog returns the underlying catalog
func (b *Browser) Catalog() *domain.Catalog {
	return b.catalog
}

// Subscribe registers a listener for page changes
func (b *Browser) Subscribe(l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, l)
}

// State returns the current view state with the page clamped
func (b *Browser) State() domain.ViewState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// View returns the current page
func (b *Browser) View() domain.Page {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.recompute()
}

// SetState replaces the whole view state, e.g. from an API request
func (b *Browser) SetState(state domain.ViewState) domain.Page {
	return b.mutate(func() { b.state = state })
}

// SetSearch changes the search text and returns to the first page
func (b *Browser) SetSearch(text string) domain.Page {
	return b.mutate(func() {
		b.state.SearchText = text
		b.state.Page = 1
	})
}

// SetEcoOnly changes the eco filter and returns to the first page
func (b *Browser) SetEcoOnly(ecoOnly bool) domain.Page {
	return b.mutate(func() {
		b.state.EcoOnly = ecoOnly
		b.state.Page = 1
	})
}

// SetSort changes the sort key and returns to the first page
func (b *Browser) SetSort(key domain.SortKey) domain.Page {
	return b.mutate(func() {
		b.state.Sort = key
		b.state.Page = 1
	})
}

// SetPage jumps to page; out-of-range values clamp
func (b *Browser) SetPage(page int) domain.Page {
	return b.mutate(func() { b.state.Page = page })
}

// NextPage advances one page, stopping at the last
func (b *Browser) NextPage() domain.Page {
	return b.mutate(func() { b.state.Page++ })
}

// PrevPage goes back one page, stopping at the first
func (b *Browser) PrevPage() domain.Page {
	return b.mutate(func() { b.state.Page-- })
}

// Details returns the details view of one product
func (b *Browser) Details(identifier string) (domain.ProductDetail, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.catalog.Lookup(identifier)
	if !ok {
		return domain.ProductDetail{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, identifier)
	}
	return domain.ProductDetail{
		Product:   p,
		Favorite:  b.favorites.IsFavorite(identifier),
		Comparing: b.compare.Has(identifier),
	}, nil
}

// ToggleFavorite flips the favorite state of identifier and persists it
func (b *Browser) ToggleFavorite(ctx context.Context, identifier string) (bool, error) {
	var (
		on  bool
		err error
	)
	b.mutate(func() { on, err = b.favorites.Toggle(ctx, identifier) })
	return on, err
}

// RemoveFavorite drops identifier from the favorites
func (b *Browser) RemoveFavorite(ctx context.Context, identifier string) error {
	var err error
	b.mutate(func() { err = b.favorites.Remove(ctx, identifier) })
	return err
}

// IsFavorite reports whether identifier is a favorite
func (b *Browser) IsFavorite(identifier string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.favorites.IsFavorite(identifier)
}

// Favorites returns favorite products in catalog order
func (b *Browser) Favorites() []domain.Product {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.favorites.List()
}

// FavoriteCount returns the number of stored favorites
func (b *Browser) FavoriteCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.favorites.Count()
}

// AddCompare adds identifier to the compare selection
func (b *Browser) AddCompare(identifier string) error {
	var err error
	b.mutate(func() { err = b.compare.Add(identifier) })
	return err
}

// RemoveCompare drops identifier from the compare selection
func (b *Browser) RemoveCompare(identifier string) {
	b.mutate(func() { b.compare.Remove(identifier) })
}

// ToggleCompare flips identifier's compare selection
func (b *Browser) ToggleCompare(identifier string) (bool, error) {
	var (
		on  bool
		err error
	)
	b.mutate(func() { on, err = b.compare.Toggle(identifier) })
	return on, err
}

// ClearCompare empties the compare selection
func (b *Browser) ClearCompare() {
	b.mutate(func() { b.compare.Clear() })
}

// IsComparing reports whether identifier is in the compare selection
func (b *Browser) IsComparing(identifier string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.compare.Has(identifier)
}

// CompareSelection returns the compare tray contents in insertion order
func (b *Browser) CompareSelection() []domain.Product {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.compare.Selected()
}

// ComparePair returns the two products to show side by side
func (b *Browser) ComparePair() (domain.Product, domain.Product, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.compare.Pair()
}

// mutate applies fn under the lock, recomputes the page and notifies
// listeners outside the lock.
func (b *Browser) mutate(fn func()) domain.Page {
	page, listeners := func() (domain.Page, []Listener) {
		b.mu.Lock()
		defer b.mu.Unlock()
		fn()
		return b.recompute(), append([]Listener(nil), b.listeners...)
	}()

	for _, l := range listeners {
		l(page)
	}
	return page
}

// recompute runs the pipeline and stores the clamped page. Caller holds mu.
func (b *Browser) recompute() domain.Page {
	page := ApplyView(b.catalog, b.state)
	b.state.Page = page.Page
	return page
}
