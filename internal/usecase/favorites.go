package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/chemaware/catalog/internal/domain"
	"github.com/chemaware/catalog/internal/logging"
)

// DefaultFavoritesKey is the store entry holding the favorite identifiers
const DefaultFavoritesKey = "chem_favs"

// Favorites manages the persisted set of favorite product identifiers
type Favorites struct {
	store   domain.KVStore
	key     string
	catalog *domain.Catalog
	ids     map[string]struct{}
}

// NewFavorites creates an empty favorites set bound to a store entry
func NewFavorites(store domain.KVStore, key string, catalog *domain.Catalog) *Favorites {
	if key == "" {
		key = DefaultFavoritesKey
	}
	return &Favorites{
		store:   store,
		key:     key,
		catalog: catalog,
		ids:     make(map[string]struct{}),
	}
}

// Load replaces the in-memory set with the persisted one. Missing or corrupt
// data yields an empty set and no error.
func (f *Favorites) Load(ctx context.Context) {
	log := logging.Component("favorites")
	f.ids = make(map[string]struct{})

	raw, err := f.store.Get(ctx, f.key)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			log.WithError(err).Warn("could not read favorites, starting empty")
		}
		return
	}

	ids, err := decodeFavorites(raw)
	if err != nil {
		log.WithError(err).Warn("corrupt favorites entry, starting empty")
		return
	}
	for _, id := range ids {
		f.ids[id] = struct{}{}
	}
	log.Debugf("loaded %d favorites", len(f.ids))
}

// Toggle removes identifier if it is a favorite, otherwise adds it, then
// persists the whole set. Unknown identifiers are ignored.
func (f *Favorites) Toggle(ctx context.Context, identifier string) (bool, error) {
	if !f.catalog.Contains(identifier) {
		return false, fmt.Errorf("%w: %s", domain.ErrProductNotFound, identifier)
	}
	_, present := f.ids[identifier]
	if present {
		delete(f.ids, identifier)
	} else {
		f.ids[identifier] = struct{}{}
	}
	return !present, f.save(ctx)
}

// Remove drops identifier from the set if present and persists the result
func (f *Favorites) Remove(ctx context.Context, identifier string) error {
	if _, ok := f.ids[identifier]; !ok {
		return nil
	}
	delete(f.ids, identifier)
	return f.save(ctx)
}

// IsFavorite reports whether identifier is in the set
func (f *Favorites) IsFavorite(identifier string) bool {
	_, ok := f.ids[identifier]
	return ok
}

// Count returns the size of the set, including identifiers no longer in the catalog
func (f *Favorites) Count() int {
	return len(f.ids)
}

// IDs returns the favorite identifiers sorted
func (f *Favorites) IDs() []string {
	out := make([]string, 0, len(f.ids))
	for id := range f.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// List returns favorite products in catalog order. Stored identifiers that
// are not in the catalog are skipped.
func (f *Favorites) List() []domain.Product {
	out := make([]domain.Product, 0, len(f.ids))
	for id := range f.ids {
		if p, ok := f.catalog.Lookup(id); ok {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b domain.Product) int {
		return f.catalog.Position(a.Identifier()) - f.catalog.Position(b.Identifier())
	})
	return out
}

func (f *Favorites) save(ctx context.Context) error {
	data, err := json.Marshal(f.IDs())
	if err != nil {
		return err
	}
	if err := f.store.Set(ctx, f.key, string(data)); err != nil {
		logging.Component("favorites").WithError(err).Warn("could not persist favorites")
		return fmt.Errorf("persisting favorites: %w", err)
	}
	return nil
}

func decodeFavorites(raw string) ([]string, error) {
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
