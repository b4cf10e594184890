package usecase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/chemaware/catalog/internal/domain"
	"github.com/chemaware/catalog/internal/infrastructure/dummyjson"
	"github.com/chemaware/catalog/internal/logging"
)

// CatalogConfig holds the merge policy of the catalog builder
type CatalogConfig struct {
	// SeedThreshold is the seed size at which the remote fetch is skipped
	SeedThreshold int
	// MaxItems caps the merged catalog when a supplement is fetched
	MaxItems int
	// PlaceholderBase is the image service used for products without an image
	PlaceholderBase string
}

// DefaultCatalogConfig returns the standard merge policy
func DefaultCatalogConfig() CatalogConfig {
	return CatalogConfig{
		SeedThreshold:   30,
		MaxItems:        32,
		PlaceholderBase: "https://picsum.photos/seed",
	}
}

// CatalogBuilder merges the seed list with a remote supplement
type CatalogBuilder struct {
	source domain.ProductSource
	config CatalogConfig
}

// NewCatalogBuilder creates a builder. source may be nil, in which case the
// catalog is always the seed only. Zero or negative config fields take the
// DefaultCatalogConfig values. Loaded configuration never carries them.
func NewCatalogBuilder(source domain.ProductSource, config CatalogConfig) *CatalogBuilder {
	defaults := DefaultCatalogConfig()
	if config.SeedThreshold <= 0 {
		config.SeedThreshold = defaults.SeedThreshold
	}
	if config.MaxItems <= 0 {
		config.MaxItems = defaults.MaxItems
	}
	if config.PlaceholderBase == "" {
		config.PlaceholderBase = defaults.PlaceholderBase
	}
	return &CatalogBuilder{
		source: source,
		config: config,
	}
}

// Build produces the merged, normalized catalog. A failed fetch is logged and
// the catalog falls back to the seed.
func (b *CatalogBuilder) Build(ctx context.Context, seed []domain.Product) *domain.Catalog {
	log := logging.Component("catalog")

	products := make([]domain.Product, 0, max(len(seed), b.config.MaxItems))
	seen := make(map[string]bool, cap(products))
	for _, p := range seed {
		p = b.normalize(p)
		products = append(products, p)
		seen[p.Identifier()] = true
	}

	if len(seed) >= b.config.SeedThreshold || b.source == nil {
		log.Infof("catalog built from %d seed products", len(products))
		return domain.NewCatalog(products)
	}

	records, err := b.source.FetchProducts(ctx)
	if err != nil {
		log.WithError(err).Warn("supplemental fetch failed, using seed only")
		records = nil
	}

	need := max(0, b.config.MaxItems-len(seed))
	added := 0
	for _, p := range dummyjson.MapAll(records) {
		if added >= need {
			break
		}
		p = b.normalize(p)
		if seen[p.Identifier()] {
			continue
		}
		seen[p.Identifier()] = true
		products = append(products, p)
		added++
	}

	log.Infof("catalog built from %d seed and %d supplemental products", len(seed), added)
	return domain.NewCatalog(products)
}

// normalize fills in a placeholder image and a derived description
func (b *CatalogBuilder) normalize(p domain.Product) domain.Product {
	if p.Image == "" {
		p.Image = PlaceholderImage(b.config.PlaceholderBase, p)
	}
	if p.Description == "" {
		p.Description = DeriveDescription(p)
	}
	return p
}

// PlaceholderImage returns a deterministic image URL for a product
func PlaceholderImage(base string, p domain.Product) string {
	seed := url.PathEscape(fmt.Sprintf("%s-%s", p.Source, p.ID))
	return fmt.Sprintf("%s/%s/400/300", base, seed)
}

// DeriveDescription builds a description from usage and effects
func DeriveDescription(p domain.Product) string {
	switch {
	case p.Usage == "":
		return p.Effects
	case p.Effects == "":
		return p.Usage
	}
	return p.Usage + " — " + p.Effects
}
