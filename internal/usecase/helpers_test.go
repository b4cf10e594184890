package usecase

import (
	"context"
	"fmt"

	"github.com/chemaware/catalog/internal/domain"
)

// MockProductSource is a mock implementation of domain.ProductSource
type MockProductSource struct {
	records []domain.RemoteRecord
	err     error
	calls   int
}

func (m *MockProductSource) FetchProducts(ctx context.Context) ([]domain.RemoteRecord, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

// remoteRecords returns n mappable remote records with ids 1..n
func remoteRecords(n int) []domain.RemoteRecord {
	out := make([]domain.RemoteRecord, n)
	for i := range out {
		out[i] = domain.RemoteRecord{
			ID:          fmt.Sprintf("%d", i+1),
			Title:       fmt.Sprintf("Remote product %d", i+1),
			Category:    "home",
			Description: "Remote description",
		}
	}
	return out
}

// localProducts returns n local products with ids p-1..p-n
func localProducts(n int) []domain.Product {
	out := make([]domain.Product, n)
	for i := range out {
		out[i] = domain.Product{
			ID:     fmt.Sprintf("p-%d", i+1),
			Source: domain.SourceLocal,
			Name:   fmt.Sprintf("Local product %d", i+1),
			Usage:  "testing",
			Hazard: 1 + i%5,
			Eco:    i%2 == 0,
		}
	}
	return out
}

// seedCatalog builds the seed-only catalog
func seedCatalog() *domain.Catalog {
	return NewCatalogBuilder(nil, DefaultCatalogConfig()).Build(context.Background(), SeedProducts())
}

func identifiers(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Identifier()
	}
	return out
}
