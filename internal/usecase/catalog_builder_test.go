package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/chemaware/catalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogBuilder_MergeThreshold(t *testing.T) {
	tests := []struct {
		name      string
		seed      int
		available int
		wantLen   int
		wantCalls int
	}{
		{name: "seed at threshold skips fetch", seed: 30, available: 30, wantLen: 30, wantCalls: 0},
		{name: "large seed skips fetch", seed: 45, available: 30, wantLen: 45, wantCalls: 0},
		{name: "short seed fills to 32", seed: 20, available: 30, wantLen: 32, wantCalls: 1},
		{name: "short supplement", seed: 20, available: 5, wantLen: 25, wantCalls: 1},
		{name: "29 seed takes 3", seed: 29, available: 30, wantLen: 32, wantCalls: 1},
		{name: "empty seed", seed: 0, available: 40, wantLen: 32, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &MockProductSource{records: remoteRecords(tt.available)}
			builder := NewCatalogBuilder(source, DefaultCatalogConfig())

			catalog := builder.Build(context.Background(), localProducts(tt.seed))

			assert.Equal(t, tt.wantLen, catalog.Len())
			assert.Equal(t, tt.wantCalls, source.calls)
		})
	}
}

func TestCatalogBuilder_SeedPlusSupplementScenario(t *testing.T) {
	source := &MockProductSource{records: remoteRecords(30)}
	catalog := NewCatalogBuilder(source, DefaultCatalogConfig()).Build(context.Background(), SeedProducts())

	require.Equal(t, 32, catalog.Len())

	products := catalog.Products()
	seen := make(map[string]bool)
	local, api := 0, 0
	for _, p := range products {
		assert.False(t, seen[p.Identifier()], "duplicate identifier %s", p.Identifier())
		seen[p.Identifier()] = true
		switch p.Source {
		case domain.SourceLocal:
			local++
		case domain.SourceAPI:
			api++
		}
	}
	assert.Equal(t, 20, local)
	assert.Equal(t, 12, api)

	// Seed keeps its order ahead of the supplement.
	assert.Equal(t, "local:p-01", products[0].Identifier())
	assert.Equal(t, "api:api-1", products[20].Identifier())
	assert.Equal(t, "api:api-12", products[31].Identifier())
}

func TestCatalogBuilder_FetchFailureFallsBackToSeed(t *testing.T) {
	source := &MockProductSource{err: errors.New("connection refused")}
	catalog := NewCatalogBuilder(source, DefaultCatalogConfig()).Build(context.Background(), SeedProducts())

	assert.Equal(t, 20, catalog.Len())
	assert.Equal(t, 1, source.calls)
}

func TestCatalogBuilder_SkipsDuplicateRemoteRecords(t *testing.T) {
	records := append(remoteRecords(3), remoteRecords(3)...)
	source := &MockProductSource{records: records}

	catalog := NewCatalogBuilder(source, DefaultCatalogConfig()).Build(context.Background(), localProducts(10))

	assert.Equal(t, 13, catalog.Len())
}

func TestCatalogBuilder_Normalization(t *testing.T) {
	source := &MockProductSource{records: []domain.RemoteRecord{
		{ID: "1", Title: "With image", Images: []string{"https://img/1.png"}, Description: "Has text"},
		{ID: "2", Title: "Bare"},
	}}
	catalog := NewCatalogBuilder(source, DefaultCatalogConfig()).Build(context.Background(), SeedProducts())

	ammonia, ok := catalog.Lookup("local:p-01")
	require.True(t, ok)
	assert.Equal(t, "https://picsum.photos/seed/local-p-01/400/300", ammonia.Image)
	assert.Equal(t, "Glass cleaners, fertilizers — Irritates skin, eyes, lungs on prolonged exposure", ammonia.Description)

	withImage, ok := catalog.Lookup("api:api-1")
	require.True(t, ok)
	assert.Equal(t, "https://img/1.png", withImage.Image)
	assert.Equal(t, "Has text", withImage.Description)

	bare, ok := catalog.Lookup("api:api-2")
	require.True(t, ok)
	assert.Equal(t, "https://picsum.photos/seed/api-api-2/400/300", bare.Image)
	assert.True(t, strings.HasPrefix(bare.Description, "Various household uses — "))
	assert.GreaterOrEqual(t, bare.Hazard, 1)
	assert.LessOrEqual(t, bare.Hazard, 5)
}

func TestCatalogBuilder_NilSource(t *testing.T) {
	catalog := NewCatalogBuilder(nil, CatalogConfig{}).Build(context.Background(), localProducts(3))
	assert.Equal(t, 3, catalog.Len())
}

func TestPlaceholderImage_EscapesSeed(t *testing.T) {
	p := domain.Product{ID: "a b/c", Source: domain.SourceLocal}
	assert.Equal(t, "https://img.test/local-a%20b%2Fc/400/300", PlaceholderImage("https://img.test", p))
}

func TestDeriveDescription(t *testing.T) {
	assert.Equal(t, "u — e", DeriveDescription(domain.Product{Usage: "u", Effects: "e"}))
	assert.Equal(t, "u", DeriveDescription(domain.Product{Usage: "u"}))
	assert.Equal(t, "e", DeriveDescription(domain.Product{Effects: "e"}))
}
