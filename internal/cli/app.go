package cli

import (
	"context"
	"fmt"

	"github.com/chemaware/catalog/config"
	"github.com/chemaware/catalog/internal/domain"
	"github.com/chemaware/catalog/internal/infrastructure/dummyjson"
	"github.com/chemaware/catalog/internal/infrastructure/kv"
	"github.com/chemaware/catalog/internal/logging"
	"github.com/chemaware/catalog/internal/usecase"
)

// app is the wired catalog shared by every command
type app struct {
	browser *usecase.Browser
	close   func() error
}

// newApp opens the favorites store, builds the catalog and loads the
// persisted favorites
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	log := logging.Component("app")

	store, closeStore, err := openStore(cfg.Favorites)
	if err != nil {
		return nil, err
	}

	var source domain.ProductSource
	if cfg.Remote.Enabled {
		client := dummyjson.NewClient(cfg.Remote.BaseURL, cfg.Remote.Limit, cfg.Remote.Timeout)
		if cfg.Server.Environment == "development" {
			client.SetDebug(true)
		}
		source = client
		log.Debugf("remote source: %s (limit %d)", cfg.Remote.BaseURL, cfg.Remote.Limit)
	}

	builder := usecase.NewCatalogBuilder(source, usecase.CatalogConfig{
		SeedThreshold:   cfg.Catalog.SeedThreshold,
		MaxItems:        cfg.Catalog.MaxItems,
		PlaceholderBase: cfg.Catalog.PlaceholderBase,
	})
	catalog := builder.Build(ctx, usecase.SeedProducts())

	browser := usecase.NewBrowser(catalog, store, cfg.Favorites.Key)
	browser.Load(ctx)
	log.Debugf("catalog ready: %d products, %d favorites", catalog.Len(), browser.FavoriteCount())

	return &app{browser: browser, close: closeStore}, nil
}

func (a *app) Close() error {
	if a == nil || a.close == nil {
		return nil
	}
	return a.close()
}

func openStore(cfg config.FavoritesConfig) (domain.KVStore, func() error, error) {
	switch cfg.Driver {
	case "memory":
		return kv.NewMemoryStore(), func() error { return nil }, nil
	case "sqlite":
		store, err := kv.OpenSQLite(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening favorites store %s: %w", cfg.Path, err)
		}
		return store, store.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown favorites driver %q", cfg.Driver)
}
