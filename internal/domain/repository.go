package domain

import "context"

// KVStore defines the durable key-value storage used for favorites
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ProductSource defines the remote product listing used to supplement the seed
type ProductSource interface {
	FetchProducts(ctx context.Context) ([]RemoteRecord, error)
}
