package storage

import (
	"context"
)

// BlobStore is the narrow key/value contract the repositories persist through.
// Get reports found=false for an absent key; that is not an error.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}

func Key(prefix string, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + ":" + name
}

const (
	UsersKey     = "ecommerce-dynamic-users"
	SessionKey   = "ecommerce-dynamic-session"
	SiteKey      = "ecommerce-dynamic-site"
	CartKey      = "ecommerce-dynamic-cart"
	FavoritesKey = "ecommerce-dynamic-favorites"
)
