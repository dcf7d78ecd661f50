package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/storefront-studio/internal/config"
	"github.com/aaravmahajanofficial/storefront-studio/internal/storage"
	"github.com/redis/go-redis/v9"
)

// Repositories bundles the document repositories over one blob store.
// DB and Redis are set only for the matching backend.
type Repositories struct {
	Store storage.BlobStore
	DB    *sql.DB
	Redis *redis.Client

	Site SiteRepository
	Cart CartRepository
	User UserRepository
}

func New(ctx context.Context, cfg *config.Config) (*Repositories, error) {

	switch cfg.Storage.Backend {
	case config.StorageRedis:
		client, err := storage.NewRedisClient(cfg)
		if err != nil {
			return nil, err
		}

		repos := NewWithStore(storage.NewRedisStore(client, cfg.Storage.KeyPrefix, cfg.RedisConnect.TTL), cfg.Storage.Timeout)
		repos.Redis = client

		return repos, nil

	case config.StoragePostgres:
		db, err := storage.OpenPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}

		if err := storage.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, err
		}

		repos := NewWithStore(storage.NewPostgresStore(db, cfg.Storage.KeyPrefix), cfg.Storage.Timeout)
		repos.DB = db

		return repos, nil

	case config.StorageMemory, "":
		return NewWithStore(storage.NewMemoryStore(), cfg.Storage.Timeout), nil
	}

	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

func NewWithStore(store storage.BlobStore, timeout time.Duration) *Repositories {
	docs := &documentStore{store: store, timeout: timeout}

	return &Repositories{
		Store: store,
		Site:  NewSiteRepo(docs),
		Cart:  NewCartRepo(docs),
		User:  NewUserRepo(docs),
	}
}

func (r *Repositories) Close() error {
	return r.Store.Close()
}
