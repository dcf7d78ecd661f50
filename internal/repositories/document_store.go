package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/storefront-studio/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-studio/internal/metrics"
	"github.com/aaravmahajanofficial/storefront-studio/internal/storage"
	"github.com/aaravmahajanofficial/storefront-studio/internal/utils"
)

// documentStore keeps one JSON document per key. Reads never fail: an
// unreachable store or an unreadable document is logged and reported as
// absent.
type documentStore struct {
	store   storage.BlobStore
	timeout time.Duration
}

func (d *documentStore) load(ctx context.Context, key string, dest any) bool {
	logger := middleware.LoggerFromContext(ctx)

	storeCtx, cancel := utils.WithStorageTimeout(ctx, d.timeout)
	defer cancel()

	data, found, err := d.store.Get(storeCtx, key)
	if err != nil {
		logger.Error("Failed to read stored document", slog.String("key", key), slog.String("error", err.Error()))
		metrics.RecordStorageFailure("read", key)
		return false
	}

	if !found {
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		logger.Warn("Stored document is not valid JSON, treating as empty", slog.String("key", key), slog.String("error", err.Error()))
		metrics.RecordStorageFailure("decode", key)
		return false
	}

	return true
}

func (d *documentStore) save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		metrics.RecordStorageFailure("encode", key)
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	storeCtx, cancel := utils.WithStorageTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.store.Set(storeCtx, key, data); err != nil {
		metrics.RecordStorageFailure("write", key)
		return err
	}

	return nil
}

func (d *documentStore) remove(ctx context.Context, key string) error {
	storeCtx, cancel := utils.WithStorageTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.store.Remove(storeCtx, key); err != nil {
		metrics.RecordStorageFailure("remove", key)
		return err
	}

	return nil
}
