package storage_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront-studio/internal/storage"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T, ttl time.Duration) (storage.BlobStore, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	store := storage.NewRedisStore(client, "shop", ttl)

	return store, mock
}

func TestNewRedisStore(t *testing.T) {
	store, _ := setupRedis(t, 0)
	assert.NotNil(t, store, "NewRedisStore should return a non-nil BlobStore")
}

func TestRedisGet(t *testing.T) {
	ctx := t.Context()
	fullKey := "shop:" + storage.CartKey
	payload := `[{"slug":"red-hoodie","quantity":2,"unitPrice":10}]`

	t.Run("Success - Key Found", func(t *testing.T) {
		// Arrange
		store, mock := setupRedis(t, 0)
		mock.ExpectGet(fullKey).SetVal(payload)

		// Act
		data, found, err := store.Get(ctx, storage.CartKey)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, payload, string(data))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Key Not Found", func(t *testing.T) {
		// Arrange
		store, mock := setupRedis(t, 0)
		mock.ExpectGet(fullKey).SetErr(redis.Nil)

		// Act
		data, found, err := store.Get(ctx, storage.CartKey)

		// Assert
		require.NoError(t, err, "a missing key is not an error")
		assert.False(t, found)
		assert.Nil(t, data)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		store, mock := setupRedis(t, 0)
		expectedErr := errors.New("redis connection error")
		mock.ExpectGet(fullKey).SetErr(expectedErr)

		// Act
		_, found, err := store.Get(ctx, storage.CartKey)

		// Assert
		require.Error(t, err)
		assert.False(t, found)
		assert.ErrorIs(t, err, expectedErr)
		assert.Contains(t, err.Error(), fmt.Sprintf("failed to get key %s from redis", storage.CartKey))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisSet(t *testing.T) {
	ctx := t.Context()
	fullKey := "shop:" + storage.FavoritesKey
	payload := []byte(`["red-hoodie"]`)

	t.Run("Success - No Expiry", func(t *testing.T) {
		// Arrange
		store, mock := setupRedis(t, 0)
		mock.ExpectSet(fullKey, payload, 0).SetVal("OK")

		// Act
		err := store.Set(ctx, storage.FavoritesKey, payload)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - With TTL", func(t *testing.T) {
		// Arrange
		store, mock := setupRedis(t, time.Hour)
		mock.ExpectSet(fullKey, payload, time.Hour).SetVal("OK")

		// Act
		err := store.Set(ctx, storage.FavoritesKey, payload)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		store, mock := setupRedis(t, 0)
		expectedErr := errors.New("redis SET failed")
		mock.ExpectSet(fullKey, payload, 0).SetErr(expectedErr)

		// Act
		err := store.Set(ctx, storage.FavoritesKey, payload)

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, expectedErr)
		assert.Contains(t, err.Error(), fmt.Sprintf("failed to set key %s in redis", storage.FavoritesKey))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisRemove(t *testing.T) {
	ctx := t.Context()
	fullKey := "shop:" + storage.SessionKey

	t.Run("Success", func(t *testing.T) {
		// Arrange
		store, mock := setupRedis(t, 0)
		mock.ExpectDel(fullKey).SetVal(1)

		// Act
		err := store.Remove(ctx, storage.SessionKey)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		store, mock := setupRedis(t, 0)
		expectedErr := errors.New("redis DEL failed")
		mock.ExpectDel(fullKey).SetErr(expectedErr)

		// Act
		err := store.Remove(ctx, storage.SessionKey)

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, expectedErr)
		assert.Contains(t, err.Error(), fmt.Sprintf("failed to delete key %s from redis", storage.SessionKey))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestKey(t *testing.T) {
	assert.Equal(t, "shop:ecommerce-dynamic-cart", storage.Key("shop", storage.CartKey))
	assert.Equal(t, "ecommerce-dynamic-cart", storage.Key("", storage.CartKey), "an empty prefix leaves the key untouched")
}
