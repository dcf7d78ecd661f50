package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront-studio/internal/models"
	repository "github.com/aaravmahajanofficial/storefront-studio/internal/repositories"
	"github.com/aaravmahajanofficial/storefront-studio/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBlobStore struct {
	mock.Mock
}

func (m *mockBlobStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	data, _ := args.Get(0).([]byte)
	return data, args.Bool(1), args.Error(2)
}

func (m *mockBlobStore) Set(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *mockBlobStore) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockBlobStore) Close() error {
	return m.Called().Error(0)
}

func setupMemory(t *testing.T) (*repository.Repositories, storage.BlobStore) {
	t.Helper()

	store := storage.NewMemoryStore()
	return repository.NewWithStore(store, time.Second), store
}

func TestSiteRepository(t *testing.T) {
	ctx := t.Context()

	t.Run("Absent site", func(t *testing.T) {
		repos, _ := setupMemory(t)
		assert.Nil(t, repos.Site.LoadSite(ctx))
	})

	t.Run("Round trip", func(t *testing.T) {
		repos, _ := setupMemory(t)
		themes := models.Themes{Navbar: models.NavbarPill, Hero: models.HeroSplit, ProductCard: models.ProductCardMinimal}
		site := &models.GeneratedSite{
			StoreName: "Northwind",
			Themes:    &themes,
			Products:  []models.Product{{Slug: "mug", Name: "Mug", Price: 12}},
		}

		require.NoError(t, repos.Site.SaveSite(ctx, site))

		loaded := repos.Site.LoadSite(ctx)
		require.NotNil(t, loaded)
		assert.Equal(t, site, loaded)
	})

	t.Run("Themes defaulted for older documents", func(t *testing.T) {
		repos, store := setupMemory(t)
		require.NoError(t, store.Set(ctx, storage.SiteKey, []byte(`{"storeName":"Legacy","products":[{"slug":"a","name":"A","price":1}]}`)))

		loaded := repos.Site.LoadSite(ctx)
		require.NotNil(t, loaded)
		require.NotNil(t, loaded.Themes)
		assert.Equal(t, models.DefaultThemes(), *loaded.Themes)
		assert.Len(t, loaded.Products, 1)
	})

	t.Run("Corrupt document reads as absent", func(t *testing.T) {
		repos, store := setupMemory(t)
		require.NoError(t, store.Set(ctx, storage.SiteKey, []byte(`{"storeName":`)))

		assert.Nil(t, repos.Site.LoadSite(ctx))
	})

	t.Run("Clear", func(t *testing.T) {
		repos, _ := setupMemory(t)
		require.NoError(t, repos.Site.SaveSite(ctx, &models.GeneratedSite{StoreName: "Gone"}))
		require.NoError(t, repos.Site.ClearSite(ctx))

		assert.Nil(t, repos.Site.LoadSite(ctx))
	})
}

func TestCartRepository(t *testing.T) {
	ctx := t.Context()

	t.Run("Absent cart and favorites are empty", func(t *testing.T) {
		repos, _ := setupMemory(t)

		assert.Empty(t, repos.Cart.LoadCart(ctx))
		assert.NotNil(t, repos.Cart.LoadCart(ctx))
		assert.Empty(t, repos.Cart.LoadFavorites(ctx))
	})

	t.Run("Round trip", func(t *testing.T) {
		repos, _ := setupMemory(t)
		items := []models.CartItem{
			{Slug: "hoodie", Quantity: 2, UnitPrice: 10, Variant: &models.VariantSelection{Size: "M"}},
			{Slug: "mug", Quantity: 1, UnitPrice: 5},
		}

		require.NoError(t, repos.Cart.SaveCart(ctx, items))
		require.NoError(t, repos.Cart.SaveFavorites(ctx, []string{"mug", "hoodie"}))

		assert.Equal(t, items, repos.Cart.LoadCart(ctx))
		assert.Equal(t, []string{"mug", "hoodie"}, repos.Cart.LoadFavorites(ctx))
	})

	t.Run("Unusable stored lines are dropped", func(t *testing.T) {
		repos, store := setupMemory(t)
		require.NoError(t, store.Set(ctx, storage.CartKey, []byte(`[
			{"slug":"ok","quantity":1,"unitPrice":3,"variant":{}},
			{"slug":"","quantity":1,"unitPrice":3},
			{"slug":"neg","quantity":-2,"unitPrice":3}
		]`)))
		require.NoError(t, store.Set(ctx, storage.FavoritesKey, []byte(`["a","a","","b"]`)))

		cart := repos.Cart.LoadCart(ctx)
		require.Len(t, cart, 1)
		assert.Equal(t, "ok", cart[0].Slug)
		assert.Nil(t, cart[0].Variant, "an empty variant is stored as no variant")

		assert.Equal(t, []string{"a", "b"}, repos.Cart.LoadFavorites(ctx))
	})

	t.Run("Corrupt documents read as empty", func(t *testing.T) {
		repos, store := setupMemory(t)
		require.NoError(t, store.Set(ctx, storage.CartKey, []byte(`not json`)))
		require.NoError(t, store.Set(ctx, storage.FavoritesKey, []byte(`{"slug":"x"}`)))

		assert.Empty(t, repos.Cart.LoadCart(ctx))
		assert.Empty(t, repos.Cart.LoadFavorites(ctx))
	})

	t.Run("Store read failure reads as empty", func(t *testing.T) {
		store := new(mockBlobStore)
		repos := repository.NewWithStore(store, time.Second)
		store.On("Get", mock.Anything, storage.CartKey).Return(nil, false, errors.New("connection refused")).Once()

		assert.Empty(t, repos.Cart.LoadCart(ctx))
		store.AssertExpectations(t)
	})

	t.Run("Store write failure is returned", func(t *testing.T) {
		store := new(mockBlobStore)
		repos := repository.NewWithStore(store, time.Second)
		writeErr := errors.New("read-only replica")
		store.On("Set", mock.Anything, storage.CartKey, []byte(`[]`)).Return(writeErr).Once()

		err := repos.Cart.SaveCart(ctx, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, writeErr)
		assert.Contains(t, err.Error(), "failed to save cart")
		store.AssertExpectations(t)
	})
}

func TestUserRepository(t *testing.T) {
	ctx := t.Context()

	t.Run("Users round trip", func(t *testing.T) {
		repos, _ := setupMemory(t)
		users := []models.User{{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: models.RoleMember, Orders: []models.OrderRecord{}}}

		require.NoError(t, repos.User.SaveUsers(ctx, users))
		assert.Equal(t, users, repos.User.LoadUsers(ctx))
	})

	t.Run("Missing orders decode as empty history", func(t *testing.T) {
		repos, store := setupMemory(t)
		require.NoError(t, store.Set(ctx, storage.UsersKey, []byte(`[{"id":"u1","name":"Ada","email":"ada@example.com","role":"member"}]`)))

		users := repos.User.LoadUsers(ctx)
		require.Len(t, users, 1)
		assert.NotNil(t, users[0].Orders)
	})

	t.Run("Session save, load and clear", func(t *testing.T) {
		repos, _ := setupMemory(t)
		assert.Nil(t, repos.User.LoadSession(ctx))

		user := &models.User{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: models.RoleAdmin, Orders: []models.OrderRecord{}}
		require.NoError(t, repos.User.SaveSession(ctx, user))
		assert.Equal(t, user, repos.User.LoadSession(ctx))

		require.NoError(t, repos.User.SaveSession(ctx, nil))
		assert.Nil(t, repos.User.LoadSession(ctx))
	})

	t.Run("Session without id reads as signed out", func(t *testing.T) {
		repos, store := setupMemory(t)
		require.NoError(t, store.Set(ctx, storage.SessionKey, []byte(`{"name":"ghost"}`)))

		assert.Nil(t, repos.User.LoadSession(ctx))
	})
}
