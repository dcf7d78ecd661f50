package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront-studio/internal/config"
	"github.com/aaravmahajanofficial/storefront-studio/internal/models"
	repository "github.com/aaravmahajanofficial/storefront-studio/internal/repositories"
	service "github.com/aaravmahajanofficial/storefront-studio/internal/services"
	"github.com/aaravmahajanofficial/storefront-studio/internal/state"
	"github.com/aaravmahajanofficial/storefront-studio/internal/storage"
)

type testStores struct {
	ctx      context.Context
	repos    *repository.Repositories
	site     *service.SiteService
	cart     *service.CartService
	users    *service.UserService
	search   *service.SearchService
	checkout *service.CheckoutService
}

var testSecurity = config.Security{
	JWTKey:          "test-secret",
	JWTExpiryHours:  1,
	AdminInviteCode: "ADMIN-ACCESS-2024",
}

var testCheckout = config.Checkout{
	ShippingFee:           8,
	FreeShippingThreshold: 150,
}

func testCatalog() []models.Product {
	return []models.Product{
		{Slug: "tee", Name: "Tee", Description: "Soft cotton tee", Price: 10, Category: "Apparel", SubCategory: "Tops"},
		{Slug: "mug", Name: "Mug", Description: "Stoneware mug", Price: 15, Category: "Kitchen", SubCategory: "Drinkware"},
		{Slug: "hoodie", Name: "Hoodie", Description: "Fleece hoodie", Price: 40, Category: "Apparel", SubCategory: "Outerwear", Highlight: "Best Seller"},
	}
}

func testSite() *models.GeneratedSite {
	return &models.GeneratedSite{
		StoreName: "Northwind",
		Tagline:   "Everyday goods",
		Products:  testCatalog(),
	}
}

func openStores(t *testing.T, repos *repository.Repositories) *testStores {
	t.Helper()

	ctx := context.Background()

	site := service.NewSiteService(ctx, repos.Site)
	cart := service.NewCartService(ctx, repos.Cart, site)
	users := service.NewUserService(ctx, repos.User, testSecurity)
	t.Cleanup(cart.Close)

	return &testStores{
		ctx:      ctx,
		repos:    repos,
		site:     site,
		cart:     cart,
		users:    users,
		search:   service.NewSearchService(site),
		checkout: service.NewCheckoutService(state.NewLoop(), cart, users, testCheckout),
	}
}

// setupStores returns the stores over an empty in-memory blob store with the
// test site already generated.
func setupStores(t *testing.T) *testStores {
	t.Helper()

	s := openStores(t, repository.NewWithStore(storage.NewMemoryStore(), time.Second))
	s.site.SetSite(testSite())

	return s
}

func mustProduct(t *testing.T, s *testStores, slug string) models.Product {
	t.Helper()

	product, ok := s.site.FindProductBySlug(slug)
	if !ok {
		t.Fatalf("product %q not in catalog", slug)
	}

	return product
}
