package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront-studio/internal/api/handlers"
	"github.com/aaravmahajanofficial/storefront-studio/internal/config"
	"github.com/aaravmahajanofficial/storefront-studio/internal/models"
	repository "github.com/aaravmahajanofficial/storefront-studio/internal/repositories"
	service "github.com/aaravmahajanofficial/storefront-studio/internal/services"
	"github.com/aaravmahajanofficial/storefront-studio/internal/state"
	"github.com/aaravmahajanofficial/storefront-studio/internal/storage"
	"github.com/aaravmahajanofficial/storefront-studio/internal/testutils"
)

type testServer struct {
	site     *service.SiteService
	cart     *service.CartService
	users    *service.UserService
	wizard   *service.WizardService
	siteH    *handlers.SiteHandler
	productH *handlers.ProductHandler
	cartH    *handlers.CartHandler
	checkout *handlers.CheckoutHandler
	userH    *handlers.UserHandler
}

func setupServer(t *testing.T, withSite bool) *testServer {
	t.Helper()

	ctx := context.Background()
	repos := repository.NewWithStore(storage.NewMemoryStore(), time.Second)

	site := service.NewSiteService(ctx, repos.Site)
	cart := service.NewCartService(ctx, repos.Cart, site)
	t.Cleanup(cart.Close)
	users := service.NewUserService(ctx, repos.User, config.Security{JWTKey: "test-secret", JWTExpiryHours: 1, AdminInviteCode: "ADMIN-ACCESS-2024"})
	search := service.NewSearchService(site)
	wizard := service.NewWizardService()
	checkout := service.NewCheckoutService(state.NewLoop(), cart, users, config.Checkout{ShippingFee: 8, FreeShippingThreshold: 150})

	if withSite {
		site.SetSite(&models.GeneratedSite{
			StoreName: "Northwind",
			Products: []models.Product{
				{Slug: "tee", Name: "Tee", Price: 10, Category: "Apparel", SubCategory: "Tops"},
				{Slug: "mug", Name: "Mug", Price: 15, Category: "Kitchen", SubCategory: "Drinkware"},
				{Slug: "hoodie", Name: "Hoodie", Price: 40, Category: "Apparel", SubCategory: "Outerwear", Highlight: "Best Seller"},
			},
		})
	}

	return &testServer{
		site:     site,
		cart:     cart,
		users:    users,
		wizard:   wizard,
		siteH:    handlers.NewSiteHandler(site, wizard),
		productH: handlers.NewProductHandler(site, search),
		cartH:    handlers.NewCartHandler(site, cart, checkout),
		checkout: handlers.NewCheckoutHandler(checkout),
		userH:    handlers.NewUserHandler(users),
	}
}

func serve(handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func request(t *testing.T, method, target string, body any, pathParams map[string]string) *http.Request {
	t.Helper()

	if body == nil {
		return testutils.CreateTestRequestWithoutContext(method, target, nil, pathParams)
	}

	return testutils.CreateTestRequestWithoutContext(method, target, testutils.JSONBody(t, body), pathParams)
}
