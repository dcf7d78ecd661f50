package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/storefront-studio/internal/errors"
	"github.com/aaravmahajanofficial/storefront-studio/internal/models"
	"github.com/aaravmahajanofficial/storefront-studio/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wizardPayload(s *testServer) models.WizardRequest {
	payload := s.wizard.Prefill(nil).Payload
	payload.Brand = models.WizardBrand{StoreName: "Northwind", Tagline: "Everyday goods", LogoURL: "https://example.com/logo.png"}
	payload.Contact = models.WizardContact{ContactEmail: "hello@northwind.test"}

	return payload
}

func TestSiteHandler(t *testing.T) {
	t.Run("No site yet", func(t *testing.T) {
		s := setupServer(t, false)

		rec := serve(s.siteH.GetSite(), request(t, http.MethodGet, "/api/v1/site", nil, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		resp := testutils.DecodeResponse(t, rec, nil)
		assert.False(t, resp.Success)
		assert.Equal(t, errors.ErrCodeNotFound, resp.Error.Code)
	})

	t.Run("Publish from the wizard", func(t *testing.T) {
		s := setupServer(t, false)

		rec := serve(s.siteH.PublishSite(), request(t, http.MethodPut, "/api/v1/site", wizardPayload(s), nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var site models.GeneratedSite
		resp := testutils.DecodeResponse(t, rec, &site)
		assert.True(t, resp.Success)
		assert.Equal(t, "Northwind", site.StoreName)
		assert.Len(t, site.Products, 3)
		assert.True(t, s.site.HasSite())

		rec = serve(s.siteH.GetSite(), request(t, http.MethodGet, "/api/v1/site", nil, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Publish rejects an incomplete wizard", func(t *testing.T) {
		s := setupServer(t, false)
		payload := wizardPayload(s)
		payload.Brand.StoreName = ""

		rec := serve(s.siteH.PublishSite(), request(t, http.MethodPut, "/api/v1/site", payload, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := testutils.DecodeResponse(t, rec, nil)
		assert.Equal(t, errors.ErrCodeValidation, resp.Error.Code)
		assert.Contains(t, resp.Error.Details, "Field StoreName is required")
		assert.False(t, s.site.HasSite())
	})

	t.Run("Publish rejects malformed JSON", func(t *testing.T) {
		s := setupServer(t, false)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPut, "/api/v1/site", strings.NewReader("{"), nil)

		rec := serve(s.siteH.PublishSite(), req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Clear", func(t *testing.T) {
		s := setupServer(t, true)
		s.cart.AddToCart(models.Product{Slug: "tee", Price: 10}, 1, nil)

		rec := serve(s.siteH.ClearSite(), request(t, http.MethodDelete, "/api/v1/site", nil, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, s.site.HasSite())
		assert.Empty(t, s.cart.CartItems())
	})

	t.Run("Wizard prefill follows the site", func(t *testing.T) {
		s := setupServer(t, true)

		var form models.WizardForm
		rec := serve(s.siteH.GetWizard(), request(t, http.MethodGet, "/api/v1/site/wizard", nil, nil))
		testutils.DecodeResponse(t, rec, &form)

		assert.Equal(t, "Northwind", form.Payload.Brand.StoreName)
		assert.Len(t, form.Payload.Products, 3)
		assert.Len(t, form.Steps, 4)
	})

	t.Run("Validate one step", func(t *testing.T) {
		s := setupServer(t, false)
		payload := wizardPayload(s)
		payload.Contact.ContactEmail = ""

		rec := serve(s.siteH.ValidateWizardStep(), request(t, http.MethodPost, "/", payload, map[string]string{"step": "0"}))
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = serve(s.siteH.ValidateWizardStep(), request(t, http.MethodPost, "/", payload, map[string]string{"step": "2"}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = serve(s.siteH.ValidateWizardStep(), request(t, http.MethodPost, "/", payload, map[string]string{"step": "brand"}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Save products", func(t *testing.T) {
		s := setupServer(t, true)
		body := models.SaveProductsRequest{Products: []models.ProductDraft{
			{Name: "Mug", Description: "A heavy stoneware mug for slow mornings.", Price: 12, ImageURL: "https://example.com/mug.jpg"},
			{Name: "Mug", Description: "A second stoneware mug for slow mornings.", Price: 14, ImageURL: "https://example.com/mug2.jpg"},
		}}

		rec := serve(s.siteH.SaveProducts(), request(t, http.MethodPut, "/api/v1/site/products", body, nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var products []models.Product
		testutils.DecodeResponse(t, rec, &products)
		require.Len(t, products, 2)
		assert.Equal(t, "mug", products[0].Slug)
		assert.Equal(t, "mug-1", products[1].Slug)
	})

	t.Run("Save products needs a site", func(t *testing.T) {
		s := setupServer(t, false)
		body := models.SaveProductsRequest{Products: []models.ProductDraft{
			{Name: "Mug", Description: "A heavy stoneware mug for slow mornings.", Price: 12, ImageURL: "https://example.com/mug.jpg"},
		}}

		rec := serve(s.siteH.SaveProducts(), request(t, http.MethodPut, "/api/v1/site/products", body, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
