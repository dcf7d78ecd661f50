package handlers_test

import (
	"net/http"
	"testing"

	"github.com/aaravmahajanofficial/storefront-studio/internal/errors"
	"github.com/aaravmahajanofficial/storefront-studio/internal/models"
	"github.com/aaravmahajanofficial/storefront-studio/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutForm() models.CheckoutRequest {
	return models.CheckoutRequest{
		Name:          "Ada",
		Email:         "ada@example.com",
		Address:       "1 Loop Road",
		City:          "London",
		Country:       "UK",
		PaymentMethod: models.PaymentMethodPayPal,
	}
}

func TestCheckoutHandler(t *testing.T) {
	t.Run("Empty cart", func(t *testing.T) {
		s := setupServer(t, true)

		rec := serve(s.checkout.Checkout(), request(t, http.MethodPost, "/api/v1/checkout", checkoutForm(), nil))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		resp := testutils.DecodeResponse(t, rec, nil)
		assert.Equal(t, errors.ErrCodeEmptyCart, resp.Error.Code)
		assert.Equal(t, "Add items to your cart before checking out.", resp.Error.Message)
	})

	t.Run("Invalid form", func(t *testing.T) {
		s := setupServer(t, true)
		serve(s.cartH.AddItem(), request(t, http.MethodPost, "/api/v1/cart/items", models.AddItemRequest{Slug: "tee"}, nil))

		form := checkoutForm()
		form.Email = "nope"
		rec := serve(s.checkout.Checkout(), request(t, http.MethodPost, "/api/v1/checkout", form, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := testutils.DecodeResponse(t, rec, nil)
		assert.Equal(t, errors.ErrCodeValidation, resp.Error.Code)
		assert.Len(t, s.cart.CartItems(), 1)
	})

	t.Run("Signed-in order", func(t *testing.T) {
		s := setupServer(t, true)
		_, err := s.users.Signup(&models.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1", Role: models.RoleMember})
		require.NoError(t, err)

		serve(s.cartH.AddItem(), request(t, http.MethodPost, "/api/v1/cart/items", models.AddItemRequest{Slug: "tee", Quantity: 2}, nil))
		serve(s.cartH.AddItem(), request(t, http.MethodPost, "/api/v1/cart/items", models.AddItemRequest{Slug: "mug"}, nil))

		var result models.CheckoutResult
		rec := serve(s.checkout.Checkout(), request(t, http.MethodPost, "/api/v1/checkout", checkoutForm(), nil))
		require.Equal(t, http.StatusCreated, rec.Code)
		testutils.DecodeResponse(t, rec, &result)

		assert.Equal(t, 43.0, result.Total)
		require.NotNil(t, result.Order)
		assert.Equal(t, models.PaymentMethodPayPal, result.Order.PaymentMethod)
		assert.Empty(t, s.cart.CartItems())

		var orders []models.OrderRecord
		rec = serve(s.userH.Orders(), request(t, http.MethodGet, "/api/v1/users/orders", nil, nil))
		testutils.DecodeResponse(t, rec, &orders)
		require.Len(t, orders, 1)
		assert.Equal(t, result.OrderID, orders[0].ID)
	})
}
