package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/storefront-studio/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-studio/internal/models"
	service "github.com/aaravmahajanofficial/storefront-studio/internal/services"
	"github.com/aaravmahajanofficial/storefront-studio/internal/utils/response"
)

type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Checkout is registered outside the event loop: the service takes the loop
// itself around each transition and waits out the submit delay in between.
func (h *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CheckoutRequest
		if !decodeBody(w, r, &req) {
			logger.Warn("Invalid checkout body")
			return
		}

		result, err := h.checkoutService.Checkout(r.Context(), &req)
		if err != nil {
			writeError(w, logger, err)
			return
		}

		response.Success(w, http.StatusCreated, result)
	}
}
