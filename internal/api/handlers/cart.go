package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront-studio/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-studio/internal/errors"
	"github.com/aaravmahajanofficial/storefront-studio/internal/models"
	service "github.com/aaravmahajanofficial/storefront-studio/internal/services"
	"github.com/aaravmahajanofficial/storefront-studio/internal/utils"
	"github.com/aaravmahajanofficial/storefront-studio/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	siteService     *service.SiteService
	cartService     *service.CartService
	checkoutService *service.CheckoutService
	validator       *validator.Validate
}

func NewCartHandler(siteService *service.SiteService, cartService *service.CartService, checkoutService *service.CheckoutService) *CartHandler {
	return &CartHandler{
		siteService:     siteService,
		cartService:     cartService,
		checkoutService: checkoutService,
		validator:       validator.New(),
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.checkoutService.Summary())
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add to cart input")
			return
		}

		product, ok := h.siteService.FindProductBySlug(req.Slug)
		if !ok {
			logger.Warn("Add to cart for unknown product", slog.String("slug", req.Slug))
			response.Error(w, errors.NotFoundError("Product not found"))
			return
		}

		quantity := req.Quantity
		if quantity == 0 {
			quantity = 1
		}

		h.cartService.AddToCart(product, quantity, req.Variant)

		logger.Info("Item added to cart", slog.String("slug", req.Slug), slog.Int("quantity", quantity))
		response.Success(w, http.StatusOK, h.checkoutService.Summary())
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		h.cartService.UpdateQuantity(req.Slug, req.Quantity, req.Variant)

		response.Success(w, http.StatusOK, h.checkoutService.Summary())
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.RemoveItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		h.cartService.RemoveFromCart(req.Slug, req.Variant)

		response.Success(w, http.StatusOK, h.checkoutService.Summary())
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		h.cartService.ClearCart()

		response.Success(w, http.StatusOK, h.checkoutService.Summary())
	}
}

func (h *CartHandler) GetFavorites() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.favorites())
	}
}

func (h *CartHandler) ToggleFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		product, ok := h.siteService.FindProductBySlug(r.PathValue("slug"))
		if !ok {
			response.Error(w, errors.NotFoundError("Product not found"))
			return
		}

		h.cartService.ToggleFavorite(product)

		response.Success(w, http.StatusOK, h.favorites())
	}
}

func (h *CartHandler) RemoveFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		h.cartService.RemoveFavorite(r.PathValue("slug"))

		response.Success(w, http.StatusOK, h.favorites())
	}
}

func (h *CartHandler) MoveFavoriteToCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		slug := r.PathValue("slug")

		if !h.cartService.MoveFavoriteToCart(slug) {
			middleware.LoggerFromContext(r.Context()).Warn("Favorite not found", slog.String("slug", slug))
			response.Error(w, errors.NotFoundError("Favorite not found"))
			return
		}

		response.Success(w, http.StatusOK, h.checkoutService.Summary())
	}
}

func (h *CartHandler) favorites() *models.FavoritesResponse {
	return &models.FavoritesResponse{
		Slugs:    h.cartService.Favorites(),
		Products: h.cartService.FavoriteProducts(),
		Count:    h.cartService.FavoriteCount(),
	}
}
