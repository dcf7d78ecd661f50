package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/storefront-studio/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-studio/internal/errors"
	"github.com/aaravmahajanofficial/storefront-studio/internal/models"
	service "github.com/aaravmahajanofficial/storefront-studio/internal/services"
	"github.com/aaravmahajanofficial/storefront-studio/internal/utils"
	"github.com/aaravmahajanofficial/storefront-studio/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	siteService   *service.SiteService
	searchService *service.SearchService
	validator     *validator.Validate
}

func NewProductHandler(siteService *service.SiteService, searchService *service.SearchService) *ProductHandler {
	return &ProductHandler{siteService: siteService, searchService: searchService, validator: validator.New()}
}

// ListProducts filters by the category in the query string when one is
// given, otherwise by the active category.
// for eg: GET /products?category=Apparel&subCategory=Tops
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		query := r.URL.Query()

		if query.Has("category") {
			filter := &models.CategoryFilter{Category: query.Get("category"), SubCategory: query.Get("subCategory")}
			if filter.IsAll() {
				filter = nil
			}

			response.Success(w, http.StatusOK, models.ProductListResponse{
				Products:       service.FilterProducts(h.siteService.Products(), filter),
				ActiveCategory: filter,
			})
			return
		}

		response.Success(w, http.StatusOK, models.ProductListResponse{
			Products:       h.siteService.FilteredProducts(),
			ActiveCategory: h.siteService.ActiveCategory(),
		})
	}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		slug := r.PathValue("slug")

		product, ok := h.siteService.FindProductBySlug(slug)
		if !ok {
			middleware.LoggerFromContext(r.Context()).Warn("Product not found")
			response.Error(w, errors.NotFoundError("Product not found"))
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.siteService.Categories())
	}
}

func (h *ProductHandler) SetActiveCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.ProductListQuery
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		h.siteService.SetCategoryFilter(req.Category, req.SubCategory)

		response.Success(w, http.StatusOK, models.ProductListResponse{
			Products:       h.siteService.FilteredProducts(),
			ActiveCategory: h.siteService.ActiveCategory(),
		})
	}
}

func (h *ProductHandler) ClearActiveCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		h.siteService.ClearCategoryFilter()

		response.Success(w, http.StatusOK, models.ProductListResponse{
			Products: h.siteService.FilteredProducts(),
		})
	}
}

// Search stores q as the current query and returns the panel state.
// for eg: GET /search?q=hoodie
func (h *ProductHandler) Search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		h.searchService.SetQuery(r.URL.Query().Get("q"))

		response.Success(w, http.StatusOK, h.searchService.State())
	}
}

// OpenSearch shows the results panel without changing the query.
func (h *ProductHandler) OpenSearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		h.searchService.OpenPanel()

		response.Success(w, http.StatusOK, h.searchService.State())
	}
}

// ClearSearch empties the query and leaves the panel as it is.
func (h *ProductHandler) ClearSearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		h.searchService.Clear()

		response.Success(w, http.StatusOK, h.searchService.State())
	}
}

func (h *ProductHandler) CloseSearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		h.searchService.ClosePanel()

		response.Success(w, http.StatusOK, h.searchService.State())
	}
}
