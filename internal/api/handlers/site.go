package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/storefront-studio/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-studio/internal/errors"
	"github.com/aaravmahajanofficial/storefront-studio/internal/models"
	service "github.com/aaravmahajanofficial/storefront-studio/internal/services"
	"github.com/aaravmahajanofficial/storefront-studio/internal/utils"
	"github.com/aaravmahajanofficial/storefront-studio/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type SiteHandler struct {
	siteService   *service.SiteService
	wizardService *service.WizardService
	validator     *validator.Validate
}

func NewSiteHandler(siteService *service.SiteService, wizardService *service.WizardService) *SiteHandler {
	return &SiteHandler{siteService: siteService, wizardService: wizardService, validator: validator.New()}
}

func (h *SiteHandler) GetSite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		site := h.siteService.Site()
		if site == nil {
			response.Error(w, errors.NotFoundError("No site has been generated yet"))
			return
		}

		response.Success(w, http.StatusOK, site)
	}
}

// PublishSite builds the site from a completed wizard and replaces the
// current one, catalog included.
func (h *SiteHandler) PublishSite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.WizardRequest
		if !decodeBody(w, r, &req) {
			logger.Warn("Invalid wizard payload")
			return
		}

		site, err := h.wizardService.Build(&req)
		if err != nil {
			writeError(w, logger, err)
			return
		}

		h.siteService.SetSite(site)

		logger.Info("Site published", slog.String("storeName", site.StoreName), slog.Int("products", len(site.Products)))
		response.Success(w, http.StatusOK, h.siteService.Site())
	}
}

func (h *SiteHandler) ClearSite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		h.siteService.ClearSite()

		middleware.LoggerFromContext(r.Context()).Info("Site cleared")
		response.Success(w, http.StatusOK, nil)
	}
}

func (h *SiteHandler) GetWizard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.wizardService.Prefill(h.siteService.Site()))
	}
}

func (h *SiteHandler) ValidateWizardStep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		step, err := strconv.Atoi(r.PathValue("step"))
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid wizard step"))
			return
		}

		var req models.WizardRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := h.wizardService.ValidateStep(models.WizardStep(step), &req); err != nil {
			writeError(w, logger, err)
			return
		}

		response.Success(w, http.StatusOK, models.StepValidationResponse{Step: models.WizardStep(step), Valid: true})
	}
}

func (h *SiteHandler) SaveProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.SaveProductsRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid product manager input")
			return
		}

		products, err := h.siteService.SaveProducts(req.Products)
		if err != nil {
			writeError(w, logger, err)
			return
		}

		logger.Info("Catalog saved", slog.Int("products", len(products)))
		response.Success(w, http.StatusOK, products)
	}
}
