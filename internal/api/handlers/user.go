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

type UserHandler struct {
	userService *service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: validator.New()}
}

func (h *UserHandler) Signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.SignupRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid signup input")
			return
		}

		result, err := h.userService.Signup(&req)
		if err != nil {
			writeError(w, logger, err)
			return
		}

		if !result.Success {
			logger.Warn("Signup rejected", slog.String("reason", result.Message))
			response.Error(w, errors.ConflictError(result.Message))
			return
		}

		logger.Info("User signed up", slog.String("userId", result.User.ID), slog.String("role", string(result.User.Role)))
		response.Success(w, http.StatusCreated, result)
	}
}

func (h *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid login input")
			return
		}

		result, err := h.userService.Login(&req)
		if err != nil {
			writeError(w, logger, err)
			return
		}

		if !result.Success {
			logger.Warn("Login failed")
			response.Error(w, errors.UnauthorizedError(result.Message))
			return
		}

		logger.Info("User logged in", slog.String("userId", result.User.ID))
		response.Success(w, http.StatusOK, result)
	}
}

func (h *UserHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		h.userService.Logout()

		middleware.LoggerFromContext(r.Context()).Info("User logged out")
		response.Success(w, http.StatusOK, nil)
	}
}

func (h *UserHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		user := h.userService.CurrentUser()
		if user == nil {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		response.Success(w, http.StatusOK, user.Profile())
	}
}

func (h *UserHandler) UpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ProfileUpdateRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid profile input")
			return
		}

		result := h.userService.UpdateProfile(&req)
		if !result.Success {
			logger.Warn("Profile update rejected", slog.String("reason", result.Message))
			response.Error(w, errors.ConflictError(result.Message))
			return
		}

		logger.Info("Profile updated")
		response.Success(w, http.StatusOK, result.User)
	}
}

func (h *UserHandler) Orders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.userService.Orders())
	}
}
