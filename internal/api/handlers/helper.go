package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	appErrors "github.com/aaravmahajanofficial/storefront-studio/internal/errors"
	"github.com/aaravmahajanofficial/storefront-studio/internal/utils"
	"github.com/aaravmahajanofficial/storefront-studio/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// writeError sends validation failures as field messages and everything else
// through the AppError envelope.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		logger.Warn("Request failed validation", slog.String("error", err.Error()))
		response.ValidationError(w, validationErrs)
		return
	}

	if appErr, ok := appErrors.IsAppError(err); ok && appErr.StatusCode < http.StatusInternalServerError {
		logger.Warn("Request rejected", slog.String("code", appErr.Code), slog.String("message", appErr.Message))
	} else {
		logger.Error("Request failed", slog.Any("error", err))
	}

	response.Error(w, err)
}

// decodeBody is ParseAndValidate without the validation step, for requests
// the service validates itself.
func decodeBody(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := utils.DecodeJSONBody(r, dest); err != nil {
		response.Error(w, appErrors.BadRequestError("Invalid request body").WithError(err))
		return false
	}

	return true
}
