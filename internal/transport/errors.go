package transport

import (
	"errors"
	"net/http"
	"strconv"

	"catalog-api/internal/middleware"
	"catalog-api/internal/repository"
	"catalog-api/internal/schema"
	"catalog-api/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// respondWithServiceError maps service and schema errors onto HTTP responses.
// Anything unrecognised is logged and reported as a 500.
func respondWithServiceError(w http.ResponseWriter, logger *zap.Logger, err error, operation string) {
	var validationErr *schema.ValidationError

	switch {
	case errors.As(err, &validationErr):
		middleware.RespondWithValidationErrors(w, validationErr.Fields)
	case errors.Is(err, service.ErrNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidReference):
		middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrCategoryAlreadyExists):
		middleware.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		logger.Error("Request failed",
			zap.String("operation", operation),
			zap.Error(err),
		)
		middleware.RespondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

// idParam reads a positive integer path parameter
func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
