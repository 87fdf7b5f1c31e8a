package transport

import (
	"net/http"

	"catalog-api/internal/middleware"
	"catalog-api/internal/schema"
	"catalog-api/internal/service"

	"go.uber.org/zap"
)

// CategoryHandler handles HTTP requests for category operations
type CategoryHandler struct {
	categoryService service.CategoryService
	logger          *zap.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// List handles GET /api/categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.categoryService.ListCategories(r.Context())
	if err != nil {
		respondWithServiceError(w, h.logger, err, "list categories")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/categories/{id}
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	resp, err := h.categoryService.GetCategory(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, h.logger, err, "get category")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, resp)
}

// Create handles POST /api/categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req schema.CategoryCreateRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	data, err := schema.NewCategoryCreate(req)
	if err != nil {
		respondWithServiceError(w, h.logger, err, "create category")
		return
	}

	resp, err := h.categoryService.CreateCategory(r.Context(), data)
	if err != nil {
		respondWithServiceError(w, h.logger, err, "create category")
		return
	}

	h.logger.Info("Category created", zap.Int64("category_id", resp.ID))
	middleware.RespondWithJSON(w, http.StatusCreated, resp)
}
