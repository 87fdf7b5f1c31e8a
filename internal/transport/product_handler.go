package transport

import (
	"context"
	"net/http"
	"time"

	"catalog-api/internal/events"
	"catalog-api/internal/metrics"
	"catalog-api/internal/middleware"
	"catalog-api/internal/schema"
	"catalog-api/internal/service"

	"go.uber.org/zap"
)

const publishTimeout = 5 * time.Second

// ProductHandler handles HTTP requests for product operations
type ProductHandler struct {
	productService service.ProductService
	publisher      events.Publisher
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(
	productService service.ProductService,
	publisher events.Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		publisher:      publisher,
		metrics:        m,
		logger:         logger,
	}
}

// List handles GET /api/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.productService.ListProducts(r.Context())
	if err != nil {
		respondWithServiceError(w, h.logger, err, "list products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	resp, err := h.productService.GetProduct(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, h.logger, err, "get product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, resp)
}

// ListByCategory handles GET /api/categories/{id}/products
func (h *ProductHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := idParam(r, "id")
	if !ok {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	resp, err := h.productService.ListProductsByCategory(r.Context(), categoryID)
	if err != nil {
		respondWithServiceError(w, h.logger, err, "list products by category")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, resp)
}

// Create handles POST /api/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req schema.ProductCreateRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.logger.Debug("Product payload decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	data, err := schema.NewProductCreate(req)
	if err != nil {
		h.logger.Debug("Product payload validation failed", zap.Error(err))
		respondWithServiceError(w, h.logger, err, "create product")
		return
	}

	resp, err := h.productService.CreateProduct(r.Context(), data)
	if err != nil {
		respondWithServiceError(w, h.logger, err, "create product")
		return
	}

	h.metrics.ProductsCreated.Inc()
	h.publishCreated(r.Context(), *resp)

	h.logger.Info("Product created",
		zap.Int64("product_id", resp.ID),
		zap.Int64("category_id", resp.CategoryID),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, resp)
}

// publishCreated is best effort: the product is already stored, so a broker
// failure is logged and counted but never fails the request.
func (h *ProductHandler) publishCreated(ctx context.Context, product schema.ProductResponse) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := events.NewProductCreated(product)
	if err := h.publisher.PublishProductEvent(ctx, event); err != nil {
		h.metrics.EventsPublished.WithLabelValues(event.EventType, "error").Inc()
		h.logger.Warn("Failed to publish product event",
			zap.String("event_id", event.EventID.String()),
			zap.Int64("product_id", product.ID),
			zap.Error(err),
		)
		return
	}

	h.metrics.EventsPublished.WithLabelValues(event.EventType, "success").Inc()
}
