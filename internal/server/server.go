package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"catalog-api/internal/config"
	"catalog-api/internal/database"
	"catalog-api/internal/events"
	"catalog-api/internal/metrics"
	custommiddleware "catalog-api/internal/middleware"
	"catalog-api/internal/repository"
	"catalog-api/internal/service"
	"catalog-api/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config    *config.Config
	logger    *zap.Logger
	db        *sql.DB
	redis     *redis.Client
	publisher events.Publisher
}

// NewServer wires repositories, services and handlers onto a chi router.
// redisClient may be nil, in which case write endpoints are not rate limited
// and /health omits redis.
func NewServer(cfg *config.Config, logger *zap.Logger, db *sql.DB, redisClient *redis.Client, publisher events.Publisher) *Server {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}

	m := metrics.New()
	if err := m.RegisterDB(db, cfg.Database.Database); err != nil {
		logger.Warn("Failed to register database metrics", zap.Error(err))
	}

	router := chi.NewRouter()
	router.Use(custommiddleware.DefaultMiddlewareStack(logger)...)
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.Server.IsDevelopment()))
	router.Use(m.Middleware)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config:    cfg,
		logger:    logger,
		db:        db,
		redis:     redisClient,
		publisher: publisher,
	}

	router.Get("/health", server.health)
	router.Method(http.MethodGet, "/metrics", m.Handler())

	// Initialize repositories
	store := repository.NewStore(db)

	// Initialize services
	productService := service.NewProductService(store.Products, store.Categories)
	categoryService := service.NewCategoryService(store.Categories)

	// Initialize handlers
	productHandler := transport.NewProductHandler(productService, publisher, m, logger)
	categoryHandler := transport.NewCategoryHandler(categoryService, logger)

	var writeLimiter func(http.Handler) http.Handler
	if redisClient != nil && cfg.RateLimit.Requests > 0 {
		writeLimiter = custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.Requests,
			Window:            cfg.RateLimit.Window,
			KeyPrefix:         "catalog_rate_limit",
		}, logger)
	}

	// Register routes
	transport.RegisterRoutes(router, productHandler, categoryHandler, writeLimiter)

	return server
}

type healthResponse struct {
	Status   string            `json:"status"`
	Database map[string]string `json:"database"`
	Redis    map[string]string `json:"redis,omitempty"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:   "up",
		Database: database.Health(r.Context(), s.db),
	}

	if s.redis != nil {
		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		defer cancel()

		resp.Redis = map[string]string{"status": "up"}
		if err := s.redis.Ping(ctx).Err(); err != nil {
			resp.Redis = map[string]string{"status": "down", "error": err.Error()}
		}
	}

	status := http.StatusOK
	if resp.Database["status"] != "up" || (resp.Redis != nil && resp.Redis["status"] != "up") {
		resp.Status = "down"
		status = http.StatusServiceUnavailable
	}

	custommiddleware.RespondWithJSON(w, status, resp)
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if err := s.publisher.Close(); err != nil {
		s.logger.Error("Failed to close event publisher", zap.Error(err))
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	// Close database connection
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
