// Package api wires the gin HTTP server: middleware chain, route
// registration, and lifecycle.
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mayrii101/Project-D-Lafeber-sub000/config"
	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/api/handlers"
	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/cache"
	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/importer"
	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/service"
)

// Server is the HTTP server for the API
type Server struct {
	cfg        config.Config
	router     *gin.Engine
	httpServer *http.Server
}

// NewServer creates the API server with every handler wired to its
// service over the shared gorm handle.
func NewServer(cfg config.Config, db *gorm.DB, redisCache *cache.RedisCache) *Server {
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &Server{
		cfg:    cfg,
		router: gin.New(),
	}

	server.router.Use(RequestIDMiddleware())
	if cfg.CorsEnabled {
		server.router.Use(CORSMiddleware())
	}
	server.router.Use(gin.Recovery())
	server.router.Use(LoggingMiddleware())

	server.router.GET("/health", handlers.HealthCheck)

	api := server.router.Group("/api")
	handlers.NewCustomerHandler(service.NewCustomerService(db)).RegisterRoutes(api)
	handlers.NewEmployeeHandler(service.NewEmployeeService(db)).RegisterRoutes(api)
	handlers.NewProductHandler(service.NewProductService(db)).RegisterRoutes(api)
	handlers.NewWarehouseHandler(service.NewWarehouseService(db)).RegisterRoutes(api)
	handlers.NewInventoryHandler(service.NewInventoryService(db)).RegisterRoutes(api)
	handlers.NewInventoryTransactionHandler(service.NewInventoryTransactionService(db)).RegisterRoutes(api)
	handlers.NewVehicleHandler(service.NewVehicleService(db)).RegisterRoutes(api)
	handlers.NewOrderHandler(service.NewOrderService(db)).RegisterRoutes(api)
	handlers.NewShipmentHandler(service.NewShipmentService(db)).RegisterRoutes(api)
	handlers.NewStickyNoteHandler(service.NewStickyNoteService(db, redisCache)).RegisterRoutes(api)
	handlers.NewXMLImportHandler(importer.New(db)).RegisterRoutes(api)

	return server
}

// Router exposes the gin engine, used by tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.cfg.ServerAddress,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ServerTimeout,
		WriteTimeout: s.cfg.ServerTimeout,
	}

	log.Info().Msgf("HTTP server starting on %s", s.cfg.ServerAddress)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
