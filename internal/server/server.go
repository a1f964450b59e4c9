package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/orderpad/orderpad/internal/config"
	"github.com/orderpad/orderpad/internal/handlers"
	"github.com/orderpad/orderpad/internal/middleware"
	"github.com/orderpad/orderpad/internal/repository"
	"github.com/orderpad/orderpad/internal/service"
)

// NewRouter assembles the local order API: the same two endpoints the remote
// collaborator exposes, plus a health check.
func NewRouter(cfg config.ServerConfig, log *slog.Logger) chi.Router {
	productRepo := repository.NewInMemoryProductRepository()
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(productRepo)

	catalogHandler := handlers.NewCatalogHandler(productService, log)
	saveHandler := handlers.NewSaveHandler(orderService, log)
	healthHandler := handlers.NewHealthHandler(log)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// The original consumer is a browser page, so CORS stays wide open.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "api_key"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)
	r.Get("/products.php", catalogHandler.List)

	if len(cfg.APIKeys) > 0 {
		r.With(middleware.APIKeyAuth(cfg.APIKeys)).Post("/save.php", saveHandler.Save)
	} else {
		r.Post("/save.php", saveHandler.Save)
	}

	return r
}

// Server hosts the local stand-in for the remote order API.
type Server struct {
	cfg config.ServerConfig
	log *slog.Logger
}

// New creates a server for the given configuration.
func New(cfg config.ServerConfig, log *slog.Logger) *Server {
	return &Server{
		cfg: cfg,
		log: log,
	}
}

// Run starts the HTTP server and blocks until an interrupt, then shuts down
// gracefully.
func (s *Server) Run() error {
	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      NewRouter(s.cfg, s.log),
		ReadTimeout:  time.Duration(s.cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed to start: %w", err)
	case <-quit:
	}

	s.log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}
