// Package server wires the store, service, and handlers into an HTTP server.
// It is the composition root of the web front end: main hands it a Config and
// a logger, everything else is constructed here.
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

	"github.com/cashmeredev/berrysnip/internal/config"
	"github.com/cashmeredev/berrysnip/internal/handler"
	"github.com/cashmeredev/berrysnip/internal/middleware"
	sqliteRepo "github.com/cashmeredev/berrysnip/internal/repository/sqlite"
	"github.com/cashmeredev/berrysnip/internal/service"
)

// Server owns the HTTP listener and the database connection behind it. The
// connection is closed during shutdown, after in-flight requests drain.
type Server struct {
	router *chi.Mux
	config config.Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New opens the database and assembles the full dependency chain:
// sqlite.DB → SnippetService → SnippetHandler → router.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	svc := service.NewSnippetService(db, logger)

	return &Server{
		router: NewRouter(svc, logger),
		config: cfg,
		logger: logger,
		db:     db,
	}, nil
}

// NewRouter builds the route table. Split out of New so tests can drive the
// exact production routing against an in-memory store.
func NewRouter(svc *service.SnippetService, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logger(logger))

	h := handler.NewSnippetHandler(svc, logger)

	r.Get("/", h.HandleIndex)
	r.Get("/index.html", h.HandleIndex)

	r.Route("/api", func(r chi.Router) {
		r.Get("/snippets", h.HandleList)
		r.Post("/snippets", h.HandleCreate)
		r.Get("/snippet/{id}", h.HandleGet)
		r.Post("/snippet/{id}/update", h.HandleUpdate)
		r.Post("/snippet/{id}/delete", h.HandleDelete)
		r.Get("/tags", h.HandleTags)
	})

	// Unknown paths answer differently by method: GET gets a bare 404, POST
	// gets the JSON error body. Part of the wire contract.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			h.HandleNotFoundPOST(w, r)
			return
		}
		h.HandleNotFoundGET(w, r)
	})

	return r
}

// Start runs the server until SIGINT/SIGTERM, then shuts down in order:
// stop accepting connections, drain in-flight requests (30s grace), close
// the database.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("web server starting",
			slog.Int("port", s.config.Port),
			slog.String("url", fmt.Sprintf("http://127.0.0.1:%d", s.config.Port)),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
