package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/folio/internal/db"
	"github.com/ziadkadry99/folio/internal/prefs"
	"github.com/ziadkadry99/folio/internal/theme"
)

// Config holds server configuration.
type Config struct {
	Port      int
	OutputDir string // directory of the built site
	AllowAll  bool   // allow all CORS origins
	Theme     string // palette served by /theme.css without a name
}

// Server is the folio development server: it serves the built site, the
// gallery JSON API, visitor preferences and the live reload socket.
type Server struct {
	cfg        Config
	db         *db.DB
	catalog    *Catalog
	themes     theme.Table
	hub        *Hub
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. database may be nil, in which case the
// preferences API is not mounted.
func New(cfg Config, database *db.DB, catalog *Catalog) *Server {
	s := &Server{
		cfg:     cfg,
		db:      database,
		catalog: catalog,
		themes:  theme.DefaultTable(),
		hub:     NewHub(),
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
		corsOpts.AllowCredentials = false
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// The reload socket is long-lived and must stay outside the timeout.
	r.Get("/ws/reload", s.hub.ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))

		registerGalleryRoutes(r, s.catalog, s.themes, s.cfg.Theme)
		if s.db != nil {
			prefs.RegisterRoutes(r, prefs.NewStore(s.db))
		}

		r.Handle("/*", staticHandler(s.cfg.OutputDir))
	})

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Hub returns the live reload hub.
func (s *Server) Hub() *Hub { return s.hub }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("folio server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and closes reload sockets.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
