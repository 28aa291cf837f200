package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/feischl/pumppanel/pkg/domain"
	"github.com/feischl/pumppanel/pkg/metrics"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . SettingsManager
//go:generate moq -out mocks/backend.go -pkg mocks -skip-ensure -fmt goimports . Backend

// Server is the local panel API the UI reads and writes through
type Server struct {
	config   ConfigProvider
	settings SettingsManager
	backend  Backend
	metrics  *metrics.Metrics
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// SettingsManager is the settings store surface exposed over the panel API
type SettingsManager interface {
	Settings() domain.ControlSettings
	UpdateSetting(key string, value any) error
	ResetToDefaults()
	SaveSettings(ctx context.Context)
	SyncWithBackend(ctx context.Context)
	Syncing() bool
}

// Backend is the controller-facing surface proxied by the panel API
type Backend interface {
	GetStatus(ctx context.Context) (*domain.Status, error)
	Override(ctx context.Context, action string, value *float64) error
	GetPrices(ctx context.Context, zone string, hours int) ([]domain.PricePoint, error)
	CollectPrices(ctx context.Context, zone string) error
	Credential() string
	SetCredential(ctx context.Context, key string)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, settings SettingsManager, backend Backend, m *metrics.Metrics, version string, debug bool) *Server {
	s := &Server{
		config:   cfg,
		settings: settings,
		backend:  backend,
		metrics:  m,
		version:  version,
		debug:    debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("pumppanel", "feischl", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /settings", s.getSettingsHandler)
		r.HandleFunc("PUT /settings", s.updateSettingsHandler)
		r.HandleFunc("POST /settings/reset", s.resetSettingsHandler)
		r.HandleFunc("POST /settings/sync", s.syncSettingsHandler)

		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /override", s.overrideHandler)
		r.HandleFunc("GET /prices", s.pricesHandler)
		r.HandleFunc("POST /prices", s.collectPricesHandler)

		r.HandleFunc("PUT /credential", s.setCredentialHandler)
	})

	s.router.Handle("GET /metrics", s.metrics.Handler())
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
