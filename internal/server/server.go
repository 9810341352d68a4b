package server

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spacesedan/positivizer/config"
	"github.com/spacesedan/positivizer/internal/metrics"
	"github.com/spacesedan/positivizer/internal/models"
)

//go:embed templates/index.html
var templateFS embed.FS

type Analyzer interface {
	Analyze(ctx context.Context, text string, settings config.Settings) (*models.AnalysisResponse, error)
	Positivize(ctx context.Context, text string) models.RewrittenSentence
}

// HealthReporter reports the last known health of each optional component.
type HealthReporter interface {
	Status() map[string]bool
}

type Options struct {
	Port     string
	Settings config.Settings
	Analyzer Analyzer
	Health   HealthReporter
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

type Server struct {
	router   *chi.Mux
	http     *http.Server
	analyzer Analyzer
	health   HealthReporter
	settings config.Settings
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	index    *template.Template
}

func NewServer(opts Options) (*Server, error) {
	index, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("[Server] failed to parse index template: %w", err)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "https://*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	if opts.Metrics != nil {
		r.Use(metricsMiddleware(opts.Metrics))
	}

	s := &Server{
		router:   r,
		analyzer: opts.Analyzer,
		health:   opts.Health,
		settings: opts.Settings,
		metrics:  opts.Metrics,
		gatherer: opts.Gatherer,
		index:    index,
	}
	s.setupRoutes()

	s.http = &http.Server{
		Addr:              ":" + opts.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.Get("/", s.handleIndex)
	s.router.Get("/health", s.handleHealth)

	if s.gatherer != nil {
		s.router.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/positivize", s.handlePositivize)
		r.Get("/settings", s.handleSettings)
	})
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	slog.Info("[Server] Listening", slog.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("[Server] Failed to encode response", slog.String("error", err.Error()))
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
