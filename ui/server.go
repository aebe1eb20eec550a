package ui

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"gobayes/app"
)

// App represents the JSON API application
type App struct {
	router  *chi.Mux
	service *app.AnalysisService
}

// Config holds API application configuration
type Config struct {
	Port string
}

// NewApp creates a new API application
func NewApp(service *app.AnalysisService) *App {
	a := &App{
		router:  chi.NewRouter(),
		service: service,
	}
	a.setupMiddleware()
	a.setupRoutes()
	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the API routes
func (a *App) setupRoutes() {
	a.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/bayes-factor", a.handleCompute)
		r.Post("/bayes-factor/batch", a.handleComputeBatch)
		r.Get("/analyses", a.handleListAnalyses)
		r.Get("/analyses/{id}", a.handleGetAnalysis)
		r.Get("/analyses/{id}/report", a.handleAnalysisReport)
	})
}

// Router exposes the HTTP handler for serving and tests
func (a *App) Router() http.Handler {
	return a.router
}

// Start runs the HTTP server on the configured port
func (a *App) Start(config Config) error {
	addr := fmt.Sprintf(":%s", config.Port)
	return http.ListenAndServe(addr, a.router)
}
