package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"angket/app"
	"angket/domain/core"
	"angket/internal"
)

// App represents the analytics HTTP application
type App struct {
	router  *chi.Mux
	service *app.AnalyticsService
	log     *internal.Logger
}

// Config holds HTTP application configuration
type Config struct {
	Port string
}

// NewApp creates a new analytics HTTP application
func NewApp(service *app.AnalyticsService, log *internal.Logger) *App {
	a := &App{
		router:  chi.NewRouter(),
		service: service,
		log:     log,
	}
	a.setupMiddleware()
	a.setupRoutes()
	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(requestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// requestID tags every response with a time-ordered unique ID so log lines
// can be correlated with client reports.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-ID", core.NewID().String())
		next.ServeHTTP(w, r)
	})
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Route("/api/questionnaires/{questionnaireID}", func(r chi.Router) {
		r.Get("/summary", a.handleSummary)
		r.Get("/distribution", a.handleDistribution)
		r.Get("/trend", a.handleTrend)
		r.Get("/export.csv", a.handleExportCSV)
		r.Get("/export.xlsx", a.handleExportXLSX)
		r.Get("/report", a.handleReport)
	})

	a.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

// Handler returns the root HTTP handler
func (a *App) Handler() http.Handler {
	return a.router
}
