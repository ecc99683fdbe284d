package main

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/diewo77/go-customers/flash"
	"github.com/diewo77/go-customers/httpx"
	"github.com/diewo77/go-customers/internal/config"
	"github.com/diewo77/go-customers/internal/handlers"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux *http.ServeMux
	db  *gorm.DB
}

// NewApp creates a new application with all routes configured.
func NewApp(db *gorm.DB, cfg *config.Config) *App {
	app := &App{mux: http.NewServeMux(), db: db}
	app.setupRoutes(flash.New(cfg.App.SessionSecret))
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	withRecover(a.mux).ServeHTTP(w, r)
}

func (a *App) setupRoutes(fl *flash.Flash) {
	ch := handlers.NewCustomerHandler(a.db, fl)

	a.mux.HandleFunc("GET /{$}", ch.List)
	a.mux.HandleFunc("GET /create", ch.New)
	a.mux.HandleFunc("POST /create", ch.Create)
	a.mux.HandleFunc("GET /edit/{id}", ch.Edit)
	a.mux.HandleFunc("POST /edit/{id}", ch.Update)

	a.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	a.mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	a.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		// Lightweight DB check; details stay out of the response body.
		if err := a.db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
