package route

import (
	"database/sql"
	"net/http"

	"pagetrace-service/src/config"
	"pagetrace-service/src/handler"
	"pagetrace-service/src/middleware"
	"pagetrace-service/src/recorder"

	"github.com/go-chi/chi/v5"
)

type Routes struct {
	Config     *config.Config
	Handler    *handler.Handler
	Middleware *middleware.Middleware
	Listeners  []recorder.Listener
}

func NewRoutes(cfg *config.Config, db *sql.DB, listeners ...recorder.Listener) *Routes {
	// Create the handler by passing cfg
	h := handler.NewHandler(cfg)
	mw := middleware.NewMiddleware(cfg)
	return &Routes{
		Config:     cfg,
		Handler:    h,
		Middleware: mw,
		Listeners:  listeners,
	}
}

func (r *Routes) Routes() http.Handler {
	mux := chi.NewRouter()

	// Setup global middleware
	r.Middleware.SetupMiddleware(mux)

	// Instrument every route so each completed cycle reaches the listeners
	mux.Use(r.Middleware.Instrument(r.Listeners...))

	// Register public routes
	r.publicRoutes(mux)
	r.Config.Logger.Info("✅ Routes endpoints initialized successfully")

	return mux
}

func (r *Routes) publicRoutes(mux *chi.Mux) {
	mux.Route("/pagetrace", func(mux chi.Router) {
		// GET Requests
		mux.Get("/health", r.Handler.HealthCheckHandler)
		mux.Get("/last-request", r.Handler.GetLastPageRequestHandler)
	})
}
