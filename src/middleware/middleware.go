package middleware

import (
	"net/http"
	"strings"
	"time"

	"pagetrace-service/src/config"
	"pagetrace-service/src/recorder"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Middleware struct {
	Config *config.Config
}

// NewMiddleware creates a new instance of Middleware
func NewMiddleware(cfg *config.Config) *Middleware {
	return &Middleware{
		Config: cfg,
	}
}

func (m *Middleware) RateLimiterMiddleware() func(http.Handler) http.Handler {
	// Limit each IP to 100 requests per 1 minute (can tune per endpoint later)
	return httprate.LimitByIP(100, 1*time.Minute)
}

// SetupMiddleware sets up all global middleware
func (m *Middleware) SetupMiddleware(mux *chi.Mux) {

	mux.Use(m.CORSMiddleware())
	mux.Use(middleware.Heartbeat("/ping"))
	mux.Use(middleware.Recoverer)
	mux.Use(middleware.Logger)

	// Add global rate limiting
	mux.Use(m.RateLimiterMiddleware())

	// Log successful initialization of middleware
	m.Config.Logger.Info("✅ Middleware initialized successfully")
}

// Instrument emits one cycle-completion event per handled request. The event
// is built after the response has been written, so a failing listener can
// never alter what the client already received; listener errors are logged
// and each listener is invoked independently of the others.
func (m *Middleware) Instrument(listeners ...recorder.Listener) func(http.Handler) http.Handler {
	logger := m.Config.Logger

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			info := recorder.NewCycleInfo()
			r = r.WithContext(recorder.WithCycleInfo(r.Context(), info))

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				// Handler never wrote anything; net/http would send 200
				status = http.StatusOK
			}

			ev := info.Event(
				status,
				r.Method,
				r.URL.Path,
				FormatFromContentType(ww.Header().Get("Content-Type")),
				time.Since(start),
			)

			for _, l := range listeners {
				if err := l.RequestCompleted(ev); err != nil {
					logger.Error("❌ Cycle listener failed for " + r.Method + " " + r.URL.Path + ": " + err.Error())
				}
			}
		})
	}
}

// FormatFromContentType reduces a response Content-Type header to the short
// format name stored with each record ("text/html; charset=utf-8" -> "html").
// An empty Content-Type (e.g. a redirect without a body) yields "".
func FormatFromContentType(contentType string) string {
	if contentType == "" {
		return ""
	}
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	contentType = strings.TrimSpace(contentType)
	if i := strings.Index(contentType, "/"); i >= 0 {
		contentType = contentType[i+1:]
	}
	if contentType == "plain" {
		return "text"
	}
	return contentType
}

// CORSMiddleware returns a cors.Handler middleware
func (m *Middleware) CORSMiddleware() func(http.Handler) http.Handler {
	allowedOrigins := m.Config.CORSAllowedOrigins

	// Log CORS setup initialization
	m.Config.Logger.Info("✅ CORS middleware initialized with allowed origins: " + strings.Join(allowedOrigins, ", "))

	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
