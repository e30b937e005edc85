package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"pagetrace-service/src/config"
	errors "pagetrace-service/src/error"
	"pagetrace-service/src/models"
	"pagetrace-service/src/recorder"
	"pagetrace-service/src/repository"
)

type Handler struct {
	App *config.Config
}

// NewHandler creates a new Handler instance
func NewHandler(app *config.Config) *Handler {
	app.Logger.Info("✅ Handler initialized successfully")
	return &Handler{App: app}
}

// HealthCheckHandler handles the health check endpoint
func (h *Handler) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {

	startTime := time.Now() // Start the timer for request processing duration
	logger := h.App.Logger

	recorder.Tag(r.Context(), "pagetrace", "health")

	// Report the number of recorded page requests when a DB is attached
	if h.App.DB != nil {
		var count int64
		err := recorder.TrackDB(r.Context(), func() error {
			var err error
			count, err = repository.CountPageRequests(h.App.DB)
			return err
		})
		if err != nil {
			http.Error(w, errors.ErrRecordCountFailed, http.StatusInternalServerError)
			logger.Error(errors.ErrRecordCountFailed + ": " + err.Error())
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Pagetrace Service is up! Recorded page requests: " + strconv.FormatInt(count, 10)))
	} else {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Pagetrace Service is up!"))
	}

	// Calculate the time taken for the request to be processed
	duration := time.Since(startTime)

	// Log the success after the HTTP response
	logger.Info("HealthCheck passed Duration: " + duration.String())
}

// GetLastPageRequestHandler returns the most recently recorded page request
func (h *Handler) GetLastPageRequestHandler(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()
	logger := h.App.Logger

	recorder.Tag(r.Context(), "pagetrace", "last_request")

	var pr models.PageRequest
	err := recorder.TrackDB(r.Context(), func() error {
		var err error
		pr, err = repository.GetLastPageRequest(h.App.DB)
		return err
	})
	if err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, errors.ErrDataNotFound, http.StatusNotFound)
			return
		}
		logger.Error(errors.ErrRecordFetchFailed + ": " + err.Error())
		http.Error(w, errors.ErrRecordFetchFailed, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(pr); err != nil {
		logger.Error("Failed to encode page request response: " + err.Error())
	}

	logger.Info("Last page request fetched successfully in " + time.Since(startTime).String())
}
