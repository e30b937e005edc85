package recorder

import (
	"database/sql"

	errors "pagetrace-service/src/error"
	"pagetrace-service/src/logger"
	"pagetrace-service/src/models"
	"pagetrace-service/src/repository"
)

// CycleEvent carries the metadata of one completed request-handling cycle.
// The instrumentation middleware builds one event per cycle after the
// response has been written; the two runtime fields stay nil when the
// request never reached the corresponding phase (e.g. an early redirect).
type CycleEvent struct {
	Status      int      // HTTP response status code
	Method      string   // HTTP verb
	Path        string   // request path
	Format      string   // negotiated response format (html, json, ...)
	Controller  string   // logical handler grouping
	Action      string   // logical handler name
	ViewRuntime *float64 // ms spent rendering
	DBRuntime   *float64 // ms spent in database calls
	Duration    float64  // total cycle duration in ms, measured by the emitter
}

// Listener receives one call per completed request-handling cycle.
// Implementations must be safe for concurrent invocation; each call is
// independent and must not share mutable state with other calls.
type Listener interface {
	RequestCompleted(ev CycleEvent) error
}

// Recorder is the persistence listener: it maps each completed cycle onto a
// PageRequest row and inserts it synchronously. Insert failures are returned
// to the caller, never retried or swallowed here.
type Recorder struct {
	DB     *sql.DB
	Logger *logger.Logger
}

// NewRecorder creates a new Recorder instance
func NewRecorder(db *sql.DB, log *logger.Logger) *Recorder {
	log.Info("✅ Page request recorder initialized successfully")
	return &Recorder{DB: db, Logger: log}
}

// RequestCompleted persists one completed cycle as a page_requests row.
func (rec *Recorder) RequestCompleted(ev CycleEvent) error {
	pr := models.PageRequest{
		Status:         ev.Status,
		HTTPMethod:     ev.Method,
		Path:           ev.Path,
		HTTPFormat:     ev.Format,
		ControllerName: ev.Controller,
		ActionName:     ev.Action,
		ViewRuntime:    ev.ViewRuntime,
		DBRuntime:      ev.DBRuntime,
		Duration:       ev.Duration,
	}

	if err := repository.InsertPageRequest(rec.DB, pr); err != nil {
		rec.Logger.Error(errors.ErrRecordInsertFailed + ": " + err.Error())
		return err
	}

	return nil
}
