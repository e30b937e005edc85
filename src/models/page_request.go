package models

import "time"

// PageRequest stores the metadata of one completed request-handling cycle.
// Rows are written once by the recorder and never updated afterwards.
type PageRequest struct {
	ID             int64     `json:"id"`
	Status         int       `json:"status"`          // HTTP response status code
	HTTPMethod     string    `json:"http_method"`     // GET, POST, ...
	Path           string    `json:"path"`            // request path
	HTTPFormat     string    `json:"http_format"`     // negotiated response format (html, json, ...)
	ControllerName string    `json:"controller_name"` // logical handler grouping
	ActionName     string    `json:"action_name"`     // logical handler name
	ViewRuntime    *float64  `json:"view_runtime"`    // ms spent rendering, nil if no render phase ran
	DBRuntime      *float64  `json:"db_runtime"`      // ms spent in the database, nil if no query ran
	Duration       float64   `json:"duration"`        // total cycle duration in ms
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
