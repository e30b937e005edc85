package repository

import (
	"database/sql"

	"pagetrace-service/src/models"
)

func InsertPageRequest(db *sql.DB, pr models.PageRequest) error {
	query := `
		INSERT INTO page_requests (
			status, http_method, path, http_format, controller_name, action_name,
			view_runtime, db_runtime, duration, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP
		)
	`
	_, err := db.Exec(query,
		pr.Status,
		pr.HTTPMethod,
		pr.Path,
		pr.HTTPFormat,
		pr.ControllerName,
		pr.ActionName,
		pr.ViewRuntime,
		pr.DBRuntime,
		pr.Duration,
	)
	return err
}

func GetLastPageRequest(db *sql.DB) (models.PageRequest, error) {
	query := `
		SELECT id, status, http_method, path, http_format, controller_name, action_name,
		       view_runtime, db_runtime, duration, created_at, updated_at
		FROM page_requests ORDER BY created_at DESC LIMIT 1
	`

	var pr models.PageRequest
	var viewRuntime, dbRuntime sql.NullFloat64

	row := db.QueryRow(query)
	err := row.Scan(
		&pr.ID,
		&pr.Status,
		&pr.HTTPMethod,
		&pr.Path,
		&pr.HTTPFormat,
		&pr.ControllerName,
		&pr.ActionName,
		&viewRuntime,
		&dbRuntime,
		&pr.Duration,
		&pr.CreatedAt,
		&pr.UpdatedAt,
	)
	if err != nil {
		return pr, err
	}

	if viewRuntime.Valid {
		pr.ViewRuntime = &viewRuntime.Float64
	}
	if dbRuntime.Valid {
		pr.DBRuntime = &dbRuntime.Float64
	}

	return pr, nil
}

func CountPageRequests(db *sql.DB) (int64, error) {
	var count int64
	err := db.QueryRow(`SELECT COUNT(*) FROM page_requests`).Scan(&count)
	return count, err
}
