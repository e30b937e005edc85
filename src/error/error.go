package errors

const (
	// Request Errors
	ErrInvalidRequest = "Invalid request body from UI"

	// Database Errors
	ErrDatabaseConnection = "Failed to connect to the database"
	ErrDataNotFound       = "Requested data not found in the database"
	ErrRecordInsertFailed = "Failed to insert page request record into the database"
	ErrRecordFetchFailed  = "Failed to fetch page request record from the database"
	ErrRecordCountFailed  = "Failed to count page request records in the database"

	// Server/Internal Errors
	ErrInternalServer = "Internal server error"
	ErrServiceDown    = "Dependent service is currently unavailable"
)
