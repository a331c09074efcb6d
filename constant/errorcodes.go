package constant

// Domain service error codes
const (
	// Generator service - Validation errors (1xx)
	ErrCodeEmptyURL     = "SVC001"
	ErrCodeInvalidShape = "SVC002"

	// Generator service - Encoding errors (2xx)
	ErrCodeEncodeFailure = "SVC201"

	// Generator service - Output errors (3xx)
	ErrCodeResolvePath     = "SVC301"
	ErrCodeWriteOutput     = "SVC302"
	ErrCodeRasterizeOutput = "SVC303"

	// Generator service - History errors (4xx)
	ErrCodeRecordHistory = "SVC401"
)

// Database error codes
const (
	// General DB errors (5xx)
	ErrCodeDBGeneral = "DB500"

	// Connection errors (0xx)
	ErrCodeDBOpen    = "DB001"
	ErrCodeDBMigrate = "DB002"

	// Record operation errors (1xx)
	ErrCodeDBInsert = "DB101"

	// Recent operation errors (2xx)
	ErrCodeDBLookup = "DB201"

	// Close operation errors (4xx)
	ErrCodeDBClose = "DB401"
)

// Error types for categorization
const (
	// Domain error types
	ErrTypeValidation = "validation"
	ErrTypeEncoding   = "encoding"
	ErrTypeOutput     = "output"
	ErrTypeHistory    = "history"

	// Infrastructure error types
	ErrTypeDB = "db"
)
