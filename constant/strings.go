package constant

// Request context keys
const (
	RequestIDKey = "request_id"
)

// HTTP header names
const (
	HeaderRequestID = "X-Request-ID"
)

// Function/Context names
const (
	// Domain context names
	CtxDomain   = "domain"
	CtxGenerate = "Generate"
	CtxRender   = "Render"

	// Infrastructure context names
	CtxEncoder    = "Encoder"
	CtxRasterizer = "Rasterizer"
	CtxDB         = "db"
	CtxRecord     = "Record"
	CtxRecent     = "Recent"
	CtxClose      = "Close"
	CtxAPI        = "api"

	// General context names
	CtxRouter         = "Router"
	CtxMain           = "Main"
	CtxRenderQRCode   = "RenderQRCode"
	CtxGetGenerations = "GetGenerations"
)

// Data field keys
const (
	// Service data fields
	DataService = "service"
	DataURL     = "url"
	DataColor   = "color"
	DataShape   = "shape"
	DataFormat  = "format"
	DataMatrix  = "matrix_size"
	DataModules = "dark_modules"

	// File data fields
	DataFilename = "filename"
	DataPath     = "path"

	// Database data fields
	DataElapsed      = "elapsed"
	DataRows         = "rows"
	DataSQL          = "sql"
	DataData         = "data"
	DataRowsAffected = "rows_affected"
	DataLimit        = "limit"

	// API data fields
	DataMethod      = "method"
	DataStatus      = "status"
	DataLatency     = "latency"
	DataSize        = "size"
	DataRemoteAddr  = "remote_addr"
	DataUserAgent   = "user_agent"
	DataPort        = "port"
	DataDBPath      = "db_path"
	DataEnvironment = "environment"
	DataCacheHit    = "cache_hit"
)

// Render geometry. Box size is the pixel edge length of one module;
// the circle radius inscribes the cell, the dot radius leaves a halo.
const (
	BoxSize      = 10
	CircleRadius = 5
	DotRadius    = 3
)

// Render defaults
const (
	DefaultColor = "#000000"
	DefaultShape = "square"
)

// Output formats
const (
	FormatSVG = "svg"
	FormatPNG = "png"

	ExtSVG = ".svg"
	ExtPNG = ".png"
)

// Error message constants
const (
	ErrEmptyURL     = "URL cannot be empty"
	ErrInvalidShape = "shape must be 'square', 'circle', or 'dot'"
	ErrHistoryOff   = "generation history is not enabled"
)

// Error codes
const (
	ErrCodeAPIMissingURL   = "API001"
	ErrCodeAPIServiceError = "API002"
	ErrCodeAppDBInit       = "APP001"
	ErrCodeAppServerStart  = "APP002"
	ErrCodeAppGenerate     = "APP003"
)

// Error types
const (
	ErrTypeDomain = "domain"
	ErrTypeAPI    = "api"
	ErrTypeApp    = "application"
)

// API routes
const (
	RouteQRCode      = "/qr"
	RouteGenerations = "/api/generations"
	RouteHealthcheck = "/health"
)

// Log keys
const (
	LogTimeKey         = "time"
	LogLevelKey        = "level"
	LogNameKey         = "logger"
	LogCallerKey       = "caller"
	LogMessageKey      = "msg"
	LogStacktraceKey   = "stacktrace"
	LogRequestIDKey    = "request_id"
	LogFunctionKey     = "function"
	LogErrorCodeKey    = "error_code"
	LogErrorTypeKey    = "error_type"
	LogErrorMessageKey = "error_message"
	LogEncodingJSON    = "json"
	LogEncodingConsole = "console"
	LogOutputStdout    = "stdout"
	LogOutputStderr    = "stderr"
)

// Environment constants
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Message constants for application
const (
	MsgApplicationStarting   = "Application starting"
	MsgFailedToInitDB        = "Failed to initialize history database"
	MsgServerStarting        = "Server starting"
	MsgServerFailedToStart   = "Server failed to start"
	MsgServerShuttingDown    = "Server shutting down"
	MsgServerShutdownError   = "Error during server shutdown"
	MsgServerStopped         = "Server stopped"
	MsgRequestReceived       = "Request received"
	MsgHandlingRenderRequest = "Handling QR render request"
	MsgSettingUpRoutes       = "Setting up API routes"
	MsgHealthcheckRequest    = "Handling healthcheck request"
	MsgHealthy               = "Healthy"
	MsgRequestCompleted      = "Request completed"
	MsgQRCodeSaved           = "QR Code saved to"
	MsgGenerationFailed      = "QR code generation failed"
)

// Cache Namespace
const (
	RenderedImageNamespace = "QRIMG"
)
