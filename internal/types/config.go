package types

type RunMode string

const (
	// ModeLocal runs the API server with seeded mock data
	ModeLocal RunMode = "local"
	// ModeAPI runs just the API server
	ModeAPI RunMode = "api"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// KVBackend selects where durable scalar keys (invoice numbering) live
type KVBackend string

const (
	KVBackendMemory   KVBackend = "memory"
	KVBackendSQLite   KVBackend = "sqlite"
	KVBackendPostgres KVBackend = "postgres"
)

// BlobBackend selects where uploaded project file content is stored
type BlobBackend string

const (
	BlobBackendMemory BlobBackend = "memory"
	BlobBackendS3     BlobBackend = "s3"
)
