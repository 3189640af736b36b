package config

// Server defaults
const (
	DefaultHost           = "0.0.0.0"
	DefaultPort           = 3001
	DefaultUploadDir      = "uploads"
	DefaultTranscriptsDir = "transcripts"
	DefaultStorageBackend = "local"
	DefaultLogLevel       = "info"
	DefaultEnv            = "development"

	// DefaultMaxUploadBytes is the per-request upload cap (2 GB)
	DefaultMaxUploadBytes int64 = 2 * 1024 * 1024 * 1024

	// DefaultMultipartMemory is how much of a multipart body is held in
	// memory before spilling to UPLOAD_DIR
	DefaultMultipartMemory int64 = 32 << 20

	DefaultMinioEndpoint = "localhost:9000"
	DefaultMinioBucket   = "autoscribe-transcripts"
)
