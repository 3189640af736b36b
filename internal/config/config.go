// Package config builds the process configuration once at startup from .env,
// environment variables and optional YAML provider overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"autoscribe/internal/app/api/assemblyai"
	"autoscribe/internal/app/api/elevateai"
	"autoscribe/internal/app/api/openai/whisper"
	"autoscribe/internal/app/api/youtube"
	appconfig "autoscribe/internal/app/config"
	"autoscribe/internal/app/storage"
)

// Config is the complete application configuration
type Config struct {
	Env      string `validate:"oneof=development production test"`
	LogLevel string `validate:"oneof=debug info warn error"`

	Host            string `validate:"required"`
	Port            int    `validate:"min=1,max=65535"`
	UploadDir       string `validate:"required"`
	TranscriptsDir  string `validate:"required"`
	MaxUploadBytes  int64  `validate:"gt=0"`
	MultipartMemory int64  `validate:"gt=0"`

	StorageBackend string `validate:"oneof=local minio"`
	Minio          MinioConfig

	ElevateAI  elevateai.Config
	AssemblyAI assemblyai.Config
	Whisper    whisper.Config
	YouTube    youtube.Config
}

// MinioConfig holds the object store settings used when StorageBackend is minio
type MinioConfig struct {
	Endpoint  string `validate:"required_if=Enabled true"`
	AccessKey string `validate:"required_if=Enabled true"`
	SecretKey string `validate:"required_if=Enabled true"`
	Bucket    string `validate:"required_if=Enabled true"`
	UseSSL    bool
	Enabled   bool
}

var envNames = map[string]string{
	"Config.Env":             "APP_ENV",
	"Config.LogLevel":        "LOG_LEVEL",
	"Config.Host":            "HOST",
	"Config.Port":            "PORT",
	"Config.UploadDir":       "UPLOAD_DIR",
	"Config.TranscriptsDir":  "TRANSCRIPTS_DIR",
	"Config.MaxUploadBytes":  "MAX_UPLOAD_BYTES",
	"Config.MultipartMemory": "MULTIPART_MEMORY_BYTES",
	"Config.StorageBackend":  "STORAGE_BACKEND",
	"Config.Minio.Endpoint":  "MINIO_ENDPOINT",
	"Config.Minio.AccessKey": "MINIO_ACCESS_KEY",
	"Config.Minio.SecretKey": "MINIO_SECRET_KEY",
	"Config.Minio.Bucket":    "MINIO_BUCKET",
}

// Load reads .env, the environment and the provider overrides file, then
// validates the result. Missing API keys are not an error here; each adapter
// reports its own missing credential when used.
func Load() (*Config, error) {
	if _, err := LoadEnv(); err != nil {
		return nil, err
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current process environment
func FromEnv() (*Config, error) {
	port, err := getIntEnv("PORT", DefaultPort)
	if err != nil {
		return nil, err
	}
	useSSL, err := getBoolEnv("MINIO_USE_SSL", false)
	if err != nil {
		return nil, err
	}
	maxUpload, err := getIntEnv("MAX_UPLOAD_BYTES", int(DefaultMaxUploadBytes))
	if err != nil {
		return nil, err
	}
	multipartMemory, err := getIntEnv("MULTIPART_MEMORY_BYTES", int(DefaultMultipartMemory))
	if err != nil {
		return nil, err
	}

	backend := getEnvOrDefault("STORAGE_BACKEND", DefaultStorageBackend)
	cfg := &Config{
		Env:             getEnvOrDefault("APP_ENV", DefaultEnv),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", DefaultLogLevel),
		Host:            getEnvOrDefault("HOST", DefaultHost),
		Port:            port,
		UploadDir:       getEnvOrDefault("UPLOAD_DIR", DefaultUploadDir),
		TranscriptsDir:  getEnvOrDefault("TRANSCRIPTS_DIR", DefaultTranscriptsDir),
		MaxUploadBytes:  int64(maxUpload),
		MultipartMemory: int64(multipartMemory),
		StorageBackend:  backend,
		Minio: MinioConfig{
			Endpoint:  getEnvOrDefault("MINIO_ENDPOINT", DefaultMinioEndpoint),
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Bucket:    getEnvOrDefault("MINIO_BUCKET", DefaultMinioBucket),
			UseSSL:    useSSL,
			Enabled:   backend == "minio",
		},
		ElevateAI:  elevateai.DefaultConfig(),
		AssemblyAI: assemblyai.DefaultConfig(),
		Whisper:    whisper.DefaultConfig(),
		YouTube:    youtube.DefaultConfig(),
	}
	cfg.ElevateAI.APIKey = os.Getenv("ELEVATEAI_API_KEY")
	cfg.AssemblyAI.APIKey = os.Getenv("ASSEMBLYAI_API_KEY")
	cfg.Whisper.APIKey = os.Getenv("OPENAI_API_KEY")
	cfg.Whisper.BaseURL = os.Getenv("OPENAI_BASE_URL")

	overridesPath := appconfig.GetDefaultConfigPath()
	if _, err := os.Stat(overridesPath); err == nil {
		overrides, err := appconfig.LoadProvidersConfig(overridesPath)
		if err != nil {
			return nil, err
		}
		cfg.ApplyOverrides(overrides)
	} else if os.Getenv("PROVIDERS_CONFIG") != "" {
		return nil, fmt.Errorf("config file not found: %s", overridesPath)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides copies the non-zero YAML settings onto the adapter configs
func (c *Config) ApplyOverrides(o *appconfig.ProvidersConfig) {
	e := o.Get("elevateai")
	setString(&c.ElevateAI.APIKey, e.APIKey)
	setString(&c.ElevateAI.Endpoint, e.Endpoint)
	setDuration(&c.ElevateAI.PollInterval, e.PollInterval())
	setInt(&c.ElevateAI.MaxAttempts, e.MaxAttempts)
	setDuration(&c.ElevateAI.Timeout, e.Timeout())

	a := o.Get("assemblyai")
	setString(&c.AssemblyAI.APIKey, a.APIKey)
	setString(&c.AssemblyAI.BaseURL, a.Endpoint)
	setDuration(&c.AssemblyAI.PollInterval, a.PollInterval())
	setInt(&c.AssemblyAI.MaxAttempts, a.MaxAttempts)
	setDuration(&c.AssemblyAI.Timeout, a.Timeout())

	w := o.Get("whisper")
	setString(&c.Whisper.APIKey, w.APIKey)
	setString(&c.Whisper.BaseURL, w.Endpoint)
	setString(&c.Whisper.Model, w.Model)
	setDuration(&c.Whisper.Timeout, w.Timeout())

	y := o.Get("youtube")
	setString(&c.YouTube.TimedTextURL, y.Endpoint)
	setDuration(&c.YouTube.Timeout, y.Timeout())
}

// IsDevelopment reports whether development logging should be used
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// MinioStorage returns the object store connection settings
func (c *Config) MinioStorage() storage.MinioConfig {
	return storage.MinioConfig{
		Endpoint:  c.Minio.Endpoint,
		AccessKey: c.Minio.AccessKey,
		SecretKey: c.Minio.SecretKey,
		Bucket:    c.Minio.Bucket,
		UseSSL:    c.Minio.UseSSL,
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v time.Duration) {
	if v > 0 {
		*dst = v
	}
}
