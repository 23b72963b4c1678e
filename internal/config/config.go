package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Cache    CacheConfig    `mapstructure:"cache" validate:"required"`
	Logs     LogsConfig     `mapstructure:"logs" validate:"required"`
	Task     TaskConfig     `mapstructure:"task" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// CORSAllowedOrigins lists the browser origins allowed to call the API.
	CORSAllowedOrigins []string      `mapstructure:"cors_allowed_origins" validate:"dive,url"`
	ShutdownTimeout    time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL          string `mapstructure:"url" validate:"required,url"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gt=0"`
}

// CacheConfig sizes the in-memory entity caches.
type CacheConfig struct {
	PersonCapacity int `mapstructure:"person_capacity" validate:"gt=0"`
}

// LogsConfig describes where application log files live and where filtered
// exports are written.
type LogsConfig struct {
	Directory  string `mapstructure:"directory" validate:"required"`
	FilePrefix string `mapstructure:"file_prefix" validate:"required"`
	FileSuffix string `mapstructure:"file_suffix" validate:"required"`

	// OutputDirectory receives filtered exports. Empty means the OS temp dir.
	OutputDirectory string `mapstructure:"output_directory"`

	// WriteFiles mirrors the application log into a daily file under Directory.
	WriteFiles bool `mapstructure:"write_files"`
}

// TaskConfig contains settings for the background task worker pool.
type TaskConfig struct {
	WorkerCount int `mapstructure:"worker_count" validate:"gt=0"`
	QueueSize   int `mapstructure:"queue_size" validate:"gt=0"`

	// ProcessingDelay is an artificial pause before a log export starts.
	ProcessingDelay time.Duration `mapstructure:"processing_delay" validate:"gte=0"`
}
