// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"
)

var (
	supportedDrivers = []any{"sqlite3", "postgres", "mysql"}
	logLevels        = []any{"debug", "info", "warn", "error"}
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int

	// DBDriver is the database driver to use ("sqlite3", "postgres" or "mysql").
	DBDriver string
	// DBConnectionString is the connection string for the database.
	DBConnectionString string
	// DBMaxOpenConnections is the maximum number of open connections to the database.
	DBMaxOpenConnections int
	// DBMaxIdleConnections is the maximum number of idle connections in the database pool.
	DBMaxIdleConnections int
	// DBConnMaxLifetime is the maximum amount of time a connection may be reused.
	DBConnMaxLifetime time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int

	// TracingEnabled enables the OTLP/HTTP trace exporter.
	TracingEnabled bool
	// TracingServiceName is reported as the service.name resource attribute.
	TracingServiceName string

	// ExportBucketURL is a gocloud.dev/blob URL (file://, mem://, s3://) for serial group exports.
	// When empty, exports go to ExportDir on the local filesystem.
	ExportBucketURL string
	// ExportDir is the local export directory used when ExportBucketURL is empty.
	ExportDir string
	// ExportConcurrency bounds the number of groups exported in parallel.
	ExportConcurrency int
}

// Load reads the configuration from the environment, after loading the nearest .env file.
func Load() *Config {
	loadDotEnv()

	return &Config{
		ServerHost: env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort: env.GetInt("SERVER_PORT", 8080),

		DBDriver:             env.GetString("DB_DRIVER", "sqlite3"),
		DBConnectionString:   env.GetString("DB_CONNECTION_STRING", "serials.db"),
		DBMaxOpenConnections: env.GetInt("DB_MAX_OPEN_CONNECTIONS", 25),
		DBMaxIdleConnections: env.GetInt("DB_MAX_IDLE_CONNECTIONS", 5),
		DBConnMaxLifetime:    env.GetDuration("DB_CONN_MAX_LIFETIME", 5, time.Minute),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "serials"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),

		// Tracing
		TracingEnabled:     env.GetBool("TRACING_ENABLED", false),
		TracingServiceName: env.GetString("TRACING_SERVICE_NAME", "serials"),

		// Export
		ExportBucketURL:   env.GetString("EXPORT_BUCKET_URL", ""),
		ExportDir:         env.GetString("EXPORT_DIR", "exports"),
		ExportConcurrency: env.GetInt("EXPORT_CONCURRENCY", 4),
	}
}

// Validate reports settings that would only fail later, at first use.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ServerPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.DBDriver, validation.Required, validation.In(supportedDrivers...)),
		validation.Field(&c.DBConnectionString, validation.Required),
		validation.Field(&c.LogLevel, validation.In(logLevels...)),
		validation.Field(&c.MetricsPort,
			validation.When(c.MetricsEnabled,
				validation.Required, validation.Min(1), validation.Max(65535),
				validation.NotIn(c.ServerPort).Error("must differ from the server port"),
			),
		),
		validation.Field(&c.ExportDir, validation.When(c.ExportBucketURL == "", validation.Required)),
		validation.Field(&c.ExportConcurrency, validation.Required, validation.Min(1)),
	)
}

// GetGinMode returns "debug" for the debug log level and "release" otherwise.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

// loadDotEnv loads the nearest .env walking up from the working directory.
// Variables already set in the environment win.
func loadDotEnv() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}

	for ; ; dir = filepath.Dir(dir) {
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
		if filepath.Dir(dir) == dir {
			return
		}
	}
}
