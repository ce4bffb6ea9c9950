// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/serials/internal/config"
	"github.com/allisson/serials/internal/database"
	"github.com/allisson/serials/internal/http"
	"github.com/allisson/serials/internal/metrics"
	serialsExport "github.com/allisson/serials/internal/serials/export"
	serialsHTTP "github.com/allisson/serials/internal/serials/http"
	serialsService "github.com/allisson/serials/internal/serials/service"
	serialsUseCase "github.com/allisson/serials/internal/serials/usecase"
)

// Container builds the application graph lazily: each component is created on
// first access and reused afterwards.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger *slog.Logger
	db     *sql.DB

	// Managers
	txManager database.TxManager

	// Observability
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	tracerProvider  *metrics.TracerProvider

	// Serials
	serialGenerator    serialsService.SerialGenerator
	serialGroupRepo    serialsUseCase.SerialGroupRepository
	exporter           *serialsExport.BlobExporter
	serialUseCase      serialsUseCase.SerialUseCase
	serialGroupUseCase serialsUseCase.SerialGroupUseCase
	serialHandler      *serialsHTTP.SerialHandler
	serialGroupHandler *serialsHTTP.SerialGroupHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	mu                     sync.Mutex
	errMu                  sync.Mutex
	loggerInit             sync.Once
	dbInit                 sync.Once
	txManagerInit          sync.Once
	metricsProviderInit    sync.Once
	businessMetricsInit    sync.Once
	tracerProviderInit     sync.Once
	serialGeneratorInit    sync.Once
	serialGroupRepoInit    sync.Once
	exporterInit           sync.Once
	serialUseCaseInit      sync.Once
	serialGroupUseCaseInit sync.Once
	serialHandlerInit      sync.Once
	serialGroupHandlerInit sync.Once
	httpServerInit         sync.Once
	metricsServerInit      sync.Once
	initErrors             map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the JSON logger at the configured level.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// lazy runs init once per component. A failed init is remembered under key and
// returned on every later call.
func lazy[T any](c *Container, once *sync.Once, key string, slot *T, init func() (T, error)) (T, error) {
	once.Do(func() {
		v, err := init()
		if err != nil {
			c.setInitError(key, err)
			return
		}
		*slot = v
	})
	if err := c.initError(key); err != nil {
		var zero T
		return zero, err
	}
	return *slot, nil
}

func (c *Container) setInitError(key string, err error) {
	c.errMu.Lock()
	defer c.errMu.Unlock()
	c.initErrors[key] = err
}

func (c *Container) initError(key string) error {
	c.errMu.Lock()
	defer c.errMu.Unlock()
	return c.initErrors[key]
}

// DB returns the connection pool, opening it on first use.
func (c *Container) DB() (*sql.DB, error) {
	return lazy(c, &c.dbInit, "db", &c.db, c.initDB)
}

// TxManager returns the transaction manager over DB.
func (c *Container) TxManager() (database.TxManager, error) {
	return lazy(c, &c.txManagerInit, "txManager", &c.txManager, c.initTxManager)
}

// MetricsProvider returns the Prometheus-backed metrics provider, or nil when
// metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	return lazy(c, &c.metricsProviderInit, "metricsProvider", &c.metricsProvider, c.initMetricsProvider)
}

// BusinessMetrics returns the use case metrics recorder, a no-op one when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	return lazy(c, &c.businessMetricsInit, "businessMetrics", &c.businessMetrics, c.initBusinessMetrics)
}

// TracerProvider returns the tracer provider (OTLP when enabled, noop otherwise).
func (c *Container) TracerProvider() (*metrics.TracerProvider, error) {
	return lazy(c, &c.tracerProviderInit, "tracerProvider", &c.tracerProvider, func() (*metrics.TracerProvider, error) {
		return metrics.NewTracerProvider(context.Background(), c.config.TracingEnabled, c.config.TracingServiceName)
	})
}

// HTTPServer returns the API server with its router installed.
func (c *Container) HTTPServer() (*http.Server, error) {
	return lazy(c, &c.httpServerInit, "httpServer", &c.httpServer, c.initHTTPServer)
}

// MetricsServer returns the metrics listener, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	return lazy(c, &c.metricsServerInit, "metricsServer", &c.metricsServer, c.initMetricsServer)
}

// Shutdown releases whatever was initialized, servers first and the database last.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.exporter != nil {
		if err := c.exporter.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("exporter close: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.tracerProvider != nil {
		if err := c.tracerProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("tracer provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %w", errors.Join(shutdownErrors...))
	}

	return nil
}

func (c *Container) initLogger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.config.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func (c *Container) initTxManager() (database.TxManager, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

// initBusinessMetrics returns a no-op recorder when metrics are disabled.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	serialHandler, err := c.SerialHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get serial handler for http server: %w", err)
	}

	serialGroupHandler, err := c.SerialGroupHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get serial group handler for http server: %w", err)
	}

	metricsProvider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, logger)
	server.SetupRouter(
		serialHandler,
		serialGroupHandler,
		metricsProvider,
		c.config.MetricsNamespace,
		c.config.CORSEnabled,
		c.config.CORSAllowOrigins,
	)

	return server, nil
}

func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	metricsProvider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}
	if metricsProvider == nil {
		return nil, nil
	}

	return http.NewMetricsServer(
		c.config.ServerHost,
		c.config.MetricsPort,
		c.Logger(),
		metricsProvider,
	), nil
}
