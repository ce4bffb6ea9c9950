package app

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/serials/internal/config"
	serialsRepository "github.com/allisson/serials/internal/serials/repository"
	"github.com/allisson/serials/internal/testutil"
)

func TestNewContainer(t *testing.T) {
	cfg := &config.Config{LogLevel: "info", DBDriver: "sqlite3", DBConnMaxLifetime: time.Hour}

	container := NewContainer(cfg)

	require.NotNil(t, container)
	assert.Same(t, cfg, container.Config())
	assert.Nil(t, container.logger, "nothing is built before first access")
}

func TestContainerLogger(t *testing.T) {
	for _, level := range []string{"debug", "warn", "bogus", ""} {
		t.Run(level, func(t *testing.T) {
			container := NewContainer(&config.Config{LogLevel: level})

			logger := container.Logger()
			require.NotNil(t, logger)
			assert.Same(t, logger, container.Logger())
		})
	}

	t.Run("level applied", func(t *testing.T) {
		logger := NewContainer(&config.Config{LogLevel: "warn"}).Logger()
		assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
		assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))
	})
}

func TestContainerDB_ErrorIsRemembered(t *testing.T) {
	container := NewContainer(&config.Config{DBDriver: "invalid_driver"})

	_, first := container.DB()
	require.Error(t, first)

	_, second := container.DB()
	assert.Same(t, first, second)

	_, err := container.TxManager()
	assert.ErrorIs(t, err, first)
}

func TestLazy_ConcurrentAccess(t *testing.T) {
	container := NewContainer(&config.Config{})

	var (
		once  sync.Once
		slot  int
		calls atomic.Int32
		wg    sync.WaitGroup
	)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := lazy(container, &once, "answer", &slot, func() (int, error) {
				calls.Add(1)
				return 42, nil
			})
			assert.NoError(t, err)
			assert.Equal(t, 42, v)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, calls.Load())
}

func TestContainerShutdown_NothingInitialized(t *testing.T) {
	assert.NoError(t, NewContainer(&config.Config{}).Shutdown(context.Background()))
}

// newSQLiteConfig returns a configuration backed by an in-memory SQLite database
// and an in-memory export bucket.
func newSQLiteConfig() *config.Config {
	return &config.Config{
		LogLevel:             "error",
		DBDriver:             "sqlite3",
		DBConnectionString:   testutil.SQLiteTestDSN(),
		DBMaxOpenConnections: 1,
		DBMaxIdleConnections: 1,
		ServerHost:           "localhost",
		ServerPort:           0,
		MetricsNamespace:     "serials",
		TracingServiceName:   "serials-test",
		ExportBucketURL:      "mem://",
		ExportConcurrency:    2,
	}
}

// useMigratedDB installs a migrated SQLite database into the container.
func useMigratedDB(t *testing.T, container *Container) {
	t.Helper()

	db := testutil.SetupSQLiteDB(t)
	container.dbInit.Do(func() {
		container.db = db
	})
}

func TestContainerSerialUseCase_NoDatabase(t *testing.T) {
	cfg := newSQLiteConfig()
	cfg.DBDriver = "invalid_driver"

	container := NewContainer(cfg)
	defer func() { assert.NoError(t, container.Shutdown(context.Background())) }()

	useCase, err := container.SerialUseCase()
	require.NoError(t, err)

	serials := useCase.GenerateSerials(context.Background(), 5)
	assert.Len(t, serials, 5)
	for _, serial := range serials {
		assert.NoError(t, serial.Validate())
	}
	assert.Nil(t, container.db)
}

func TestContainerSerialGenerator_Singleton(t *testing.T) {
	container := NewContainer(newSQLiteConfig())

	assert.Same(t, container.SerialGenerator(), container.SerialGenerator())
}

func TestContainerSerialGroupRepository(t *testing.T) {
	t.Run("SQLite", func(t *testing.T) {
		container := NewContainer(newSQLiteConfig())
		defer func() { assert.NoError(t, container.Shutdown(context.Background())) }()

		repo, err := container.SerialGroupRepository()
		require.NoError(t, err)
		assert.IsType(t, &serialsRepository.SQLiteSerialGroupRepository{}, repo)
	})

	t.Run("UnsupportedDriver", func(t *testing.T) {
		cfg := newSQLiteConfig()
		container := NewContainer(cfg)
		defer func() { assert.NoError(t, container.Shutdown(context.Background())) }()

		_, err := container.DB()
		require.NoError(t, err)
		cfg.DBDriver = "oracle"

		_, err = container.SerialGroupRepository()
		assert.EqualError(t, err, "unsupported database driver: oracle")
	})
}

func TestContainerSerialGroupUseCase_CreateAndExport(t *testing.T) {
	container := NewContainer(newSQLiteConfig())
	defer func() { assert.NoError(t, container.Shutdown(context.Background())) }()
	useMigratedDB(t, container)

	useCase, err := container.SerialGroupUseCase()
	require.NoError(t, err)

	ctx := context.Background()
	group, err := useCase.Create(ctx, "batch-1", 3)
	require.NoError(t, err)
	assert.Len(t, group.Serials, 3)

	key, err := useCase.Export(ctx, "batch-1")
	require.NoError(t, err)
	assert.Equal(t, "data/batch-1.json", key)

	keys, err := useCase.ExportAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"data/batch-1.json"}, keys)
}

func TestContainerHTTPServer(t *testing.T) {
	container := NewContainer(newSQLiteConfig())
	defer func() { assert.NoError(t, container.Shutdown(context.Background())) }()
	useMigratedDB(t, container)

	server, err := container.HTTPServer()
	require.NoError(t, err)
	require.NotNil(t, server)
	assert.NotNil(t, server.GetHandler())

	server2, err := container.HTTPServer()
	require.NoError(t, err)
	assert.Same(t, server, server2)
}

func TestContainerMetricsServer(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		container := NewContainer(newSQLiteConfig())

		server, err := container.MetricsServer()
		require.NoError(t, err)
		assert.Nil(t, server)

		businessMetrics, err := container.BusinessMetrics()
		require.NoError(t, err)
		assert.NotNil(t, businessMetrics)
	})

	t.Run("Enabled", func(t *testing.T) {
		cfg := newSQLiteConfig()
		cfg.MetricsEnabled = true
		container := NewContainer(cfg)
		defer func() { assert.NoError(t, container.Shutdown(context.Background())) }()

		server, err := container.MetricsServer()
		require.NoError(t, err)
		require.NotNil(t, server)

		provider, err := container.MetricsProvider()
		require.NoError(t, err)
		assert.NotNil(t, provider)
	})
}

func TestContainerExporter_InvalidURL(t *testing.T) {
	cfg := newSQLiteConfig()
	cfg.ExportBucketURL = "unknown://bucket"
	container := NewContainer(cfg)
	defer func() { assert.NoError(t, container.Shutdown(context.Background())) }()

	_, err := container.Exporter()
	assert.Error(t, err)

	_, err = container.SerialGroupUseCase()
	assert.Error(t, err)
}
