package app

import (
	"context"
	"fmt"

	serialsExport "github.com/allisson/serials/internal/serials/export"
	serialsHTTP "github.com/allisson/serials/internal/serials/http"
	serialsRepository "github.com/allisson/serials/internal/serials/repository"
	serialsService "github.com/allisson/serials/internal/serials/service"
	serialsUseCase "github.com/allisson/serials/internal/serials/usecase"
)

const serialsTracerName = "github.com/allisson/serials/internal/serials/usecase"

// SerialGenerator returns the process-wide serial generator.
func (c *Container) SerialGenerator() serialsService.SerialGenerator {
	c.serialGeneratorInit.Do(func() {
		c.serialGenerator = serialsService.NewDefaultSerialGenerator()
	})
	return c.serialGenerator
}

// SerialGroupRepository returns the serial group repository based on database driver.
func (c *Container) SerialGroupRepository() (serialsUseCase.SerialGroupRepository, error) {
	return lazy(c, &c.serialGroupRepoInit, "serialGroupRepo", &c.serialGroupRepo, c.initSerialGroupRepository)
}

// Exporter returns the blob exporter used for serial group exports.
func (c *Container) Exporter() (*serialsExport.BlobExporter, error) {
	return lazy(c, &c.exporterInit, "exporter", &c.exporter, c.initExporter)
}

// SerialUseCase returns the serial generation use case. It needs no database.
func (c *Container) SerialUseCase() (serialsUseCase.SerialUseCase, error) {
	return lazy(c, &c.serialUseCaseInit, "serialUseCase", &c.serialUseCase, c.initSerialUseCase)
}

// SerialGroupUseCase returns the serial group use case.
func (c *Container) SerialGroupUseCase() (serialsUseCase.SerialGroupUseCase, error) {
	return lazy(c, &c.serialGroupUseCaseInit, "serialGroupUseCase", &c.serialGroupUseCase, c.initSerialGroupUseCase)
}

// SerialHandler returns the HTTP handler for serial generation.
func (c *Container) SerialHandler() (*serialsHTTP.SerialHandler, error) {
	return lazy(c, &c.serialHandlerInit, "serialHandler", &c.serialHandler, c.initSerialHandler)
}

// SerialGroupHandler returns the HTTP handler for serial group operations.
func (c *Container) SerialGroupHandler() (*serialsHTTP.SerialGroupHandler, error) {
	return lazy(c, &c.serialGroupHandlerInit, "serialGroupHandler", &c.serialGroupHandler, c.initSerialGroupHandler)
}

func (c *Container) initExporter() (*serialsExport.BlobExporter, error) {
	return serialsExport.NewBlobExporter(context.Background(), c.config.ExportBucketURL, c.config.ExportDir)
}

func (c *Container) initSerialHandler() (*serialsHTTP.SerialHandler, error) {
	useCase, err := c.SerialUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get serial use case for serial handler: %w", err)
	}
	return serialsHTTP.NewSerialHandler(useCase, c.Logger()), nil
}

func (c *Container) initSerialGroupHandler() (*serialsHTTP.SerialGroupHandler, error) {
	useCase, err := c.SerialGroupUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get serial group use case for serial group handler: %w", err)
	}
	return serialsHTTP.NewSerialGroupHandler(useCase, c.Logger()), nil
}

// initSerialGroupRepository creates the serial group repository based on the database driver.
func (c *Container) initSerialGroupRepository() (serialsUseCase.SerialGroupRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for serial group repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return serialsRepository.NewPostgreSQLSerialGroupRepository(db), nil
	case "mysql":
		return serialsRepository.NewMySQLSerialGroupRepository(db), nil
	case "sqlite3":
		return serialsRepository.NewSQLiteSerialGroupRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initSerialUseCase wraps the base use case with tracing, then metrics when enabled.
func (c *Container) initSerialUseCase() (serialsUseCase.SerialUseCase, error) {
	tracerProvider, err := c.TracerProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get tracer provider for serial use case: %w", err)
	}

	useCase := serialsUseCase.NewSerialUseCase(c.SerialGenerator())
	useCase = serialsUseCase.NewSerialUseCaseWithTracing(useCase, tracerProvider.Tracer(serialsTracerName))

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for serial use case: %w", err)
		}
		return serialsUseCase.NewSerialUseCaseWithMetrics(useCase, businessMetrics), nil
	}

	return useCase, nil
}

// initSerialGroupUseCase creates the serial group use case with all its dependencies.
func (c *Container) initSerialGroupUseCase() (serialsUseCase.SerialGroupUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for serial group use case: %w", err)
	}

	groupRepo, err := c.SerialGroupRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get serial group repository for serial group use case: %w", err)
	}

	serialUseCase, err := c.SerialUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get serial use case for serial group use case: %w", err)
	}

	exporter, err := c.Exporter()
	if err != nil {
		return nil, fmt.Errorf("failed to get exporter for serial group use case: %w", err)
	}

	tracerProvider, err := c.TracerProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get tracer provider for serial group use case: %w", err)
	}

	useCase := serialsUseCase.NewSerialGroupUseCase(
		txManager,
		groupRepo,
		serialUseCase,
		exporter,
		c.config.ExportConcurrency,
	)
	useCase = serialsUseCase.NewSerialGroupUseCaseWithTracing(useCase, tracerProvider.Tracer(serialsTracerName))

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for serial group use case: %w", err)
		}
		return serialsUseCase.NewSerialGroupUseCaseWithMetrics(useCase, businessMetrics), nil
	}

	return useCase, nil
}
