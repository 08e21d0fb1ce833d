package app

import (
	"context"
	"fmt"

	"github.com/allisson/docseal/internal/database"
	documentRepository "github.com/allisson/docseal/internal/document/repository"
	documentUseCase "github.com/allisson/docseal/internal/document/usecase"
)

// DocumentRepository returns the document repository for the configured database driver.
func (c *Container) DocumentRepository() (documentUseCase.DocumentRepository, error) {
	var err error
	c.documentRepositoryInit.Do(func() {
		c.documentRepository, err = c.initDocumentRepository()
		if err != nil {
			c.initErrors["documentRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["documentRepository"]; exists {
		return nil, storedErr
	}
	return c.documentRepository, nil
}

// DocumentUseCase returns the document use case.
func (c *Container) DocumentUseCase(ctx context.Context) (documentUseCase.DocumentUseCase, error) {
	var err error
	c.documentUseCaseInit.Do(func() {
		c.documentUseCase, err = c.initDocumentUseCase(ctx)
		if err != nil {
			c.initErrors["documentUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["documentUseCase"]; exists {
		return nil, storedErr
	}
	return c.documentUseCase, nil
}

// initDocumentRepository creates the document repository instance.
func (c *Container) initDocumentRepository() (documentUseCase.DocumentRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for document repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case database.DriverMySQL:
		return documentRepository.NewMySQLDocumentRepository(db), nil
	case database.DriverPostgres:
		return documentRepository.NewPostgreSQLDocumentRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initDocumentUseCase creates the document use case with all its dependencies.
func (c *Container) initDocumentUseCase(ctx context.Context) (documentUseCase.DocumentUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for document use case: %w", err)
	}

	repo, err := c.DocumentRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get document repository for document use case: %w", err)
	}

	encryption, err := c.EncryptionService(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get encryption service for document use case: %w", err)
	}

	baseUseCase := documentUseCase.NewDocumentUseCase(
		txManager,
		repo,
		encryption,
		int64(c.config.DocumentMaxSizeBytes),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for document use case: %w", err)
		}
		return documentUseCase.NewDocumentUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
