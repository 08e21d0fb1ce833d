package app

import (
	"context"
	"fmt"

	encryptionService "github.com/allisson/docseal/internal/encryption/service"
)

// EncryptionFactory returns the factory owning the process-wide encryption provider.
func (c *Container) EncryptionFactory() (*encryptionService.Factory, error) {
	var err error
	c.encryptionFactoryInit.Do(func() {
		c.encryptionFactory, err = c.initEncryptionFactory()
		if err != nil {
			c.initErrors["encryptionFactory"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["encryptionFactory"]; exists {
		return nil, storedErr
	}
	return c.encryptionFactory, nil
}

// EncryptionService returns the configured encryption provider, building it on
// first use. Unlike the other getters a failed build is not cached, so a later
// call retries once the configuration or key service is fixed.
func (c *Container) EncryptionService(ctx context.Context) (encryptionService.Service, error) {
	factory, err := c.EncryptionFactory()
	if err != nil {
		return nil, err
	}

	service, err := factory.Service(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize encryption provider: %w", err)
	}
	return service, nil
}

// initEncryptionFactory creates the encryption factory. Every provider it builds
// is wrapped with the metrics decorator when metrics are enabled.
func (c *Container) initEncryptionFactory() (*encryptionService.Factory, error) {
	opts := []encryptionService.FactoryOption{
		encryptionService.WithLogger(c.Logger()),
	}

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for encryption factory: %w", err)
		}
		opts = append(opts, encryptionService.WithDecorator(encryptionService.MetricsDecorator(businessMetrics)))
	}

	return encryptionService.NewFactory(c.config.EncryptionSettings, opts...), nil
}
