package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	encryptionDomain "github.com/allisson/docseal/internal/encryption/domain"
)

// Key service drivers accepted in KMSSettings.Driver.
const (
	DriverAWS     = "aws"
	DriverGoCloud = "gocloud"
)

// KMSSettings holds the kms provider configuration. Everything except KeyID is
// passed through to the key service client.
type KMSSettings struct {
	KeyID           string
	Driver          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Endpoint        string
}

// Settings selects and configures the encryption provider.
type Settings struct {
	// Provider is "local" or "kms". Empty means "local".
	Provider string
	// LocalKey is the 64 hex character master key of the local provider.
	LocalKey string
	KMS      KMSSettings
}

// KeyServiceOpener opens the remote key service used by the kms provider.
type KeyServiceOpener func(ctx context.Context, settings KMSSettings) (encryptionDomain.KeyService, error)

// Decorator wraps the provider built by the Factory.
type Decorator func(Service) Service

// OpenKeyService opens the key service selected by settings.Driver.
func OpenKeyService(ctx context.Context, settings KMSSettings) (encryptionDomain.KeyService, error) {
	switch strings.ToLower(settings.Driver) {
	case "", DriverAWS:
		return NewAWSKeyService(ctx, AWSOptions{
			Region:          settings.Region,
			AccessKeyID:     settings.AccessKeyID,
			SecretAccessKey: settings.SecretAccessKey,
			SessionToken:    settings.SessionToken,
			Endpoint:        settings.Endpoint,
		})
	case DriverGoCloud:
		return OpenKeeperKeyService(ctx, settings.KeyID)
	default:
		return nil, fmt.Errorf("%w: unknown kms driver %q", encryptionDomain.ErrConfiguration, settings.Driver)
	}
}

// FactoryOption customizes a Factory.
type FactoryOption func(*Factory)

// WithKeyServiceOpener replaces OpenKeyService.
func WithKeyServiceOpener(opener KeyServiceOpener) FactoryOption {
	return func(f *Factory) {
		f.openKeyService = opener
	}
}

// WithDecorator wraps every built provider with decorator. Decorators are applied
// in registration order.
func WithDecorator(decorator Decorator) FactoryOption {
	return func(f *Factory) {
		f.decorators = append(f.decorators, decorator)
	}
}

// WithLogger sets the logger used to report provider construction.
func WithLogger(logger *slog.Logger) FactoryOption {
	return func(f *Factory) {
		f.logger = logger
	}
}

// Factory builds the configured provider on first use and hands out the same
// instance until Reset.
//
// Construction is serialized so concurrent first callers share one instance. After
// that, Service only takes a read lock.
type Factory struct {
	load           func() Settings
	openKeyService KeyServiceOpener
	decorators     []Decorator
	logger         *slog.Logger

	mu       sync.RWMutex
	service  Service
	provider Service
}

// NewFactory creates a Factory that reads its settings through load on every build.
func NewFactory(load func() Settings, opts ...FactoryOption) *Factory {
	f := &Factory{
		load:           load,
		openKeyService: OpenKeyService,
		logger:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Service returns the cached provider, building it on the first call.
func (f *Factory) Service(ctx context.Context) (Service, error) {
	f.mu.RLock()
	service := f.service
	f.mu.RUnlock()
	if service != nil {
		return service, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.service != nil {
		return f.service, nil
	}

	provider, err := f.build(ctx, f.load())
	if err != nil {
		return nil, err
	}

	service = provider
	for _, decorate := range f.decorators {
		service = decorate(service)
	}

	f.provider = provider
	f.service = service
	return service, nil
}

// Reset drops the cached provider and releases its resources. The next Service
// call reads the settings again and builds a new instance.
func (f *Factory) Reset() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	provider := f.provider
	f.provider = nil
	f.service = nil

	if closer, ok := provider.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("failed to close encryption provider: %w", err)
		}
	}
	return nil
}

func (f *Factory) build(ctx context.Context, settings Settings) (Service, error) {
	provider := strings.ToLower(strings.TrimSpace(settings.Provider))
	if provider == "" {
		provider = encryptionDomain.ProviderLocal.String()
	}

	switch encryptionDomain.Provider(provider) {
	case encryptionDomain.ProviderLocal:
		if settings.LocalKey == "" {
			return nil, fmt.Errorf("%w: local provider requires a master key", encryptionDomain.ErrConfiguration)
		}

		local, err := NewLocalProvider(settings.LocalKey)
		if err != nil {
			return nil, err
		}

		f.logger.Info("encryption provider initialized", slog.String("provider", provider))
		return local, nil

	case encryptionDomain.ProviderKMS:
		if settings.KMS.KeyID == "" {
			return nil, fmt.Errorf("%w: kms provider requires a key id", encryptionDomain.ErrConfiguration)
		}

		keyService, err := f.openKeyService(ctx, settings.KMS)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to open key service: %v", encryptionDomain.ErrConfiguration, err)
		}

		keyID := settings.KMS.KeyID
		if strings.EqualFold(settings.KMS.Driver, DriverGoCloud) {
			keyID = KeeperKeyID(keyID)
		}

		kmsProvider, err := NewKMSProvider(keyService, keyID)
		if err != nil {
			_ = keyService.Close()
			return nil, err
		}

		f.logger.Info(
			"encryption provider initialized",
			slog.String("provider", provider),
			slog.String("kms_driver", settings.KMS.Driver),
			slog.String("kms_key_id", keyID),
		)
		return kmsProvider, nil

	default:
		return nil, fmt.Errorf("%w: unknown provider %q", encryptionDomain.ErrConfiguration, settings.Provider)
	}
}
