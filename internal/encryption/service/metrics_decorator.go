package service

import (
	"context"
	"time"

	encryptionDomain "github.com/allisson/docseal/internal/encryption/domain"
	"github.com/allisson/docseal/internal/metrics"
)

const metricsDomain = "encryption"

// serviceWithMetrics decorates Service with metrics instrumentation.
type serviceWithMetrics struct {
	next    Service
	metrics metrics.BusinessMetrics
}

// NewServiceWithMetrics wraps a Service with metrics recording.
func NewServiceWithMetrics(next Service, m metrics.BusinessMetrics) Service {
	return &serviceWithMetrics{
		next:    next,
		metrics: m,
	}
}

// MetricsDecorator returns a Factory decorator recording into m.
func MetricsDecorator(m metrics.BusinessMetrics) Decorator {
	return func(next Service) Service {
		return NewServiceWithMetrics(next, m)
	}
}

// Encrypt records metrics for encrypt operations.
func (s *serviceWithMetrics) Encrypt(
	ctx context.Context,
	plaintext []byte,
) ([]byte, *encryptionDomain.Metadata, error) {
	start := time.Now()
	ciphertext, metadata, err := s.next.Encrypt(ctx, plaintext)
	metrics.Record(ctx, s.metrics, metricsDomain, "encrypt", start, err)
	return ciphertext, metadata, err
}

// Decrypt records metrics for decrypt operations.
func (s *serviceWithMetrics) Decrypt(
	ctx context.Context,
	ciphertext []byte,
	metadata *encryptionDomain.Metadata,
) ([]byte, error) {
	start := time.Now()
	plaintext, err := s.next.Decrypt(ctx, ciphertext, metadata)
	metrics.Record(ctx, s.metrics, metricsDomain, "decrypt", start, err)
	return plaintext, err
}

// EncryptText records metrics for text encrypt operations.
func (s *serviceWithMetrics) EncryptText(ctx context.Context, text string) (string, error) {
	start := time.Now()
	payload, err := s.next.EncryptText(ctx, text)
	metrics.Record(ctx, s.metrics, metricsDomain, "encrypt_text", start, err)
	return payload, err
}

// DecryptText records metrics for text decrypt operations.
func (s *serviceWithMetrics) DecryptText(ctx context.Context, payload string) (string, error) {
	start := time.Now()
	text, err := s.next.DecryptText(ctx, payload)
	metrics.Record(ctx, s.metrics, metricsDomain, "decrypt_text", start, err)
	return text, err
}

// Provider returns the decorated provider identifier.
func (s *serviceWithMetrics) Provider() encryptionDomain.Provider {
	return s.next.Provider()
}
