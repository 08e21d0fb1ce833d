package metrics

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/common/expfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertBizMetricLine checks that the Prometheus output contains a business metric
// matching the given name, partial label pattern, and value. Uses regex to handle
// extra OTel scope labels injected by the Prometheus exporter.
func assertBizMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

// gatherText renders the provider registry in Prometheus text format.
func gatherText(t *testing.T, provider *Provider) string {
	t.Helper()

	families, err := provider.Gatherer().Gather()
	require.NoError(t, err)

	var buf bytes.Buffer
	for _, family := range families {
		_, err := expfmt.MetricFamilyToText(&buf, family)
		require.NoError(t, err)
	}
	return buf.String()
}

func TestNewBusinessMetrics(t *testing.T) {
	provider, err := NewProvider()
	require.NoError(t, err)

	businessMetrics, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")

	require.NoError(t, err)
	assert.NotNil(t, businessMetrics)
}

func TestNewNoOpBusinessMetrics(t *testing.T) {
	noOpMetrics := NewNoOpBusinessMetrics()

	assert.NotNil(t, noOpMetrics)
	assert.IsType(t, &NoOpBusinessMetrics{}, noOpMetrics)
	assert.NotPanics(t, func() {
		noOpMetrics.RecordOperation(context.Background(), "encryption", "encrypt", StatusSuccess)
		noOpMetrics.RecordDuration(context.Background(), "encryption", "decrypt", time.Millisecond, StatusError)
		Record(context.Background(), noOpMetrics, "documents", "document_store", time.Now(), nil)
	})
}

func TestBusinessMetrics_Integration(t *testing.T) {
	provider, err := NewProvider()
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "integration_test")
	require.NoError(t, err)

	ctx := context.Background()

	bm.RecordOperation(ctx, "encryption", "encrypt", StatusSuccess)
	bm.RecordOperation(ctx, "encryption", "encrypt", StatusSuccess)
	bm.RecordOperation(ctx, "encryption", "decrypt", StatusError)
	bm.RecordDuration(ctx, "encryption", "encrypt", 5*time.Millisecond, StatusSuccess)
	bm.RecordDuration(ctx, "encryption", "encrypt", 7*time.Millisecond, StatusSuccess)

	Record(ctx, bm, "documents", "document_store", time.Now(), nil)
	Record(ctx, bm, "documents", "document_open", time.Now(), errors.New("boom"))

	output := gatherText(t, provider)

	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="encryption".*operation="encrypt".*status="success"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="encryption".*operation="decrypt".*status="error"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="documents".*operation="document_store".*status="success"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="documents".*operation="document_open".*status="error"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operation_duration_seconds_count`,
		`domain="encryption".*operation="encrypt".*status="success"`,
		`2`,
	)
}
