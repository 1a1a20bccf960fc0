package forecast

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"cek-cuaca/internal/domain/entity"
	"cek-cuaca/internal/infra/observability"
	"cek-cuaca/pkg/log"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGateway struct {
	raw       json.RawMessage
	err       error
	lastLevel entity.Level
	lastCode  string
}

func (g *fakeGateway) GetForecast(_ context.Context, level entity.Level, code string) (json.RawMessage, error) {
	g.lastLevel, g.lastCode = level, code
	return g.raw, g.err
}

func TestGetDailyForecast_Summarizes(t *testing.T) {
	gateway := &fakeGateway{raw: payload(record("2024-11-05 07:00:00", 24, 70, 5, "N", "Cerah"))}
	metrics := observability.NewMetricsForTesting()
	uc := NewForecastUseCase(gateway, metrics)

	f, err := uc.GetDailyForecast(context.Background(), entity.City, "31.71")
	require.NoError(t, err)
	assert.True(t, f.HasData)
	assert.Len(t, f.Days, 1)
	assert.Equal(t, entity.City, gateway.lastLevel)
	assert.Equal(t, "31.71", gateway.lastCode)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ForecastRequests.WithLabelValues("adm2", observability.OutcomeOK)))
}

func TestGetDailyForecast_GatewayErrorIsNoData(t *testing.T) {
	t.Cleanup(log.Replace(zap.NewNop()))
	gateway := &fakeGateway{err: errors.New("dial tcp: connection refused")}
	metrics := observability.NewMetricsForTesting()
	uc := NewForecastUseCase(gateway, metrics)

	f, err := uc.GetDailyForecast(context.Background(), entity.Province, "31")
	require.NoError(t, err)
	assert.False(t, f.HasData)
	assert.Equal(t, entity.Province, f.Level)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ForecastRequests.WithLabelValues("adm1", observability.OutcomeUnavailable)))
}

func TestGetDailyForecast_Malformed(t *testing.T) {
	t.Cleanup(log.Replace(zap.NewNop()))
	metrics := observability.NewMetricsForTesting()
	uc := NewForecastUseCase(&fakeGateway{raw: json.RawMessage(`3.14`)}, metrics)

	_, err := uc.GetDailyForecast(context.Background(), entity.Province, "31")
	require.ErrorIs(t, err, ErrMalformedPayload)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ForecastRequests.WithLabelValues("adm1", observability.OutcomeMalformed)))
}

func TestGetDailyForecast_CountsSkippedRecords(t *testing.T) {
	t.Cleanup(log.Replace(zap.NewNop()))
	raw := payload(
		record("bad", 24, 70, 5, "N", "Cerah"),
		`{"local_datetime":"2024-11-05 13:00:00","t":40}`,
	)
	metrics := observability.NewMetricsForTesting()
	uc := NewForecastUseCase(&fakeGateway{raw: raw}, metrics)

	f, err := uc.GetDailyForecast(context.Background(), entity.Village, "31.71.01.1001")
	require.NoError(t, err)
	assert.Empty(t, f.Days)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RecordsSkipped.WithLabelValues("invalid_timestamp")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RecordsSkipped.WithLabelValues("incomplete")))
}

func TestGetDailyForecast_WithoutMetrics(t *testing.T) {
	uc := NewForecastUseCase(&fakeGateway{raw: json.RawMessage(`[]`)}, nil)

	f, err := uc.GetDailyForecast(context.Background(), entity.Province, "11")
	require.NoError(t, err)
	assert.False(t, f.HasData)
}
