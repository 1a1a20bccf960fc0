package forecast

import (
	"context"
	"errors"
	"time"

	"cek-cuaca/internal/domain/entity"
	"cek-cuaca/internal/domain/gateway/api"
	"cek-cuaca/internal/infra/observability"
	"cek-cuaca/pkg/log"

	"go.uber.org/zap"
)

type forecastUseCase struct {
	apiGateway api.ForecastGateway
	metrics    *observability.Metrics
}

// NewForecastUseCase builds the use case. metrics may be nil.
func NewForecastUseCase(apiGateway api.ForecastGateway, metrics *observability.Metrics) UseCase {
	return &forecastUseCase{
		apiGateway: apiGateway,
		metrics:    metrics,
	}
}

func (uc *forecastUseCase) GetDailyForecast(ctx context.Context, level entity.Level, code string) (*entity.Forecast, error) {
	start := time.Now()
	raw, err := uc.apiGateway.GetForecast(ctx, level, code)
	uc.observeFetch(time.Since(start))
	if err != nil {
		log.Error("failed to fetch forecast",
			zap.String("level", level.Key()),
			zap.String("code", code),
			zap.Error(err))
		uc.countRequest(level, observability.OutcomeUnavailable)
		return entity.NoData(level), nil
	}

	forecast, err := Summarize(raw, level)
	if err != nil {
		if errors.Is(err, ErrMalformedPayload) {
			log.Error("unrecognized forecast payload",
				zap.String("level", level.Key()),
				zap.String("code", code),
				zap.Error(err))
			uc.countRequest(level, observability.OutcomeMalformed)
		}
		return nil, err
	}

	if forecast.HasData {
		uc.countRequest(level, observability.OutcomeOK)
	} else {
		uc.countRequest(level, observability.OutcomeEmpty)
	}
	uc.countSkipped("invalid_timestamp", forecast.InvalidTimestamps)
	uc.countSkipped("incomplete", forecast.IncompleteRecords)

	log.Debug("forecast summarized",
		zap.String("level", level.Key()),
		zap.String("code", code),
		zap.Int("days", len(forecast.Days)))
	return forecast, nil
}

func (uc *forecastUseCase) observeFetch(d time.Duration) {
	if uc.metrics != nil {
		uc.metrics.ForecastFetchDuration.Observe(d.Seconds())
	}
}

func (uc *forecastUseCase) countRequest(level entity.Level, outcome string) {
	if uc.metrics != nil {
		uc.metrics.ForecastRequests.WithLabelValues(level.Key(), outcome).Inc()
	}
}

func (uc *forecastUseCase) countSkipped(reason string, n int) {
	if uc.metrics != nil && n > 0 {
		uc.metrics.RecordsSkipped.WithLabelValues(reason).Add(float64(n))
	}
}
