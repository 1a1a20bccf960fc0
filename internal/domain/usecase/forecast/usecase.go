package forecast

import (
	"context"

	"cek-cuaca/internal/domain/entity"
)

type UseCase interface {
	// GetDailyForecast fetches the forecast of a region and summarizes it per day.
	// Upstream failures degrade to a forecast without data; only ErrMalformedPayload is returned.
	GetDailyForecast(ctx context.Context, level entity.Level, code string) (*entity.Forecast, error)
}
