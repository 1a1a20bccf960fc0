package api

import (
	"context"
	"encoding/json"

	"cek-cuaca/internal/domain/entity"
)

// ForecastGateway defines the interface for the BMKG forecast API
type ForecastGateway interface {
	// GetForecast fetches the raw forecast payload for a region code at the given level.
	// The body is returned undecoded because the API answers either an object or a bare list.
	GetForecast(ctx context.Context, level entity.Level, code string) (json.RawMessage, error)
}
