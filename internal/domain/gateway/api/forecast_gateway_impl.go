package api

import (
	"context"
	"encoding/json"
	"fmt"

	"cek-cuaca/internal/domain/entity"
	"cek-cuaca/internal/domain/model/external"
	"cek-cuaca/pkg/http"
)

// forecastGatewayImpl implements the ForecastGateway interface
type forecastGatewayImpl struct {
	httpClient   *http.Client
	forecastPath string
}

// NewForecastGateway creates a new instance of ForecastGateway with HTTP client
func NewForecastGateway(baseUrl string, forecastPath string, clientOptions http.ClientOptions) ForecastGateway {
	return &forecastGatewayImpl{
		httpClient:   http.NewHttpClient(baseUrl, clientOptions),
		forecastPath: forecastPath,
	}
}

// GetForecast performs a single GET {forecastPath}?{admN}={code}
func (g *forecastGatewayImpl) GetForecast(ctx context.Context, level entity.Level, code string) (json.RawMessage, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("invalid administrative level %d", int(level))
	}

	successResp, errResp, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(g.forecastPath).
		WithQueryParams(map[string]string{level.Key(): code}).
		WithSuccessResp(&json.RawMessage{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		if successResp == nil {
			return nil, nil
		}
		return *successResp.(*json.RawMessage), nil
	}

	if errResp != nil {
		errorResponse := errResp.(*external.APIErrorResponse)
		if errorResponse.Message != "" {
			return nil, fmt.Errorf("%w: %s", err, errorResponse.Message)
		}
	}

	return nil, err
}
