package health

import (
	"strconv"

	"cek-cuaca/internal/domain/model"
	"cek-cuaca/internal/domain/usecase/region"
)

type healthUseCase struct {
	regionUseCase   region.UseCase
	forecastBaseURL string
}

func NewHealthUseCase(regionUseCase region.UseCase, forecastBaseURL string) UseCase {
	return &healthUseCase{
		regionUseCase:   regionUseCase,
		forecastBaseURL: forecastBaseURL,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	provinces := useCase.regionUseCase.Count()

	regionHealth := model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: map[string]string{"provinces": strconv.Itoa(provinces)},
	}
	if provinces == 0 {
		regionHealth.Status = model.StatusDown
	}

	// The upstream API is not probed.
	forecastHealth := model.ComponentHealthStatus{
		Status:  model.StatusUnknown,
		Details: map[string]string{"baseUrl": useCase.forecastBaseURL},
	}

	return model.HealthResponse{
		Status:      regionHealth.Status,
		Regions:     regionHealth,
		ForecastAPI: forecastHealth,
	}
}
