package health

import "cek-cuaca/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
