package controller

import (
	"errors"
	"net/http"

	"cek-cuaca/internal/domain/entity"
	"cek-cuaca/internal/domain/model"
	"cek-cuaca/internal/domain/usecase/forecast"
	"cek-cuaca/internal/domain/usecase/region"
	"cek-cuaca/pkg/msg"

	"github.com/labstack/echo/v4"
)

type ForecastController struct {
	api             *echo.Group
	regionUseCase   region.UseCase
	forecastUseCase forecast.UseCase
}

func NewForecastController(api *echo.Group, regionUseCase region.UseCase, forecastUseCase forecast.UseCase) *ForecastController {
	return &ForecastController{api: api, regionUseCase: regionUseCase, forecastUseCase: forecastUseCase}
}

// InitForecastRoutes initializes forecast routes
func (controller *ForecastController) InitForecastRoutes() {
	controller.api.GET("/forecast/:code", controller.FindDailyForecast)
}

// FindDailyForecast godoc
// @Summary Daily forecast summary of a region
// @Description Fetches BMKG hourly forecasts for the region and aggregates them per day
// @Tags forecast
// @Produce json
// @Param code path string true "Region code, its depth selects adm1..adm4"
// @Success 200 {object} model.ForecastDTO
// @Failure 400 {object} map[string]string "Malformed region code"
// @Failure 404 {object} map[string]string "Region not found"
// @Failure 502 {object} map[string]string "Unrecognized upstream payload"
// @Router /forecast/{code} [get]
func (controller *ForecastController) FindDailyForecast(c echo.Context) error {
	code := c.Param("code")
	if !entity.IsValidCode(code) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("region.invalid-code", code)})
	}

	found, err := controller.regionUseCase.Find(code)
	if err != nil {
		if errors.Is(err, region.ErrRegionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("region.unknown", code)})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	daily, err := controller.forecastUseCase.GetDailyForecast(c.Request().Context(), found.Level, found.Code)
	if err != nil {
		if errors.Is(err, forecast.ErrMalformedPayload) {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": msg.GetMessage("forecast.unrecognized")})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, model.ForecastDTO{
		Region:   model.NewRegionDTO(found),
		Forecast: daily,
	})
}
