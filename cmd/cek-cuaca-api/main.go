package main

import (
	"cek-cuaca/configs"
	"cek-cuaca/internal/application/controller"
	"cek-cuaca/internal/application/middleware"
	"cek-cuaca/internal/domain/gateway/api"
	"cek-cuaca/internal/domain/gateway/file"
	"cek-cuaca/internal/domain/usecase/forecast"
	"cek-cuaca/internal/domain/usecase/health"
	"cek-cuaca/internal/domain/usecase/region"
	"cek-cuaca/internal/infra/observability"
	"cek-cuaca/pkg/http"
	"cek-cuaca/pkg/log"
	"cek-cuaca/pkg/msg"
	"cek-cuaca/pkg/resource"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	log.Configure(log.Options{
		Level:  resource.GetString("log.level"),
		Format: resource.GetString("log.format"),
		Name:   configs.Env.ApplicationName,
	})
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)
	apiGroup := e.Group(resource.GetString("app.server.context-path"))
	metrics := observability.NewMetrics()

	// Init hierarchy
	regionFile := resource.GetString("app.region-file")
	hierarchy, err := file.NewCSVRegionGateway(regionFile).LoadHierarchy()
	if err != nil {
		log.Fatal(msg.GetMessage("region.load-failed"), zap.String("path", regionFile), zap.Error(err))
	}
	metrics.RegionsLoaded.Set(float64(hierarchy.Len()))

	// Init gateway
	baseURL := resource.GetString("bmkg.base-url")
	forecastGateway := api.NewForecastGateway(
		baseURL,
		resource.GetString("bmkg.forecast-path"),
		http.ClientOptions{
			ReadTimeout: resource.GetDuration("bmkg.timeout"),
			Logger:      http.NewZapLogger(resource.GetInt("bmkg.log-body-length")),
		})

	// Init UseCase
	regionUseCase := region.NewRegionUseCase(hierarchy)
	forecastUseCase := forecast.NewForecastUseCase(forecastGateway, metrics)
	healthUseCase := health.NewHealthUseCase(regionUseCase, baseURL)

	// Init Controller
	healthController := controller.NewHealthController(apiGroup, healthUseCase)
	regionController := controller.NewRegionController(apiGroup, regionUseCase)
	forecastController := controller.NewForecastController(apiGroup, regionUseCase, forecastUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	regionController.InitRegionRoutes()
	forecastController.InitForecastRoutes()
	apiGroup.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Start Routes
	port := resource.GetString("app.server.port")
	log.Info(msg.GetMessage("app.started", port))
	e.Logger.Fatal(e.Start(":" + port))
}
