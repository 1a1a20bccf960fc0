package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"cek-cuaca/configs"
	"cek-cuaca/internal/application/terminal"
	"cek-cuaca/internal/domain/gateway/api"
	"cek-cuaca/internal/domain/gateway/file"
	"cek-cuaca/internal/domain/usecase/forecast"
	"cek-cuaca/internal/domain/usecase/region"
	"cek-cuaca/pkg/http"
	"cek-cuaca/pkg/log"
	"cek-cuaca/pkg/msg"
	"cek-cuaca/pkg/resource"
)

func main() {
	log.Configure(log.Options{
		Level:  resource.GetString("cli.log-level"),
		Format: resource.GetString("log.format"),
		Name:   configs.Env.ApplicationName,
	})
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	console := terminal.NewConsole(os.Stdin, os.Stdout)

	// Init hierarchy
	hierarchy, err := file.NewCSVRegionGateway(resource.GetString("app.region-file")).LoadHierarchy()
	if err != nil {
		console.Error(msg.GetMessage("region.load-failed"))
		os.Exit(1)
	}

	// Init gateway
	forecastGateway := api.NewForecastGateway(
		resource.GetString("bmkg.base-url"),
		resource.GetString("bmkg.forecast-path"),
		http.ClientOptions{
			ReadTimeout: resource.GetDuration("bmkg.timeout"),
			Logger:      http.NewZapLogger(resource.GetInt("bmkg.log-body-length")),
		})

	// Init UseCase
	regionUseCase := region.NewRegionUseCase(hierarchy)
	forecastUseCase := forecast.NewForecastUseCase(forecastGateway, nil)

	app := terminal.NewApp(console, regionUseCase, forecastUseCase)
	if err := app.Run(ctx); err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
