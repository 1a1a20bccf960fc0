package terminal

import (
	"context"
	"errors"

	"cek-cuaca/internal/domain/entity"
	"cek-cuaca/internal/domain/usecase/forecast"
	"cek-cuaca/internal/domain/usecase/region"
	"cek-cuaca/pkg/msg"
)

// App drives the interactive drill-down from province to village.
type App struct {
	console   *Console
	regions   region.UseCase
	forecasts forecast.UseCase
}

func NewApp(console *Console, regions region.UseCase, forecasts forecast.UseCase) *App {
	return &App{
		console:   console,
		regions:   regions,
		forecasts: forecasts,
	}
}

// Run shows the opening screen, then repeats the drill-down until the user stops.
// Reaching the village level starts over from the provinces.
func (a *App) Run(ctx context.Context) error {
	a.console.Clear()
	a.console.Banner()
	if err := a.console.Pause(); err != nil {
		return err
	}

	for {
		restart, err := a.drillDown(ctx)
		if err != nil || !restart {
			return err
		}
	}
}

func (a *App) drillDown(ctx context.Context) (bool, error) {
	level := entity.Province
	options := a.regions.Provinces()

	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		a.console.Clear()
		if len(options) == 0 {
			a.console.Error(msg.GetMessage("region.no-options", level))
			return false, nil
		}

		selected, err := a.console.SelectOption(level, options)
		if err != nil {
			return false, err
		}
		a.console.Println("")
		a.console.Println(msg.GetMessage("region.selected", level, selected.Name))

		if err := a.showForecast(ctx, level, selected.Code); err != nil {
			return false, err
		}

		next, ok := level.Next()
		if !ok {
			a.console.Success(msg.GetMessage("menu.last-level"))
			if err := a.console.Pause(); err != nil {
				return false, err
			}
			return true, nil
		}

		proceed, err := a.console.Confirm(msg.GetMessage("menu.continue", next), true)
		if err != nil {
			return false, err
		}
		if !proceed {
			a.console.Success(msg.GetMessage("menu.goodbye"))
			return false, nil
		}

		level = next
		options = selected.Children()
	}
}

func (a *App) showForecast(ctx context.Context, level entity.Level, code string) error {
	daily, err := a.forecasts.GetDailyForecast(ctx, level, code)
	if err != nil {
		if errors.Is(err, forecast.ErrMalformedPayload) {
			a.console.Error(msg.GetMessage("forecast.unrecognized"))
			return nil
		}
		return err
	}

	a.console.RenderForecast(daily)
	return nil
}
