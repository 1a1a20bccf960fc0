package terminal

import (
	"fmt"
	"strconv"

	"cek-cuaca/internal/domain/entity"
	"cek-cuaca/pkg/msg"
)

// RenderForecast prints the location header and the daily summary table.
func (c *Console) RenderForecast(forecast *entity.Forecast) {
	if forecast == nil || !forecast.HasData {
		c.Error(msg.GetMessage("forecast.no-data"))
		return
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.color.Bold(c.color.Blue(msg.GetMessage("forecast.title"))))
	c.locationLine("forecast.province", forecast.Location.Province)
	c.locationLine("forecast.city", forecast.Location.City)
	c.locationLine("forecast.district", forecast.Location.District)
	c.locationLine("forecast.village", forecast.Location.Village)
	fmt.Fprintln(c.out, c.color.Bold(c.color.Blue(msg.GetMessage("forecast.footer"))))
	fmt.Fprintln(c.out)

	if len(forecast.Days) == 0 {
		c.Error(msg.GetMessage("forecast.no-data"))
		return
	}

	headers := []string{
		msg.GetMessage("forecast.col-date"),
		msg.GetMessage("forecast.col-temperature"),
		msg.GetMessage("forecast.col-humidity"),
		msg.GetMessage("forecast.col-wind"),
		msg.GetMessage("forecast.col-condition"),
	}
	rows := make([][]string, 0, len(forecast.Days))
	for _, day := range forecast.Days {
		rows = append(rows, summaryRow(day))
	}

	fmt.Fprintln(c.out, c.color.Bold(c.color.Magenta(msg.GetMessage("forecast.daily"))))
	fmt.Fprint(c.out, renderTable(headers, rows))
	fmt.Fprintln(c.out)
}

func (c *Console) locationLine(labelKey string, value string) {
	fmt.Fprintf(c.out, "%s %s\n", c.color.Bold(c.color.Green(msg.GetMessage(labelKey))), value)
}

func summaryRow(day entity.DailySummary) []string {
	return []string{
		day.Date,
		fmt.Sprintf("%s°C - %s°C", formatNumber(day.MinTemperature), formatNumber(day.MaxTemperature)),
		formatNumber(day.MaxHumidity) + "%",
		formatWind(day),
		day.Condition,
	}
}

func formatWind(day entity.DailySummary) string {
	if day.AvgWindSpeed == nil {
		return entity.NotAvailable
	}
	return msg.GetMessage("forecast.wind", strconv.FormatFloat(*day.AvgWindSpeed, 'f', 1, 64), day.WindDirection)
}

// formatNumber prints whole numbers without decimals, as the API reports them.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
