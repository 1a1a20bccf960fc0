package entity

// NotAvailable marks a value that is absent or hidden for the selected level.
const NotAvailable = "N/A"

// Location is the administrative context reported by the forecast API.
type Location struct {
	Province string `json:"province"`
	City     string `json:"city"`
	District string `json:"district"`
	Village  string `json:"village"`
}

// DailySummary aggregates one calendar day of hourly forecast records.
type DailySummary struct {
	Date           string   `json:"date"`
	MinTemperature float64  `json:"minTemperature"`
	MaxTemperature float64  `json:"maxTemperature"`
	MaxHumidity    float64  `json:"maxHumidity"`
	AvgWindSpeed   *float64 `json:"avgWindSpeed"`
	WindDirection  string   `json:"windDirection"`
	Condition      string   `json:"condition"`
}

// Forecast is the per-request result rendered by the terminal and the HTTP API.
type Forecast struct {
	HasData           bool           `json:"hasData"`
	Level             Level          `json:"level"`
	Location          Location       `json:"location"`
	Days              []DailySummary `json:"days"`
	InvalidTimestamps int            `json:"invalidTimestamps"`
	IncompleteRecords int            `json:"incompleteRecords"`
}

// NoData returns an empty forecast for the given level.
func NoData(level Level) *Forecast {
	return &Forecast{
		Level:    level,
		Location: Location{Province: NotAvailable, City: NotAvailable, District: NotAvailable, Village: NotAvailable},
		Days:     []DailySummary{},
	}
}
