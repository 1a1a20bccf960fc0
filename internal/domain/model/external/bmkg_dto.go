package external

// ForecastResponse is the object form of the BMKG prakiraan-cuaca payload.
type ForecastResponse struct {
	Data []ForecastEntry `json:"data"`
}

// ForecastEntry holds the forecast of one location.
type ForecastEntry struct {
	Lokasi LocationDTO        `json:"lokasi"`
	Cuaca  [][]ForecastRecord `json:"cuaca"`
}

// LocationDTO is the administrative block of an entry. Any field may be missing.
type LocationDTO struct {
	Adm1      *string  `json:"adm1"`
	Adm2      *string  `json:"adm2"`
	Adm3      *string  `json:"adm3"`
	Adm4      *string  `json:"adm4"`
	Provinsi  *string  `json:"provinsi"`
	Kotkab    *string  `json:"kotkab"`
	Kecamatan *string  `json:"kecamatan"`
	Desa      *string  `json:"desa"`
	Lon       *float64 `json:"lon"`
	Lat       *float64 `json:"lat"`
	Timezone  *string  `json:"timezone"`
}

// ForecastRecord is one hourly observation. Every field is nullable upstream.
type ForecastRecord struct {
	LocalDatetime *string  `json:"local_datetime"`
	T             *float64 `json:"t"`
	Hu            *float64 `json:"hu"`
	Ws            *float64 `json:"ws"`
	Wd            *string  `json:"wd"`
	WeatherDesc   *string  `json:"weather_desc"`
}

// APIErrorResponse represents error responses from the BMKG API
type APIErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
