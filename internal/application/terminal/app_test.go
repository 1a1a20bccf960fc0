package terminal

import (
	"context"
	"io"
	"strings"
	"testing"

	"cek-cuaca/internal/domain/entity"
	"cek-cuaca/internal/domain/usecase/forecast"
	"cek-cuaca/internal/domain/usecase/region"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type forecastCall struct {
	level entity.Level
	code  string
}

type fakeForecasts struct {
	calls []forecastCall
	err   error
}

func (f *fakeForecasts) GetDailyForecast(_ context.Context, level entity.Level, code string) (*entity.Forecast, error) {
	f.calls = append(f.calls, forecastCall{level: level, code: code})
	if f.err != nil {
		return nil, f.err
	}
	return entity.NoData(level), nil
}

func testHierarchy() *entity.Hierarchy {
	h := entity.NewHierarchy()
	aceh := h.AddProvince(entity.NewRegion("11", "Aceh"))
	h.AddProvince(entity.NewRegion("31", "DKI Jakarta"))
	simeulue := aceh.AddChild(entity.NewRegion("11.01", "Kab. Simeulue"))
	teupah := simeulue.AddChild(entity.NewRegion("11.01.01", "Teupah Selatan"))
	teupah.AddChild(entity.NewRegion("11.01.01.2001", "Latiung"))
	return h
}

func newTestApp(input string, forecasts forecast.UseCase) (*App, *strings.Builder) {
	out := &strings.Builder{}
	console := NewConsole(strings.NewReader(input), out)
	return NewApp(console, region.NewRegionUseCase(testHierarchy()), forecasts), out
}

func TestApp_DeclineStops(t *testing.T) {
	forecasts := &fakeForecasts{}
	app, out := newTestApp("\n2\nn\n", forecasts)

	err := app.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []forecastCall{{entity.Province, "31"}}, forecasts.calls)
	assert.Contains(t, out.String(), "Data untuk Provinsi dipilih: DKI Jakarta")
	assert.Contains(t, out.String(), "cek Kabupaten/Kota? [Y/n]")
	assert.Contains(t, out.String(), "Terima kasih telah menggunakan program cek cuaca.")
}

func TestApp_DrillDownToVillageRestarts(t *testing.T) {
	forecasts := &fakeForecasts{}
	input := "\n" + strings.Repeat("1\n\n", 3) + "1\n" + "\n"
	app, out := newTestApp(input, forecasts)

	err := app.Run(context.Background())

	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []forecastCall{
		{entity.Province, "11"},
		{entity.City, "11.01"},
		{entity.District, "11.01.01"},
		{entity.Village, "11.01.01.2001"},
	}, forecasts.calls)
	assert.Contains(t, out.String(), "Data untuk Kelurahan/Desa dipilih: Latiung")
	assert.Contains(t, out.String(), "Yeayy kamu telah mencapai tingkat wilayah terakhir.")
	assert.Equal(t, 2, strings.Count(out.String(), "Pilih Provinsi"))
}

func TestApp_EmptyLevel(t *testing.T) {
	app, out := newTestApp("\n2\ny\n", &fakeForecasts{})

	err := app.Run(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Tidak ada opsi yang tersedia untuk Kabupaten/Kota.")
}

func TestApp_MalformedPayloadContinues(t *testing.T) {
	forecasts := &fakeForecasts{err: forecast.ErrMalformedPayload}
	app, out := newTestApp("\n1\nn\n", forecasts)

	err := app.Run(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Struktur data tidak dikenali.")
	assert.Contains(t, out.String(), "Terima kasih")
}

func TestApp_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	app, _ := newTestApp("\n", &fakeForecasts{})

	err := app.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
