package forecast

import (
	"fmt"
	"strings"
	"testing"

	"cek-cuaca/internal/domain/entity"
	"cek-cuaca/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testLocation = `{"adm1":"31","adm2":"31.71","adm3":"31.71.01","adm4":"31.71.01.1001","provinsi":"DKI Jakarta","kotkab":"Kota Adm. Jakarta Pusat","kecamatan":"Gambir","desa":"Gambir"}`

func record(datetime string, t, hu, ws float64, wd, desc string) string {
	return fmt.Sprintf(`{"local_datetime":%q,"t":%v,"hu":%v,"ws":%v,"wd":%q,"weather_desc":%q}`, datetime, t, hu, ws, wd, desc)
}

func payload(records ...string) []byte {
	return []byte(`{"data":[{"lokasi":` + testLocation + `,"cuaca":[[` + strings.Join(records, ",") + `]]}]}`)
}

func TestSummarize_MinMaxTemperature(t *testing.T) {
	raw := payload(
		record("2024-11-05 07:00:00", 24, 80, 5, "N", "Cerah"),
		record("2024-11-05 13:00:00", 31, 60, 10, "N", "Cerah"),
		record("2024-11-05 19:00:00", 28, 90, 3, "E", "Hujan Ringan"),
	)

	f, err := Summarize(raw, entity.Village)
	require.NoError(t, err)
	require.True(t, f.HasData)
	require.Len(t, f.Days, 1)

	day := f.Days[0]
	assert.Equal(t, "2024-11-05", day.Date)
	assert.Equal(t, 24.0, day.MinTemperature)
	assert.Equal(t, 31.0, day.MaxTemperature)
	assert.Equal(t, 90.0, day.MaxHumidity)
	require.NotNil(t, day.AvgWindSpeed)
	assert.InDelta(t, 6.0, *day.AvgWindSpeed, 1e-9)
	assert.Equal(t, "N", day.WindDirection)
	assert.Equal(t, "Cerah", day.Condition)
}

func TestSummarize_ModeTieGoesToFirstSeen(t *testing.T) {
	raw := payload(
		record("2024-11-05 07:00:00", 24, 80, 5, "SE", "Berawan"),
		record("2024-11-05 10:00:00", 25, 80, 5, "W", "Cerah"),
		record("2024-11-05 13:00:00", 26, 80, 5, "W", "Cerah"),
		record("2024-11-05 16:00:00", 27, 80, 5, "SE", "Berawan"),
	)

	f, err := Summarize(raw, entity.Village)
	require.NoError(t, err)
	require.Len(t, f.Days, 1)
	assert.Equal(t, "SE", f.Days[0].WindDirection)
	assert.Equal(t, "Berawan", f.Days[0].Condition)
}

func TestSummarize_IncompleteRecordIsDiscarded(t *testing.T) {
	raw := payload(
		record("2024-11-05 07:00:00", 24, 70, 5, "N", "Cerah"),
		`{"local_datetime":"2024-11-05 13:00:00","t":40,"ws":20,"wd":"S","weather_desc":"Panas"}`,
		`{"local_datetime":"2024-11-05 16:00:00","t":10,"hu":99,"ws":null,"wd":"S","weather_desc":"Dingin"}`,
	)

	f, err := Summarize(raw, entity.Village)
	require.NoError(t, err)
	require.Len(t, f.Days, 1)

	day := f.Days[0]
	assert.Equal(t, 24.0, day.MinTemperature)
	assert.Equal(t, 24.0, day.MaxTemperature)
	assert.Equal(t, 70.0, day.MaxHumidity)
	assert.Equal(t, "N", day.WindDirection)
	assert.Equal(t, 2, f.IncompleteRecords)
}

func TestSummarize_DaysSortedAscending(t *testing.T) {
	raw := []byte(`[{"lokasi":` + testLocation + `,"cuaca":[[` +
		record("2024-11-07 07:00:00", 20, 70, 5, "N", "Cerah") + `],[` +
		record("2024-11-05 07:00:00", 21, 70, 5, "N", "Cerah") + `,` +
		record("2024-11-06 07:00:00", 22, 70, 5, "N", "Cerah") + `]]}]`)

	f, err := Summarize(raw, entity.Village)
	require.NoError(t, err)
	require.Len(t, f.Days, 3)
	assert.Equal(t, "2024-11-05", f.Days[0].Date)
	assert.Equal(t, "2024-11-06", f.Days[1].Date)
	assert.Equal(t, "2024-11-07", f.Days[2].Date)
}

func TestSummarize_InvalidAndMissingTimestamps(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	t.Cleanup(log.Replace(zap.New(core)))

	raw := payload(
		record("05/11/2024 07:00", 30, 70, 5, "N", "Cerah"),
		`{"t":35,"hu":70,"ws":5,"wd":"N","weather_desc":"Cerah"}`,
		record("2024-11-05 07:00:00", 24, 70, 5, "N", "Cerah"),
	)

	f, err := Summarize(raw, entity.Village)
	require.NoError(t, err)
	require.Len(t, f.Days, 1)
	assert.Equal(t, 24.0, f.Days[0].MaxTemperature)
	assert.Equal(t, 1, f.InvalidTimestamps)
	assert.Equal(t, 1, logs.FilterMessage("invalid forecast timestamp").Len())
}

func TestSummarize_NoData(t *testing.T) {
	for _, raw := range []string{``, `null`, `[]`, `{}`, `{"data":[]}`, `{"data":null}`} {
		t.Run(raw, func(t *testing.T) {
			f, err := Summarize([]byte(raw), entity.Province)
			require.NoError(t, err)
			assert.False(t, f.HasData)
			assert.Empty(t, f.Days)
		})
	}
}

func TestSummarize_MalformedPayload(t *testing.T) {
	for _, raw := range []string{`42`, `"text"`, `true`, `{"data":5}`, `[1,2]`, `{"data":[{"cuaca":[[{"t":"hot"}]]}]}`} {
		t.Run(raw, func(t *testing.T) {
			_, err := Summarize([]byte(raw), entity.Province)
			require.ErrorIs(t, err, ErrMalformedPayload)
		})
	}
}

func TestSummarize_LocationBlankedBelowSelectedLevel(t *testing.T) {
	raw := payload(record("2024-11-05 07:00:00", 24, 70, 5, "N", "Cerah"))

	f, err := Summarize(raw, entity.Province)
	require.NoError(t, err)
	assert.Equal(t, entity.Location{Province: "DKI Jakarta", City: "N/A", District: "N/A", Village: "N/A"}, f.Location)

	f, err = Summarize(raw, entity.District)
	require.NoError(t, err)
	assert.Equal(t, entity.Location{Province: "DKI Jakarta", City: "Kota Adm. Jakarta Pusat", District: "Gambir", Village: "N/A"}, f.Location)

	f, err = Summarize(raw, entity.Village)
	require.NoError(t, err)
	assert.Equal(t, "Gambir", f.Location.Village)
}

func TestSummarize_MissingLocationFields(t *testing.T) {
	raw := []byte(`{"data":[{"lokasi":{"provinsi":"Aceh"},"cuaca":[]}]}`)

	f, err := Summarize(raw, entity.Village)
	require.NoError(t, err)
	assert.True(t, f.HasData)
	assert.Equal(t, "Aceh", f.Location.Province)
	assert.Equal(t, "N/A", f.Location.Village)
}

func TestTally_Mode(t *testing.T) {
	var empty tally
	assert.Equal(t, entity.NotAvailable, empty.mode())

	var wd tally
	for _, v := range []string{"N", "N", "E"} {
		wd.add(v)
	}
	assert.Equal(t, "N", wd.mode())
}

func TestDailyBucket_NoWindIsNotAvailable(t *testing.T) {
	b := dailyBucket{date: "2024-11-05", observations: 1}
	assert.Nil(t, b.summary().AvgWindSpeed)
}
