package forecast

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"cek-cuaca/internal/domain/entity"
	"cek-cuaca/internal/domain/model/external"
	"cek-cuaca/pkg/log"

	"go.uber.org/zap"
)

// ErrMalformedPayload is returned when the payload is neither {"data": [...]} nor a list of entries.
var ErrMalformedPayload = errors.New("unrecognized forecast payload structure")

const (
	localDatetimeLayout = "2006-01-02 15:04:05"
	dateLayout          = "2006-01-02"
)

// Summarize aggregates hourly records into one row per calendar day, ascending by date.
// Location fields deeper than level are reported as entity.NotAvailable.
func Summarize(raw []byte, level entity.Level) (*entity.Forecast, error) {
	entries, err := decodeEntries(raw)
	if err != nil {
		return nil, err
	}

	forecast := entity.NoData(level)
	if len(entries) == 0 {
		return forecast, nil
	}
	forecast.HasData = true
	forecast.Location = locationFor(entries[0].Lokasi, level)

	buckets := make(map[string]*dailyBucket)
	for _, entry := range entries {
		for _, group := range entry.Cuaca {
			for _, record := range group {
				if record.LocalDatetime == nil || *record.LocalDatetime == "" {
					continue
				}

				ts, err := time.Parse(localDatetimeLayout, *record.LocalDatetime)
				if err != nil {
					log.Warn("invalid forecast timestamp",
						zap.String("local_datetime", *record.LocalDatetime),
						zap.Error(err))
					forecast.InvalidTimestamps++
					continue
				}

				if !complete(record) {
					forecast.IncompleteRecords++
					continue
				}

				date := ts.Format(dateLayout)
				bucket, ok := buckets[date]
				if !ok {
					bucket = &dailyBucket{date: date}
					buckets[date] = bucket
				}
				bucket.add(record)
			}
		}
	}

	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		bucket := buckets[date]
		if bucket.observations == 0 {
			continue
		}
		forecast.Days = append(forecast.Days, bucket.summary())
	}

	return forecast, nil
}

func decodeEntries(raw []byte) ([]external.ForecastEntry, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	switch trimmed[0] {
	case '{':
		var response external.ForecastResponse
		if err := json.Unmarshal(trimmed, &response); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		return response.Data, nil
	case '[':
		var entries []external.ForecastEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		return entries, nil
	default:
		return nil, fmt.Errorf("%w: expected an object or a list", ErrMalformedPayload)
	}
}

func locationFor(dto external.LocationDTO, level entity.Level) entity.Location {
	location := entity.Location{
		Province: valueOrNA(dto.Provinsi),
		City:     valueOrNA(dto.Kotkab),
		District: valueOrNA(dto.Kecamatan),
		Village:  valueOrNA(dto.Desa),
	}

	if level < entity.City {
		location.City = entity.NotAvailable
	}
	if level < entity.District {
		location.District = entity.NotAvailable
	}
	if level < entity.Village {
		location.Village = entity.NotAvailable
	}
	return location
}

func valueOrNA(value *string) string {
	if value == nil || *value == "" {
		return entity.NotAvailable
	}
	return *value
}

func complete(record external.ForecastRecord) bool {
	return record.T != nil &&
		record.Hu != nil &&
		record.Ws != nil &&
		record.Wd != nil &&
		record.WeatherDesc != nil
}

type dailyBucket struct {
	date           string
	observations   int
	minTemperature float64
	maxTemperature float64
	maxHumidity    float64
	windSum        float64
	windCount      int
	windDirections tally
	conditions     tally
}

func (b *dailyBucket) add(record external.ForecastRecord) {
	t, hu := *record.T, *record.Hu
	if b.observations == 0 {
		b.minTemperature, b.maxTemperature, b.maxHumidity = t, t, hu
	} else {
		b.minTemperature = min(b.minTemperature, t)
		b.maxTemperature = max(b.maxTemperature, t)
		b.maxHumidity = max(b.maxHumidity, hu)
	}
	b.observations++

	b.windSum += *record.Ws
	b.windCount++
	b.windDirections.add(*record.Wd)
	b.conditions.add(*record.WeatherDesc)
}

func (b *dailyBucket) summary() entity.DailySummary {
	summary := entity.DailySummary{
		Date:           b.date,
		MinTemperature: b.minTemperature,
		MaxTemperature: b.maxTemperature,
		MaxHumidity:    b.maxHumidity,
		WindDirection:  b.windDirections.mode(),
		Condition:      b.conditions.mode(),
	}
	if b.windCount > 0 {
		avg := b.windSum / float64(b.windCount)
		summary.AvgWindSpeed = &avg
	}
	return summary
}

// tally counts values and remembers the order they were first seen in.
type tally struct {
	order  []string
	counts map[string]int
}

func (t *tally) add(value string) {
	if t.counts == nil {
		t.counts = make(map[string]int)
	}
	if _, seen := t.counts[value]; !seen {
		t.order = append(t.order, value)
	}
	t.counts[value]++
}

// mode returns the most frequent value; on a tie the one seen first wins.
func (t *tally) mode() string {
	best, bestCount := entity.NotAvailable, 0
	for _, value := range t.order {
		if count := t.counts[value]; count > bestCount {
			best, bestCount = value, count
		}
	}
	return best
}
