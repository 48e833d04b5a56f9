package sources

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func forecastRow(ts time.Time, temp float64, desc, icon string) owmForecastRow {
	var row owmForecastRow
	row.Dt = ts.Unix()
	row.Main.Temp = temp
	row.Weather = []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	}{{Description: desc, Icon: icon}}
	return row
}

func TestGroupDailyForecast(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)

	rows := []owmForecastRow{
		forecastRow(day.Add(6*time.Hour), 8.4, "light rain", "10d"),
		forecastRow(day.Add(12*time.Hour), 14.9, "scattered clouds", "03d"),
		forecastRow(day.Add(18*time.Hour), 11.2, "light rain", "10d"),
		forecastRow(day.Add(30*time.Hour), 6.1, "clear sky", "01d"),
	}

	forecast := groupDailyForecast(rows)
	require.Len(t, forecast, 2)

	first := forecast[0]
	assert.Equal(t, day.Format("Monday"), first.Day)
	assert.Equal(t, 14, first.High)
	assert.Equal(t, 8, first.Low)
	// Two of three rows agree on the description.
	assert.Equal(t, "Light Rain", first.Description)
	assert.Equal(t, "10d", first.Icon)

	second := forecast[1]
	assert.Equal(t, 6, second.High)
	assert.Equal(t, 6, second.Low)
}

func TestGroupDailyForecastCapsAtFiveDays(t *testing.T) {
	start := time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local)

	var rows []owmForecastRow
	for i := 0; i < 7; i++ {
		rows = append(rows, forecastRow(start.AddDate(0, 0, i), 10, "clear sky", "01d"))
	}

	assert.Len(t, groupDailyForecast(rows), 5)
}

func TestSynthesizeForecast(t *testing.T) {
	forecast := synthesizeForecast(20, "clear sky", "01d")

	require.Len(t, forecast, 5)
	assert.Equal(t, "Today", forecast[0].Day)
	assert.Equal(t, "Friday", forecast[4].Day)
	for _, day := range forecast {
		assert.Greater(t, day.High, day.Low)
	}
}

func TestReportTriesKeysInOrder(t *testing.T) {
	var keysSeen []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Query().Get("appid")

		switch r.URL.Path {
		case "/weather":
			keysSeen = append(keysSeen, key)
			if key != "good" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode(map[string]interface{}{
				"name": "London",
				"sys":  map[string]interface{}{"country": "GB"},
				"main": map[string]interface{}{"temp": 18.6, "feels_like": 17.2, "humidity": 60, "pressure": 1012},
				"weather": []map[string]interface{}{
					{"description": "broken clouds", "icon": "04d"},
				},
				"wind":       map[string]interface{}{"speed": 5.0},
				"visibility": 9000,
			})
		case "/forecast":
			http.Error(w, "nope", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewWeatherClient([]string{"bad", "good"})
	client.BaseURL = server.URL
	client.WttrURL = server.URL + "/wttr"

	report, err := client.Report(context.Background(), "London")
	require.NoError(t, err)

	assert.Equal(t, []string{"bad", "good"}, keysSeen)
	assert.Equal(t, "London", report.City)
	assert.Equal(t, "GB", report.Country)
	assert.Equal(t, 18, report.Temperature)
	assert.Equal(t, "Broken Clouds", report.Description)
	assert.Equal(t, 18, report.WindSpeed) // 5 m/s -> 18 km/h
	assert.Equal(t, 9, report.Visibility)
	assert.False(t, report.IsMock)
	// Forecast call failed, so a synthesized outlook fills in.
	assert.Len(t, report.Forecast, 5)
}

func TestMockWeatherShape(t *testing.T) {
	report := MockWeather("paris")

	assert.Equal(t, "Paris", report.City)
	assert.True(t, report.IsMock)
	assert.Len(t, report.Forecast, 5)
}
