package tracker

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onehub-dev/onehub/internal/sources"
)

func contentServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/weather":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"name": "London",
				"sys":  map[string]interface{}{"country": "GB"},
				"main": map[string]interface{}{"temp": 15.0, "feels_like": 14.0, "humidity": 70, "pressure": 1010},
				"weather": []map[string]interface{}{
					{"description": "overcast clouds", "icon": "04d"},
				},
				"wind": map[string]interface{}{"speed": 3.0},
			})
		case "/forecast":
			json.NewEncoder(w).Encode(map[string]interface{}{"list": []interface{}{}})
		case "/coins/markets":
			json.NewEncoder(w).Encode([]map[string]interface{}{
				{"id": "bitcoin", "name": "Bitcoin", "symbol": "btc", "current_price": 43000.0, "market_cap_rank": 1},
			})
		default:
			http.NotFound(w, r)
		}
	}))
}

func newTestTracker(serverURL string) *Tracker {
	weather := sources.NewWeatherClient([]string{"key"})
	weather.BaseURL = serverURL
	weather.WttrURL = serverURL + "/wttr"

	crypto := sources.NewCryptoClient()
	crypto.BaseURL = serverURL

	// nil cache: refreshes are no-ops on the storage side.
	return New(nil, weather, crypto, "London")
}

func TestTrackerStartAndStop(t *testing.T) {
	server := contentServer()
	defer server.Close()

	tracker := newTestTracker(server.URL)
	tracker.Start(time.Hour)

	status := tracker.Status()
	assert.Equal(t, 2, status["active_jobs"])
	assert.Equal(t, true, status["running"])

	tracker.Stop()

	status = tracker.Status()
	assert.Equal(t, 0, status["active_jobs"])
	assert.Equal(t, false, status["running"])
}

func TestTrackerRefreshJobsSucceed(t *testing.T) {
	server := contentServer()
	defer server.Close()

	tracker := newTestTracker(server.URL)
	defer tracker.Stop()

	require.NoError(t, tracker.refreshWeather(t.Context()))
	require.NoError(t, tracker.refreshCrypto(t.Context()))
}
