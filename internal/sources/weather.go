package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/onehub-dev/onehub/internal/types"
)

const (
	openWeatherBaseURL = "https://api.openweathermap.org/data/2.5"
	wttrBaseURL        = "https://wttr.in"
)

// WeatherClient reports current conditions plus a 5-day forecast. It tries
// the configured OpenWeatherMap keys in order, falls back to wttr.in, and
// leaves the final static mock to the caller.
type WeatherClient struct {
	APIKeys    []string
	BaseURL    string
	WttrURL    string
	HTTPClient *http.Client
}

func NewWeatherClient(apiKeys []string) *WeatherClient {
	return &WeatherClient{
		APIKeys:    apiKeys,
		BaseURL:    openWeatherBaseURL,
		WttrURL:    wttrBaseURL,
		HTTPClient: newHTTPClient(8 * time.Second),
	}
}

type owmCurrentResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Visibility int `json:"visibility"`
}

type owmForecastResponse struct {
	List []owmForecastRow `json:"list"`
}

type owmForecastRow struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

// Report fetches the weather for a city, trying each API key until one
// responds.
func (c *WeatherClient) Report(ctx context.Context, city string) (*types.WeatherReport, error) {
	if len(c.APIKeys) == 0 {
		if report, err := c.wttrReport(ctx, city); err == nil {
			return report, nil
		}
		return nil, ErrNotConfigured
	}

	for _, key := range c.APIKeys {
		report, err := c.openWeatherReport(ctx, city, key)
		if err != nil {
			continue
		}
		return report, nil
	}

	if report, err := c.wttrReport(ctx, city); err == nil {
		return report, nil
	}

	return nil, fmt.Errorf("all weather providers failed for %q", city)
}

func (c *WeatherClient) openWeatherReport(ctx context.Context, city, apiKey string) (*types.WeatherReport, error) {
	currentURL := fmt.Sprintf("%s/weather?q=%s&appid=%s&units=metric",
		c.BaseURL, url.QueryEscape(city), url.QueryEscape(apiKey))

	var current owmCurrentResponse
	if err := getJSON(ctx, c.HTTPClient, currentURL, nil, &current); err != nil {
		return nil, err
	}
	if len(current.Weather) == 0 {
		return nil, fmt.Errorf("weather payload missing conditions")
	}

	forecastURL := fmt.Sprintf("%s/forecast?q=%s&appid=%s&units=metric",
		c.BaseURL, url.QueryEscape(city), url.QueryEscape(apiKey))

	var forecast []types.ForecastDay
	var forecastData owmForecastResponse
	if err := getJSON(ctx, c.HTTPClient, forecastURL, nil, &forecastData); err == nil {
		forecast = groupDailyForecast(forecastData.List)
	}
	if len(forecast) == 0 {
		forecast = synthesizeForecast(int(current.Main.Temp), current.Weather[0].Description, current.Weather[0].Icon)
	}

	visibility := current.Visibility
	if visibility == 0 {
		visibility = 10000
	}

	return &types.WeatherReport{
		City:        current.Name,
		Country:     current.Sys.Country,
		Temperature: int(current.Main.Temp),
		FeelsLike:   int(current.Main.FeelsLike),
		Description: titleCase(current.Weather[0].Description),
		Humidity:    current.Main.Humidity,
		WindSpeed:   int(current.Wind.Speed * 3.6),
		Pressure:    current.Main.Pressure,
		Visibility:  visibility / 1000,
		Icon:        current.Weather[0].Icon,
		Forecast:    forecast,
		IsMock:      false,
		Timestamp:   time.Now().Format(time.RFC3339),
	}, nil
}

// groupDailyForecast collapses 3-hourly rows into per-day entries: high is
// the max temperature, low the min, description and icon the most frequent
// value of the day.
func groupDailyForecast(rows []owmForecastRow) []types.ForecastDay {
	type bucket struct {
		day          string
		temps        []float64
		descriptions []string
		icons        []string
	}

	buckets := make(map[string]*bucket)

	for _, row := range rows {
		if len(row.Weather) == 0 {
			continue
		}

		ts := time.Unix(row.Dt, 0)
		date := ts.Format("2006-01-02")

		b, ok := buckets[date]
		if !ok {
			b = &bucket{day: ts.Format("Monday")}
			buckets[date] = b
		}

		b.temps = append(b.temps, row.Main.Temp)
		b.descriptions = append(b.descriptions, row.Weather[0].Description)
		b.icons = append(b.icons, row.Weather[0].Icon)
	}

	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	if len(dates) > 5 {
		dates = dates[:5]
	}

	var forecast []types.ForecastDay
	for _, date := range dates {
		b := buckets[date]

		high, low := b.temps[0], b.temps[0]
		for _, t := range b.temps[1:] {
			if t > high {
				high = t
			}
			if t < low {
				low = t
			}
		}

		forecast = append(forecast, types.ForecastDay{
			Day:         b.day,
			High:        int(high),
			Low:         int(low),
			Description: titleCase(mode(b.descriptions)),
			Icon:        mode(b.icons),
		})
	}

	return forecast
}

// mode returns the most frequent value; ties break toward the earliest
// occurrence.
func mode(values []string) string {
	counts := make(map[string]int)
	best, bestCount := "", 0

	for _, v := range values {
		counts[v]++
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}

	return best
}

// synthesizeForecast builds a plausible 5-day outlook from current
// conditions when the forecast call fails.
func synthesizeForecast(baseTemp int, baseDesc, baseIcon string) []types.ForecastDay {
	variations := []struct {
		desc    string
		icon    string
		tempMod int
	}{
		{baseDesc, baseIcon, 0},
		{"Partly cloudy", "02d", -2},
		{"Light rain", "10d", -4},
		{"Cloudy", "03d", -1},
		{"Sunny", "01d", 3},
	}

	days := []string{"Today", "Tomorrow", "Wednesday", "Thursday", "Friday"}

	var forecast []types.ForecastDay
	for i, day := range days {
		variation := variations[i%len(variations)]
		high := baseTemp + variation.tempMod + (i - 2)
		low := high - 8
		if high < low+5 {
			high = low + 5
		}

		forecast = append(forecast, types.ForecastDay{
			Day:         day,
			High:        high,
			Low:         low,
			Description: titleCase(variation.desc),
			Icon:        variation.icon,
		})
	}

	return forecast
}

type wttrResponse struct {
	CurrentCondition []struct {
		TempC         string `json:"temp_C"`
		FeelsLikeC    string `json:"FeelsLikeC"`
		Humidity      string `json:"humidity"`
		WindspeedKmph string `json:"windspeedKmph"`
		Pressure      string `json:"pressure"`
		Visibility    string `json:"visibility"`
		WeatherDesc   []struct {
			Value string `json:"value"`
		} `json:"weatherDesc"`
	} `json:"current_condition"`
	Weather []struct {
		MaxTempC string `json:"maxtempC"`
		MinTempC string `json:"mintempC"`
		Hourly   []struct {
			WeatherDesc []struct {
				Value string `json:"value"`
			} `json:"weatherDesc"`
		} `json:"hourly"`
	} `json:"weather"`
}

func (c *WeatherClient) wttrReport(ctx context.Context, city string) (*types.WeatherReport, error) {
	endpoint := fmt.Sprintf("%s/%s?format=j1", c.WttrURL, url.PathEscape(city))

	var data wttrResponse
	if err := getJSON(ctx, c.HTTPClient, endpoint, nil, &data); err != nil {
		return nil, err
	}
	if len(data.CurrentCondition) == 0 || len(data.Weather) == 0 {
		return nil, fmt.Errorf("wttr payload incomplete")
	}

	current := data.CurrentCondition[0]

	description := ""
	if len(current.WeatherDesc) > 0 {
		description = current.WeatherDesc[0].Value
	}

	baseHigh := atoiSafe(data.Weather[0].MaxTempC)
	baseLow := atoiSafe(data.Weather[0].MinTempC)

	forecast := []types.ForecastDay{
		{Day: "Today", High: baseHigh, Low: baseLow, Description: wttrDayDesc(data, 0, description), Icon: "01d"},
	}

	if len(data.Weather) > 1 {
		forecast = append(forecast, types.ForecastDay{
			Day: "Tomorrow", High: atoiSafe(data.Weather[1].MaxTempC), Low: atoiSafe(data.Weather[1].MinTempC),
			Description: wttrDayDesc(data, 1, "Partly Cloudy"), Icon: "02d",
		})
	} else {
		forecast = append(forecast, types.ForecastDay{
			Day: "Tomorrow", High: baseHigh - 2, Low: baseLow - 3, Description: "Partly Cloudy", Icon: "02d",
		})
	}

	if len(data.Weather) > 2 {
		forecast = append(forecast, types.ForecastDay{
			Day: "Wednesday", High: atoiSafe(data.Weather[2].MaxTempC), Low: atoiSafe(data.Weather[2].MinTempC),
			Description: wttrDayDesc(data, 2, "Light Rain"), Icon: "10d",
		})
	} else {
		forecast = append(forecast, types.ForecastDay{
			Day: "Wednesday", High: baseHigh + 1, Low: baseLow - 1, Description: "Light Rain", Icon: "10d",
		})
	}

	forecast = append(forecast,
		types.ForecastDay{Day: "Thursday", High: baseHigh + 3, Low: baseLow + 1, Description: "Sunny", Icon: "01d"},
		types.ForecastDay{Day: "Friday", High: baseHigh - 1, Low: baseLow - 2, Description: "Cloudy", Icon: "03d"},
	)

	return &types.WeatherReport{
		City:        titleCase(city),
		Country:     "",
		Temperature: atoiSafe(current.TempC),
		FeelsLike:   atoiSafe(current.FeelsLikeC),
		Description: description,
		Humidity:    atoiSafe(current.Humidity),
		WindSpeed:   atoiSafe(current.WindspeedKmph),
		Pressure:    atoiSafe(current.Pressure),
		Visibility:  atoiSafe(current.Visibility),
		Icon:        "01d",
		Forecast:    forecast,
		IsMock:      false,
		Timestamp:   time.Now().Format(time.RFC3339),
	}, nil
}

func wttrDayDesc(data wttrResponse, index int, fallback string) string {
	if index < len(data.Weather) && len(data.Weather[index].Hourly) > 0 && len(data.Weather[index].Hourly[0].WeatherDesc) > 0 {
		return data.Weather[index].Hourly[0].WeatherDesc[0].Value
	}
	return fallback
}

// atoiSafe tolerates the float-formatted numbers wttr.in sometimes returns.
func atoiSafe(s string) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// MockWeather is the static final fallback.
func MockWeather(city string) *types.WeatherReport {
	return &types.WeatherReport{
		City:        titleCase(city),
		Country:     "",
		Temperature: 22,
		FeelsLike:   25,
		Description: "Partly Cloudy",
		Humidity:    65,
		WindSpeed:   12,
		Pressure:    1013,
		Visibility:  10,
		Icon:        "02d",
		Forecast: []types.ForecastDay{
			{Day: "Today", High: 24, Low: 18, Description: "Partly Cloudy", Icon: "02d"},
			{Day: "Tomorrow", High: 26, Low: 20, Description: "Sunny", Icon: "01d"},
			{Day: "Wednesday", High: 23, Low: 17, Description: "Light Rain", Icon: "10d"},
			{Day: "Thursday", High: 25, Low: 19, Description: "Cloudy", Icon: "03d"},
			{Day: "Friday", High: 27, Low: 21, Description: "Sunny", Icon: "01d"},
		},
		IsMock:    true,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}
