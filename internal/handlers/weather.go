package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/onehub-dev/onehub/internal/sources"
	"github.com/onehub-dev/onehub/internal/types"
)

// GetWeather serves current conditions plus forecast. When every provider
// fails, the tracker's cached snapshot is served; failing that, the static
// mock.
func GetWeather(ctx *gin.Context) {
	city := ctx.DefaultQuery("city", DefaultCity)

	report, err := Weather.Report(ctx.Request.Context(), city)
	if err == nil {
		ctx.JSON(http.StatusOK, report)
		return
	}

	logrus.Warnf("Weather fetch failed for %s: %v", city, err)

	var cached types.WeatherReport
	hit, cacheErr := Cache.GetSnapshot(ctx.Request.Context(), "weather", city, &cached)
	if cacheErr != nil {
		logrus.Warnf("Weather cache read failed for %s: %v", city, cacheErr)
	}
	if hit {
		ctx.JSON(http.StatusOK, cached)
		return
	}

	ctx.JSON(http.StatusOK, sources.MockWeather(city))
}
