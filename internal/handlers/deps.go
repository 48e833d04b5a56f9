package handlers

import (
	"github.com/onehub-dev/onehub/internal/cache"
	"github.com/onehub-dev/onehub/internal/config"
	"github.com/onehub-dev/onehub/internal/sources"
)

// Package-level content clients, wired once at startup. Handler tests swap
// these for clients pointed at httptest servers.
var (
	News    *sources.NewsClient
	YouTube *sources.YouTubeClient
	Reddit  *sources.RedditClient
	Weather *sources.WeatherClient
	Crypto  *sources.CryptoClient
	Meals   *sources.MealDBClient

	Cache       *cache.Client
	DefaultCity = "London"
)

func Init(cfg config.Config, store *cache.Client) {
	News = sources.NewNewsClient(cfg.NewsAPIKey)
	YouTube = sources.NewYouTubeClient(cfg.YouTubeAPIKey)
	Reddit = sources.NewRedditClient(cfg.RedditClientID, cfg.RedditSecret)
	Weather = sources.NewWeatherClient(cfg.OpenWeatherKeys)
	Crypto = sources.NewCryptoClient()
	Meals = sources.NewMealDBClient()

	Cache = store
	DefaultCity = cfg.DefaultCity
}
