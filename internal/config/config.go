package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config carries every externally tunable setting. All values come from the
// environment; a .env file is loaded by main before this runs.
type Config struct {
	Port        string
	DatabaseDSN string
	RedisAddr   string
	RedisPasswd string

	NewsAPIKey      string
	YouTubeAPIKey   string
	RedditClientID  string
	RedditSecret    string
	OpenWeatherKeys []string

	DefaultCity     string
	TrackerInterval int // seconds
}

func Load() Config {
	return Config{
		Port:        GetString("PORT", "5000"),
		DatabaseDSN: GetString("DATABASE_URL", ""),
		RedisAddr:   GetString("REDIS_ADDR", ""),
		RedisPasswd: GetString("REDIS_PASSWD", ""),

		NewsAPIKey:      GetString("NEWS_API_KEY", ""),
		YouTubeAPIKey:   GetString("YOUTUBE_API_KEY", ""),
		RedditClientID:  GetString("REDDIT_CLIENT_ID", ""),
		RedditSecret:    GetString("REDDIT_SECRET", ""),
		OpenWeatherKeys: splitKeys(GetString("OPENWEATHER_API_KEYS", "")),

		DefaultCity:     GetString("DEFAULT_CITY", "London"),
		TrackerInterval: GetInt("TRACKER_INTERVAL", 30),
	}
}

// GetString retrieves an environment variable or returns a fallback when unset.
func GetString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetInt retrieves an environment variable as integer or returns fallback.
func GetInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			logrus.Warnf("invalid value for %s: %v", key, err)
			return fallback
		}
		return parsed
	}
	return fallback
}

func splitKeys(raw string) []string {
	var keys []string

	for _, key := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(key)
		if trimmed != "" {
			keys = append(keys, trimmed)
		}
	}

	return keys
}
