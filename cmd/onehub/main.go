package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/onehub-dev/onehub/db"
	"github.com/onehub-dev/onehub/internal/auth"
	"github.com/onehub-dev/onehub/internal/cache"
	"github.com/onehub-dev/onehub/internal/config"
	"github.com/onehub-dev/onehub/internal/handlers"
	"github.com/onehub-dev/onehub/internal/router"
	"github.com/onehub-dev/onehub/internal/sources"
	"github.com/onehub-dev/onehub/internal/tracker"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warnf("No .env file loaded: %v", err)
	}

	cfg := config.Load()

	if err := auth.InitJWTSecret(); err != nil {
		logrus.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	if err := db.ConnectDatabase(cfg.DatabaseDSN); err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	store := cache.New(cfg.RedisAddr, cfg.RedisPasswd)
	handlers.Init(cfg, store)

	track := tracker.New(
		store,
		sources.NewWeatherClient(cfg.OpenWeatherKeys),
		sources.NewCryptoClient(),
		cfg.DefaultCity,
	)
	track.Start(time.Duration(cfg.TrackerInterval) * time.Second)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		track.Stop()
		os.Exit(0)
	}()

	r := router.NewRouter()

	logrus.Infof("Listening on :%s", cfg.Port)

	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
