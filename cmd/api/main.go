package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"reelstream/internal/config"
	"reelstream/internal/database"
	"reelstream/internal/middleware"
	"reelstream/internal/modules/health"
	"reelstream/internal/modules/reels"
	"reelstream/internal/repository"
	"reelstream/internal/tiktok"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config load failed")
	}

	if cfg.AppEnv == "dev" {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// A missing or unreachable database is not fatal: the service runs
	// in disconnected mode and every operation serves fallback data.
	var repo *repository.ReelRepository
	if cfg.MongoURI == "" {
		logrus.Warn("MONGODB_URI not set, running in disconnected mode")
		repo = repository.NewReelRepository(nil)
	} else {
		client, err := database.Connect(cfg.MongoURI)
		if err != nil {
			logrus.WithError(err).Warn("database unreachable, running in disconnected mode")
			repo = repository.NewReelRepository(nil)
		} else {
			repo = repository.NewReelRepository(client)
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				_ = client.Disconnect(ctx)
			}()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			repo.EnsureIndexes(ctx)
			cancel()
		}
	}

	fetcher := tiktok.NewClient(cfg.FetchTimeout, cfg.MaxHashtags)

	reelService := reels.NewService(repo, fetcher)
	reelHandler := reels.NewHandler(reelService)
	healthHandler := health.NewHandler(repo)

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	root := r.Group("/")
	{
		healthHandler.RegisterRoutes(root)
		reelHandler.RegisterRoutes(root)
	}

	logrus.WithField("port", cfg.Port).Info("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
