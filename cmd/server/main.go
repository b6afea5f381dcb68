package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/banit/househunt-backend/internal/api/routes"
	"github.com/banit/househunt-backend/internal/cache"
	"github.com/banit/househunt-backend/internal/config"
	"github.com/banit/househunt-backend/internal/database"
	"github.com/banit/househunt-backend/internal/services"
	"github.com/banit/househunt-backend/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	logger.Init()
	cfg := config.Load()

	db, err := database.Init(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to initialize database: ", err)
	}

	deps := routes.Dependencies{
		KV:       newKVStore(cfg),
		Mailer:   services.NewEmailService(cfg),
		Images:   services.NewS3Service(cfg.S3Region, cfg.S3BucketName, cfg.S3AccessKey, cfg.S3SecretKey),
		Geocoder: services.NewNominatimGeocoder(cfg.GeocoderURL, cfg.GeocoderUserAgent),
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	routes.SetupRoutes(router, routes.NewServices(db, cfg, deps), cfg)

	logger.Info("Server starting on port " + cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server: ", err)
	}
}

// newKVStore connects to Redis when configured. Without it the ranking is
// recomputed on every request.
func newKVStore(cfg *config.Config) cache.KVStore {
	if cfg.RedisURL == "" {
		logger.Warn("REDIS_URL not set, ranking cache disabled")
		return cache.NoopKVStore{}
	}

	client, err := cache.NewRedisClient(cfg.RedisURL, cfg.RedisPassword)
	if err != nil {
		logger.Fatal("Invalid REDIS_URL: ", err)
	}
	return cache.NewRedisKVStore(client)
}
