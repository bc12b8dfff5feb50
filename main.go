package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/mmpl/league-api/cache"
	"github.com/mmpl/league-api/config"
	"github.com/mmpl/league-api/enrichment"
	"github.com/mmpl/league-api/places"
	"github.com/mmpl/league-api/routes"
	"github.com/mmpl/league-api/storage"
	"github.com/mmpl/league-api/store"
)

func main() {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logrus.SetLevel(level)
	}

	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment")
	}

	// Initialize database
	db := config.InitDB()

	// Venue enrichment: places client behind the cache, media storage, and
	// the hooks the content store fires on publish and image delete.
	placesCfg := config.NewPlacesConfig()
	redisCache := cache.NewRedisCache(config.NewRedisConfig())
	placesClient := places.NewCachedClient(places.NewClient(placesCfg), redisCache, placesCfg.CacheTTL)
	mediaStorage := storage.ForConfig(config.NewStorageConfig())

	contentStore := store.New(db)
	enricher := enrichment.NewEnricher(db, placesClient, mediaStorage, placesCfg.MaxPhotos)
	contentStore.OnVenuePagePublished(enricher.Listener())
	contentStore.OnVenueImageDelete(enrichment.NewCleanup(mediaStorage).Listener())

	// Create a new Gin router
	r := gin.Default()
	r.Use(cors.Default())

	// Initialize routes
	routes.SetupRoutes(r, contentStore)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := r.Run(":" + port); err != nil {
		logrus.Fatal(err)
	}
}
