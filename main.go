package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"rex-dinner-api/cache"
	"rex-dinner-api/config"
	"rex-dinner-api/handlers"
	"rex-dinner-api/models"
	"rex-dinner-api/notify"
	"rex-dinner-api/routes"
	"rex-dinner-api/store"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Load configuration and open the record store
	config.Init()
	config.InitDB()

	recordStore, err := store.New(config.DB)
	if err != nil {
		log.Fatal("Failed to initialize record store:", err)
	}

	menuCache, err := cache.NewMenuCache(
		viper.GetInt("cache.size"),
		time.Duration(viper.GetInt("cache.ttl_seconds"))*time.Second,
	)
	if err != nil {
		log.Fatal("Failed to initialize menu cache:", err)
	}

	// The notifier re-reads the channel wiring on every send so staff
	// config edits apply immediately.
	notifier := notify.NewDiscord(func() models.DiscordChannels {
		cfg := store.LoadOne(recordStore, store.KeyWebsiteConfig, store.DefaultSiteConfig())
		return cfg.DiscordChannels
	})

	handlers.Init(recordStore, notifier, menuCache)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Rex Dinner Restaurant API",
			"version": "1.0.0",
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	port := viper.GetString("server.port")
	log.Printf("🍽️ Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
