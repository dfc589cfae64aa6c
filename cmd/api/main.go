package main

import (
	"fmt"
	"os"

	"pricing-simulator/internal/api/handlers"
	"pricing-simulator/internal/api/middleware"
	"pricing-simulator/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := config.Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			logrus.WithError(err).Fatalf("failed to load config %s", path)
		}
		cfg = loaded
	}
	if port := os.Getenv("API_PORT"); port != "" {
		cfg.Server.Port = port
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if os.Getenv("API_ENV") == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	}

	registry, err := handlers.NewSessionRegistry(cfg.ModelParams())
	if err != nil {
		logrus.WithError(err).Fatal("invalid model parameters")
	}

	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	sessionHandler := handlers.NewSessionHandler(registry)
	dataHandler := handlers.NewDataHandler(registry)
	pricingHandler := handlers.NewPricingHandler(registry)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "message": "Pricing Simulator API is running"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/sessions", sessionHandler.CreateSession)

		api.POST("/catalog", dataHandler.LoadCatalog)
		api.POST("/observations", dataHandler.LoadObservations)
		api.POST("/demo", dataHandler.GenerateDemo)

		api.POST("/elasticities", pricingHandler.ComputeElasticities)
		api.GET("/products", pricingHandler.ListProducts)
		api.POST("/simulate", pricingHandler.Simulate)
		api.POST("/optimize", pricingHandler.Optimize)
	}

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logrus.Infof("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		logrus.WithError(err).Fatal("Failed to start server")
	}
}
