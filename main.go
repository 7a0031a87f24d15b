package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/wayfarer-app/api-go/config"
	"github.com/wayfarer-app/api-go/llm"
	"github.com/wayfarer-app/api-go/middleware"
	"github.com/wayfarer-app/api-go/places"
	"github.com/wayfarer-app/api-go/routes"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("No .env file found, using environment variables")
	}

	cfg := config.Load()

	// Initialize database
	db := config.InitDB()

	placeService := places.NewService(cfg.Places, nil, logger)

	llmClient, err := llm.NewClient(cfg.LLM, nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to configure assistant client")
	}

	// Create a new Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	// Initialize routes
	routes.SetupRoutes(r, db, placeService, llmClient, logger)

	logger.Info().Str("port", cfg.Port).Msg("Starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("Server stopped")
	}
}
