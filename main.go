package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"tawthiqproject/database"
	"tawthiqproject/handlers"
	repository "tawthiqproject/repositories"
	routes "tawthiqproject/routes"
	services "tawthiqproject/services"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using process environment")
	}

	ctx := context.Background()

	// Persistent slot: one serialized record under one key. Mongo when
	// configured, a local JSON file otherwise.
	var repo repository.StateRepository
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		client, err := database.Connect(ctx, uri)
		if err != nil {
			logger.Fatal("mongo connection failed", zap.Error(err))
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.Error("mongo disconnect failed", zap.Error(err))
			}
		}()

		dbName := os.Getenv("MONGO_DATABASE")
		if dbName == "" {
			dbName = "tawthiq"
		}
		repo = repository.NewMongoStateRepository(client.Database(dbName))
		logger.Info("using mongo state slot", zap.String("database", dbName))
	} else {
		path := os.Getenv("STATE_FILE")
		if path == "" {
			path = "tawthiq_state.json"
		}
		repo = repository.NewFileStateRepository(path)
		logger.Info("using file state slot", zap.String("path", path))
	}

	stateService, err := services.NewStateService(ctx, repo, logger)
	if err != nil {
		logger.Fatal("state load failed", zap.Error(err))
	}

	// The generative service is optional; without a key the deterministic
	// summarizer carries the narrative on its own.
	var generator services.TextGenerator
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		generator, err = services.NewGeminiGenerator(ctx, apiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			logger.Warn("gemini client unavailable, narrative falls back to local summarizer", zap.Error(err))
			generator = nil
		}
	} else {
		logger.Info("GEMINI_API_KEY not set, narrative uses local summarizer only")
	}

	narrativeService := services.NewNarrativeService(generator, logger)
	reportService := services.NewReportService(stateService, narrativeService)

	stateHandler := handlers.NewStateHandler(stateService)
	reportHandler := handlers.NewReportHandler(reportService)

	handler := routes.SetupRoutes(stateHandler, reportHandler, logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	logger.Info("server starting", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
