package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/roshan-1001/credence-realtor-sub001/internal/handler/http"
	"github.com/roshan-1001/credence-realtor-sub001/internal/infrastructure/config"
	"github.com/roshan-1001/credence-realtor-sub001/internal/infrastructure/external_services"
	"github.com/roshan-1001/credence-realtor-sub001/internal/infrastructure/logger"
	"github.com/roshan-1001/credence-realtor-sub001/internal/infrastructure/repository/staticdata"
	"github.com/roshan-1001/credence-realtor-sub001/internal/infrastructure/store"
	"github.com/roshan-1001/credence-realtor-sub001/internal/infrastructure/validator"
	"github.com/roshan-1001/credence-realtor-sub001/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()

	// Static dataset snapshot, always available as the local fallback
	dataset, err := staticdata.NewListingRepository()
	if err != nil {
		log.Fatalf("Failed to load static dataset: %v", err)
	}

	// One bounded store per query class
	listingCache := store.NewMemoryStore(100)
	projectCache := store.NewMemoryStore(50)

	// Dependency Injection: Usecases
	listingUsecase := usecase.NewListingUseCase(dataset, appLogger)
	listingUsecase.SetResponseCache(listingCache)

	var projectUsecase usecase.IProjectUseCase
	if baseURL := appConfig.GetUpstreamBaseURL(); baseURL != "" {
		provider := external_services.NewEstateProviderService(
			baseURL,
			appConfig.GetUpstreamAPIKey(),
			appConfig.GetUpstreamTimeout(),
			appLogger,
		)
		projectUC := usecase.NewProjectUseCase(provider, appValidator, appLogger)
		projectUC.SetResponseCache(projectCache)
		projectUsecase = projectUC
	} else {
		appLogger.Infof("UPSTREAM_BASE_URL not set, serving from the static dataset only")
	}

	// Initialize Gin router
	router := gin.Default()

	// Setup API routes
	appRouter := handlerHttp.NewRouter(listingUsecase, projectUsecase)
	appRouter.SetupRoutes(router)

	// Start the server
	port := appConfig.GetPort()
	appLogger.Infof("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
