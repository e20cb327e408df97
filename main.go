package main

import (
	"fmt"
	"log"
	"os"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Fatalf("Error loading .env file: %v", err)
	}

	// Check required environment variables
	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"CORE_API_URL",
		"REDIS_URL",
		"PORT",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()
}

func setupRouter() *gin.Engine {
	router := gin.Default()

	coreConfig := config.LoadCoreAPIConfig()
	dbConfig := config.LoadDatabaseConfig()

	if err := repository.SetupIndexes(utils.MongoClient.Database(dbConfig.DatabaseName)); err != nil {
		log.Printf("Warning: failed to set up database indexes: %v", err)
	}

	// Repositories for service-local state; business entities live in the core
	importsRepo := repository.GetImportsRepo(utils.MongoClient)
	preferencesRepo := repository.GetPreferencesRepo(utils.MongoClient)

	coreClient := services.NewCoreClient(coreConfig)

	// The dashboard refetches its lists constantly; cache misses fall
	// through to the core, so a down Redis degrades instead of breaking
	var reportCache *services.ReportCache
	if !coreConfig.CacheSkip {
		cache, err := services.NewReportCache(coreConfig.RedisURL, coreConfig.CacheTTL)
		if err != nil {
			log.Printf("Warning: report cache disabled: %v", err)
		} else {
			reportCache = cache
			services.GlobalReportCache = cache
		}
	}

	schedulesService := &usecase.SchedulesService{Core: coreClient, Cache: reportCache}
	statementsService := &usecase.StatementsService{Core: coreClient, Cache: reportCache}
	importsService := &usecase.ImportsService{ImportsRepo: importsRepo, Core: coreClient, Cache: reportCache}
	preferencesService := &usecase.PreferencesService{PreferencesRepo: preferencesRepo}
	statsHandler := handler.NewStatsHandler(importsRepo)

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())

	// Public routes (no authentication required)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		// Schedule reminder rules
		schedules := protected.Group("/schedules")
		{
			schedules.GET("", func(c *gin.Context) {
				handler.ListSchedulesHandler(c, schedulesService)
			})
			schedules.POST("/preview", func(c *gin.Context) {
				handler.PreviewScheduleHandler(c, schedulesService)
			})
			schedules.PUT("/:tag", func(c *gin.Context) {
				handler.SaveScheduleHandler(c, schedulesService)
			})
		}

		// Date range presets
		dateRanges := protected.Group("/date-ranges")
		dateRanges.Use(middleware.CacheControlMiddleware("60"))
		{
			dateRanges.GET("", handler.ListPresetsHandler)
			dateRanges.GET("/resolve", func(c *gin.Context) {
				handler.ResolveDateRangeHandler(c, statementsService)
			})
		}

		// CSV imports
		imports := protected.Group("/imports")
		{
			uploads := imports.Group("")
			uploads.Use(middleware.RequestSizeLimiter(usecase.MaxUploadSize + 64*1024)) // multipart overhead
			{
				uploads.POST("/expenses", func(c *gin.Context) {
					handler.UploadExpensesHandler(c, importsService)
				})
				uploads.POST("/reservations", func(c *gin.Context) {
					handler.UploadReservationsHandler(c, importsService)
				})
			}

			imports.GET("", func(c *gin.Context) {
				handler.ListImportsHandler(c, importsService)
			})
			imports.GET("/:id", func(c *gin.Context) {
				handler.GetImportHandler(c, importsService)
			})
			imports.POST("/:id/commit", func(c *gin.Context) {
				handler.CommitImportHandler(c, importsService)
			})
			imports.DELETE("/:id", func(c *gin.Context) {
				handler.DiscardImportHandler(c, importsService)
			})
		}

		// Column layout preferences
		preferences := protected.Group("/preferences/columns")
		{
			preferences.GET("/:table", func(c *gin.Context) {
				handler.GetColumnLayoutHandler(c, preferencesService)
			})
			preferences.PUT("/:table", func(c *gin.Context) {
				handler.SaveColumnLayoutHandler(c, preferencesService)
			})
			preferences.DELETE("/:table", func(c *gin.Context) {
				handler.ResetColumnLayoutHandler(c, preferencesService)
			})
		}

		// Brokered core views
		protected.GET("/statements", func(c *gin.Context) {
			handler.ListStatementsHandler(c, statementsService)
		})
		protected.GET("/statements/:id/pdf", func(c *gin.Context) {
			handler.StatementPDFHandler(c, statementsService)
		})
		protected.GET("/listings", func(c *gin.Context) {
			handler.ListListingsHandler(c, statementsService)
		})
		protected.GET("/tags", func(c *gin.Context) {
			handler.ListTagsHandler(c, statementsService)
		})
		protected.POST("/stripe/connect-link", func(c *gin.Context) {
			handler.CreateStripeLinkHandler(c, statementsService)
		})

		protected.GET("/stats", statsHandler.GetServiceStats)
	}

	return router
}

func main() {
	router := setupRouter()

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
