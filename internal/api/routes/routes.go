package routes

import (
	"log"

	"timesheet-backend/internal/api/handlers"
	"timesheet-backend/internal/api/middleware"
	"timesheet-backend/internal/auth"
	"timesheet-backend/internal/config"
	"timesheet-backend/internal/repository"
	"timesheet-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	employeeRepo := repository.NewEmployeeRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	periodRepo := repository.NewPeriodRepository(db)
	entryRepo := repository.NewDayEntryRepository(db)
	expectationRepo := repository.NewDayExpectationRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	txManager := repository.NewTransactionManager(db)

	// Initialize services
	resolver := service.NewExpectationResolver(settingsRepo)
	timesheetService := service.NewTimesheetService(employeeRepo, periodRepo, entryRepo, expectationRepo, resolver, txManager)
	periodService := service.NewPeriodService(periodRepo)
	employeeService := service.NewEmployeeService(employeeRepo, validator)
	settingsService := service.NewSettingsService(settingsRepo, validator)
	suggester := service.NewHTTPSuggester(cfg)
	suggestionService := service.NewSuggestionService(suggester, entryRepo, expectationRepo)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: Failed to load auth config: %v", err)
		authConfig = nil
	}

	var authMiddleware *auth.AuthMiddleware
	if authConfig != nil {
		authService, err := auth.NewAuthService(authConfig)
		if err != nil {
			log.Printf("Warning: Failed to initialize auth service: %v", err)
		} else {
			authMiddleware = auth.NewAuthMiddleware(authService)
		}
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	timesheetHandler := handlers.NewTimesheetHandler(timesheetService, periodService, suggestionService, employeeRepo)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	settingsHandler := handlers.NewSettingsHandler(settingsService, resolver, employeeRepo)
	projectHandler := handlers.NewProjectHandler(projectRepo)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")

	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	{
		// Timesheet routes
		timesheet := v1.Group("/timesheet")
		{
			timesheet.GET("", timesheetHandler.GetTimesheet)
			timesheet.PUT("/entries", timesheetHandler.ReplaceEntries)
			timesheet.GET("/summaries", timesheetHandler.GetSummaries)
			timesheet.POST("/suggest", timesheetHandler.Suggest)
		}

		// Period lifecycle routes
		periods := v1.Group("/periods")
		{
			periods.POST("/:weekKey/close", timesheetHandler.ClosePeriod)
			periods.POST("/:weekKey/reopen", timesheetHandler.ReopenPeriod)
		}

		// Self-service reads
		v1.GET("/employees/me", employeeHandler.GetCurrentEmployee)
		v1.GET("/settings/effective", settingsHandler.GetEffectiveSettings)
		v1.GET("/projects", projectHandler.ListProjects)

		// Admin routes
		admin := v1.Group("")
		if authMiddleware != nil {
			admin.Use(authMiddleware.RequireAdmin())
		}
		{
			employees := admin.Group("/employees")
			{
				employees.GET("", employeeHandler.ListEmployees)
				employees.POST("", employeeHandler.CreateEmployee)
				employees.GET("/:id", employeeHandler.GetEmployee)
				employees.PUT("/:id", employeeHandler.UpdateEmployee)
				employees.DELETE("/:id", employeeHandler.DeleteEmployee)
			}

			settings := admin.Group("/settings")
			{
				settings.GET("", settingsHandler.ListSettings)
				settings.POST("", settingsHandler.CreateSettings)
				settings.GET("/:id", settingsHandler.GetSettings)
				settings.PUT("/:id", settingsHandler.UpdateSettings)
				settings.DELETE("/:id", settingsHandler.DeleteSettings)
			}

			projects := admin.Group("/projects")
			{
				projects.POST("", projectHandler.CreateProject)
				projects.GET("/:id", projectHandler.GetProject)
				projects.PUT("/:id", projectHandler.UpdateProject)
				projects.DELETE("/:id", projectHandler.DeleteProject)
			}
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
