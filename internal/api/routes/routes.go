package routes

import (
	"flight-scheduler-backend/internal/api/handlers"
	"flight-scheduler-backend/internal/api/middleware"
	"flight-scheduler-backend/internal/auth"
	"flight-scheduler-backend/internal/config"
	"flight-scheduler-backend/internal/repository"
	"flight-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
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
	aircraftRepo := repository.NewAircraftRepository(db)
	flightRepo := repository.NewFlightRepository(db)
	pilotRepo := repository.NewPilotRepository(db)
	flightPilotRepo := repository.NewFlightPilotRepository(db)
	statisticsRepo := repository.NewStatisticsRepository(db)

	// Initialize services
	aircraftService := service.NewAircraftService(aircraftRepo, validator)
	flightService := service.NewFlightService(flightRepo, aircraftRepo, validator)
	pilotService := service.NewPilotService(pilotRepo, validator)
	flightPilotService := service.NewFlightPilotService(flightPilotRepo, flightRepo, pilotRepo, validator)
	statisticsService := service.NewStatisticsService(statisticsRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	aircraftHandler := handlers.NewAircraftHandler(aircraftService)
	flightHandler := handlers.NewFlightHandler(flightService)
	pilotHandler := handlers.NewPilotHandler(pilotService)
	flightPilotHandler := handlers.NewFlightPilotHandler(flightPilotService)
	statisticsHandler := handlers.NewStatisticsHandler(statisticsService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes and middleware, active only when AUTH_ENABLED is set
	var authMiddleware *auth.Middleware
	if cfg.AuthEnabled {
		authService := auth.NewService(cfg)
		authHandler := auth.NewHandler(authService)
		authMiddleware = auth.NewMiddleware(authService)

		authRoutes := router.Group("/api/auth")
		{
			authRoutes.POST("/token", authHandler.Token)
		}
	}

	// API v1 routes
	v1 := router.Group("/api/v1")

	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	{
		// Aircraft routes
		aircrafts := v1.Group("/aircrafts")
		{
			aircrafts.GET("", aircraftHandler.ListAircrafts)
			aircrafts.POST("", aircraftHandler.CreateAircraft)
			aircrafts.GET("/:id", aircraftHandler.GetAircraft)
			aircrafts.PUT("/:id", aircraftHandler.UpdateAircraft)
			aircrafts.DELETE("/:id", aircraftHandler.DeleteAircraft)
			aircrafts.GET("/:id/flights", flightHandler.GetFlightsByAircraft)
		}

		// Flight routes
		flights := v1.Group("/flights")
		{
			flights.GET("", flightHandler.ListFlights)
			flights.POST("", flightHandler.CreateFlight)
			flights.GET("/statistics", statisticsHandler.GetFlightStatistics)
			flights.GET("/:id", flightHandler.GetFlight)
			flights.PUT("/:id", flightHandler.UpdateFlight)
			flights.DELETE("/:id", flightHandler.DeleteFlight)
			flights.GET("/:id/pilots", flightPilotHandler.GetPilotsByFlight)
			flights.POST("/:id/pilots", flightPilotHandler.AssignPilot)
			flights.DELETE("/:id/pilots/:pilot_id", flightPilotHandler.UnassignPilot)
		}

		// Pilot routes
		pilots := v1.Group("/pilots")
		{
			pilots.GET("", pilotHandler.ListPilots)
			pilots.POST("", pilotHandler.CreatePilot)
			pilots.GET("/:id", pilotHandler.GetPilot)
			pilots.PUT("/:id", pilotHandler.UpdatePilot)
			pilots.DELETE("/:id", pilotHandler.DeletePilot)
			pilots.GET("/:id/flights", flightPilotHandler.GetFlightsByPilot)
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
