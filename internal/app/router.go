package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"github.com/augustintsang/gigaml-takehome/internal/handler"
	"github.com/augustintsang/gigaml-takehome/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	DriverHandler *handler.DriverHandler
	RiderHandler  *handler.RiderHandler
	RideHandler   *handler.RideHandler
	SimHandler    *handler.SimHandler
	AllowedOrigin string
	RedisClient   *redis.Client
	NewRelicApp   *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware(deps.AllowedOrigin))

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Simulation routes.
	router.GET("/state", deps.SimHandler.GetState)
	router.POST("/tick", deps.SimHandler.Tick)
	router.POST("/reset", deps.SimHandler.Reset)

	// Driver routes.
	drivers := router.Group("/drivers")
	{
		drivers.POST("", deps.DriverHandler.CreateDriver)
		drivers.DELETE("/:id", deps.DriverHandler.DeleteDriver)
	}

	// Rider routes.
	riders := router.Group("/riders")
	{
		riders.POST("", deps.RiderHandler.CreateRider)
		riders.DELETE("/:id", deps.RiderHandler.DeleteRider)
	}

	// Ride routes.
	rides := router.Group("/rides")
	{
		rides.POST("/request", deps.RideHandler.RequestRide)
		rides.POST("/:id/accept", deps.RideHandler.AcceptRide)
		rides.POST("/:id/reject", deps.RideHandler.RejectRide)
	}

	return router
}
