package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/webfolio/contact-backend/config"
	"github.com/webfolio/contact-backend/handlers"
	"github.com/webfolio/contact-backend/middleware"
)

// Dependencies holds everything required to set up routes.
type Dependencies struct {
	Config         *config.Config
	ContactHandler *handlers.ContactHandler
	HealthHandler  *handlers.HealthHandler
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Global middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	// Health and metrics routes
	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Contact intake
	r.POST("/contact", deps.ContactHandler.SubmitContact)

	return r
}
