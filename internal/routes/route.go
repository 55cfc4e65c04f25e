package routes

import (
	"github.com/gatherly/server/internal/container"
	"github.com/gatherly/server/internal/handlers"
	"github.com/gatherly/server/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	if container.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     container.Config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "gatherly-api",
			})
		})
	}

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/signup", handlers.Signup(container.AuthService))
		authRoutes.POST("/login", handlers.Login(container.AuthService))
		authRoutes.GET("/profile",
			middleware.AuthMiddleware(container.TokenManager),
			handlers.Profile(container.AuthService),
		)
	}

	eventRoutes := api.Group("/events")
	eventRoutes.Use(middleware.AuthMiddleware(container.TokenManager))
	{
		eventRoutes.POST("", handlers.CreateEvent(container.EventService))
		eventRoutes.GET("", handlers.ListEvents(container.EventService))
		// /stats before /:id so the param route doesn't shadow it
		eventRoutes.GET("/stats", handlers.GetEventStats(container.EventService))
		eventRoutes.GET("/:id", handlers.GetEventByID(container.EventService))
		eventRoutes.DELETE("/:id", handlers.DeleteEvent(container.EventService))
	}

	return r
}
