package handlers

import (
	"jobcompass/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter(rateLimiter *services.IPRateLimiter) *gin.Engine {
	r := gin.Default()

	// Middleware
	if rateLimiter != nil {
		r.Use(h.RateLimitMiddleware(rateLimiter))
	}

	store := cookie.NewStore([]byte(h.cfg.SessionSecret))
	r.Use(sessions.Sessions("jobcompass_session", store))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	if h.cfg.UploadDir != "" {
		r.Static("/uploads", h.cfg.UploadDir)
	}

	api := r.Group("/api")

	// Public Routes
	api.POST("/auth/register", h.RegisterUser)
	api.POST("/auth/login", h.LoginUser)
	api.POST("/auth/logout", h.LogoutUser)

	// Protected Routes
	authorized := api.Group("/")
	authorized.Use(h.AuthRequired())
	{
		authorized.POST("/auth/apikey", h.GenerateNewAPIKey)
		authorized.DELETE("/auth/account", h.DeleteAccount)

		authorized.GET("/jobapp", h.ListApplications)
		authorized.POST("/jobapp", h.CreateApplication)
		authorized.PATCH("/jobapp/:id", h.UpdateApplication)
		authorized.PUT("/jobapp/:id", h.UpdateApplication) // kept for old clients
		authorized.PATCH("/jobapp/:id/status", h.UpdateApplicationStatus)
		authorized.PUT("/jobapp/update-status", h.UpdateApplicationStatusByBody) // kept for old clients
		authorized.DELETE("/jobapp/:id", h.DeleteApplication)

		authorized.GET("/analytics", h.ShowAnalytics)

		authorized.GET("/settings", h.ShowSettings)
		authorized.PATCH("/settings", h.UpdateSettings)
		authorized.PUT("/settings", h.UpdateSettings) // kept for old clients
		authorized.POST("/settings/profile-picture", h.UploadProfilePicture)
	}

	return r
}
