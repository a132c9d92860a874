package handlers

import (
	"net/http"

	"jobcompass/internal/models"
	"jobcompass/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AuthRequired resolves the caller to a user ID from the session cookie or
// an X-API-Key header and stores it on the context. Core handlers never see
// credentials, only the resolved owner.
func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if userID, ok := session.Get("user_id").(uint); ok {
			c.Set("user_id", userID)
			c.Next()
			return
		}

		if apiKey := c.GetHeader("X-API-Key"); apiKey != "" {
			var user models.User
			if err := h.db.Where("api_key = ?", apiKey).First(&user).Error; err == nil {
				c.Set("user_id", user.ID)
				c.Next()
				return
			}
		}

		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		c.Abort()
	}
}

// currentUserID reads the owner set by AuthRequired.
func currentUserID(c *gin.Context) uint {
	return c.GetUint("user_id")
}

func (h *Handler) RateLimitMiddleware(limiter *services.IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		l := limiter.GetLimiter(ip)
		if !l.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
