package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowAnalytics(c *gin.Context) {
	userID := currentUserID(c)

	summary, err := h.analytics.Summarize(userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
