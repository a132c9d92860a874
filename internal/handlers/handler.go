package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"jobcompass/internal/config"
	"jobcompass/internal/services"
	"jobcompass/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Handler struct {
	cfg          config.Config
	logger       *slog.Logger
	db           *gorm.DB
	rdb          *redis.Client
	applications *services.ApplicationService
	analytics    *services.AnalyticsService
	settings     *services.SettingsService
	images       storage.ImageStore
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	rdb *redis.Client,
	applications *services.ApplicationService,
	analytics *services.AnalyticsService,
	settings *services.SettingsService,
	images storage.ImageStore,
) *Handler {
	return &Handler{
		cfg:          cfg,
		logger:       logger,
		db:           db,
		rdb:          rdb,
		applications: applications,
		analytics:    analytics,
		settings:     settings,
		images:       images,
	}
}

// respondError maps service-layer errors onto HTTP responses.
func (h *Handler) respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Email is already in use"})
	case errors.Is(err, services.ErrWrongPassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
	default:
		h.logger.Error("Internal error", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
