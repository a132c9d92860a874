package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"jobcompass/internal/config"
	"jobcompass/internal/models"
	"jobcompass/internal/services"
	"jobcompass/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestHandler() (*Handler, *gorm.DB) {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	db.AutoMigrate(&models.User{}, &models.JobApplication{})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{
		SessionSecret: "test-secret-12345678901234567890123456789012",
	}

	notifier := services.NewNotifierService(db, logger, nil)
	analytics := services.NewAnalyticsService(db, logger, nil)
	applications := services.NewApplicationService(db, logger, notifier, analytics)
	settings := services.NewSettingsService(db, logger, notifier)

	uploadDir, _ := os.MkdirTemp("", "jobcompass-uploads")
	images := storage.NewLocalImageStore(uploadDir, "/uploads")

	h := NewHandler(cfg, logger, db, nil, applications, analytics, settings, images)
	return h, db
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return h.SetupRouter(nil)
}

func doJSON(r *gin.Engine, method, path string, body interface{}, cookie string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates a user through the API and returns the session cookie.
func registerAndLogin(r *gin.Engine, name, email, password string) string {
	doJSON(r, "POST", "/api/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, "")

	w := doJSON(r, "POST", "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")

	return w.Header().Get("Set-Cookie")
}
