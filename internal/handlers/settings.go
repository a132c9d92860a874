package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"jobcompass/internal/models"
	"jobcompass/internal/services"

	"github.com/gin-gonic/gin"
)

const maxProfilePictureSize = 5 << 20 // 5MB

type UpdateSettingsRequest struct {
	Name                   *string `json:"name"`
	Email                  *string `json:"email"`
	Theme                  *string `json:"theme"`
	WeeklyReminder         *bool   `json:"weekly_reminder"`
	MonthlyReminder        *bool   `json:"monthly_reminder"`
	EmailNotification      *bool   `json:"email_notification"`
	CurrentPassword        string  `json:"current_password"`
	NewPassword            *string `json:"new_password"`
	SendChangeNotification *bool   `json:"send_change_notification"`
}

func settingsResponse(user *models.User) gin.H {
	return gin.H{
		"name":               user.Name,
		"email":              user.Email,
		"theme":              user.Theme,
		"weekly_reminder":    user.WeeklyReminder,
		"monthly_reminder":   user.MonthlyReminder,
		"email_notification": user.EmailNotification,
		"profile_picture":    user.ProfilePicture,
	}
}

func (h *Handler) ShowSettings(c *gin.Context) {
	userID := currentUserID(c)

	user, err := h.settings.Get(userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settingsResponse(user))
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	userID := currentUserID(c)

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.settings.Update(userID, services.UpdateSettingsInput{
		Name:                   req.Name,
		Email:                  req.Email,
		Theme:                  req.Theme,
		WeeklyReminder:         req.WeeklyReminder,
		MonthlyReminder:        req.MonthlyReminder,
		EmailNotification:      req.EmailNotification,
		CurrentPassword:        req.CurrentPassword,
		NewPassword:            req.NewPassword,
		SendChangeNotification: req.SendChangeNotification,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settingsResponse(user))
}

func allowedImageExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif":
		return true
	}
	return false
}

func (h *Handler) UploadProfilePicture(c *gin.Context) {
	userID := currentUserID(c)

	fileHeader, err := c.FormFile("profile_picture")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	if fileHeader.Size > maxProfilePictureSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the 5MB limit"})
		return
	}
	if !allowedImageExt(fileHeader.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Only JPEG, PNG, and GIF are allowed."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	url, err := h.images.Save(fileHeader.Filename, file)
	if err != nil {
		h.logger.Error("Failed to store profile picture", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload profile picture"})
		return
	}

	if _, err := h.settings.SetProfilePicture(userID, url); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":             "Profile picture uploaded successfully",
		"profile_picture_url": url,
	})
}
