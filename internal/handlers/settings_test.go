package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobcompass/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestShowSettings(t *testing.T) {
	h, _ := setupTestHandler()
	r := setupTestRouter(h)
	cookie := registerAndLogin(r, "Sam", "sam@example.com", "password123")

	w := doJSON(r, "GET", "/api/settings", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Sam", resp["name"])
	assert.Equal(t, "sam@example.com", resp["email"])
	assert.Equal(t, models.ThemeLight, resp["theme"])
	assert.Equal(t, false, resp["email_notification"])
	// Password never leaks
	_, hasPassword := resp["password_hash"]
	assert.False(t, hasPassword)
}

func TestUpdateSettingsHandler(t *testing.T) {
	h, db := setupTestHandler()
	r := setupTestRouter(h)
	cookie := registerAndLogin(r, "Tia", "tia@example.com", "password123")

	t.Run("Update theme and flags", func(t *testing.T) {
		w := doJSON(r, "PATCH", "/api/settings", map[string]interface{}{
			"theme":           models.ThemeDark,
			"weekly_reminder": true,
		}, cookie)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, models.ThemeDark, resp["theme"])
		assert.Equal(t, true, resp["weekly_reminder"])
	})

	t.Run("PUT hits the same operation", func(t *testing.T) {
		w := doJSON(r, "PUT", "/api/settings", map[string]interface{}{
			"name": "Tia B",
		}, cookie)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "Tia B", resp["name"])
	})

	t.Run("Email conflict", func(t *testing.T) {
		registerAndLogin(r, "Uma", "uma@example.com", "password123")

		w := doJSON(r, "PATCH", "/api/settings", map[string]interface{}{
			"email": "uma@example.com",
		}, cookie)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Invalid theme", func(t *testing.T) {
		w := doJSON(r, "PATCH", "/api/settings", map[string]interface{}{
			"theme": "neon",
		}, cookie)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Password change flow", func(t *testing.T) {
		w := doJSON(r, "PATCH", "/api/settings", map[string]interface{}{
			"current_password": "password123",
			"new_password":     "fresh-password",
		}, cookie)
		assert.Equal(t, http.StatusOK, w.Code)

		// Old password stops working
		w = doJSON(r, "POST", "/api/auth/login", map[string]string{
			"email":    "tia@example.com",
			"password": "password123",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = doJSON(r, "POST", "/api/auth/login", map[string]string{
			"email":    "tia@example.com",
			"password": "fresh-password",
		}, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Wrong current password", func(t *testing.T) {
		w := doJSON(r, "PATCH", "/api/settings", map[string]interface{}{
			"current_password": "wrong",
			"new_password":     "whatever-else",
		}, cookie)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	var user models.User
	db.Where("email = ?", "tia@example.com").First(&user)
	assert.Equal(t, "Tia B", user.Name)
}

func uploadRequest(t *testing.T, path, field, filename string, content []byte, cookie string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	assert.NoError(t, err)
	fw.Write(content)
	mw.Close()

	req, _ := http.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	return req
}

func TestUploadProfilePicture(t *testing.T) {
	h, db := setupTestHandler()
	r := setupTestRouter(h)
	cookie := registerAndLogin(r, "Val", "val@example.com", "password123")

	t.Run("Successful upload", func(t *testing.T) {
		req := uploadRequest(t, "/api/settings/profile-picture", "profile_picture", "me.png", []byte("img-bytes"), cookie)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]string
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.NotEmpty(t, resp["profile_picture_url"])

		var user models.User
		db.Where("email = ?", "val@example.com").First(&user)
		assert.Equal(t, resp["profile_picture_url"], user.ProfilePicture)
	})

	t.Run("Rejects non-image extension", func(t *testing.T) {
		req := uploadRequest(t, "/api/settings/profile-picture", "profile_picture", "script.exe", []byte("nope"), cookie)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Missing file", func(t *testing.T) {
		w := doJSON(r, "POST", "/api/settings/profile-picture", nil, cookie)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
