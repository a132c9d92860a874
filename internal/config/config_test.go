package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Default Values", func(t *testing.T) {
		cfg, err := LoadConfig()
		assert.NoError(t, err)
		assert.Equal(t, "local", cfg.AppEnv)
		assert.Equal(t, "2000", cfg.Port)
		assert.Equal(t, 587, cfg.SMTPPort)
		assert.Equal(t, "./uploads", cfg.UploadDir)
	})

	t.Run("Environment Variables", func(t *testing.T) {
		os.Setenv("PORT", "9999")
		os.Setenv("SMTP_HOST", "smtp.example.com")
		defer os.Unsetenv("PORT")
		defer os.Unsetenv("SMTP_HOST")

		cfg, err := LoadConfig()
		assert.NoError(t, err)
		assert.Equal(t, "9999", cfg.Port)
		assert.Equal(t, "smtp.example.com", cfg.SMTPHost)
	})
}
