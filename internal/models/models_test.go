package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModels(t *testing.T) {
	t.Run("JobApplication TableName", func(t *testing.T) {
		app := JobApplication{}
		assert.Equal(t, "job_applications", app.TableName())
	})

	t.Run("ValidStatus", func(t *testing.T) {
		assert.True(t, ValidStatus(StatusApplied))
		assert.True(t, ValidStatus(StatusInReview))
		assert.True(t, ValidStatus(StatusInterview))
		assert.True(t, ValidStatus(StatusRejected))

		assert.False(t, ValidStatus("applied")) // case-sensitive
		assert.False(t, ValidStatus("Offer"))
		assert.False(t, ValidStatus(""))
	})

	t.Run("ValidTheme", func(t *testing.T) {
		assert.True(t, ValidTheme(ThemeLight))
		assert.True(t, ValidTheme(ThemeDark))
		assert.False(t, ValidTheme("solarized"))
		assert.False(t, ValidTheme(""))
	})
}
