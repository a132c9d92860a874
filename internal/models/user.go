package models

import (
	"time"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type User struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"not null;size:120" json:"name"`
	Email             string    `gorm:"unique;not null;size:120" json:"email"`
	PasswordHash      string    `gorm:"not null;size:255" json:"-"`
	Theme             string    `gorm:"size:10;default:light" json:"theme"`
	WeeklyReminder    bool      `gorm:"default:false" json:"weekly_reminder"`
	MonthlyReminder   bool      `gorm:"default:false" json:"monthly_reminder"`
	EmailNotification bool      `gorm:"default:false" json:"email_notification"`
	ProfilePicture    string    `gorm:"type:text" json:"profile_picture"`
	APIKey            string    `gorm:"unique;index;size:36" json:"api_key"`
	CreatedAt         time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	Applications []JobApplication `gorm:"foreignKey:UserID" json:"applications,omitempty"`
}

func ValidTheme(theme string) bool {
	return theme == ThemeLight || theme == ThemeDark
}
