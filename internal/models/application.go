package models

import (
	"time"
)

// Canonical pipeline statuses. Stored as-is; matching elsewhere is
// case-sensitive against these labels.
const (
	StatusApplied   = "Applied"
	StatusInReview  = "In Review"
	StatusInterview = "Interview"
	StatusRejected  = "Rejected"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusApplied, StatusInReview, StatusInterview, StatusRejected:
		return true
	}
	return false
}

type JobApplication struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"not null;index" json:"user_id"`
	User              *User     `gorm:"foreignKey:UserID" json:"-"`
	JobURL            string    `gorm:"type:text" json:"job_url"`
	JobTitle          string    `gorm:"not null;size:200" json:"job_title"`
	Company           string    `gorm:"not null;size:200" json:"company"`
	Location          string    `gorm:"size:200" json:"location"`
	DateOfApplication time.Time `gorm:"not null;index" json:"date_of_application"`
	Status            string    `gorm:"not null;size:20;default:Applied;index" json:"status"`
	CreatedAt         time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName overrides the table name used by JobApplication
func (JobApplication) TableName() string {
	return "job_applications"
}
