package models

import (
	"time"

	"gorm.io/gorm"
)

// Mentorship statuses.
const (
	MentorshipStatusPending  = "pending"
	MentorshipStatusApproved = "approved"
	MentorshipStatusRejected = "rejected"
)

type Mentorship struct {
	gorm.Model
	UserID        uint      `gorm:"not null" json:"user_id"`
	Subject       string    `gorm:"not null" json:"subject"`
	Description   string    `json:"description"`
	Status        string    `gorm:"default:pending" json:"status"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Notes         string    `json:"notes"`
}
