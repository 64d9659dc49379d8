package models

import (
	"time"

	"gorm.io/gorm"
)

// Purchase statuses.
const (
	PurchaseStatusActive    = "active"
	PurchaseStatusCompleted = "completed"
	PurchaseStatusCancelled = "cancelled"
)

// Purchase grants a user access to a course. The composite unique index
// is the authoritative duplicate signal: the handler's existence
// pre-check only produces the friendlier message.
type Purchase struct {
	gorm.Model
	UserID      uint      `gorm:"not null;uniqueIndex:idx_purchases_user_course" json:"user_id"`
	CourseID    uint      `gorm:"not null;uniqueIndex:idx_purchases_user_course" json:"course_id"`
	Status      string    `gorm:"default:active" json:"status"`
	Progress    int       `gorm:"default:0" json:"progress"` // percentage
	PurchasedAt time.Time `json:"purchased_at"`
	Course      Course    `json:"course,omitempty"`
}

// LessonCompletion records that one user finished one lesson. Completion
// is scoped per user, not stored on the lesson itself.
type LessonCompletion struct {
	gorm.Model
	UserID   uint `gorm:"not null;uniqueIndex:idx_completions_user_lesson" json:"user_id"`
	LessonID uint `gorm:"not null;uniqueIndex:idx_completions_user_lesson" json:"lesson_id"`
}
