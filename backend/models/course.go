package models

import "gorm.io/gorm"

// Course difficulty levels.
const (
	LevelBeginner     = "iniciante"
	LevelIntermediate = "intermediario"
	LevelAdvanced     = "avancado"
)

type Course struct {
	gorm.Model
	Title       string   `gorm:"not null" json:"title"`
	Description string   `gorm:"not null" json:"description"`
	Price       float64  `gorm:"not null" json:"price"`
	Level       string   `gorm:"not null" json:"level"`
	Duration    int      `gorm:"not null" json:"duration"` // hours
	Image       string   `json:"image"`
	IsFeatured  bool     `gorm:"default:false" json:"is_featured"`
	Modules     []Module `json:"modules,omitempty"`
}

type Module struct {
	gorm.Model
	CourseID    uint     `gorm:"not null" json:"course_id"`
	Title       string   `gorm:"not null" json:"title"`
	Description string   `json:"description"`
	Position    int      `gorm:"default:0" json:"position"`
	Lessons     []Lesson `json:"lessons,omitempty"`
}

type Lesson struct {
	gorm.Model
	ModuleID uint   `gorm:"not null" json:"module_id"`
	Title    string `gorm:"not null" json:"title"`
	Content  string `gorm:"not null" json:"content"`
	VideoURL string `json:"video_url"`
	Position int    `gorm:"default:0" json:"position"`
	Duration int    `json:"duration"` // minutes
}
