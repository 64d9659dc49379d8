package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username       string `gorm:"unique;not null" json:"username"`
	Email          string `gorm:"unique;not null" json:"email"`
	PasswordHash   string `gorm:"not null" json:"-"`
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profile_picture"`
	IsAdmin        bool   `gorm:"default:false" json:"is_admin"`
}
