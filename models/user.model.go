package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ProfileImage        string    `gorm:"default:''"`
	Name                string    `gorm:"default:''"`
	Email               string    `gorm:"unique;not null"`
	Password            string    `gorm:"not null"`
	NativeLanguage      string    `gorm:"default:''"`
	EnglishLevel        string    `gorm:"default:'beginner'"` // self-reported: beginner, intermediate, advanced
	IsEmailVerified     bool      `gorm:"default:false"`
	LastLogin           time.Time `gorm:"default:NULL"`
	FailedLoginAttempts int       `gorm:"default:0"`
	IsDeleted           bool      `gorm:"default:false"`
}
