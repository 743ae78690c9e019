package models

import "gorm.io/gorm"

// Video levels
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Video represents a lesson in the catalog, sourced from Vimeo
type Video struct {
	gorm.Model
	VimeoID      string `json:"vimeo_id" gorm:"uniqueIndex;not null"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Duration     *int   `json:"duration"` // seconds, nil when Vimeo does not report it
	Level        string `json:"level" gorm:"default:'beginner'"`
	Category     string `json:"category" gorm:"default:'general'"`
	ThumbnailURL string `json:"thumbnail_url"`
	EmbedURL     string `json:"embed_url"`
	IsPublished  bool   `json:"is_published" gorm:"default:false"`
}
