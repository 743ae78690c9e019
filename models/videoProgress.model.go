package models

import (
	"time"

	"gorm.io/gorm"
)

// VideoProgress tracks how much of a video a user has watched.
// The composite unique index keeps at most one row per (user, video) pair.
type VideoProgress struct {
	gorm.Model
	UserID        uint       `json:"user_id" gorm:"uniqueIndex:idx_user_video;not null"`
	VideoID       uint       `json:"video_id" gorm:"uniqueIndex:idx_user_video;not null"`
	Progress      float64    `json:"progress" gorm:"default:0"` // watched fraction in [0,1]
	CompletedAt   *time.Time `json:"completed_at"`
	LastWatchedAt time.Time  `json:"last_watched_at"`
}

func (VideoProgress) TableName() string {
	return "user_video_progress"
}
