package services

import (
	"errors"
	"fluently/models"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CompletionThreshold is the watched fraction at which a video counts as
// completed. The player is expected to send progress = 1.0 once it crosses
// this, but a raw fraction at or above it also counts.
const CompletionThreshold = 0.95

// ProgressService is the single write path for watch progress
type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

// UpdateProgress upserts the viewer's progress row for a video. The upsert
// is atomic on the (user_id, video_id) unique index. completed_at is set on
// the first completing update and never cleared afterwards, so a rewind
// cannot erase completion.
func (s *ProgressService) UpdateProgress(userID, videoID uint, progress float64) (*models.VideoProgress, error) {
	if progress < 0 || progress > 1 {
		return nil, fmt.Errorf("progress must be between 0 and 1, got %v", progress)
	}

	now := time.Now()
	record := models.VideoProgress{
		UserID:        userID,
		VideoID:       videoID,
		Progress:      progress,
		LastWatchedAt: now,
	}
	if progress >= CompletionThreshold {
		record.CompletedAt = &now
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"progress":        progress,
			"last_watched_at": now,
			"updated_at":      now,
			// unqualified completed_at is the existing row's value
			"completed_at": gorm.Expr("COALESCE(completed_at, excluded.completed_at)"),
		}),
	}).Create(&record).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update video progress: %v", err)
	}

	var stored models.VideoProgress
	if err := s.db.Where("user_id = ? AND video_id = ?", userID, videoID).First(&stored).Error; err != nil {
		return nil, fmt.Errorf("failed to load video progress: %v", err)
	}
	return &stored, nil
}

// GetProgress returns the viewer's progress for one video, or nil when they
// have never watched it.
func (s *ProgressService) GetProgress(userID, videoID uint) (*models.VideoProgress, error) {
	var record models.VideoProgress
	err := s.db.Where("user_id = ? AND video_id = ?", userID, videoID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video progress: %v", err)
	}
	return &record, nil
}
