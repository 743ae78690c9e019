package services

import (
	"errors"
	"fluently/models"
	"fmt"
	"math"
	"strings"

	"gorm.io/gorm"
)

// VideoFilters narrows a catalog listing. Zero values (or "all") apply no
// restriction; set filters compose conjunctively.
type VideoFilters struct {
	Search    string `query:"search"`
	Level     string `query:"level"`
	Category  string `query:"category"`
	Completed *bool  `query:"completed"`
}

// VideoWithProgress is a catalog entry with the viewer's progress attached,
// when they have any.
type VideoWithProgress struct {
	models.Video
	Progress *models.VideoProgress `json:"progress,omitempty"`
}

// UserStats summarizes a viewer's activity across the catalog
type UserStats struct {
	TotalVideos      int64 `json:"total_videos"`
	CompletedVideos  int64 `json:"completed_videos"`
	InProgressVideos int64 `json:"in_progress_videos"`
	CompletionRate   int   `json:"completion_rate"` // percentage, 0-100
}

// VideoService exposes read access to the published video catalog
type VideoService struct {
	db *gorm.DB
}

func NewVideoService(db *gorm.DB) *VideoService {
	return &VideoService{db: db}
}

// GetVideos returns published videos newest-first, restricted by the filters
func (s *VideoService) GetVideos(filters VideoFilters) ([]models.Video, error) {
	var videos []models.Video
	query := s.db.Where("is_published = ?", true).Order("created_at desc")
	query = applyFilters(query, filters)

	if err := query.Find(&videos).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch videos: %v", err)
	}
	return videos, nil
}

// GetVideosWithProgress returns published videos with the viewer's progress
// record attached. Videos the viewer has never watched still appear, with no
// progress. The Completed filter partitions the merged result.
func (s *VideoService) GetVideosWithProgress(userID uint, filters VideoFilters) ([]VideoWithProgress, error) {
	videos, err := s.GetVideos(filters)
	if err != nil {
		return nil, err
	}

	videoIDs := make([]uint, 0, len(videos))
	for _, video := range videos {
		videoIDs = append(videoIDs, video.ID)
	}

	progressByVideo := make(map[uint]models.VideoProgress)
	if len(videoIDs) > 0 {
		var records []models.VideoProgress
		if err := s.db.Where("user_id = ? AND video_id IN ?", userID, videoIDs).Find(&records).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch video progress: %v", err)
		}
		for _, record := range records {
			progressByVideo[record.VideoID] = record
		}
	}

	result := make([]VideoWithProgress, 0, len(videos))
	for _, video := range videos {
		entry := VideoWithProgress{Video: video}
		if record, ok := progressByVideo[video.ID]; ok {
			progress := record
			entry.Progress = &progress
		}
		if filters.Completed != nil {
			isCompleted := entry.Progress != nil && entry.Progress.CompletedAt != nil
			if isCompleted != *filters.Completed {
				continue
			}
		}
		result = append(result, entry)
	}

	return result, nil
}

// GetVideo returns a published video by id, or nil when it does not exist or
// is not published.
func (s *VideoService) GetVideo(id uint) (*models.Video, error) {
	var video models.Video
	err := s.db.Where("id = ? AND is_published = ?", id, true).First(&video).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video: %v", err)
	}
	return &video, nil
}

// GetCategories returns the distinct categories among published videos,
// sorted alphabetically.
func (s *VideoService) GetCategories() ([]string, error) {
	var categories []string
	err := s.db.Model(&models.Video{}).
		Where("is_published = ?", true).
		Distinct("category").
		Order("category asc").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %v", err)
	}
	return categories, nil
}

// GetUserStats computes the viewer's completion statistics
func (s *VideoService) GetUserStats(userID uint) (*UserStats, error) {
	stats := &UserStats{}

	if err := s.db.Model(&models.Video{}).
		Where("is_published = ?", true).
		Count(&stats.TotalVideos).Error; err != nil {
		return nil, fmt.Errorf("failed to count videos: %v", err)
	}

	if err := s.db.Model(&models.VideoProgress{}).
		Where("user_id = ? AND completed_at IS NOT NULL", userID).
		Count(&stats.CompletedVideos).Error; err != nil {
		return nil, fmt.Errorf("failed to count completed videos: %v", err)
	}

	if err := s.db.Model(&models.VideoProgress{}).
		Where("user_id = ? AND completed_at IS NULL AND progress > 0", userID).
		Count(&stats.InProgressVideos).Error; err != nil {
		return nil, fmt.Errorf("failed to count in-progress videos: %v", err)
	}

	if stats.TotalVideos > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.CompletedVideos) / float64(stats.TotalVideos) * 100))
	}

	return stats, nil
}

// SearchVideos matches the term against title or description of published
// videos, newest-first.
func (s *VideoService) SearchVideos(term string) ([]models.Video, error) {
	var videos []models.Video
	pattern := "%" + strings.ToLower(term) + "%"
	err := s.db.Where("is_published = ?", true).
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("created_at desc").
		Find(&videos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search videos: %v", err)
	}
	return videos, nil
}

// applyFilters adds the optional search/level/category restrictions.
// LOWER(...) LIKE instead of ILIKE so the same query runs on the sqlite
// databases used in tests.
func applyFilters(query *gorm.DB, filters VideoFilters) *gorm.DB {
	if filters.Search != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filters.Search)+"%")
	}
	if filters.Level != "" && filters.Level != "all" {
		query = query.Where("level = ?", filters.Level)
	}
	if filters.Category != "" && filters.Category != "all" {
		query = query.Where("category = ?", filters.Category)
	}
	return query
}
