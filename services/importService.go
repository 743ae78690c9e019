package services

import (
	"errors"
	"fluently/models"
	"fluently/vimeo"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VimeoLister fetches the full video listing of the connected Vimeo account
type VimeoLister interface {
	ListAllVideos() ([]vimeo.Video, error)
}

// ImportSummary reports the outcome of one catalog import run
type ImportSummary struct {
	RunID    string `json:"run_id"`
	Imported int    `json:"imported"`
	Updated  int    `json:"updated"`
	Skipped  int    `json:"skipped"` // unusable entries plus per-item write failures
}

// VimeoImporter reconciles the Vimeo account's videos into the local catalog
type VimeoImporter struct {
	db     *gorm.DB
	client VimeoLister
}

func NewVimeoImporter(db *gorm.DB, client VimeoLister) *VimeoImporter {
	return &VimeoImporter{db: db, client: client}
}

// Run fetches every video of the account and upserts each one into the
// catalog, keyed by vimeo_id. Items are processed one at a time; a failure
// on one item is logged and counted, and the run continues with the next.
// Already-written items stay written if a later one fails.
func (s *VimeoImporter) Run() (*ImportSummary, error) {
	remoteVideos, err := s.client.ListAllVideos()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch videos from Vimeo: %v", err)
	}

	summary := &ImportSummary{RunID: uuid.NewString()}
	log.Printf("Import run %s: found %d videos on Vimeo", summary.RunID, len(remoteVideos))

	for _, remote := range remoteVideos {
		vimeoID := vimeo.ExtractVideoID(remote.URI)
		if vimeoID == "" {
			log.Printf("Skipping video with unusable URI %q", remote.URI)
			summary.Skipped++
			continue
		}

		video := buildVideo(vimeoID, remote)

		var existing models.Video
		err := s.db.Where("vimeo_id = ?", vimeoID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := s.db.Create(&video).Error; err != nil {
				log.Printf("Error inserting video %q (vimeo_id=%s): %v", video.Title, vimeoID, err)
				summary.Skipped++
				continue
			}
			summary.Imported++
		case err != nil:
			log.Printf("Error looking up video (vimeo_id=%s): %v", vimeoID, err)
			summary.Skipped++
			continue
		default:
			// Overwrite the remote-sourced fields, keep id and created_at
			existing.Title = video.Title
			existing.Description = video.Description
			existing.Duration = video.Duration
			existing.Level = video.Level
			existing.Category = video.Category
			existing.ThumbnailURL = video.ThumbnailURL
			existing.EmbedURL = video.EmbedURL
			existing.IsPublished = video.IsPublished

			if err := s.db.Save(&existing).Error; err != nil {
				log.Printf("Error updating video %q (vimeo_id=%s): %v", video.Title, vimeoID, err)
				summary.Skipped++
				continue
			}
			summary.Updated++
		}
	}

	return summary, nil
}

// buildVideo maps one Vimeo entry onto a catalog record
func buildVideo(vimeoID string, remote vimeo.Video) models.Video {
	var duration *int
	if remote.Duration > 0 {
		seconds := remote.Duration
		duration = &seconds
	}

	return models.Video{
		VimeoID:      vimeoID,
		Title:        remote.Name,
		Description:  remote.Description,
		Duration:     duration,
		Level:        DetermineLevel(remote.Name, remote.Description),
		Category:     CategorizeVideo(remote.Name, remote.Description),
		ThumbnailURL: vimeo.SelectThumbnail(remote.Pictures.Sizes),
		EmbedURL:     vimeo.EmbedURL(vimeoID),
		IsPublished:  remote.Status == "available" && remote.Privacy.View != "disable",
	}
}

// CategorizeVideo infers the lesson category from title and description.
// First keyword match wins.
func CategorizeVideo(title, description string) string {
	content := strings.ToLower(title + " " + description)

	switch {
	case strings.Contains(content, "grammar"):
		return "grammar"
	case strings.Contains(content, "vocabulary") || strings.Contains(content, "vocab"):
		return "vocabulary"
	case strings.Contains(content, "pronunciation") || strings.Contains(content, "pronounce"):
		return "pronunciation"
	case strings.Contains(content, "conversation") || strings.Contains(content, "speaking"):
		return "conversation"
	case strings.Contains(content, "business"):
		return "business"
	case strings.Contains(content, "listening"):
		return "listening"
	case strings.Contains(content, "writing"):
		return "writing"
	case strings.Contains(content, "reading"):
		return "reading"
	}

	return "general"
}

// DetermineLevel infers the lesson level from title and description
func DetermineLevel(title, description string) string {
	content := strings.ToLower(title + " " + description)

	switch {
	case strings.Contains(content, "beginner") || strings.Contains(content, "basic") || strings.Contains(content, "intro"):
		return models.LevelBeginner
	case strings.Contains(content, "advanced") || strings.Contains(content, "expert"):
		return models.LevelAdvanced
	case strings.Contains(content, "intermediate"):
		return models.LevelIntermediate
	}

	return models.LevelBeginner
}
