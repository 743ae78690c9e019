package services

import (
	"fluently/models"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated sqlite database for one test
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Video{}, &models.VideoProgress{}))
	return db
}

// seedVideo inserts a catalog entry with a controlled creation time
func seedVideo(t *testing.T, db *gorm.DB, video models.Video, createdAt time.Time) models.Video {
	t.Helper()

	if video.Level == "" {
		video.Level = models.LevelBeginner
	}
	if video.Category == "" {
		video.Category = "general"
	}
	video.CreatedAt = createdAt

	require.NoError(t, db.Create(&video).Error)
	return video
}
