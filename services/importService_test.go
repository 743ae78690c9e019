package services

import (
	"errors"
	"fluently/models"
	"fluently/vimeo"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeLister struct {
	videos []vimeo.Video
	err    error
}

func (f *fakeLister) ListAllVideos() ([]vimeo.Video, error) {
	return f.videos, f.err
}

func remoteVideo(id, name, description string) vimeo.Video {
	v := vimeo.Video{
		URI:         "/videos/" + id,
		Name:        name,
		Description: description,
		Duration:    300,
		Status:      "available",
	}
	v.Privacy.View = "anybody"
	v.Pictures.Sizes = []vimeo.PictureSize{
		{Width: 100, Link: "https://i.vimeocdn.com/100.jpg"},
		{Width: 640, Link: "https://i.vimeocdn.com/640.jpg"},
		{Width: 1920, Link: "https://i.vimeocdn.com/1920.jpg"},
	}
	return v
}

func TestImportCreatesVideos(t *testing.T) {
	db := newTestDB(t)
	lister := &fakeLister{videos: []vimeo.Video{
		remoteVideo("111", "Grammar Basics", "An intro to articles"),
		remoteVideo("222", "Business Meetings", "Advanced phrases"),
	}}

	summary, err := NewVimeoImporter(db, lister).Run()
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, 0, summary.Updated)
	assert.Equal(t, 0, summary.Skipped)
	assert.NotEmpty(t, summary.RunID)

	var video models.Video
	require.NoError(t, db.Where("vimeo_id = ?", "111").First(&video).Error)
	assert.Equal(t, "Grammar Basics", video.Title)
	assert.Equal(t, "grammar", video.Category)
	assert.Equal(t, models.LevelBeginner, video.Level) // "intro" keyword
	assert.Equal(t, "https://i.vimeocdn.com/1920.jpg", video.ThumbnailURL)
	assert.Equal(t, "https://player.vimeo.com/video/111", video.EmbedURL)
	assert.True(t, video.IsPublished)
	require.NotNil(t, video.Duration)
	assert.Equal(t, 300, *video.Duration)
}

func TestImportIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	lister := &fakeLister{videos: []vimeo.Video{
		remoteVideo("111", "Grammar Basics", ""),
		remoteVideo("222", "Small Talk", "conversation practice"),
	}}
	importer := NewVimeoImporter(db, lister)

	first, err := importer.Run()
	require.NoError(t, err)
	assert.Equal(t, 2, first.Imported)

	second, err := importer.Run()
	require.NoError(t, err)
	assert.Equal(t, 0, second.Imported)
	assert.Equal(t, 2, second.Updated)

	var count int64
	require.NoError(t, db.Model(&models.Video{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestImportUpdatesExistingByVimeoID(t *testing.T) {
	db := newTestDB(t)
	lister := &fakeLister{videos: []vimeo.Video{remoteVideo("111", "Old Title", "")}}
	importer := NewVimeoImporter(db, lister)

	_, err := importer.Run()
	require.NoError(t, err)

	var original models.Video
	require.NoError(t, db.Where("vimeo_id = ?", "111").First(&original).Error)

	lister.videos = []vimeo.Video{remoteVideo("111", "New Grammar Title", "")}
	summary, err := importer.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Updated)

	var updated models.Video
	require.NoError(t, db.Where("vimeo_id = ?", "111").First(&updated).Error)
	assert.Equal(t, original.ID, updated.ID)
	assert.WithinDuration(t, original.CreatedAt, updated.CreatedAt, time.Second)
	assert.Equal(t, "New Grammar Title", updated.Title)
	assert.Equal(t, "grammar", updated.Category)
}

func TestImportContinuesAfterWriteFailure(t *testing.T) {
	db := newTestDB(t)

	// Fail the insert of one specific video
	err := db.Callback().Create().Before("gorm:create").Register("force_failure", func(tx *gorm.DB) {
		if video, ok := tx.Statement.Dest.(*models.Video); ok && video.Title == "Poison" {
			tx.AddError(errors.New("forced write failure"))
		}
	})
	require.NoError(t, err)

	lister := &fakeLister{videos: []vimeo.Video{
		remoteVideo("1", "First", ""),
		remoteVideo("2", "Second", ""),
		remoteVideo("3", "Poison", ""),
		remoteVideo("4", "Fourth", ""),
		remoteVideo("5", "Fifth", ""),
	}}

	summary, runErr := NewVimeoImporter(db, lister).Run()
	require.NoError(t, runErr)
	assert.Equal(t, 4, summary.Imported)
	assert.Equal(t, 1, summary.Skipped)

	var count int64
	require.NoError(t, db.Model(&models.Video{}).Count(&count).Error)
	assert.Equal(t, int64(4), count)
}

func TestImportSkipsUnusableURI(t *testing.T) {
	db := newTestDB(t)
	broken := remoteVideo("", "No ID", "")
	broken.URI = "/channels/12345"
	lister := &fakeLister{videos: []vimeo.Video{broken, remoteVideo("9", "Fine", "")}}

	summary, err := NewVimeoImporter(db, lister).Run()
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 1, summary.Skipped)
}

func TestImportAbortsWhenListingFails(t *testing.T) {
	db := newTestDB(t)
	lister := &fakeLister{err: errors.New("rate limited")}

	summary, err := NewVimeoImporter(db, lister).Run()
	assert.Error(t, err)
	assert.Nil(t, summary)
}

func TestImportPublishedFlag(t *testing.T) {
	db := newTestDB(t)

	disabled := remoteVideo("1", "Disabled", "")
	disabled.Privacy.View = "disable"
	uploading := remoteVideo("2", "Uploading", "")
	uploading.Status = "uploading"
	available := remoteVideo("3", "Available", "")

	lister := &fakeLister{videos: []vimeo.Video{disabled, uploading, available}}
	_, err := NewVimeoImporter(db, lister).Run()
	require.NoError(t, err)

	var videos []models.Video
	require.NoError(t, db.Order("vimeo_id asc").Find(&videos).Error)
	require.Len(t, videos, 3)
	assert.False(t, videos[0].IsPublished)
	assert.False(t, videos[1].IsPublished)
	assert.True(t, videos[2].IsPublished)
}

func TestImportOmitsMissingOptionalFields(t *testing.T) {
	db := newTestDB(t)

	bare := remoteVideo("1", "Bare", "")
	bare.Duration = 0
	bare.Pictures.Sizes = nil

	lister := &fakeLister{videos: []vimeo.Video{bare}}
	_, err := NewVimeoImporter(db, lister).Run()
	require.NoError(t, err)

	var video models.Video
	require.NoError(t, db.Where("vimeo_id = ?", "1").First(&video).Error)
	assert.Nil(t, video.Duration)
	assert.Empty(t, video.ThumbnailURL)
}

func TestCategorizeVideo(t *testing.T) {
	tests := []struct {
		title       string
		description string
		want        string
	}{
		{"Grammar and Vocabulary", "", "grammar"}, // first match wins
		{"Vocab Builder", "", "vocabulary"},
		{"How to Pronounce TH", "", "pronunciation"},
		{"Speaking Confidently", "", "conversation"},
		{"Business English", "", "business"},
		{"", "improve your listening skills", "listening"},
		{"Essay Writing", "", "writing"},
		{"Reading Comprehension", "", "reading"},
		{"Morning Routine", "daily vlog", "general"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategorizeVideo(tt.title, tt.description), "title=%q description=%q", tt.title, tt.description)
	}
}

func TestDetermineLevel(t *testing.T) {
	tests := []struct {
		title       string
		description string
		want        string
	}{
		{"Basic Greetings", "", models.LevelBeginner},
		{"Intro to Phrasal Verbs", "", models.LevelBeginner},
		{"Advanced Idioms", "", models.LevelAdvanced},
		{"", "for expert speakers", models.LevelAdvanced},
		{"Intermediate Listening", "", models.LevelIntermediate},
		{"Morning Routine", "", models.LevelBeginner}, // default
		{"Beginner to Advanced", "", models.LevelBeginner},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetermineLevel(tt.title, tt.description), "title=%q description=%q", tt.title, tt.description)
	}
}
