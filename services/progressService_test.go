package services

import (
	"fluently/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProgressCreatesRecord(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(db)

	video := seedVideo(t, db, models.Video{VimeoID: "1", IsPublished: true}, time.Now())

	record, err := svc.UpdateProgress(7, video.ID, 0.5)
	require.NoError(t, err)

	assert.Equal(t, uint(7), record.UserID)
	assert.Equal(t, video.ID, record.VideoID)
	assert.InDelta(t, 0.5, record.Progress, 1e-9)
	assert.Nil(t, record.CompletedAt)
	assert.False(t, record.LastWatchedAt.IsZero())
}

func TestUpdateProgressSingleRowPerPair(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(db)

	video := seedVideo(t, db, models.Video{VimeoID: "1", IsPublished: true}, time.Now())

	first, err := svc.UpdateProgress(7, video.ID, 0.3)
	require.NoError(t, err)
	second, err := svc.UpdateProgress(7, video.ID, 0.6)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.InDelta(t, 0.6, second.Progress, 1e-9)

	var count int64
	require.NoError(t, db.Model(&models.VideoProgress{}).
		Where("user_id = ? AND video_id = ?", 7, video.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateProgressCompletionIsMonotonic(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(db)

	video := seedVideo(t, db, models.Video{VimeoID: "1", IsPublished: true}, time.Now())

	record, err := svc.UpdateProgress(7, video.ID, 0.97)
	require.NoError(t, err)
	require.NotNil(t, record.CompletedAt)
	completedAt := *record.CompletedAt

	// Rewinding must not erase completion
	record, err = svc.UpdateProgress(7, video.ID, 0.3)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, record.Progress, 1e-9)
	require.NotNil(t, record.CompletedAt)
	assert.WithinDuration(t, completedAt, *record.CompletedAt, time.Second)
}

func TestUpdateProgressExplicitCompletionSignal(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(db)

	video := seedVideo(t, db, models.Video{VimeoID: "1", IsPublished: true}, time.Now())

	record, err := svc.UpdateProgress(7, video.ID, 1.0)
	require.NoError(t, err)
	assert.NotNil(t, record.CompletedAt)
}

func TestUpdateProgressPairsAreIndependent(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(db)

	video := seedVideo(t, db, models.Video{VimeoID: "1", IsPublished: true}, time.Now())
	other := seedVideo(t, db, models.Video{VimeoID: "2", IsPublished: true}, time.Now())

	_, err := svc.UpdateProgress(7, video.ID, 1.0)
	require.NoError(t, err)
	_, err = svc.UpdateProgress(7, other.ID, 0.1)
	require.NoError(t, err)
	_, err = svc.UpdateProgress(8, video.ID, 0.2)
	require.NoError(t, err)

	record, err := svc.GetProgress(8, video.ID)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.InDelta(t, 0.2, record.Progress, 1e-9)
	assert.Nil(t, record.CompletedAt)
}

func TestUpdateProgressRejectsOutOfRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(db)

	_, err := svc.UpdateProgress(7, 1, -0.1)
	assert.Error(t, err)

	_, err = svc.UpdateProgress(7, 1, 1.1)
	assert.Error(t, err)
}

func TestGetProgressNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(db)

	record, err := svc.GetProgress(7, 42)
	require.NoError(t, err)
	assert.Nil(t, record)
}
