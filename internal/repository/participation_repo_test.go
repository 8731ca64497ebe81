package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/harborlight/orphanage-api/internal/models"
)

func setupTestDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models...))
	return db
}

func setupParticipationDB(t *testing.T) *gorm.DB {
	t.Helper()
	return setupTestDB(t, &models.Activity{}, &models.Child{}, &models.ActivityParticipation{})
}

func seedActivity(t *testing.T, db *gorm.DB, maxParticipants *int) models.Activity {
	t.Helper()
	activity := models.Activity{
		Title:           "Crafts Workshop",
		ActivityDate:    time.Now().Add(72 * time.Hour),
		Status:          models.ActivityStatusPlanned,
		MaxParticipants: maxParticipants,
		CreatedBy:       1,
	}
	require.NoError(t, db.Create(&activity).Error)
	return activity
}

func seedChild(t *testing.T, db *gorm.DB, name string) models.Child {
	t.Helper()
	child := models.Child{
		FullName:   name,
		AdmittedAt: time.Now().Add(-30 * 24 * time.Hour),
		Status:     models.ChildStatusActive,
	}
	require.NoError(t, db.Create(&child).Error)
	return child
}

func intPointer(v int) *int {
	return &v
}

func newParticipation(activityID, childID uint) *models.ActivityParticipation {
	now := time.Now()
	return &models.ActivityParticipation{
		ActivityID:   activityID,
		ChildID:      childID,
		Status:       models.ParticipationStatusRegistered,
		RegisteredAt: now,
		UpdatedAt:    now,
	}
}

func TestParticipationRepositoryEnrollEnforcesCapacity(t *testing.T) {
	db := setupParticipationDB(t)
	repo := NewParticipationRepository(db)

	activity := seedActivity(t, db, intPointer(2))
	first := seedChild(t, db, "Amara")
	second := seedChild(t, db, "Brian")
	third := seedChild(t, db, "Clara")

	require.NoError(t, repo.Enroll(context.Background(), newParticipation(activity.ID, first.ID)))
	require.NoError(t, repo.Enroll(context.Background(), newParticipation(activity.ID, second.ID)))

	err := repo.Enroll(context.Background(), newParticipation(activity.ID, third.ID))
	require.ErrorIs(t, err, ErrActivityFull)

	var count int64
	require.NoError(t, db.Model(&models.ActivityParticipation{}).Where("activity_id = ?", activity.ID).Count(&count).Error)
	require.Equal(t, int64(2), count)
}

func TestParticipationRepositoryEnrollRejectsDuplicatePair(t *testing.T) {
	db := setupParticipationDB(t)
	repo := NewParticipationRepository(db)

	activity := seedActivity(t, db, intPointer(10))
	child := seedChild(t, db, "Amara")

	enrollment := newParticipation(activity.ID, child.ID)
	require.NoError(t, repo.Enroll(context.Background(), enrollment))

	err := repo.Enroll(context.Background(), newParticipation(activity.ID, child.ID))
	require.ErrorIs(t, err, ErrEnrollmentExists)

	// A cancelled row still occupies the pair; only removal frees it.
	_, err = repo.UpdateStatus(context.Background(), enrollment.ID, models.ParticipationStatusCancelled)
	require.NoError(t, err)

	err = repo.Enroll(context.Background(), newParticipation(activity.ID, child.ID))
	require.ErrorIs(t, err, ErrEnrollmentExists)
}

func TestParticipationRepositoryZeroCapacityBlocksEveryEnrollment(t *testing.T) {
	db := setupParticipationDB(t)
	repo := NewParticipationRepository(db)

	activity := seedActivity(t, db, intPointer(0))
	child := seedChild(t, db, "Amara")

	err := repo.Enroll(context.Background(), newParticipation(activity.ID, child.ID))
	require.ErrorIs(t, err, ErrActivityFull)
}

func TestParticipationRepositoryNilCapacityIsUnlimited(t *testing.T) {
	db := setupParticipationDB(t)
	repo := NewParticipationRepository(db)

	activity := seedActivity(t, db, nil)
	for _, name := range []string{"Amara", "Brian", "Clara", "Daniel"} {
		child := seedChild(t, db, name)
		require.NoError(t, repo.Enroll(context.Background(), newParticipation(activity.ID, child.ID)))
	}
}

func TestParticipationRepositoryEnrollUnknownActivity(t *testing.T) {
	db := setupParticipationDB(t)
	repo := NewParticipationRepository(db)

	child := seedChild(t, db, "Amara")

	err := repo.Enroll(context.Background(), newParticipation(999, child.ID))
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestParticipationRepositoryRemovalFreesSlot(t *testing.T) {
	db := setupParticipationDB(t)
	repo := NewParticipationRepository(db)

	activity := seedActivity(t, db, intPointer(1))
	first := seedChild(t, db, "Amara")
	second := seedChild(t, db, "Brian")

	enrollment := newParticipation(activity.ID, first.ID)
	require.NoError(t, repo.Enroll(context.Background(), enrollment))

	err := repo.Enroll(context.Background(), newParticipation(activity.ID, second.ID))
	require.ErrorIs(t, err, ErrActivityFull)

	deleted, err := repo.Delete(context.Background(), enrollment.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	require.NoError(t, repo.Enroll(context.Background(), newParticipation(activity.ID, second.ID)))
}

func TestParticipationRepositoryDeleteIsIdempotent(t *testing.T) {
	db := setupParticipationDB(t)
	repo := NewParticipationRepository(db)

	activity := seedActivity(t, db, nil)
	child := seedChild(t, db, "Amara")

	enrollment := newParticipation(activity.ID, child.ID)
	require.NoError(t, repo.Enroll(context.Background(), enrollment))

	deleted, err := repo.Delete(context.Background(), enrollment.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), enrollment.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestParticipationRepositoryListOrdering(t *testing.T) {
	db := setupParticipationDB(t)
	repo := NewParticipationRepository(db)

	activity := seedActivity(t, db, nil)
	first := seedChild(t, db, "Amara")
	second := seedChild(t, db, "Brian")

	base := time.Now().Add(-time.Hour)
	early := newParticipation(activity.ID, first.ID)
	early.RegisteredAt = base
	late := newParticipation(activity.ID, second.ID)
	late.RegisteredAt = base.Add(10 * time.Minute)

	require.NoError(t, repo.Enroll(context.Background(), late))
	require.NoError(t, repo.Enroll(context.Background(), early))

	byActivity, err := repo.ListByActivity(context.Background(), activity.ID)
	require.NoError(t, err)
	require.Len(t, byActivity, 2)
	require.Equal(t, first.ID, byActivity[0].ChildID, "oldest registration first")
	require.Equal(t, second.ID, byActivity[1].ChildID)

	byChild, err := repo.ListByChild(context.Background(), first.ID)
	require.NoError(t, err)
	require.Len(t, byChild, 1)
	require.Equal(t, activity.ID, byChild[0].ActivityID)

	recent, err := repo.ListRecent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	require.Equal(t, second.ID, recent[0].ChildID, "newest registration first")
}

func TestParticipationRepositoryUpdateStatusUnknownID(t *testing.T) {
	db := setupParticipationDB(t)
	repo := NewParticipationRepository(db)

	_, err := repo.UpdateStatus(context.Background(), 42, models.ParticipationStatusAttended)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
