package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/campusarena/backend/internal/models"
	"github.com/campusarena/backend/internal/service"
	"github.com/campusarena/backend/internal/testhelpers"
	"github.com/campusarena/backend/internal/types"
)

func createUser(t *testing.T, db *gorm.DB, email, fullName, collegeID string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		PasswordHash: "x",
		FullName:     fullName,
		CollegeID:    collegeID,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestSyncCreatesMissingProfile(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewStudentService(db)
	ctx := context.Background()

	user := createUser(t, db, "sync@college.edu", "Sync Tester", "C9")

	student, err := svc.Sync(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, student.UserID)
	assert.Equal(t, "Sync Tester", student.FullName)
	assert.Equal(t, "C9", student.CollegeID)
	assert.Empty(t, []string(student.GamePreferences))
}

func TestSyncFullNameFallsBackToEmail(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewStudentService(db)
	ctx := context.Background()

	user := createUser(t, db, "anon@college.edu", "   ", "")

	student, err := svc.Sync(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "anon@college.edu", student.FullName)
}

func TestSyncIsIdempotent(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewStudentService(db)
	ctx := context.Background()

	user := createUser(t, db, "idem@college.edu", "Idempotent", "")

	first, err := svc.Sync(ctx, user.ID)
	require.NoError(t, err)
	second, err := svc.Sync(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Student{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEnsureTreatsExistingRowAsSuccess(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewStudentService(db)
	ctx := context.Background()

	user := createUser(t, db, "race@college.edu", "Racer", "")

	// Row created out-of-band, as the registration path would
	existing := models.Student{
		UserID:          user.ID,
		Email:           user.Email,
		FullName:        "Racer",
		GamePreferences: []string{"Rocket League"},
	}
	require.NoError(t, db.Create(&existing).Error)

	require.NoError(t, svc.Ensure(ctx, user))

	student, err := svc.Load(ctx, user.ID)
	require.NoError(t, err)
	// The ensure pass must not clobber the richer registration row
	assert.Equal(t, []string{"Rocket League"}, []string(student.GamePreferences))

	var count int64
	require.NoError(t, db.Model(&models.Student{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateReflectsPatchAndRefreshesTimestamp(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewStudentService(db)
	ctx := context.Background()

	user := createUser(t, db, "update@college.edu", "Before", "C1")
	before, err := svc.Sync(ctx, user.ID)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	newName := "After"
	games := []string{"A", "B"}
	after, err := svc.Update(ctx, user.ID, &types.UpdateProfileRequest{
		FullName:        &newName,
		GamePreferences: &games,
	})
	require.NoError(t, err)

	assert.Equal(t, "After", after.FullName)
	assert.Equal(t, "C1", after.CollegeID, "untouched fields survive the patch")
	assert.Equal(t, []string{"A", "B"}, []string(after.GamePreferences))
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt), "updated_at must move forward")
}

func TestUpdateMissingProfile(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewStudentService(db)
	ctx := context.Background()

	name := "Ghost"
	_, err := svc.Update(ctx, uuid.New(), &types.UpdateProfileRequest{FullName: &name})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
