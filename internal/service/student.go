package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campusarena/backend/internal/models"
	"github.com/campusarena/backend/internal/types"
)

// StudentService is the profile synchronizer: after a session is established
// it guarantees a student row exists for the identity and loads it. It also
// handles owner-scoped profile updates.
type StudentService struct {
	db *gorm.DB
}

// Ensure StudentService implements IStudentService
var _ IStudentService = (*StudentService)(nil)

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{db: db}
}

// Sync runs ensure-then-load for the given identity and returns the active
// profile. Callers treat an error as "no profile loaded"; the session itself
// stays valid.
func (s *StudentService) Sync(ctx context.Context, userID uuid.UUID) (*models.Student, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	if err := s.Ensure(ctx, &user); err != nil {
		return nil, err
	}
	return s.Load(ctx, user.ID)
}

// Ensure guarantees a student row exists for the identity. When the row is
// missing a minimal profile is inserted from the signup metadata, full name
// falling back to the email. The insert races with the registration path;
// a user_id conflict means the row already exists and counts as success.
func (s *StudentService) Ensure(ctx context.Context, user *models.User) error {
	var existing models.Student
	err := s.db.WithContext(ctx).Select("id").Where("user_id = ?", user.ID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	fullName := strings.TrimSpace(user.FullName)
	if fullName == "" {
		fullName = user.Email
	}

	student := models.Student{
		UserID:    user.ID,
		Email:     user.Email,
		FullName:  fullName,
		CollegeID: user.CollegeID,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&student).Error
}

// Load re-queries the profile by user_id.
func (s *StudentService) Load(ctx context.Context, userID uuid.UUID) (*models.Student, error) {
	var student models.Student
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// Update applies a partial patch to the caller's own profile and reloads the
// row so server-computed fields (updated_at) are reflected.
func (s *StudentService) Update(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.Student, error) {
	var student models.Student
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&student).Error; err != nil {
		return nil, err
	}

	if req.FullName != nil {
		student.FullName = *req.FullName
	}
	if req.CollegeID != nil {
		student.CollegeID = *req.CollegeID
	}
	if req.GamePreferences != nil {
		student.GamePreferences = *req.GamePreferences
	}

	if err := s.db.WithContext(ctx).Save(&student).Error; err != nil {
		return nil, err
	}

	return s.Load(ctx, userID)
}
