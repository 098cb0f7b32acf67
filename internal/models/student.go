package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Student is the registration profile. Exactly one row exists per identity,
// enforced by the unique index on user_id. Rows are never deleted by the
// application; they cascade with identity deletion at the schema level.
type Student struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Email           string                      `gorm:"size:255;not null" json:"email"`
	FullName        string                      `gorm:"size:255;not null" json:"full_name"`
	CollegeID       string                      `gorm:"size:100" json:"college_id"`
	GamePreferences datatypes.JSONSlice[string] `json:"game_preferences"`
	IsAdmin         bool                        `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}

func (Student) TableName() string {
	return "students"
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.GamePreferences == nil {
		s.GamePreferences = datatypes.NewJSONSlice([]string{})
	}
	return nil
}
