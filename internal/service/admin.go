package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campusarena/backend/internal/models"
)

var ErrNotAdmin = errors.New("admin access required")

// AdminDirectory serves the signed-in directory view. The caller's is_admin
// flag is checked before anything else; the elevated store is only a read
// path for already-authorized admins, never an authority of its own. When the
// elevated store is absent or failing, the listing falls back to a query on
// the application connection.
type AdminDirectory struct {
	elevated StudentLister
	db       *gorm.DB
}

// Ensure AdminDirectory implements IAdminDirectory
var _ IAdminDirectory = (*AdminDirectory)(nil)

// NewAdminDirectory creates the directory. elevated may be nil when no
// service credentials are configured; only the fallback tier runs then.
func NewAdminDirectory(elevated StudentLister, db *gorm.DB) *AdminDirectory {
	return &AdminDirectory{elevated: elevated, db: db}
}

func (d *AdminDirectory) List(ctx context.Context, callerID uuid.UUID) ([]models.Student, error) {
	var caller models.Student
	if err := d.db.WithContext(ctx).Where("user_id = ?", callerID).First(&caller).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotAdmin
		}
		return nil, fmt.Errorf("error loading caller profile: %w", err)
	}
	if !caller.IsAdmin {
		return nil, ErrNotAdmin
	}

	if d.elevated != nil {
		students, err := d.elevated.ListStudents(ctx)
		if err == nil {
			return students, nil
		}
		log.Printf("Admin directory: elevated listing failed, falling back to direct query: %v", err)
	}

	var students []models.Student
	if err := d.db.WithContext(ctx).Order("created_at DESC").Find(&students).Error; err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	return students, nil
}
