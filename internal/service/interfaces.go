package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/campusarena/backend/internal/models"
	"github.com/campusarena/backend/internal/types"
)

// IAuthService defines the identity and session operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error)
	Logout(ctx context.Context, claims *types.TokenClaims) error
	VerifyEmail(ctx context.Context, token string) error
}

// IStudentService defines the profile synchronizer and owner-scoped profile
// operations
type IStudentService interface {
	Sync(ctx context.Context, userID uuid.UUID) (*models.Student, error)
	Load(ctx context.Context, userID uuid.UUID) (*models.Student, error)
	Update(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.Student, error)
}

// IAdminDirectory lists all profiles for a signed-in caller
type IAdminDirectory interface {
	List(ctx context.Context, callerID uuid.UUID) ([]models.Student, error)
}

// StudentLister is the elevated read path used by the admin endpoints and the
// directory's primary tier
type StudentLister interface {
	ListStudents(ctx context.Context) ([]models.Student, error)
}

// IEmailService sends account mail
type IEmailService interface {
	SendVerificationEmail(user *models.User, token string) error
}
