package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/campusarena/backend/internal/models"
	"github.com/campusarena/backend/internal/types"
)

// MockAuthService is a testify mock of service.IAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *types.RegisterRequest) (*models.User, string, error) {
	args := m.Called(ctx, req)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error) {
	args := m.Called(ctx, token)
	var claims *types.TokenClaims
	if args.Get(0) != nil {
		claims = args.Get(0).(*types.TokenClaims)
	}
	return claims, args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, claims *types.TokenClaims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}

func (m *MockAuthService) VerifyEmail(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// MockStudentService is a testify mock of service.IStudentService
type MockStudentService struct {
	mock.Mock
}

func (m *MockStudentService) Sync(ctx context.Context, userID uuid.UUID) (*models.Student, error) {
	args := m.Called(ctx, userID)
	var student *models.Student
	if args.Get(0) != nil {
		student = args.Get(0).(*models.Student)
	}
	return student, args.Error(1)
}

func (m *MockStudentService) Load(ctx context.Context, userID uuid.UUID) (*models.Student, error) {
	args := m.Called(ctx, userID)
	var student *models.Student
	if args.Get(0) != nil {
		student = args.Get(0).(*models.Student)
	}
	return student, args.Error(1)
}

func (m *MockStudentService) Update(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.Student, error) {
	args := m.Called(ctx, userID, req)
	var student *models.Student
	if args.Get(0) != nil {
		student = args.Get(0).(*models.Student)
	}
	return student, args.Error(1)
}

// MockStudentLister is a testify mock of service.StudentLister
type MockStudentLister struct {
	mock.Mock
}

func (m *MockStudentLister) ListStudents(ctx context.Context) ([]models.Student, error) {
	args := m.Called(ctx)
	var students []models.Student
	if args.Get(0) != nil {
		students = args.Get(0).([]models.Student)
	}
	return students, args.Error(1)
}

// MockAdminDirectory is a testify mock of service.IAdminDirectory
type MockAdminDirectory struct {
	mock.Mock
}

func (m *MockAdminDirectory) List(ctx context.Context, callerID uuid.UUID) ([]models.Student, error) {
	args := m.Called(ctx, callerID)
	var students []models.Student
	if args.Get(0) != nil {
		students = args.Get(0).([]models.Student)
	}
	return students, args.Error(1)
}

// MockEmailService is a testify mock of service.IEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendVerificationEmail(user *models.User, token string) error {
	args := m.Called(user, token)
	return args.Error(0)
}
