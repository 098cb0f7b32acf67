package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campusarena/backend/internal/mocks"
	"github.com/campusarena/backend/internal/service"
	"github.com/campusarena/backend/internal/testhelpers"
	"github.com/campusarena/backend/internal/types"
)

func newAuthService(t *testing.T, requireConfirmation bool, email service.IEmailService) (*service.AuthService, *service.StudentService) {
	db := testhelpers.SetupTestDatabase(t)
	revocations := testhelpers.NewMemoryRevocationStore()
	return service.NewAuthService(db, "test-secret", revocations, email, requireConfirmation),
		service.NewStudentService(db)
}

func TestRegisterCreatesProfileFromMetadata(t *testing.T) {
	authSvc, studentSvc := newAuthService(t, false, nil)
	ctx := context.Background()

	user, token, err := authSvc.Register(ctx, &types.RegisterRequest{
		FullName:        "A",
		Email:           "a@college.edu",
		Password:        "secret123",
		CollegeID:       "C1",
		GamePreferences: []string{"X"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := authSvc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	student, err := studentSvc.Load(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", student.FullName)
	assert.Equal(t, "C1", student.CollegeID)
	assert.Equal(t, []string{"X"}, []string(student.GamePreferences))
	assert.False(t, student.IsAdmin)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	authSvc, _ := newAuthService(t, false, nil)
	ctx := context.Background()

	req := &types.RegisterRequest{
		FullName:        "First",
		Email:           "dup@college.edu",
		Password:        "secret123",
		GamePreferences: []string{"Chess"},
	}
	_, _, err := authSvc.Register(ctx, req)
	require.NoError(t, err)

	// The unique index reports the duplicate; there is no read-then-insert
	// window for a concurrent register to slip through.
	_, _, err = authSvc.Register(ctx, req)
	assert.ErrorIs(t, err, service.ErrUserExists)
}

func TestLogin(t *testing.T) {
	authSvc, _ := newAuthService(t, false, nil)
	ctx := context.Background()

	_, _, err := authSvc.Register(ctx, &types.RegisterRequest{
		FullName:        "Login Tester",
		Email:           "login@college.edu",
		Password:        "secret123",
		GamePreferences: []string{"Valorant"},
	})
	require.NoError(t, err)

	token, err := authSvc.Login(ctx, "login@college.edu", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = authSvc.Login(ctx, "login@college.edu", "wrong-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = authSvc.Login(ctx, "nobody@college.edu", "secret123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLogoutRevokesTokenImmediately(t *testing.T) {
	authSvc, _ := newAuthService(t, false, nil)
	ctx := context.Background()

	_, token, err := authSvc.Register(ctx, &types.RegisterRequest{
		FullName:        "Leaver",
		Email:           "leaver@college.edu",
		Password:        "secret123",
		GamePreferences: []string{"Dota 2"},
	})
	require.NoError(t, err)

	claims, err := authSvc.ValidateToken(ctx, token)
	require.NoError(t, err)

	require.NoError(t, authSvc.Logout(ctx, claims))

	_, err = authSvc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, service.ErrTokenRevoked)
}

func TestRegisterWithConfirmationRequired(t *testing.T) {
	emailMock := new(mocks.MockEmailService)
	emailMock.On("SendVerificationEmail", mock.AnythingOfType("*models.User"), mock.AnythingOfType("string")).Return(nil)

	authSvc, _ := newAuthService(t, true, emailMock)
	ctx := context.Background()

	user, token, err := authSvc.Register(ctx, &types.RegisterRequest{
		FullName:        "Pending",
		Email:           "pending@college.edu",
		Password:        "secret123",
		GamePreferences: []string{"FIFA"},
	})
	require.NoError(t, err)
	assert.Empty(t, token, "no session until the email is confirmed")
	assert.False(t, user.EmailVerified)
	emailMock.AssertCalled(t, "SendVerificationEmail", mock.AnythingOfType("*models.User"), mock.AnythingOfType("string"))

	// Login is refused until verification
	_, err = authSvc.Login(ctx, "pending@college.edu", "secret123")
	assert.ErrorIs(t, err, service.ErrEmailNotVerified)

	// Verify using the token handed to the email service
	verifyToken := emailMock.Calls[0].Arguments.String(1)
	require.NoError(t, authSvc.VerifyEmail(ctx, verifyToken))

	sessionToken, err := authSvc.Login(ctx, "pending@college.edu", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, sessionToken)
}

func TestVerifyEmailRejectsSessionToken(t *testing.T) {
	authSvc, _ := newAuthService(t, false, nil)
	ctx := context.Background()

	_, token, err := authSvc.Register(ctx, &types.RegisterRequest{
		FullName:        "Misuse",
		Email:           "misuse@college.edu",
		Password:        "secret123",
		GamePreferences: []string{"Tekken"},
	})
	require.NoError(t, err)

	// A session token must not pass as a verification token
	assert.Error(t, authSvc.VerifyEmail(ctx, token))
}
