package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campusarena/backend/internal/models"
	"github.com/campusarena/backend/internal/types"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

const (
	sessionTokenTTL      = 24 * time.Hour
	verificationTokenTTL = 48 * time.Hour
)

// AuthService owns identities and session tokens.
type AuthService struct {
	db                  *gorm.DB
	jwtSecret           string
	revocations         RevocationStore
	email               IEmailService
	requireConfirmation bool
}

// Ensure AuthService implements IAuthService
var _ IAuthService = (*AuthService)(nil)

func NewAuthService(db *gorm.DB, jwtSecret string, revocations RevocationStore, email IEmailService, requireConfirmation bool) *AuthService {
	return &AuthService{
		db:                  db,
		jwtSecret:           jwtSecret,
		revocations:         revocations,
		email:               email,
		requireConfirmation: requireConfirmation,
	}
}

// Register creates an identity and its student profile in one pass. The
// profile insert upserts game preferences on a user_id conflict, so a row
// already created by the synchronizer's fallback never wins over the
// registration metadata. When confirmation is required no session token is
// returned and the caller must verify by mail first.
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*models.User, string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Email:         req.Email,
		PasswordHash:  string(hashedPassword),
		EmailVerified: !s.requireConfirmation,
		FullName:      strings.TrimSpace(req.FullName),
		CollegeID:     req.CollegeID,
	}
	// No pre-check on the email; the unique constraint is the authority, so a
	// register racing another register still reports the duplicate.
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrUserExists
		}
		return nil, "", err
	}

	student := models.Student{
		UserID:          user.ID,
		Email:           user.Email,
		FullName:        user.FullName,
		CollegeID:       user.CollegeID,
		GamePreferences: req.GamePreferences,
	}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"game_preferences"}),
	}).Create(&student).Error; err != nil {
		return nil, "", err
	}

	if s.requireConfirmation {
		verifyToken, err := s.generateVerificationToken(&user)
		if err != nil {
			return nil, "", err
		}
		if s.email != nil {
			if err := s.email.SendVerificationEmail(&user, verifyToken); err != nil {
				log.Printf("Failed to send verification email to %s: %v", user.Email, err)
			}
		}
		return &user, "", nil
	}

	token, err := s.generateToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login authenticates an identity and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	if s.requireConfirmation && !user.EmailVerified {
		return "", ErrEmailNotVerified
	}

	return s.generateToken(&user)
}

// Logout revokes the session token immediately. The profile attached to the
// session is gone as soon as this returns, independent of any later backend
// round trips.
func (s *AuthService) Logout(ctx context.Context, claims *types.TokenClaims) error {
	if claims.ID == "" {
		return nil
	}
	ttl := sessionTokenTTL
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}
	return s.revocations.Revoke(ctx, claims.ID, ttl)
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTokenTTL)),
		},
		UserID: user.ID,
		Email:  user.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses a session token and rejects revoked sessions.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.ID != "" && s.revocations != nil {
		revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("revocation check failed: %w", err)
		}
		if revoked {
			return nil, ErrTokenRevoked
		}
	}

	return claims, nil
}

func (s *AuthService) generateVerificationToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"purpose": "verify_email",
		"exp":     time.Now().Add(verificationTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// VerifyEmail marks the identity behind a verification token as confirmed.
func (s *AuthService) VerifyEmail(ctx context.Context, tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return errors.New("invalid token")
	}
	if purpose, _ := claims["purpose"].(string); purpose != "verify_email" {
		return errors.New("invalid token purpose")
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return errors.New("invalid token claims")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("email_verified", true).Error
}
