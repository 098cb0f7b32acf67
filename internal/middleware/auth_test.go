package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/campusarena/backend/internal/middleware"
	"github.com/campusarena/backend/internal/mocks"
	"github.com/campusarena/backend/internal/types"
)

func runAuthMiddleware(t *testing.T, validator middleware.TokenValidator, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reached := false
	router := gin.New()
	router.GET("/protected", middleware.AuthMiddleware(validator), func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w, reached
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	w, reached := runAuthMiddleware(t, new(mocks.MockAuthService), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	w, reached := runAuthMiddleware(t, new(mocks.MockAuthService), "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	validator := new(mocks.MockAuthService)
	validator.On("ValidateToken", mock.Anything, "bad").Return(nil, errors.New("token is malformed"))

	w, reached := runAuthMiddleware(t, validator, "Bearer bad")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	validator := new(mocks.MockAuthService)
	validator.On("ValidateToken", mock.Anything, "good").Return(&types.TokenClaims{
		UserID: uuid.New(),
		Email:  "jane@college.edu",
	}, nil)

	w, reached := runAuthMiddleware(t, validator, "Bearer good")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, reached)
}
