package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campusarena/backend/internal/service"
	"github.com/campusarena/backend/internal/types"
)

// ProfileHandler serves the signed-in profile view backed by the
// synchronizer, and owner-scoped profile updates.
type ProfileHandler struct {
	studentService service.IStudentService
}

func NewProfileHandler(studentService service.IStudentService) *ProfileHandler {
	return &ProfileHandler{studentService: studentService}
}

// GetProfile runs ensure-then-load for the session identity. A sync failure
// is logged and rendered as a null profile; the session itself stays intact
// so the front-end can show its placeholder state.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	student, err := h.studentService.Sync(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusOK, gin.H{"profile": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": student})
}

// UpdateProfile applies a partial patch to the caller's own row and returns
// the reloaded profile.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.FullName != nil && strings.TrimSpace(*req.FullName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "full name cannot be empty"})
		return
	}

	student, err := h.studentService.Update(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": student})
}

func sessionUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
