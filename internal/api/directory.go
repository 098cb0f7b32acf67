package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusarena/backend/internal/service"
)

// DirectoryHandler serves the full registrant list to signed-in admins.
type DirectoryHandler struct {
	directory service.IAdminDirectory
}

func NewDirectoryHandler(directory service.IAdminDirectory) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

func (h *DirectoryHandler) ListStudents(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	students, err := h.directory.List(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load students"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"students": students})
}
