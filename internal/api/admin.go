package api

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campusarena/backend/internal/service"
)

var errServiceStoreUnconfigured = errors.New("admin datastore is not configured: SERVICE_DATABASE_URL is missing")

// AdminHandler serves the two stateless admin endpoints. Each request
// re-checks the shared secret independently; there is no session state. Data
// comes from the elevated store, which is not subject to owner scoping.
type AdminHandler struct {
	store  service.StudentLister
	secret string
}

// NewAdminHandler creates the handler. store may be nil when no elevated
// credentials are configured; requests then fail with a generic server error
// after the secret check. An empty secret rejects every request.
func NewAdminHandler(store service.StudentLister, secret string) *AdminHandler {
	return &AdminHandler{store: store, secret: secret}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup, throttle gin.HandlerFunc) {
	admin := router.Group("/admin")
	if throttle != nil {
		admin.Use(throttle)
	}
	{
		admin.GET("/list", h.List)
		admin.GET("/export", h.Export)
	}
}

// authorized checks the shared secret from the x-admin-secret header or the
// secret query parameter. With no configured secret there is no way in.
func (h *AdminHandler) authorized(c *gin.Context) bool {
	supplied := c.GetHeader("x-admin-secret")
	if supplied == "" {
		supplied = c.Query("secret")
	}
	if h.secret == "" || supplied == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(h.secret)) == 1
}

// adminStudentRow is the listing shape; the elevated store also reads
// is_admin, which the listing deliberately omits.
type adminStudentRow struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Email           string    `json:"email"`
	FullName        string    `json:"full_name"`
	CollegeID       string    `json:"college_id"`
	GamePreferences []string  `json:"game_preferences"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// List returns every profile row as JSON, newest first.
func (h *AdminHandler) List(c *gin.Context) {
	if !h.authorized(c) {
		c.String(http.StatusUnauthorized, "Unauthorized")
		return
	}
	if h.store == nil {
		c.Error(errServiceStoreUnconfigured)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	students, err := h.store.ListStudents(c.Request.Context())
	if err != nil {
		c.Error(err)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	rows := make([]adminStudentRow, 0, len(students))
	for _, s := range students {
		rows = append(rows, adminStudentRow{
			ID:              s.ID,
			UserID:          s.UserID,
			Email:           s.Email,
			FullName:        s.FullName,
			CollegeID:       s.CollegeID,
			GamePreferences: s.GamePreferences,
			CreatedAt:       s.CreatedAt,
			UpdatedAt:       s.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, rows)
}

// Export returns every profile row as CSV, newest first.
func (h *AdminHandler) Export(c *gin.Context) {
	if !h.authorized(c) {
		c.String(http.StatusUnauthorized, "Unauthorized")
		return
	}
	if h.store == nil {
		c.Error(errServiceStoreUnconfigured)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	students, err := h.store.ListStudents(c.Request.Context())
	if err != nil {
		c.Error(err)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	body, err := studentsCSV(students)
	if err != nil {
		c.Error(err)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="students.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(body))
}
