package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/campusarena/backend/internal/mocks"
	"github.com/campusarena/backend/internal/models"
)

func adminRequest(t *testing.T, handler gin.HandlerFunc, target, headerSecret string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	if headerSecret != "" {
		c.Request.Header.Set("x-admin-secret", headerSecret)
	}
	handler(c)
	return w
}

func TestAdminListUnauthorizedWithoutConfiguredSecret(t *testing.T) {
	lister := new(mocks.MockStudentLister)
	handler := NewAdminHandler(lister, "")

	// With no ADMIN_PASSWORD configured every request is unauthorized,
	// whatever secret the caller supplies
	for _, supplied := range []string{"", "guess", "hunter2"} {
		w := adminRequest(t, handler.List, "/api/v1/admin/list", supplied)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
	lister.AssertNotCalled(t, "ListStudents", mock.Anything)
}

func TestAdminListUnauthorizedWithWrongSecret(t *testing.T) {
	lister := new(mocks.MockStudentLister)
	handler := NewAdminHandler(lister, "hunter2")

	for _, supplied := range []string{"", "wrong", "hunter"} {
		w := adminRequest(t, handler.List, "/api/v1/admin/list", supplied)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
	lister.AssertNotCalled(t, "ListStudents", mock.Anything)
}

func TestAdminListAcceptsQueryParamSecret(t *testing.T) {
	lister := new(mocks.MockStudentLister)
	lister.On("ListStudents", mock.Anything).Return([]models.Student{}, nil)
	handler := NewAdminHandler(lister, "hunter2")

	w := adminRequest(t, handler.List, "/api/v1/admin/list?secret=hunter2", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminListReturnsRows(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	students := []models.Student{{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		Email:           "jane@college.edu",
		FullName:        "Jane Doe",
		CollegeID:       "C1",
		GamePreferences: []string{"A", "B"},
		IsAdmin:         true,
		CreatedAt:       created,
		UpdatedAt:       created,
	}}

	lister := new(mocks.MockStudentLister)
	lister.On("ListStudents", mock.Anything).Return(students, nil)
	handler := NewAdminHandler(lister, "hunter2")

	w := adminRequest(t, handler.List, "/api/v1/admin/list", "hunter2")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var rows []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if assert.Len(t, rows, 1) {
		assert.Equal(t, "jane@college.edu", rows[0]["email"])
		assert.Equal(t, "C1", rows[0]["college_id"])
		// The listing omits the privilege flag
		assert.NotContains(t, rows[0], "is_admin")
	}
}

func TestAdminListStorageFailure(t *testing.T) {
	lister := new(mocks.MockStudentLister)
	lister.On("ListStudents", mock.Anything).Return(nil, errors.New("pq: password authentication failed for user service_role"))
	handler := NewAdminHandler(lister, "hunter2")

	w := adminRequest(t, handler.List, "/api/v1/admin/list", "hunter2")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// The caller gets a generic message; credentials never leak
	assert.Equal(t, "Server error", w.Body.String())
}

func TestAdminListUnconfiguredStore(t *testing.T) {
	handler := NewAdminHandler(nil, "hunter2")

	w := adminRequest(t, handler.List, "/api/v1/admin/list", "hunter2")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Server error", w.Body.String())
}

func TestAdminExport(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	students := []models.Student{{
		FullName:        `Doe, "Jane"`,
		Email:           "jane@college.edu",
		GamePreferences: []string{"A", "B"},
		CreatedAt:       created,
	}}

	lister := new(mocks.MockStudentLister)
	lister.On("ListStudents", mock.Anything).Return(students, nil)
	handler := NewAdminHandler(lister, "hunter2")

	w := adminRequest(t, handler.Export, "/api/v1/admin/export", "hunter2")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Equal(t, `attachment; filename="students.csv"`, w.Header().Get("Content-Disposition"))

	body := w.Body.String()
	assert.Contains(t, body, "full_name,email,college_id,game_preferences,created_at")
	assert.Contains(t, body, `"Doe, ""Jane"""`)
	assert.Contains(t, body, "A|B")
}

func TestAdminExportUnauthorized(t *testing.T) {
	handler := NewAdminHandler(new(mocks.MockStudentLister), "hunter2")

	w := adminRequest(t, handler.Export, "/api/v1/admin/export", "nope")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
}
