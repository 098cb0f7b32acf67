package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"gorm.io/datatypes"

	"github.com/campusarena/backend/internal/models"
)

// AdminStore is a read-only connection opened with elevated (service-level)
// credentials. It is used exclusively by the admin listing and export
// endpoints and is not subject to the owner scoping the service layer applies
// to the application connection.
type AdminStore struct {
	db *sql.DB
}

// NewAdminStore opens the elevated connection from a full DSN
// (SERVICE_DATABASE_URL).
func NewAdminStore(dsn string) (*AdminStore, error) {
	if dsn == "" {
		return nil, fmt.Errorf("service database URL is not configured")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening service database: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to service database: %w", err)
	}

	return &AdminStore{db: db}, nil
}

// ListStudents returns every student row, newest first.
func (s *AdminStore) ListStudents(ctx context.Context) ([]models.Student, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, email, full_name, COALESCE(college_id, ''),
		       game_preferences, is_admin, created_at, updated_at
		FROM students
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var (
			st       models.Student
			id, uid  string
			rawGames []byte
		)
		if err := rows.Scan(&id, &uid, &st.Email, &st.FullName, &st.CollegeID,
			&rawGames, &st.IsAdmin, &st.CreatedAt, &st.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		if st.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("error parsing student id: %w", err)
		}
		if st.UserID, err = uuid.Parse(uid); err != nil {
			return nil, fmt.Errorf("error parsing student user id: %w", err)
		}
		games := []string{}
		if len(rawGames) > 0 {
			if err := json.Unmarshal(rawGames, &games); err != nil {
				return nil, fmt.Errorf("error decoding game preferences: %w", err)
			}
		}
		st.GamePreferences = datatypes.NewJSONSlice(games)
		students = append(students, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading student rows: %w", err)
	}
	return students, nil
}

// PromoteByEmail grants the admin flag to the student registered under the
// given email. No API surface mutates is_admin; promotion happens only
// through this elevated path, driven by the promote-admin tool.
func (s *AdminStore) PromoteByEmail(ctx context.Context, email string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE students SET is_admin = TRUE WHERE email = $1`, email)
	if err != nil {
		return fmt.Errorf("error promoting student: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking promotion result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no student registered under %s", email)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *AdminStore) Close() error {
	return s.db.Close()
}
