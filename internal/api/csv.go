package api

import (
	"bytes"
	"encoding/csv"
	"strings"
	"time"

	"github.com/campusarena/backend/internal/models"
)

// exportColumns is the fixed CSV column order of the export endpoint.
var exportColumns = []string{"full_name", "email", "college_id", "game_preferences", "created_at"}

// studentsCSV serializes profile rows for export. List-valued preferences are
// flattened with "|"; fields containing a comma, quote, or newline are
// quote-wrapped with internal quotes doubled; missing values render empty.
func studentsCSV(students []models.Student) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportColumns); err != nil {
		return "", err
	}
	for _, s := range students {
		created := ""
		if !s.CreatedAt.IsZero() {
			created = s.CreatedAt.Format(time.RFC3339)
		}
		record := []string{
			s.FullName,
			s.Email,
			s.CollegeID,
			strings.Join(s.GamePreferences, "|"),
			created,
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
