package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

var database *sql.DB

// InitDB initializes the SQLite database
func InitDB(path string) error {
	var err error
	database, err = sql.Open("sqlite3", path)
	if err != nil {
		return err
	}

	query := `
    CREATE TABLE IF NOT EXISTS assessments (
        id TEXT PRIMARY KEY,
        model_tag VARCHAR(10) NOT NULL,
        inputs TEXT NOT NULL,
        label INTEGER NOT NULL,
        margin REAL DEFAULT 0,
        created_at DATETIME NOT NULL
    );
    CREATE INDEX IF NOT EXISTS idx_assessments_created_at
        ON assessments(created_at DESC);
    `

	_, err = database.Exec(query)
	return err
}

func Close() error {
	if database == nil {
		return nil
	}
	err := database.Close()
	database = nil
	return err
}

type Assessment struct {
	ID        string            `json:"id"`
	ModelTag  string            `json:"model_tag"`
	Inputs    map[string]string `json:"inputs"`
	Label     int               `json:"label"`
	Margin    float64           `json:"margin"`
	CreatedAt time.Time         `json:"created_at"`
}

// SaveAssessment persists one completed risk assessment
func SaveAssessment(assessment Assessment) error {
	if database == nil {
		return errors.New("database not initialized")
	}
	if assessment.ID == "" {
		return errors.New("assessment id required")
	}

	inputs, err := json.Marshal(assessment.Inputs)
	if err != nil {
		return err
	}

	_, err = database.Exec(`
        INSERT OR REPLACE INTO assessments (id, model_tag, inputs, label, margin, created_at)
        VALUES (?, ?, ?, ?, ?, ?)`,
		assessment.ID, assessment.ModelTag, string(inputs),
		assessment.Label, assessment.Margin, assessment.CreatedAt)
	return err
}

// QueryAssessments returns the most recent assessments, newest first
func QueryAssessments(limit int) ([]Assessment, error) {
	if database == nil {
		return nil, errors.New("database not initialized")
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := database.Query(`
        SELECT id, model_tag, inputs, label, margin, created_at
        FROM assessments
        ORDER BY created_at DESC
        LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assessments := make([]Assessment, 0, limit)
	for rows.Next() {
		var assessment Assessment
		var inputs string
		err := rows.Scan(&assessment.ID, &assessment.ModelTag, &inputs,
			&assessment.Label, &assessment.Margin, &assessment.CreatedAt)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(inputs), &assessment.Inputs); err != nil {
			return nil, err
		}
		assessments = append(assessments, assessment)
	}

	return assessments, rows.Err()
}

// CountAssessments returns the total number of stored assessments
func CountAssessments() (int, error) {
	if database == nil {
		return 0, errors.New("database not initialized")
	}
	var count int
	err := database.QueryRow(`SELECT COUNT(*) FROM assessments`).Scan(&count)
	return count, err
}
