package db

import (
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	// Setup: a temp dir keeps a crashed run from leaking state into the next
	dir, err := os.MkdirTemp("", "cardioscreen-db-test")
	if err != nil {
		log.Fatalf("failed to create temp dir: %v", err)
	}
	if err := InitDB(filepath.Join(dir, "test.db")); err != nil {
		os.RemoveAll(dir)
		log.Fatalf("failed to initialize test database: %v", err)
	}

	code := m.Run()

	// Teardown
	Close()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestSaveAndQueryAssessments(t *testing.T) {
	first := Assessment{
		ID:        "a-1",
		ModelTag:  "GA",
		Inputs:    map[string]string{"age": "50", "sex": "Male"},
		Label:     1,
		Margin:    0.42,
		CreatedAt: time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC),
	}
	second := Assessment{
		ID:        "a-2",
		ModelTag:  "ABC",
		Inputs:    map[string]string{"age": "61"},
		Label:     0,
		Margin:    -0.2,
		CreatedAt: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
	}

	if err := SaveAssessment(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := SaveAssessment(second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assessments, err := QueryAssessments(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assessments) != 2 {
		t.Fatalf("expected 2 assessments, got %d", len(assessments))
	}
	if assessments[0].ID != "a-2" {
		t.Fatalf("expected newest first, got %s", assessments[0].ID)
	}
	if assessments[1].Inputs["sex"] != "Male" {
		t.Fatalf("inputs not round-tripped: %+v", assessments[1].Inputs)
	}
	if assessments[1].Label != 1 || assessments[1].ModelTag != "GA" {
		t.Fatalf("unexpected assessment: %+v", assessments[1])
	}

	count, err := CountAssessments()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected count 2, got %d", count)
	}
}

func TestSaveAssessmentRequiresID(t *testing.T) {
	if err := SaveAssessment(Assessment{ModelTag: "GA"}); err == nil {
		t.Fatal("expected error for missing id")
	}
}
