package http

import (
	"net/http"

	lru "github.com/hashicorp/golang-lru/v2"

	"cardioscreen/db"
)

const recentCapacity = 100

// recentAssessments keeps the newest assessments in memory so the dashboard
// can poll without hitting the database.
var recentAssessments, _ = lru.New[string, db.Assessment](recentCapacity)

func recordRecent(assessment db.Assessment) {
	recentAssessments.Add(assessment.ID, assessment)
}

func handleRecentAssessments(w http.ResponseWriter, r *http.Request) {
	keys := recentAssessments.Keys()

	// Keys are ordered oldest to newest; serve newest first.
	assessments := make([]db.Assessment, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		if assessment, ok := recentAssessments.Peek(keys[i]); ok {
			assessments = append(assessments, assessment)
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"assessments": assessments,
		"count":       len(assessments),
	})
}
