package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthHandler(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/health", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(handleHealth)

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	expected := `{"status":"ok"}`
	if rr.Body.String() != expected+"\n" && rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: got %v want %v", rr.Body.String(), expected)
	}
}

func TestFieldsHandler(t *testing.T) {
	mux := http.NewServeMux()
	RegisterHandlers(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/fields", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var payload struct {
		Fields []struct {
			Key     string `json:"key"`
			Label   string `json:"label"`
			Help    string `json:"help"`
			Default string `json:"default"`
			Options []struct {
				Label string `json:"label"`
				Code  int    `json:"code"`
			} `json:"options"`
		} `json:"fields"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(payload.Fields) != 11 {
		t.Fatalf("expected 11 fields, got %d", len(payload.Fields))
	}
	if payload.Fields[0].Key != "age" || payload.Fields[0].Default != "50" {
		t.Fatalf("unexpected first field: %+v", payload.Fields[0])
	}
	if len(payload.Fields[2].Options) != 4 {
		t.Fatalf("expected 4 chest pain options, got %d", len(payload.Fields[2].Options))
	}
}

func TestModelsHandler(t *testing.T) {
	mux := http.NewServeMux()
	RegisterHandlers(mux)
	availableTags = func() []string { return []string{"GA", "ABC"} }
	defer func() { availableTags = func() []string { return nil } }()

	req := httptest.NewRequest(http.MethodGet, "/api/models", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var payload struct {
		Models []string `json:"models"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(payload.Models) != 2 || payload.Models[0] != "GA" {
		t.Fatalf("unexpected models: %v", payload.Models)
	}
}

func TestModelInfoHandler(t *testing.T) {
	mux := http.NewServeMux()
	RegisterHandlers(mux)
	modelDescription = func(tag string) (string, bool) {
		if tag == "GA" {
			return "Genetic Algorithm", true
		}
		return "", false
	}
	defer func() { modelDescription = func(string) (string, bool) { return "", false } }()

	req := httptest.NewRequest(http.MethodGet, "/api/models/GA/info", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/models/XX/info", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown tag, got %d", w.Code)
	}
}
