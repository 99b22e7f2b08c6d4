package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Jigar-Gadhia/engineering-resource-dashboard/services"
)

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("response body is not a JSON message: %v", err)
	}
	return body["message"]
}

func TestCreateProjectRejectsNonManager(t *testing.T) {
	handler := NewProjectHandler(&services.ProjectService{})

	req := httptest.NewRequest("POST", "/api/projects", strings.NewReader(`{"name":"P"}`))
	req.Header.Set("Role", "engineer")
	rec := httptest.NewRecorder()
	handler.CreateProject(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg == "" {
		t.Error("error body should carry a message field")
	}
}

func TestCreateProjectRejectsBadPayload(t *testing.T) {
	handler := NewProjectHandler(&services.ProjectService{})

	req := httptest.NewRequest("POST", "/api/projects", strings.NewReader(`{not json`))
	req.Header.Set("Role", "manager")
	req.Header.Set("User-ID", "507f1f77bcf86cd799439011")
	rec := httptest.NewRecorder()
	handler.CreateProject(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateProjectRejectsBadDeadline(t *testing.T) {
	handler := NewProjectHandler(&services.ProjectService{})

	body := `{"name":"P","required_skills":["Go"],"deadline":"soon"}`
	req := httptest.NewRequest("POST", "/api/projects", strings.NewReader(body))
	req.Header.Set("Role", "manager")
	req.Header.Set("User-ID", "507f1f77bcf86cd799439011")
	rec := httptest.NewRecorder()
	handler.CreateProject(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateAssignmentRejectsNonManager(t *testing.T) {
	handler := NewAssignmentHandler(&services.AssignmentService{})

	req := httptest.NewRequest("POST", "/api/assignments", strings.NewReader(`{}`))
	req.Header.Set("Role", "engineer")
	rec := httptest.NewRecorder()
	handler.CreateAssignment(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestCreateAssignmentRejectsBadIDs(t *testing.T) {
	handler := NewAssignmentHandler(&services.AssignmentService{})

	body := `{"project_id":"nope","engineer_id":"507f1f77bcf86cd799439011","allocated_hours":10}`
	req := httptest.NewRequest("POST", "/api/assignments", strings.NewReader(body))
	req.Header.Set("Role", "manager")
	rec := httptest.NewRecorder()
	handler.CreateAssignment(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestLoginRejectsMissingFields(t *testing.T) {
	handler := NewAuthHandler(&services.UserService{})

	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"email":"a@b.com"}`))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRespondErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", &services.ValidationError{Msg: "bad input"}, http.StatusBadRequest},
		{"email taken", services.ErrEmailTaken, http.StatusBadRequest},
		{"user not found", services.ErrUserNotFound, http.StatusNotFound},
		{"wrong password", services.ErrInvalidPassword, http.StatusUnauthorized},
		{"dangling project", services.ErrProjectNotFound, http.StatusNotFound},
		{"dangling engineer", services.ErrEngineerNotFound, http.StatusNotFound},
		{"store failure", errors.New("socket closed"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondError(rec, tt.err)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if msg := decodeMessage(t, rec); msg == "" {
				t.Error("error body should carry a message field")
			}
		})
	}
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, errors.New("mongo: connection refused at 10.0.0.3"))

	if msg := decodeMessage(t, rec); msg != "internal server error" {
		t.Errorf("internal error message = %q, should not leak store detail", msg)
	}
}

func TestParseDate(t *testing.T) {
	plain, err := parseDate("2024-09-30")
	if err != nil {
		t.Fatalf("plain date: %v", err)
	}
	if want := time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC); !plain.Equal(want) {
		t.Errorf("parseDate plain = %v, want %v", plain, want)
	}

	if _, err := parseDate("2024-09-30T12:00:00Z"); err != nil {
		t.Errorf("RFC3339 date rejected: %v", err)
	}
	if _, err := parseDate("next week"); err == nil {
		t.Error("nonsense date should be rejected")
	}
}
