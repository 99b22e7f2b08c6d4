package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Jigar-Gadhia/engineering-resource-dashboard/models"
	"github.com/Jigar-Gadhia/engineering-resource-dashboard/utils"
)

func tokenFor(t *testing.T, role models.Role) string {
	t.Helper()
	utils.SetSecret("middleware-test-secret")
	token, err := utils.GenerateToken("507f1f77bcf86cd799439011", role)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

func TestMissingAuthorizationHeader(t *testing.T) {
	handler := JWTAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached without a token")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/engineers", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestInvalidToken(t *testing.T) {
	utils.SetSecret("middleware-test-secret")
	handler := JWTAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached with a bad token")
	}))

	req := httptest.NewRequest("GET", "/api/engineers", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestValidTokenForwardsIdentity(t *testing.T) {
	token := tokenFor(t, models.RoleEngineer)

	var gotUserID, gotRole string
	handler := JWTAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = r.Header.Get("User-ID")
		gotRole = r.Header.Get("Role")
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/engineers", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	// A client-supplied Role header must not survive past the gate.
	req.Header.Set("Role", "manager")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotUserID != "507f1f77bcf86cd799439011" {
		t.Errorf("User-ID header = %q, want token subject", gotUserID)
	}
	if gotRole != "engineer" {
		t.Errorf("Role header = %q, want engineer from token", gotRole)
	}
}

func TestRoleGate(t *testing.T) {
	tests := []struct {
		name       string
		tokenRole  models.Role
		wantStatus int
	}{
		{"manager allowed", models.RoleManager, http.StatusOK},
		{"engineer forbidden", models.RoleEngineer, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := tokenFor(t, tt.tokenRole)

			reached := false
			handler := JWTAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				w.WriteHeader(http.StatusOK)
			}), models.RoleManager)

			req := httptest.NewRequest("POST", "/api/projects", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if reached != (tt.wantStatus == http.StatusOK) {
				t.Errorf("handler reached = %v with status %d", reached, rec.Code)
			}
		})
	}
}
