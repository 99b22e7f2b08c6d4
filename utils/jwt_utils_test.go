package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Jigar-Gadhia/engineering-resource-dashboard/models"
)

func TestGenerateAndValidateToken(t *testing.T) {
	SetSecret("test-secret")

	token, err := GenerateToken("507f1f77bcf86cd799439011", models.RoleManager)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "507f1f77bcf86cd799439011" {
		t.Errorf("subject = %q, want 507f1f77bcf86cd799439011", claims.UserID)
	}
	if claims.Role != models.RoleManager {
		t.Errorf("role = %q, want manager", claims.Role)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	SetSecret("test-secret")
	token, err := GenerateToken("507f1f77bcf86cd799439011", models.RoleEngineer)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	SetSecret("a-different-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Error("token signed with another secret should be rejected")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	SetSecret("test-secret")
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Error("garbage token should be rejected")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	SetSecret("test-secret")

	claims := &Claims{
		UserID: "507f1f77bcf86cd799439011",
		Role:   models.RoleEngineer,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	if _, err := ValidateToken(expired); err == nil {
		t.Error("expired token should be rejected")
	}
}
