package services

import (
	"errors"
	"testing"

	"github.com/Jigar-Gadhia/engineering-resource-dashboard/models"
)

func validEngineer() models.User {
	return models.User{
		Name:        "Alice",
		Email:       "alice@example.com",
		Role:        models.RoleEngineer,
		Skills:      []string{"React"},
		Seniority:   "mid",
		MaxCapacity: 100,
		Department:  "Frontend",
	}
}

func TestValidateSignupManagerMinimalFields(t *testing.T) {
	manager := models.User{Email: "m@example.com", Role: models.RoleManager}
	if err := ValidateSignup(manager, "secret"); err != nil {
		t.Errorf("manager with only email/password/role should pass, got %v", err)
	}
}

func TestValidateSignupEngineerRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.User)
	}{
		{"missing name", func(u *models.User) { u.Name = "" }},
		{"missing skills", func(u *models.User) { u.Skills = nil }},
		{"missing seniority", func(u *models.User) { u.Seniority = "" }},
		{"missing capacity", func(u *models.User) { u.MaxCapacity = 0 }},
		{"negative capacity", func(u *models.User) { u.MaxCapacity = -10 }},
		{"missing department", func(u *models.User) { u.Department = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := validEngineer()
			tt.mutate(&user)
			err := ValidateSignup(user, "secret")
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("error = %v, want *ValidationError", err)
			}
		})
	}

	if err := ValidateSignup(validEngineer(), "secret"); err != nil {
		t.Errorf("complete engineer profile should pass, got %v", err)
	}
}

func TestValidateSignupBaseFields(t *testing.T) {
	tests := []struct {
		name     string
		user     models.User
		password string
	}{
		{"missing email", models.User{Role: models.RoleManager}, "secret"},
		{"missing password", models.User{Email: "a@b.com", Role: models.RoleManager}, ""},
		{"missing role", models.User{Email: "a@b.com"}, "secret"},
		{"unknown role", models.User{Email: "a@b.com", Role: "admin"}, "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateSignup(tt.user, tt.password); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestValidateSignupSeniorityEnum(t *testing.T) {
	user := validEngineer()
	user.Seniority = "principal"
	if err := ValidateSignup(user, "secret"); err == nil {
		t.Error("unknown seniority should be rejected")
	}

	for _, level := range []string{"junior", "mid", "senior"} {
		user := validEngineer()
		user.Seniority = level
		if err := ValidateSignup(user, "secret"); err != nil {
			t.Errorf("seniority %q should pass, got %v", level, err)
		}
	}
}
