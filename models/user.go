package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is a closed set; any comparison against it happens at the
// access-control boundary, not inside handlers.
type Role string

const (
	RoleManager  Role = "manager"
	RoleEngineer Role = "engineer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleEngineer:
		return true
	}
	return false
}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"`
	Role         Role               `bson:"role" json:"role"`
	Skills       []string           `bson:"skills,omitempty" json:"skills,omitempty"`
	Seniority    string             `bson:"seniority,omitempty" json:"seniority,omitempty"`
	MaxCapacity  float64            `bson:"maxCapacity,omitempty" json:"maxCapacity,omitempty"`
	Department   string             `bson:"department,omitempty" json:"department,omitempty"`
	Availability float64            `bson:"availability,omitempty" json:"availability,omitempty"`
	JoiningDate  time.Time          `bson:"joiningDate,omitempty" json:"joiningDate,omitempty"`
}

// UserProfile is the projection returned by login and the profile endpoint.
type UserProfile struct {
	ID    primitive.ObjectID `json:"id"`
	Email string             `json:"email"`
	Name  string             `json:"name"`
	Role  Role               `json:"role"`
}

func (u User) Profile() UserProfile {
	return UserProfile{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

// EngineerView is the list projection for GET /api/engineers.
type EngineerView struct {
	ID              primitive.ObjectID `json:"id"`
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	Skills          []string           `json:"skills"`
	CapacityHours   float64            `json:"capacity_hours"`
	ExperienceLevel string             `json:"experience_level"`
	Department      string             `json:"department"`
}
