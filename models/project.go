package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Project struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description" json:"description"`
	RequiredSkills []string           `bson:"requiredSkills" json:"requiredSkills"`
	EstimatedHours float64            `bson:"estimatedHours,omitempty" json:"estimatedHours,omitempty"`
	TeamSize       int                `bson:"teamSize,omitempty" json:"teamSize,omitempty"`
	Priority       string             `bson:"priority" json:"priority"`
	StartDate      time.Time          `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate        time.Time          `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Status         string             `bson:"status" json:"status"`
	ManagerID      primitive.ObjectID `bson:"managerId" json:"managerId"`
}

// ProjectView is the list projection for GET /api/projects, joined with the
// owning manager's name.
type ProjectView struct {
	ID             primitive.ObjectID `json:"id"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	RequiredSkills []string           `json:"required_skills"`
	EstimatedHours float64            `json:"estimated_hours"`
	Priority       string             `json:"priority"`
	Deadline       *time.Time         `json:"deadline"`
	Status         string             `json:"status"`
	ManagerName    string             `json:"manager_name"`
}
