package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Assignment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProjectID      primitive.ObjectID `bson:"projectId" json:"projectId"`
	EngineerID     primitive.ObjectID `bson:"engineerId" json:"engineerId"`
	AllocatedHours float64            `bson:"allocatedHours" json:"allocatedHours"`
	StartDate      time.Time          `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate        time.Time          `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Status         string             `bson:"status" json:"status"`
	Role           string             `bson:"role" json:"role"`
}

// AssignmentView joins the engineer and project sides of an assignment and
// carries the skill match computed at read time.
type AssignmentView struct {
	ID             primitive.ObjectID `json:"id"`
	ProjectID      primitive.ObjectID `json:"project_id"`
	EngineerID     primitive.ObjectID `json:"engineer_id"`
	ProjectName    string             `json:"project_name"`
	EngineerName   string             `json:"engineer_name"`
	AllocatedHours float64            `json:"allocated_hours"`
	StartDate      time.Time          `json:"start_date"`
	EndDate        time.Time          `json:"end_date"`
	Status         string             `json:"status"`
	Role           string             `json:"role"`
	SkillMatch     int                `json:"skill_match"`
}

// DashboardCounts is the response of GET /api/analytics/dashboard.
type DashboardCounts struct {
	TotalEngineers   int64 `json:"totalEngineers"`
	TotalProjects    int64 `json:"totalProjects"`
	ActiveProjects   int64 `json:"activeProjects"`
	TotalAssignments int64 `json:"totalAssignments"`
}
