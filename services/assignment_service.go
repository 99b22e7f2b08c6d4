package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Jigar-Gadhia/engineering-resource-dashboard/logging"
	"github.com/Jigar-Gadhia/engineering-resource-dashboard/models"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrEngineerNotFound = errors.New("engineer not found")
)

type AssignmentService struct {
	AssignmentsCollection *mongo.Collection
	ProjectsCollection    *mongo.Collection
	UsersCollection       *mongo.Collection
}

func NewAssignmentService(assignmentsCollection, projectsCollection, usersCollection *mongo.Collection) *AssignmentService {
	return &AssignmentService{
		AssignmentsCollection: assignmentsCollection,
		ProjectsCollection:    projectsCollection,
		UsersCollection:       usersCollection,
	}
}

// SkillMatch is the percentage of a project's required skills the engineer
// covers, rounded half-up. A project with no required skills counts as a
// full match: there is no skill left unmet.
func SkillMatch(engineerSkills, requiredSkills []string) int {
	if len(requiredSkills) == 0 {
		return 100
	}

	have := make(map[string]bool, len(engineerSkills))
	for _, skill := range engineerSkills {
		have[skill] = true
	}

	matched := 0
	for _, skill := range requiredSkills {
		if have[skill] {
			matched++
		}
	}

	return int(math.Round(100 * float64(matched) / float64(len(requiredSkills))))
}

// CreateAssignment checks both referenced records exist and that the
// allocation fits inside the engineer's weekly capacity, then inserts. The
// check and the insert are separate store operations; with no delete
// endpoint in this API the window between them cannot dangle.
func (s *AssignmentService) CreateAssignment(ctx context.Context, assignment models.Assignment) (primitive.ObjectID, error) {
	var engineer models.User
	err := s.UsersCollection.FindOne(ctx, bson.M{"_id": assignment.EngineerID, "role": models.RoleEngineer}).Decode(&engineer)
	if err != nil {
		return primitive.NilObjectID, ErrEngineerNotFound
	}

	var project models.Project
	if err := s.ProjectsCollection.FindOne(ctx, bson.M{"_id": assignment.ProjectID}).Decode(&project); err != nil {
		return primitive.NilObjectID, ErrProjectNotFound
	}

	if assignment.AllocatedHours <= 0 {
		return primitive.NilObjectID, &ValidationError{Msg: "allocated_hours must be positive"}
	}
	if engineer.MaxCapacity > 0 && assignment.AllocatedHours > engineer.MaxCapacity {
		return primitive.NilObjectID, &ValidationError{Msg: fmt.Sprintf("allocated_hours exceeds engineer capacity of %g", engineer.MaxCapacity)}
	}

	if assignment.Status == "" {
		assignment.Status = "assigned"
	}
	if assignment.Role == "" {
		assignment.Role = "Developer"
	}

	result, err := s.AssignmentsCollection.InsertOne(ctx, assignment)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to save assignment: %v", err)
	}

	assignmentID := result.InsertedID.(primitive.ObjectID)
	logging.Logger.Infof("Event ID: ASSIGNMENT_CREATED, Description: Engineer %s assigned to project %s for %g hours", assignment.EngineerID.Hex(), assignment.ProjectID.Hex(), assignment.AllocatedHours)
	return assignmentID, nil
}

// GetAllAssignments lists assignments joined with both sides of the pair.
// The skill match is recomputed on every read so it always reflects the
// current skill lists.
func (s *AssignmentService) GetAllAssignments(ctx context.Context) ([]models.AssignmentView, error) {
	cursor, err := s.AssignmentsCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %v", err)
	}
	defer cursor.Close(ctx)

	engineers := make(map[primitive.ObjectID]models.User)
	projects := make(map[primitive.ObjectID]models.Project)

	views := []models.AssignmentView{}
	for cursor.Next(ctx) {
		var assignment models.Assignment
		if err := cursor.Decode(&assignment); err != nil {
			return nil, fmt.Errorf("failed to decode assignment: %v", err)
		}

		engineer, ok := engineers[assignment.EngineerID]
		if !ok {
			if err := s.UsersCollection.FindOne(ctx, bson.M{"_id": assignment.EngineerID}).Decode(&engineer); err != nil {
				logging.Logger.Warnf("Event ID: ASSIGNMENT_DANGLING_ENGINEER, Description: Assignment %s references missing engineer %s", assignment.ID.Hex(), assignment.EngineerID.Hex())
			}
			engineers[assignment.EngineerID] = engineer
		}

		project, ok := projects[assignment.ProjectID]
		if !ok {
			if err := s.ProjectsCollection.FindOne(ctx, bson.M{"_id": assignment.ProjectID}).Decode(&project); err != nil {
				logging.Logger.Warnf("Event ID: ASSIGNMENT_DANGLING_PROJECT, Description: Assignment %s references missing project %s", assignment.ID.Hex(), assignment.ProjectID.Hex())
			}
			projects[assignment.ProjectID] = project
		}

		views = append(views, models.AssignmentView{
			ID:             assignment.ID,
			ProjectID:      assignment.ProjectID,
			EngineerID:     assignment.EngineerID,
			ProjectName:    project.Name,
			EngineerName:   engineer.Name,
			AllocatedHours: assignment.AllocatedHours,
			StartDate:      assignment.StartDate,
			EndDate:        assignment.EndDate,
			Status:         Capitalize(assignment.Status),
			Role:           assignment.Role,
			SkillMatch:     SkillMatch(engineer.Skills, project.RequiredSkills),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error while listing assignments: %v", err)
	}

	return views, nil
}
