package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Jigar-Gadhia/engineering-resource-dashboard/logging"
	"github.com/Jigar-Gadhia/engineering-resource-dashboard/models"
)

type ProjectService struct {
	ProjectsCollection *mongo.Collection
	UsersCollection    *mongo.Collection
}

func NewProjectService(projectsCollection, usersCollection *mongo.Collection) *ProjectService {
	return &ProjectService{
		ProjectsCollection: projectsCollection,
		UsersCollection:    usersCollection,
	}
}

func ValidateProjectInput(name string, requiredSkills []string) error {
	if name == "" {
		return &ValidationError{Msg: "project name is required"}
	}
	if len(requiredSkills) == 0 {
		return &ValidationError{Msg: "required_skills must not be empty"}
	}
	return nil
}

// CreateProject persists a new project owned by the calling manager, with
// status forced to planning and a team size derived from the estimate.
func (s *ProjectService) CreateProject(ctx context.Context, project models.Project) (primitive.ObjectID, error) {
	if err := ValidateProjectInput(project.Name, project.RequiredSkills); err != nil {
		return primitive.NilObjectID, err
	}

	project.Status = "planning"
	if project.Priority == "" {
		project.Priority = "medium"
	}
	if project.StartDate.IsZero() {
		project.StartDate = time.Now()
	}
	if project.EstimatedHours > 0 {
		project.TeamSize = int(math.Ceil(project.EstimatedHours / 40))
	}

	result, err := s.ProjectsCollection.InsertOne(ctx, project)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to save project: %v", err)
	}

	projectID := result.InsertedID.(primitive.ObjectID)
	logging.Logger.Infof("Event ID: PROJECT_CREATED, Description: Project %s created by manager %s", projectID.Hex(), project.ManagerID.Hex())
	return projectID, nil
}

// ProjectViewFrom builds the list projection for one project, resolving the
// manager name from the supplied lookup. Falls back to teamSize*40 when no
// explicit estimate is stored.
func ProjectViewFrom(project models.Project, managerName string) models.ProjectView {
	estimated := project.EstimatedHours
	if estimated == 0 {
		estimated = float64(project.TeamSize) * 40
	}

	skills := project.RequiredSkills
	if skills == nil {
		skills = []string{}
	}

	var deadline *time.Time
	if !project.EndDate.IsZero() {
		d := project.EndDate
		deadline = &d
	}

	if managerName == "" {
		managerName = "N/A"
	}

	return models.ProjectView{
		ID:             project.ID,
		Name:           project.Name,
		Description:    project.Description,
		RequiredSkills: skills,
		EstimatedHours: estimated,
		Priority:       Capitalize(project.Priority),
		Deadline:       deadline,
		Status:         Capitalize(project.Status),
		ManagerName:    managerName,
	}
}

// GetAllProjects lists projects joined with the owning manager's name.
func (s *ProjectService) GetAllProjects(ctx context.Context) ([]models.ProjectView, error) {
	cursor, err := s.ProjectsCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %v", err)
	}
	defer cursor.Close(ctx)

	managerNames := make(map[primitive.ObjectID]string)
	views := []models.ProjectView{}
	for cursor.Next(ctx) {
		var project models.Project
		if err := cursor.Decode(&project); err != nil {
			return nil, fmt.Errorf("failed to decode project: %v", err)
		}

		name, ok := managerNames[project.ManagerID]
		if !ok && !project.ManagerID.IsZero() {
			var manager models.User
			if err := s.UsersCollection.FindOne(ctx, bson.M{"_id": project.ManagerID}).Decode(&manager); err == nil {
				name = manager.Name
			}
			managerNames[project.ManagerID] = name
		}

		views = append(views, ProjectViewFrom(project, name))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error while listing projects: %v", err)
	}

	return views, nil
}
