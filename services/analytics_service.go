package services

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Jigar-Gadhia/engineering-resource-dashboard/models"
)

type AnalyticsService struct {
	UsersCollection       *mongo.Collection
	ProjectsCollection    *mongo.Collection
	AssignmentsCollection *mongo.Collection
	CountsBreaker         *gobreaker.CircuitBreaker
}

func NewAnalyticsService(usersCollection, projectsCollection, assignmentsCollection *mongo.Collection, countsBreaker *gobreaker.CircuitBreaker) *AnalyticsService {
	return &AnalyticsService{
		UsersCollection:       usersCollection,
		ProjectsCollection:    projectsCollection,
		AssignmentsCollection: assignmentsCollection,
		CountsBreaker:         countsBreaker,
	}
}

// GetDashboardCounts runs the four counts fresh on every call. The counts go
// through the circuit breaker as one unit so a struggling store trips after
// a few consecutive failures instead of eating four timeouts per request.
func (s *AnalyticsService) GetDashboardCounts(ctx context.Context) (models.DashboardCounts, error) {
	result, err := s.CountsBreaker.Execute(func() (interface{}, error) {
		totalEngineers, err := s.UsersCollection.CountDocuments(ctx, bson.M{"role": models.RoleEngineer})
		if err != nil {
			return nil, fmt.Errorf("failed to count engineers: %v", err)
		}

		totalProjects, err := s.ProjectsCollection.CountDocuments(ctx, bson.M{})
		if err != nil {
			return nil, fmt.Errorf("failed to count projects: %v", err)
		}

		activeProjects, err := s.ProjectsCollection.CountDocuments(ctx, bson.M{"status": "active"})
		if err != nil {
			return nil, fmt.Errorf("failed to count active projects: %v", err)
		}

		totalAssignments, err := s.AssignmentsCollection.CountDocuments(ctx, bson.M{})
		if err != nil {
			return nil, fmt.Errorf("failed to count assignments: %v", err)
		}

		return models.DashboardCounts{
			TotalEngineers:   totalEngineers,
			TotalProjects:    totalProjects,
			ActiveProjects:   activeProjects,
			TotalAssignments: totalAssignments,
		}, nil
	})
	if err != nil {
		return models.DashboardCounts{}, err
	}

	return result.(models.DashboardCounts), nil
}
