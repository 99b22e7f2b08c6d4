package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Jigar-Gadhia/engineering-resource-dashboard/models"
)

type EngineerService struct {
	UserCollection *mongo.Collection
}

func NewEngineerService(userCollection *mongo.Collection) *EngineerService {
	return &EngineerService{UserCollection: userCollection}
}

// Capitalize upper-cases the first letter for display ("mid" -> "Mid",
// "planning" -> "Planning").
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// EngineerViewFromUser projects a user record onto the engineer list shape;
// the password never reaches the projection.
func EngineerViewFromUser(user models.User) models.EngineerView {
	skills := user.Skills
	if skills == nil {
		skills = []string{}
	}
	return models.EngineerView{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Skills:          skills,
		CapacityHours:   user.MaxCapacity,
		ExperienceLevel: Capitalize(user.Seniority),
		Department:      user.Department,
	}
}

// GetAllEngineers lists users with the engineer role in store order.
func (s *EngineerService) GetAllEngineers(ctx context.Context) ([]models.EngineerView, error) {
	cursor, err := s.UserCollection.Find(ctx, bson.M{"role": models.RoleEngineer})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch engineers: %v", err)
	}
	defer cursor.Close(ctx)

	engineers := []models.EngineerView{}
	for cursor.Next(ctx) {
		var user models.User
		if err := cursor.Decode(&user); err != nil {
			return nil, fmt.Errorf("failed to decode engineer: %v", err)
		}
		engineers = append(engineers, EngineerViewFromUser(user))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error while listing engineers: %v", err)
	}

	return engineers, nil
}
