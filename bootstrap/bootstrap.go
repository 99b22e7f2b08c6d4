package bootstrap

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/Jigar-Gadhia/engineering-resource-dashboard/logging"
	"github.com/Jigar-Gadhia/engineering-resource-dashboard/models"
)

// SeedDemoData inserts the demo dataset (3 engineers, 1 manager, 3 projects
// of which 1 active, 4 assignments) when the users collection is empty.
// Gated behind ENABLE_BOOTSTRAP in main.
func SeedDemoData(ctx context.Context, usersCollection, projectsCollection, assignmentsCollection *mongo.Collection) error {
	count, err := usersCollection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	password := string(hashedPassword)

	alice := models.User{
		ID: primitive.NewObjectID(), Name: "Alice", Email: "alice@example.com",
		Password: password, Role: models.RoleEngineer,
		Skills: []string{"React", "Node.js"}, Seniority: "mid", MaxCapacity: 100,
		Availability: 30, Department: "Frontend", JoiningDate: date(2023, 1, 15),
	}
	bob := models.User{
		ID: primitive.NewObjectID(), Name: "Bob", Email: "bob@example.com",
		Password: password, Role: models.RoleEngineer,
		Skills: []string{"Python"}, Seniority: "senior", MaxCapacity: 50,
		Availability: 50, Department: "Backend", JoiningDate: date(2022, 9, 10),
	}
	carol := models.User{
		ID: primitive.NewObjectID(), Name: "Carol", Email: "carol@example.com",
		Password: password, Role: models.RoleEngineer,
		Skills: []string{"React", "Python"}, Seniority: "junior", MaxCapacity: 100,
		Availability: 20, Department: "Fullstack", JoiningDate: date(2023, 5, 1),
	}
	manager := models.User{
		ID: primitive.NewObjectID(), Name: "Manager1", Email: "manager@example.com",
		Password: password, Role: models.RoleManager, Department: "Management",
	}

	if _, err := usersCollection.InsertMany(ctx, []interface{}{alice, bob, carol, manager}); err != nil {
		return err
	}

	migration := models.Project{
		ID: primitive.NewObjectID(), Name: "React Migration",
		Description:    "Migrate old Angular codebase to React.",
		RequiredSkills: []string{"React"}, TeamSize: 2, EstimatedHours: 80,
		Priority: "high", Status: "active",
		StartDate: date(2024, 7, 1), EndDate: date(2024, 9, 30),
		ManagerID: manager.ID,
	}
	pipeline := models.Project{
		ID: primitive.NewObjectID(), Name: "Data Pipeline",
		Description:    "Batch ingestion pipeline for reporting.",
		RequiredSkills: []string{"Python"}, TeamSize: 1, EstimatedHours: 40,
		Priority: "medium", Status: "planning",
		StartDate: date(2024, 8, 1), EndDate: date(2024, 11, 30),
		ManagerID: manager.ID,
	}
	portal := models.Project{
		ID: primitive.NewObjectID(), Name: "Customer Portal",
		Description:    "Self-service portal rebuild.",
		RequiredSkills: []string{"React", "Node.js"}, TeamSize: 3, EstimatedHours: 120,
		Priority: "critical", Status: "completed",
		StartDate: date(2024, 1, 10), EndDate: date(2024, 6, 1),
		ManagerID: manager.ID,
	}

	if _, err := projectsCollection.InsertMany(ctx, []interface{}{migration, pipeline, portal}); err != nil {
		return err
	}

	assignments := []interface{}{
		models.Assignment{
			ProjectID: migration.ID, EngineerID: alice.ID, AllocatedHours: 40,
			StartDate: migration.StartDate, EndDate: migration.EndDate,
			Status: "in-progress", Role: "Developer",
		},
		models.Assignment{
			ProjectID: migration.ID, EngineerID: carol.ID, AllocatedHours: 20,
			StartDate: migration.StartDate, EndDate: migration.EndDate,
			Status: "assigned", Role: "Developer",
		},
		models.Assignment{
			ProjectID: pipeline.ID, EngineerID: bob.ID, AllocatedHours: 30,
			StartDate: pipeline.StartDate, EndDate: pipeline.EndDate,
			Status: "assigned", Role: "Tech Lead",
		},
		models.Assignment{
			ProjectID: portal.ID, EngineerID: alice.ID, AllocatedHours: 40,
			StartDate: portal.StartDate, EndDate: portal.EndDate,
			Status: "completed", Role: "Developer",
		},
	}

	if _, err := assignmentsCollection.InsertMany(ctx, assignments); err != nil {
		return err
	}

	logging.Logger.Info("Event ID: BOOTSTRAP_SEEDED, Description: Inserted demo users, projects and assignments")
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
