package main

import (
	"context"
	"net/http"
	"time"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sony/gobreaker"

	"github.com/Jigar-Gadhia/engineering-resource-dashboard/bootstrap"
	"github.com/Jigar-Gadhia/engineering-resource-dashboard/config"
	"github.com/Jigar-Gadhia/engineering-resource-dashboard/db"
	"github.com/Jigar-Gadhia/engineering-resource-dashboard/handlers"
	"github.com/Jigar-Gadhia/engineering-resource-dashboard/logging"
	"github.com/Jigar-Gadhia/engineering-resource-dashboard/middleware"
	"github.com/Jigar-Gadhia/engineering-resource-dashboard/models"
	"github.com/Jigar-Gadhia/engineering-resource-dashboard/services"
	"github.com/Jigar-Gadhia/engineering-resource-dashboard/utils"
)

func main() {
	logging.InitLogger()

	cfg := config.Load()
	utils.SetSecret(cfg.JWTSecret)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.ConnectToMongo(ctx, cfg.MongoURI); err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Database connection for MongoDB failed: %v", err)
	}
	defer db.DisconnectMongo(context.TODO())
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Successfully connected to MongoDB at %s.", cfg.MongoURI)

	database := db.Client.Database(cfg.Database)
	usersCollection := database.Collection("users")
	projectsCollection := database.Collection("projects")
	assignmentsCollection := database.Collection("assignments")

	if err := db.CreateEmailIndex(ctx, usersCollection); err != nil {
		logging.Logger.Fatalf("Event ID: DB_INDEX_FAILED, Description: %v", err)
	}

	if cfg.EnableBootstrap {
		if err := bootstrap.SeedDemoData(ctx, usersCollection, projectsCollection, assignmentsCollection); err != nil {
			logging.Logger.Warnf("Event ID: BOOTSTRAP_FAILED, Description: Demo data seeding failed: %v", err)
		}
	}

	countsBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "DashboardCountsCB",
		MaxRequests: 1,
		Timeout:     2 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})

	userService := services.NewUserService(usersCollection)
	engineerService := services.NewEngineerService(usersCollection)
	projectService := services.NewProjectService(projectsCollection, usersCollection)
	assignmentService := services.NewAssignmentService(assignmentsCollection, projectsCollection, usersCollection)
	analyticsService := services.NewAnalyticsService(usersCollection, projectsCollection, assignmentsCollection, countsBreaker)

	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	engineerHandler := handlers.NewEngineerHandler(engineerService)
	projectHandler := handlers.NewProjectHandler(projectService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	r := mux.NewRouter()
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/auth/signup", authHandler.Signup).Methods("POST")

	r.Handle("/api/users/profile", middleware.JWTAuthMiddleware(http.HandlerFunc(userHandler.GetProfile))).Methods("GET")
	r.Handle("/api/engineers", middleware.JWTAuthMiddleware(http.HandlerFunc(engineerHandler.GetAllEngineers))).Methods("GET")
	r.Handle("/api/projects", middleware.JWTAuthMiddleware(http.HandlerFunc(projectHandler.GetAllProjects))).Methods("GET")
	r.Handle("/api/projects", middleware.JWTAuthMiddleware(http.HandlerFunc(projectHandler.CreateProject), models.RoleManager)).Methods("POST")
	r.Handle("/api/assignments", middleware.JWTAuthMiddleware(http.HandlerFunc(assignmentHandler.GetAllAssignments))).Methods("GET")
	r.Handle("/api/assignments", middleware.JWTAuthMiddleware(http.HandlerFunc(assignmentHandler.CreateAssignment), models.RoleManager)).Methods("POST")
	r.Handle("/api/analytics/dashboard", middleware.JWTAuthMiddleware(http.HandlerFunc(analyticsHandler.GetDashboard))).Methods("GET")

	corsRouter := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins([]string{cfg.CORSOrigin}),
		gorillahandlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(r)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsRouter,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logging.Logger.Infof("Event ID: SERVER_START, Description: Resource management service running on port %s", cfg.Port)
	logging.Logger.Fatal(srv.ListenAndServe())
}
