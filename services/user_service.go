package services

import (
	"context"
	"errors"
	"fmt"
	"html"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/Jigar-Gadhia/engineering-resource-dashboard/logging"
	"github.com/Jigar-Gadhia/engineering-resource-dashboard/models"
	"github.com/Jigar-Gadhia/engineering-resource-dashboard/utils"
)

var (
	ErrEmailTaken      = errors.New("user with email already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

// ValidationError marks input problems the handler maps to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

type UserService struct {
	UserCollection *mongo.Collection
}

func NewUserService(userCollection *mongo.Collection) *UserService {
	return &UserService{UserCollection: userCollection}
}

// ValidateSignup enforces the role-dependent required fields: every account
// needs email, password and a known role; engineers additionally need the
// full capacity profile.
func ValidateSignup(user models.User, password string) error {
	if user.Email == "" || password == "" || user.Role == "" {
		return &ValidationError{Msg: "email, password, and role are required"}
	}
	if !user.Role.Valid() {
		return &ValidationError{Msg: "role must be manager or engineer"}
	}
	if user.Role == models.RoleEngineer {
		if user.Name == "" || len(user.Skills) == 0 || user.Seniority == "" || user.MaxCapacity <= 0 || user.Department == "" {
			return &ValidationError{Msg: "missing required fields for engineer: name, skills, seniority, maxCapacity, department"}
		}
		switch user.Seniority {
		case "junior", "mid", "senior":
		default:
			return &ValidationError{Msg: "seniority must be junior, mid or senior"}
		}
	}
	return nil
}

// RegisterUser hashes the password and stores the user. The unique index on
// email backs the duplicate check for concurrent signups.
func (s *UserService) RegisterUser(ctx context.Context, user models.User, password string) error {
	if err := ValidateSignup(user, password); err != nil {
		return err
	}

	var existingUser models.User
	if err := s.UserCollection.FindOne(ctx, bson.M{"email": user.Email}).Decode(&existingUser); err == nil {
		return ErrEmailTaken
	}

	user.Name = html.EscapeString(user.Name)
	user.Department = html.EscapeString(user.Department)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %v", err)
	}
	user.Password = string(hashedPassword)

	if _, err := s.UserCollection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to save user: %v", err)
	}

	logging.Logger.Infof("Event ID: USER_REGISTERED, Description: Registered %s account for %s", user.Role, user.Email)
	return nil
}

// LoginUser verifies the credentials and issues a signed token. Email lookup
// and password mismatch are distinct failures so the handler can answer 404
// vs 401; the password error itself never says how close the guess was.
func (s *UserService) LoginUser(ctx context.Context, email, password string) (models.User, string, error) {
	var user models.User
	err := s.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return models.User{}, "", ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidPassword
	}

	token, err := utils.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		return models.User{}, "", fmt.Errorf("failed to generate token: %v", err)
	}

	return user, token, nil
}

// GetProfile returns the token subject's identity projection.
func (s *UserService) GetProfile(ctx context.Context, userID string) (models.UserProfile, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.UserProfile{}, ErrUserNotFound
	}

	var user models.User
	if err := s.UserCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&user); err != nil {
		return models.UserProfile{}, ErrUserNotFound
	}

	return user.Profile(), nil
}
