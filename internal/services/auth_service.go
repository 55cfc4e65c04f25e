package services

import (
	"context"
	"strings"
	"time"

	"github.com/gatherly/server/internal/apperr"
	"github.com/gatherly/server/internal/helpers"
	"github.com/gatherly/server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const loginFailedMessage = "invalid email or password"

type AuthService struct {
	userRepo models.UserRepo
	tokens   *helpers.TokenManager
}

func NewAuthService(userRepo models.UserRepo, tokens *helpers.TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

type SignupInput struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (as *AuthService) Signup(ctx context.Context, in SignupInput) (*models.User, string, error) {
	if err := helpers.ValidateStruct(in); err != nil {
		return nil, "", err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := as.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", apperr.Duplicate("email")
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	user := &models.User{
		Name:      strings.TrimSpace(in.Name),
		Email:     email,
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// The unique email index still backstops a signup race here
	created, err := as.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := as.tokens.Generate(created.ID, created.Email)
	if err != nil {
		return nil, "", err
	}

	return created, token, nil
}

func (as *AuthService) Login(ctx context.Context, in LoginInput) (*models.User, string, error) {
	if err := helpers.ValidateStruct(in); err != nil {
		return nil, "", err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	user, err := as.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		// Same message and a comparable amount of work as a wrong password,
		// so responses don't reveal which emails are registered
		helpers.CheckDummyPassword(in.Password)
		return nil, "", apperr.Unauthorized(loginFailedMessage)
	}

	if !helpers.CheckPassword(user.Password, in.Password) {
		return nil, "", apperr.Unauthorized(loginFailedMessage)
	}

	token, err := as.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (as *AuthService) Profile(ctx context.Context, userId primitive.ObjectID) (*models.User, error) {
	user, err := as.userRepo.GetUserByID(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}
	return user, nil
}
