package container

import (
	"log/slog"

	"github.com/gatherly/server/internal/config"
	"github.com/gatherly/server/internal/helpers"
	"github.com/gatherly/server/internal/models"
	"github.com/gatherly/server/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	Config        *config.Config
	MongoDBClient *mongo.Client
	TokenManager  *helpers.TokenManager
	AuthService   *services.AuthService
	EventService  *services.EventService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config, mongoDBClient *mongo.Client) *Container {
	repo := models.MongodbNewRepo(mongoDBClient, cfg.MongoDBName)
	tokens := helpers.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	return &Container{
		Logger:        logger,
		Config:        cfg,
		MongoDBClient: mongoDBClient,
		TokenManager:  tokens,
		AuthService:   services.NewAuthService(repo, tokens),
		EventService:  services.NewEventService(repo, repo),
	}
}
