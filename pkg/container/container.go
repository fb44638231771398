package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"agentcard/internal/config"
	"agentcard/internal/domains/agent/handler"
	"agentcard/internal/domains/agent/repository"
	"agentcard/internal/domains/agent/service"
	"agentcard/internal/infrastructure/database"
	"agentcard/internal/infrastructure/storage"
	"agentcard/pkg/session"
)

// Container holds the whole dependency graph, wired once at startup in
// strict order: config → infrastructure → repository → service → handlers.
type Container struct {
	Config   *config.Config
	DB       *database.PostgresDB
	Uploader storage.Uploader
	Sessions *session.Manager

	AgentRepo    repository.Repository
	AgentService service.Service

	AuthHandler   *handler.AuthHandler
	AdminHandler  *handler.AdminHandler
	PublicHandler *handler.PublicHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(cfg.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	c.DB = db

	// Asset storage is a capability, decided exactly once: a missing or
	// broken backend disables uploads but never the service itself.
	c.Uploader = buildUploader(cfg.MinIO)

	c.Sessions = session.NewManager(cfg.Auth.SessionSecret)

	c.AgentRepo = repository.NewPostgresRepository(db.Pool)
	c.AgentService = service.NewAgentService(c.AgentRepo, c.Uploader)

	c.AuthHandler = handler.NewAuthHandler(c.Sessions, cfg.Auth.AdminPassword)
	c.AdminHandler = handler.NewAdminHandler(c.AgentService)
	c.PublicHandler = handler.NewPublicHandler(c.AgentService, cfg.App.PublicBaseURL)

	return c, nil
}

func buildUploader(cfg config.MinIOConfig) storage.Uploader {
	if !cfg.Configured() {
		log.Warn().Msg("asset storage not configured, uploads disabled")
		return storage.Disabled{}
	}

	uploader, err := storage.NewMinIOStorage(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("asset storage unreachable, uploads disabled")
		return storage.Disabled{}
	}

	log.Info().Str("bucket", cfg.Bucket).Msg("asset storage ready")
	return uploader
}

func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
