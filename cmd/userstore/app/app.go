package app

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"user-store/internal/adapter/memory"
	"user-store/internal/config"
	"user-store/internal/usecase/user"
	apperrors "user-store/pkg/errors"
	"user-store/pkg/logger"
	"user-store/pkg/security"
)

// App represents the application
type App struct {
	Config *config.Config
	Logger *zap.Logger
	Store  *memory.UserRepository
	UserUC user.Service
}

// New creates a new application instance from CONFIG_PATH and the environment.
func New() (*App, error) {
	cfg, err := config.LoadConfig(getConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(cfg)
}

// NewWithConfig creates a new application instance from an already loaded configuration.
func NewWithConfig(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	l, err := initLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return newApp(cfg, logger.WithRunID(l)), nil
}

func newApp(cfg *config.Config, l *zap.Logger) *App {
	store := memory.NewUserRepository(l)
	if cfg.Store.SeedData {
		store.Seed()
	}

	return &App{
		Config: cfg,
		Logger: l,
		Store:  store,
		UserUC: user.New(store, l),
	}
}

// Run walks a user through registration, lookup and removal against the store.
func (a *App) Run() error {
	defer func() {
		_ = a.Logger.Sync()
	}()

	a.Logger.Info("starting application",
		zap.String("service", a.Config.Logger.ServiceName),
		zap.String("version", a.Config.Logger.ServiceVersion),
		zap.String("environment", a.Config.App.Environment),
	)

	u, err := a.UserUC.Register("John Doe", "john@example.com")
	if err != nil {
		return fmt.Errorf("register user: %w", err)
	}
	a.Logger.Info("user created",
		zap.Uint64("id", u.ID),
		zap.String("name", u.Name),
		zap.String("password_hash", security.HashPassword("changeme")),
		zap.String("token", security.GenerateToken()),
	)

	// A malformed address is reported, not fatal.
	if _, err := a.UserUC.Register("Bob", "not-an-email"); err != nil {
		var vErr *apperrors.ValidationError
		if !errors.As(err, &vErr) {
			return fmt.Errorf("register user: %w", err)
		}
		a.Logger.Info("registration rejected", zap.String("field", vErr.Field), zap.String("reason", vErr.Message))
	}

	found, err := a.UserUC.Get(u.ID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	a.Logger.Info("user found", zap.Uint64("id", found.ID), zap.String("email", found.Email))

	if err := a.UserUC.Remove(u.ID); err != nil {
		return fmt.Errorf("remove user: %w", err)
	}

	a.Logger.Info("application finished", zap.Int("users", a.Store.Len()), zap.Uint64("next_id", a.Store.NextID()))
	return nil
}

// initLogger initializes the application logger
func initLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.NewWithConfig(logger.Config{
		Level:          cfg.Logger.Level,
		Format:         cfg.Logger.Format,
		OutputPath:     cfg.Logger.OutputPath,
		EnableSampling: cfg.Logger.EnableSampling,
		ServiceName:    cfg.Logger.ServiceName,
		ServiceVersion: cfg.Logger.ServiceVersion,
		Environment:    cfg.App.Environment,
		Rotation: logger.Rotation{
			MaxSizeMB:  cfg.Logger.MaxSizeMB,
			MaxBackups: cfg.Logger.MaxBackups,
			MaxAgeDays: cfg.Logger.MaxAgeDays,
		},
	})
}

// getConfigPath returns the configuration path
func getConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "."
}
