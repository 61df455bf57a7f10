package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog"

	appControllers "github.com/huskyden/backend/internal/app/controllers"
	"github.com/huskyden/backend/internal/app/graph"
	appMigrations "github.com/huskyden/backend/internal/app/migrations"
	appRepos "github.com/huskyden/backend/internal/app/repositories"
	"github.com/huskyden/backend/internal/app/repositories/memory"
	appRoutes "github.com/huskyden/backend/internal/app/routes"
	appServices "github.com/huskyden/backend/internal/app/services"
	"github.com/huskyden/backend/internal/config"
	"github.com/huskyden/backend/internal/db"
	appMiddleware "github.com/huskyden/backend/internal/middleware"
	"github.com/huskyden/backend/internal/pkg/logger"
	"github.com/huskyden/backend/internal/seed"
)

// DefaultConfigPath is used when no path is given on the command line
const DefaultConfigPath = "configs/config.yaml"

// Store is the repository set together with the connection behind it, if any
type Store struct {
	Repos *appRepos.Repositories
	DB    *db.PostgresDB
}

// Close releases the database pool; a memory store has nothing to release
func (s *Store) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services    *appServices.Services
	Controllers *appControllers.Controllers
	Schema      graphql.Schema
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "console",
	})
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// OpenStore connects the configured store. PostgreSQL is migrated to the latest
// schema before it is returned.
func OpenStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Store, error) {
	if cfg.Database.Driver == config.DriverMemory {
		lgr.Warn().Msg("Using in-memory store, data is lost on exit")
		return &Store{Repos: memory.NewRepositories()}, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	if err := Migrate(ctx, database, lgr); err != nil {
		database.Close()
		return nil, err
	}
	return &Store{Repos: appRepos.NewRepositories(database.Pool), DB: database}, nil
}

// Migrate applies the embedded migrations
func Migrate(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.Pool).Up(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// SeedCatalog loads the embedded Statistics catalog into the store
func SeedCatalog(ctx context.Context, repos *appRepos.Repositories) (seed.Result, error) {
	catalog, err := seed.DefaultCatalog()
	if err != nil {
		return seed.Result{}, err
	}
	return seed.Run(ctx, repos, catalog)
}

// BuildDependencies initializes services, controllers and the GraphQL schema.
func BuildDependencies(repos *appRepos.Repositories) (*Dependencies, error) {
	svc := appServices.NewServices(repos)

	schema, err := graph.NewSchema(svc)
	if err != nil {
		return nil, fmt.Errorf("failed to build GraphQL schema: %w", err)
	}

	return &Dependencies{
		Services:    svc,
		Controllers: appControllers.NewControllers(svc),
		Schema:      schema,
	}, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestID(), appMiddleware.RequestLogger(), gin.Recovery())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.Schema)

	return router
}
