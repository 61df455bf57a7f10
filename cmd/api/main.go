package main

import (
	"flag"
	"os"

	"github.com/huskyden/backend/internal/bootstrap"
	"github.com/huskyden/backend/internal/pkg/logger"
	"github.com/huskyden/backend/internal/server"
)

// @title HuskyDen API
// @version 1.0
// @description Course and professor reviews for the University of Washington. GraphQL is served at /graphql.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	configPath := flag.String("config", bootstrap.DefaultConfigPath, "path to the YAML configuration file")
	flag.Parse()

	srv, err := server.NewServer(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
