// Command admin runs maintenance tasks against the configured store: schema
// migrations, catalog seeding and removal of records.
package main

import (
	"os"

	"github.com/huskyden/backend/internal/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error().Err(err).Msg("Command execution failed")
		os.Exit(1)
	}
}
