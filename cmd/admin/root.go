package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huskyden/backend/internal/bootstrap"
	"github.com/huskyden/backend/internal/config"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "admin",
		Short:         "HuskyDen administration",
		Long:          "Administrative tasks for the HuskyDen backend: migrate the schema, seed the Statistics catalog and delete records.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", bootstrap.DefaultConfigPath, "path to the YAML configuration file")

	cmd.AddCommand(newMigrateCmd(opts), newSeedCmd(opts), newDeleteCmd(opts))
	return cmd
}

// openStore loads configuration and connects the configured store
func (o *rootOptions) openStore(ctx context.Context) (*config.Config, *bootstrap.Store, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	store, err := bootstrap.OpenStore(ctx, cfg, lgr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store: %w", err)
	}
	return cfg, store, nil
}
