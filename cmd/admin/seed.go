package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huskyden/backend/internal/bootstrap"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the Statistics (STAT) catalog",
		Long:  "Creates the STAT department, its courses, professors and sample reviews. Existing rows are kept, so the command can be rerun safely.",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := opts.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			res, err := bootstrap.SeedCatalog(cmd.Context(), store.Repos)
			fmt.Fprintf(cmd.OutOrStdout(), "created %d departments, %d courses, %d professors, %d reviews (%d reviews skipped)\n",
				res.Departments, res.Courses, res.Professors, res.Reviews, res.Skipped)
			return err
		},
	}
}
