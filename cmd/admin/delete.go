package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/huskyden/backend/internal/app/services"
)

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a department, course, professor or review",
	}

	cmd.AddCommand(
		deleteByKey(opts, "department <code>", "Delete a department with its courses and their reviews",
			func(cmd *cobra.Command, svc *services.Services, key string) error {
				return svc.DepartmentService.DeleteDepartment(cmd.Context(), key)
			}),
		deleteByKey(opts, "course <code>", "Delete a course and its reviews",
			func(cmd *cobra.Command, svc *services.Services, key string) error {
				return svc.CourseService.DeleteCourse(cmd.Context(), key)
			}),
		deleteByKey(opts, "professor <id>", "Delete a professor, keeping their reviews",
			func(cmd *cobra.Command, svc *services.Services, key string) error {
				id, err := parseID(key)
				if err != nil {
					return err
				}
				return svc.ProfessorService.DeleteProfessor(cmd.Context(), id)
			}),
		deleteByKey(opts, "review <id>", "Delete a single review",
			func(cmd *cobra.Command, svc *services.Services, key string) error {
				id, err := parseID(key)
				if err != nil {
					return err
				}
				return svc.ReviewService.DeleteReview(cmd.Context(), id)
			}),
	)
	return cmd
}

type deleteFunc func(cmd *cobra.Command, svc *services.Services, key string) error

func deleteByKey(opts *rootOptions, use, short string, fn deleteFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := opts.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			if err := fn(cmd, services.NewServices(store.Repos), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
