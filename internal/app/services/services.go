// Package services holds the domain operations behind both the REST controllers and the
// GraphQL resolvers:
//   - DepartmentService: listing, lookup and removal of departments
//   - CourseService: course lookup, listing and review aggregates
//   - ProfessorService: professor lookup by slug or id, listing and rating aggregates
//   - ReviewService: review listing and the createReview write path
package services

import (
	"errors"

	"github.com/huskyden/backend/internal/app/repositories"
	"github.com/huskyden/backend/internal/pkg/apperrors"
)

// Services bundles every service the transports need
type Services struct {
	DepartmentService DepartmentService
	CourseService     CourseService
	ProfessorService  ProfessorService
	ReviewService     ReviewService
}

// NewServices wires the services over a repository set
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		DepartmentService: NewDepartmentService(repos.DepartmentRepository),
		CourseService:     NewCourseService(repos.CourseRepository, repos.ReviewRepository),
		ProfessorService:  NewProfessorService(repos.ProfessorRepository, repos.ReviewRepository),
		ReviewService:     NewReviewService(repos.ReviewRepository, repos.CourseRepository, repos.ProfessorRepository),
	}
}

// isNotFound reports whether err is any of the repository not-found sentinels
func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrResourceNotFound)
}
