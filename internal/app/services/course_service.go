package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/huskyden/backend/internal/app/models"
	"github.com/huskyden/backend/internal/app/repositories"
	"github.com/huskyden/backend/internal/app/stats"
	"github.com/huskyden/backend/internal/pkg/apperrors"
	"github.com/huskyden/backend/internal/pkg/logger"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	ListCourses(ctx context.Context, filter repositories.CourseFilter, opts repositories.ListOptions) ([]*models.Course, int64, error)
	GetCourseByCode(ctx context.Context, code string) (*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	// CourseReviews returns every review of the course, newest first
	CourseReviews(ctx context.Context, courseID int64) ([]*models.Review, error)
	CourseAverages(ctx context.Context, courseID int64) (stats.Averages, error)
	DeleteCourse(ctx context.Context, code string) error
}

type courseServiceImpl struct {
	courseRepo repositories.CourseRepository
	reviewRepo repositories.ReviewRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.CourseRepository, reviewRepo repositories.ReviewRepository) CourseService {
	return &courseServiceImpl{courseRepo: courseRepo, reviewRepo: reviewRepo}
}

func (s *courseServiceImpl) ListCourses(ctx context.Context, filter repositories.CourseFilter, opts repositories.ListOptions) ([]*models.Course, int64, error) {
	courses, total, err := s.courseRepo.List(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, total, nil
}

// GetCourseByCode is an exact match on the code. Unknown codes give nil, nil.
func (s *courseServiceImpl) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	if strings.TrimSpace(code) == "" {
		return nil, nil
	}
	course, err := s.courseRepo.GetByCode(ctx, code)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

func (s *courseServiceImpl) CourseReviews(ctx context.Context, courseID int64) ([]*models.Review, error) {
	reviews, _, err := s.reviewRepo.List(ctx, repositories.ReviewFilter{CourseID: courseID}, repositories.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("error retrieving course reviews: %w", err)
	}
	return reviews, nil
}

// CourseAverages aggregates the current reviews of the course
func (s *courseServiceImpl) CourseAverages(ctx context.Context, courseID int64) (stats.Averages, error) {
	reviews, err := s.CourseReviews(ctx, courseID)
	if err != nil {
		return stats.Averages{}, err
	}
	return stats.ReviewAverages(reviews), nil
}

// DeleteCourse removes the course and its reviews
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, code string) error {
	course, err := s.courseRepo.GetByCode(ctx, code)
	if err != nil {
		if isNotFound(err) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error retrieving course: %w", err)
	}

	if err := s.courseRepo.Delete(ctx, course.ID); err != nil {
		if isNotFound(err) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error deleting course: %w", err)
	}

	logger.Info().Str("code", course.Code).Msg("Course deleted")
	return nil
}
