package services

import (
	"context"
	"fmt"

	"github.com/huskyden/backend/internal/app/models"
	"github.com/huskyden/backend/internal/app/repositories"
	"github.com/huskyden/backend/internal/pkg/apperrors"
	"github.com/huskyden/backend/internal/pkg/logger"
	"github.com/huskyden/backend/internal/pkg/validation"
)

// CreateReviewInput carries a review submission. A zero ProfessorID means no professor.
type CreateReviewInput struct {
	CourseCode  string
	ProfessorID int64
	Rating      int
	Workload    int
	Difficulty  int
	Comment     *string
}

// CreateReviewResult is the outcome of a submission. Validation problems are reported
// in Errors, never as a Go error.
type CreateReviewResult struct {
	Success bool
	Errors  []string
	Review  *models.Review
}

// ReviewService defines the interface for review-related operations
type ReviewService interface {
	ListReviews(ctx context.Context, filter repositories.ReviewFilter, opts repositories.ListOptions) ([]*models.Review, int64, error)
	GetReviewByID(ctx context.Context, id int64) (*models.Review, error)
	CreateReview(ctx context.Context, input CreateReviewInput) (*CreateReviewResult, error)
	DeleteReview(ctx context.Context, id int64) error
}

type reviewServiceImpl struct {
	reviewRepo    repositories.ReviewRepository
	courseRepo    repositories.CourseRepository
	professorRepo repositories.ProfessorRepository
}

// NewReviewService creates a new review service instance
func NewReviewService(reviewRepo repositories.ReviewRepository, courseRepo repositories.CourseRepository, professorRepo repositories.ProfessorRepository) ReviewService {
	return &reviewServiceImpl{reviewRepo: reviewRepo, courseRepo: courseRepo, professorRepo: professorRepo}
}

func (s *reviewServiceImpl) ListReviews(ctx context.Context, filter repositories.ReviewFilter, opts repositories.ListOptions) ([]*models.Review, int64, error) {
	reviews, total, err := s.reviewRepo.List(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving reviews: %w", err)
	}
	return reviews, total, nil
}

func (s *reviewServiceImpl) GetReviewByID(ctx context.Context, id int64) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving review: %w", err)
	}
	return review, nil
}

func failed(errs ...string) *CreateReviewResult {
	return &CreateReviewResult{Success: false, Errors: errs}
}

// CreateReview validates a submission and stores it.
// A missing course or professor stops validation with that single message; the three
// score range checks are all reported together. Nothing is written unless every check passes.
func (s *reviewServiceImpl) CreateReview(ctx context.Context, input CreateReviewInput) (*CreateReviewResult, error) {
	course, err := s.courseRepo.GetByCode(ctx, input.CourseCode)
	if err != nil {
		if isNotFound(err) {
			return failed(fmt.Sprintf("Course %s not found", input.CourseCode)), nil
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	var professorID *int64
	if input.ProfessorID != 0 {
		professor, err := s.professorRepo.GetByID(ctx, input.ProfessorID)
		if err != nil {
			if isNotFound(err) {
				return failed(fmt.Sprintf("Professor with id %d not found", input.ProfessorID)), nil
			}
			return nil, fmt.Errorf("error retrieving professor: %w", err)
		}
		professorID = &professor.ID
	}

	if errs := validation.CollectRangeErrors(
		validation.NewNumericValidation("Rating", input.Rating),
		validation.NewNumericValidation("Workload", input.Workload),
		validation.NewNumericValidation("Difficulty", input.Difficulty),
	); len(errs) > 0 {
		return failed(errs...), nil
	}

	comment := ""
	if input.Comment != nil {
		comment = *input.Comment
	}
	review := &models.Review{
		CourseID:    course.ID,
		ProfessorID: professorID,
		Rating:      input.Rating,
		Workload:    input.Workload,
		Difficulty:  input.Difficulty,
		Comment:     &comment,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("error creating review: %w", err)
	}

	logger.Info().
		Int64("reviewID", review.ID).
		Str("course", course.Code).
		Msg("Review created")
	return &CreateReviewResult{Success: true, Errors: []string{}, Review: review}, nil
}

// DeleteReview removes a single review
func (s *reviewServiceImpl) DeleteReview(ctx context.Context, id int64) error {
	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return apperrors.ErrReviewNotFound
		}
		return fmt.Errorf("error deleting review: %w", err)
	}
	return nil
}
