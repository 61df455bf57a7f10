package services

import (
	"context"
	"fmt"

	"github.com/huskyden/backend/internal/app/models"
	"github.com/huskyden/backend/internal/app/repositories"
	"github.com/huskyden/backend/internal/app/stats"
	"github.com/huskyden/backend/internal/pkg/apperrors"
	"github.com/huskyden/backend/internal/pkg/logger"
)

// ProfessorService defines the interface for professor-related operations
type ProfessorService interface {
	ListProfessors(ctx context.Context, filter repositories.ProfessorFilter, opts repositories.ListOptions) ([]*models.Professor, int64, error)
	// GetProfessor looks up by slug when one is given, otherwise by id. Neither, or no
	// match, gives nil, nil.
	GetProfessor(ctx context.Context, id int64, slug string) (*models.Professor, error)
	ProfessorReviews(ctx context.Context, professorID int64) ([]*models.Review, error)
	ProfessorAverages(ctx context.Context, professorID int64) (stats.Averages, error)
	DeleteProfessor(ctx context.Context, id int64) error
}

type professorServiceImpl struct {
	professorRepo repositories.ProfessorRepository
	reviewRepo    repositories.ReviewRepository
}

// NewProfessorService creates a new professor service instance
func NewProfessorService(professorRepo repositories.ProfessorRepository, reviewRepo repositories.ReviewRepository) ProfessorService {
	return &professorServiceImpl{professorRepo: professorRepo, reviewRepo: reviewRepo}
}

func (s *professorServiceImpl) ListProfessors(ctx context.Context, filter repositories.ProfessorFilter, opts repositories.ListOptions) ([]*models.Professor, int64, error) {
	professors, total, err := s.professorRepo.List(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving professors: %w", err)
	}
	return professors, total, nil
}

func (s *professorServiceImpl) GetProfessor(ctx context.Context, id int64, slug string) (*models.Professor, error) {
	var (
		professor *models.Professor
		err       error
	)
	switch {
	case slug != "":
		professor, err = s.professorRepo.GetBySlug(ctx, slug)
	case id > 0:
		professor, err = s.professorRepo.GetByID(ctx, id)
	default:
		return nil, nil
	}
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving professor: %w", err)
	}
	return professor, nil
}

func (s *professorServiceImpl) ProfessorReviews(ctx context.Context, professorID int64) ([]*models.Review, error) {
	reviews, _, err := s.reviewRepo.List(ctx, repositories.ReviewFilter{ProfessorID: professorID}, repositories.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("error retrieving professor reviews: %w", err)
	}
	return reviews, nil
}

// ProfessorAverages aggregates every review attributed to the professor
func (s *professorServiceImpl) ProfessorAverages(ctx context.Context, professorID int64) (stats.Averages, error) {
	reviews, err := s.ProfessorReviews(ctx, professorID)
	if err != nil {
		return stats.Averages{}, err
	}
	return stats.ReviewAverages(reviews), nil
}

// DeleteProfessor removes the professor. Their reviews stay, unattributed.
func (s *professorServiceImpl) DeleteProfessor(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid professor ID", apperrors.ErrValidationFailed)
	}
	if err := s.professorRepo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return apperrors.ErrProfessorNotFound
		}
		return fmt.Errorf("error deleting professor: %w", err)
	}

	logger.Info().Int64("professorID", id).Msg("Professor deleted")
	return nil
}
