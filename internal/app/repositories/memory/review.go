package memory

import (
	"context"
	"sort"
	"time"

	"github.com/huskyden/backend/internal/app/models"
	"github.com/huskyden/backend/internal/app/repositories"
	"github.com/huskyden/backend/internal/pkg/apperrors"
	"github.com/huskyden/backend/internal/pkg/helpers"
)

type reviewRepository struct {
	db *Store
}

// hydrateReview attaches the same minimal course and professor the SQL join returns
func (s *Store) hydrateReview(r *models.Review) *models.Review {
	review := *r
	if r.Comment != nil {
		comment := *r.Comment
		review.Comment = &comment
	}
	if c, ok := s.courses[r.CourseID]; ok {
		review.Course = &models.Course{ID: c.ID, Code: c.Code, Title: c.Title, DepartmentID: c.DepartmentID}
	}
	if r.ProfessorID != nil {
		review.ProfessorID = int64Ptr(*r.ProfessorID)
		if p, ok := s.professors[*r.ProfessorID]; ok {
			review.Professor = &models.Professor{ID: p.ID, Name: p.Name, Slug: p.Slug}
		}
	}
	return &review
}

func (s *Store) insertReview(review *models.Review) error {
	if _, ok := s.courses[review.CourseID]; !ok {
		return apperrors.NewResourceNotFoundError("review references a missing course or professor")
	}
	if review.ProfessorID != nil {
		if _, ok := s.professors[*review.ProfessorID]; !ok {
			return apperrors.NewResourceNotFoundError("review references a missing course or professor")
		}
	}

	models.Stamp(&review.CreatedAt, &review.UpdatedAt, time.Now())
	review.ID = s.nextID("reviews")
	stored := *review
	stored.Course, stored.Professor = nil, nil
	if review.ProfessorID != nil {
		stored.ProfessorID = int64Ptr(*review.ProfessorID)
	}
	if review.Comment != nil {
		comment := *review.Comment
		stored.Comment = &comment
	}
	s.reviews[stored.ID] = &stored
	*review = *s.hydrateReview(&stored)
	return nil
}

func (repo *reviewRepository) Create(_ context.Context, review *models.Review) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	return repo.db.insertReview(review)
}

func (repo *reviewRepository) GetByID(_ context.Context, id int64) (*models.Review, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if r, ok := repo.db.reviews[id]; ok {
		return repo.db.hydrateReview(r), nil
	}
	return nil, apperrors.ErrReviewNotFound
}

func (s *Store) matchReview(r *models.Review, f repositories.ReviewFilter) bool {
	if f.CourseID != 0 && r.CourseID != f.CourseID {
		return false
	}
	if f.ProfessorID != 0 && (r.ProfessorID == nil || *r.ProfessorID != f.ProfessorID) {
		return false
	}
	course := s.courses[r.CourseID]
	if f.CourseCode != "" && (course == nil || course.Code != f.CourseCode) {
		return false
	}
	if f.Search != "" {
		var haystacks []string
		if course != nil {
			haystacks = append(haystacks, course.Code, course.Title)
		}
		if r.ProfessorID != nil {
			if p, ok := s.professors[*r.ProfessorID]; ok {
				haystacks = append(haystacks, p.Name)
			}
		}
		if r.Comment != nil {
			haystacks = append(haystacks, *r.Comment)
		}
		for _, h := range haystacks {
			if helpers.ContainsFold(h, f.Search) {
				return true
			}
		}
		return false
	}
	return true
}

func (repo *reviewRepository) List(_ context.Context, filter repositories.ReviewFilter, opts repositories.ListOptions) ([]*models.Review, int64, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	reviews := make([]*models.Review, 0, len(repo.db.reviews))
	for _, r := range repo.db.reviews {
		if repo.db.matchReview(r, filter) {
			reviews = append(reviews, repo.db.hydrateReview(r))
		}
	}
	sort.Slice(reviews, func(i, j int) bool {
		if !reviews[i].CreatedAt.Equal(reviews[j].CreatedAt) {
			return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
		}
		return reviews[i].ID > reviews[j].ID
	})
	return window(reviews, opts), int64(len(reviews)), nil
}

func (repo *reviewRepository) Delete(_ context.Context, id int64) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.reviews[id]; !ok {
		return apperrors.ErrReviewNotFound
	}
	delete(repo.db.reviews, id)
	return nil
}

func (repo *reviewRepository) GetOrCreateForPair(_ context.Context, review *models.Review) (bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	var found *models.Review
	for _, r := range repo.db.reviews {
		if r.CourseID != review.CourseID || !sameProfessor(r.ProfessorID, review.ProfessorID) {
			continue
		}
		if found == nil || r.ID < found.ID {
			found = r
		}
	}
	if found != nil {
		*review = *repo.db.hydrateReview(found)
		return false, nil
	}
	if err := repo.db.insertReview(review); err != nil {
		return false, err
	}
	return true, nil
}

func sameProfessor(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
