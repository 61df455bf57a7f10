package memory

import (
	"context"
	"sort"
	"time"

	"github.com/huskyden/backend/internal/app/models"
	"github.com/huskyden/backend/internal/app/repositories"
	"github.com/huskyden/backend/internal/pkg/apperrors"
	"github.com/huskyden/backend/internal/pkg/helpers"
	"github.com/huskyden/backend/internal/pkg/slug"
)

type professorRepository struct {
	db *Store
}

func (s *Store) hydrateProfessor(p *models.Professor) *models.Professor {
	professor := *p
	if p.DepartmentID != nil {
		professor.DepartmentID = int64Ptr(*p.DepartmentID)
		if d, ok := s.departments[*p.DepartmentID]; ok {
			dept := *d
			professor.Department = &dept
		}
	}
	return &professor
}

func (s *Store) slugTaken(_ context.Context, candidate string) (bool, error) {
	for _, p := range s.professors {
		if p.Slug == candidate {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) insertProfessor(ctx context.Context, professor *models.Professor) error {
	if professor.DepartmentID != nil {
		if _, ok := s.departments[*professor.DepartmentID]; !ok {
			return apperrors.ErrDepartmentNotFound
		}
	}
	if professor.Slug == "" {
		candidate, err := slug.Unique(ctx, slug.Make(professor.Name), s.slugTaken)
		if err != nil {
			return err
		}
		professor.Slug = candidate
	} else if taken, _ := s.slugTaken(ctx, professor.Slug); taken {
		return apperrors.ErrProfessorSlugExists
	}

	models.Stamp(&professor.CreatedAt, &professor.UpdatedAt, time.Now())
	professor.ID = s.nextID("professors")
	stored := *professor
	stored.Department = nil
	if professor.DepartmentID != nil {
		stored.DepartmentID = int64Ptr(*professor.DepartmentID)
	}
	s.professors[stored.ID] = &stored
	*professor = *s.hydrateProfessor(&stored)
	return nil
}

func (repo *professorRepository) Create(ctx context.Context, professor *models.Professor) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	return repo.db.insertProfessor(ctx, professor)
}

// Update saves name and department and keeps the stored slug
func (repo *professorRepository) Update(_ context.Context, professor *models.Professor) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	stored, ok := repo.db.professors[professor.ID]
	if !ok {
		return apperrors.ErrProfessorNotFound
	}
	if professor.DepartmentID != nil {
		if _, ok := repo.db.departments[*professor.DepartmentID]; !ok {
			return apperrors.ErrDepartmentNotFound
		}
		stored.DepartmentID = int64Ptr(*professor.DepartmentID)
	} else {
		stored.DepartmentID = nil
	}
	stored.Name = professor.Name
	stored.UpdatedAt = time.Now()
	*professor = *repo.db.hydrateProfessor(stored)
	return nil
}

func (repo *professorRepository) GetByID(_ context.Context, id int64) (*models.Professor, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if p, ok := repo.db.professors[id]; ok {
		return repo.db.hydrateProfessor(p), nil
	}
	return nil, apperrors.ErrProfessorNotFound
}

func (repo *professorRepository) GetBySlug(_ context.Context, s string) (*models.Professor, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, p := range repo.db.professors {
		if p.Slug == s {
			return repo.db.hydrateProfessor(p), nil
		}
	}
	return nil, apperrors.ErrProfessorNotFound
}

func (repo *professorRepository) SlugExists(ctx context.Context, s string) (bool, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.db.slugTaken(ctx, s)
}

func (s *Store) matchProfessor(p *models.Professor, f repositories.ProfessorFilter) bool {
	if f.NameContains != "" && !helpers.ContainsFold(p.Name, f.NameContains) {
		return false
	}
	if f.Search != "" && !helpers.ContainsFold(p.Name, f.Search) {
		return false
	}
	if f.DepartmentID != 0 && (p.DepartmentID == nil || *p.DepartmentID != f.DepartmentID) {
		return false
	}
	if f.DepartmentCode != "" {
		if p.DepartmentID == nil {
			return false
		}
		d, ok := s.departments[*p.DepartmentID]
		if !ok || d.Code != f.DepartmentCode {
			return false
		}
	}
	return true
}

func (repo *professorRepository) List(_ context.Context, filter repositories.ProfessorFilter, opts repositories.ListOptions) ([]*models.Professor, int64, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	professors := make([]*models.Professor, 0, len(repo.db.professors))
	for _, p := range repo.db.professors {
		if repo.db.matchProfessor(p, filter) {
			professors = append(professors, repo.db.hydrateProfessor(p))
		}
	}
	sort.Slice(professors, func(i, j int) bool {
		if professors[i].Name != professors[j].Name {
			return professors[i].Name < professors[j].Name
		}
		return professors[i].ID < professors[j].ID
	})
	return window(professors, opts), int64(len(professors)), nil
}

// Delete drops the professor and clears it on their reviews
func (repo *professorRepository) Delete(_ context.Context, id int64) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.professors[id]; !ok {
		return apperrors.ErrProfessorNotFound
	}
	for _, r := range repo.db.reviews {
		if r.ProfessorID != nil && *r.ProfessorID == id {
			r.ProfessorID = nil
		}
	}
	delete(repo.db.professors, id)
	return nil
}

func (repo *professorRepository) GetOrCreateByName(ctx context.Context, professor *models.Professor) (bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	var found *models.Professor
	for _, p := range repo.db.professors {
		if p.Name == professor.Name && (found == nil || p.ID < found.ID) {
			found = p
		}
	}
	if found != nil {
		*professor = *repo.db.hydrateProfessor(found)
		return false, nil
	}
	if err := repo.db.insertProfessor(ctx, professor); err != nil {
		return false, err
	}
	return true, nil
}
