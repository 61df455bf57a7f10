package memory

import (
	"context"
	"sort"

	"github.com/huskyden/backend/internal/app/models"
	"github.com/huskyden/backend/internal/app/repositories"
	"github.com/huskyden/backend/internal/pkg/apperrors"
	"github.com/huskyden/backend/internal/pkg/helpers"
)

type departmentRepository struct {
	db *Store
}

func (s *Store) departmentByCode(code string) *models.Department {
	for _, d := range s.departments {
		if d.Code == code {
			return d
		}
	}
	return nil
}

func (repo *departmentRepository) Create(_ context.Context, department *models.Department) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if repo.db.departmentByCode(department.Code) != nil {
		return apperrors.ErrDepartmentAlreadyExists
	}
	department.ID = repo.db.nextID("departments")
	stored := *department
	repo.db.departments[stored.ID] = &stored
	return nil
}

func (repo *departmentRepository) GetByID(_ context.Context, id int64) (*models.Department, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if d, ok := repo.db.departments[id]; ok {
		dept := *d
		return &dept, nil
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func (repo *departmentRepository) GetByCode(_ context.Context, code string) (*models.Department, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if d := repo.db.departmentByCode(code); d != nil {
		dept := *d
		return &dept, nil
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func (repo *departmentRepository) List(_ context.Context, filter repositories.DepartmentFilter, opts repositories.ListOptions) ([]*models.Department, int64, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	departments := make([]*models.Department, 0, len(repo.db.departments))
	for _, d := range repo.db.departments {
		if filter.Search != "" && !helpers.ContainsFold(d.Code, filter.Search) && !helpers.ContainsFold(d.Name, filter.Search) {
			continue
		}
		dept := *d
		departments = append(departments, &dept)
	}
	sort.Slice(departments, func(i, j int) bool { return departments[i].Code < departments[j].Code })
	return window(departments, opts), int64(len(departments)), nil
}

// Delete drops the department with its courses and their reviews, and detaches its professors
func (repo *departmentRepository) Delete(_ context.Context, id int64) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.departments[id]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	for cid, c := range repo.db.courses {
		if c.DepartmentID == id {
			repo.db.deleteCourse(cid)
		}
	}
	for _, p := range repo.db.professors {
		if p.DepartmentID != nil && *p.DepartmentID == id {
			p.DepartmentID = nil
		}
	}
	delete(repo.db.departments, id)
	return nil
}

func (repo *departmentRepository) GetOrCreate(_ context.Context, department *models.Department) (bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if existing := repo.db.departmentByCode(department.Code); existing != nil {
		*department = *existing
		return false, nil
	}
	department.ID = repo.db.nextID("departments")
	stored := *department
	repo.db.departments[stored.ID] = &stored
	return true, nil
}
