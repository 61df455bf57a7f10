// Package memory is an in-process implementation of the repository interfaces.
// It backs the "memory" database driver and the service, GraphQL and controller tests.
package memory

import (
	"sync"

	"github.com/huskyden/backend/internal/app/models"
	"github.com/huskyden/backend/internal/app/repositories"
)

// Store holds every table behind one lock so cascading deletes stay atomic.
type Store struct {
	mutex sync.RWMutex

	departments map[int64]*models.Department
	courses     map[int64]*models.Course
	professors  map[int64]*models.Professor
	reviews     map[int64]*models.Review

	pkCount map[string]int64
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		departments: make(map[int64]*models.Department),
		courses:     make(map[int64]*models.Course),
		professors:  make(map[int64]*models.Professor),
		reviews:     make(map[int64]*models.Review),
		pkCount:     make(map[string]int64),
	}
}

// NewRepositories wires the four repositories over a fresh store
func NewRepositories() *repositories.Repositories {
	return NewStore().Repositories()
}

// Repositories returns repositories sharing this store
func (s *Store) Repositories() *repositories.Repositories {
	return &repositories.Repositories{
		DepartmentRepository: &departmentRepository{db: s},
		CourseRepository:     &courseRepository{db: s},
		ProfessorRepository:  &professorRepository{db: s},
		ReviewRepository:     &reviewRepository{db: s},
	}
}

func (s *Store) nextID(table string) int64 {
	s.pkCount[table]++
	return s.pkCount[table]
}

// window applies ListOptions to an already ordered slice
func window[T any](items []T, opts repositories.ListOptions) []T {
	if opts.Offset >= uint64(len(items)) {
		return items[:0]
	}
	items = items[opts.Offset:]
	if opts.Limit > 0 && opts.Limit < len(items) {
		items = items[:opts.Limit]
	}
	return items
}

func int64Ptr(v int64) *int64 {
	return &v
}
