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

type courseRepository struct {
	db *Store
}

func (s *Store) courseByCode(code string) *models.Course {
	for _, c := range s.courses {
		if c.Code == code {
			return c
		}
	}
	return nil
}

// hydrateCourse copies a stored course and attaches its department
func (s *Store) hydrateCourse(c *models.Course) *models.Course {
	course := *c
	if d, ok := s.departments[c.DepartmentID]; ok {
		dept := *d
		course.Department = &dept
	}
	return &course
}

func (s *Store) deleteCourse(id int64) {
	for rid, r := range s.reviews {
		if r.CourseID == id {
			delete(s.reviews, rid)
		}
	}
	delete(s.courses, id)
}

func (s *Store) insertCourse(course *models.Course) error {
	dept, ok := s.departments[course.DepartmentID]
	if !ok {
		return apperrors.ErrDepartmentNotFound
	}
	models.Stamp(&course.CreatedAt, &course.UpdatedAt, time.Now())
	course.ID = s.nextID("courses")
	stored := *course
	stored.Department = nil
	s.courses[stored.ID] = &stored
	attached := *dept
	course.Department = &attached
	return nil
}

func (repo *courseRepository) Create(_ context.Context, course *models.Course) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if repo.db.courseByCode(course.Code) != nil {
		return apperrors.ErrCourseAlreadyExists
	}
	return repo.db.insertCourse(course)
}

func (repo *courseRepository) GetByID(_ context.Context, id int64) (*models.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if c, ok := repo.db.courses[id]; ok {
		return repo.db.hydrateCourse(c), nil
	}
	return nil, apperrors.ErrCourseNotFound
}

func (repo *courseRepository) GetByCode(_ context.Context, code string) (*models.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if c := repo.db.courseByCode(code); c != nil {
		return repo.db.hydrateCourse(c), nil
	}
	return nil, apperrors.ErrCourseNotFound
}

func (s *Store) matchCourse(c *models.Course, f repositories.CourseFilter) bool {
	if f.Code != "" && c.Code != f.Code {
		return false
	}
	if f.CodeContains != "" && !helpers.ContainsFold(c.Code, f.CodeContains) {
		return false
	}
	if f.TitleContains != "" && !helpers.ContainsFold(c.Title, f.TitleContains) {
		return false
	}
	if f.DepartmentID != 0 && c.DepartmentID != f.DepartmentID {
		return false
	}
	if f.DepartmentCode != "" {
		d, ok := s.departments[c.DepartmentID]
		if !ok || d.Code != f.DepartmentCode {
			return false
		}
	}
	if f.Search != "" && !helpers.ContainsFold(c.Code, f.Search) && !helpers.ContainsFold(c.Title, f.Search) {
		return false
	}
	return true
}

func (repo *courseRepository) List(_ context.Context, filter repositories.CourseFilter, opts repositories.ListOptions) ([]*models.Course, int64, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	courses := make([]*models.Course, 0, len(repo.db.courses))
	for _, c := range repo.db.courses {
		if repo.db.matchCourse(c, filter) {
			courses = append(courses, repo.db.hydrateCourse(c))
		}
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].Code < courses[j].Code })
	return window(courses, opts), int64(len(courses)), nil
}

func (repo *courseRepository) Delete(_ context.Context, id int64) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	repo.db.deleteCourse(id)
	return nil
}

func (repo *courseRepository) GetOrCreate(_ context.Context, course *models.Course) (bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if existing := repo.db.courseByCode(course.Code); existing != nil {
		*course = *repo.db.hydrateCourse(existing)
		return false, nil
	}
	if err := repo.db.insertCourse(course); err != nil {
		return false, err
	}
	return true, nil
}
